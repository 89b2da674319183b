package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/config"
)

// options holds command-line overrides applied on top of the config file
type options struct {
	configPath string
	debug      bool
	noAudio    bool
	scoresPath string
	logFile    string
	playerName string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ball-game",
		Short: "Dodge the bouncing enemies and collect stars, in your terminal",
		Long: `Ball Game: steer the blue ball with the arrow keys or WASD.
Red balls bounce around the field and multiply; touching one ends the run.
Each star collected is worth one point.

Keys: [G] play  [Space] pause  [M] menu  [R] restart  [N] sound  [Esc] quit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			log.Info("starting",
				zap.String("config", opts.configPath),
				zap.String("scores", cfg.Scores.Path),
				zap.Bool("audio", !opts.noAudio))

			return run(cfg, opts, log)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "config file (TOML)")
	flags.StringVar(&opts.scoresPath, "scores", "", "high score file (TOML); empty keeps scores in memory only")
	flags.StringVar(&opts.playerName, "name", "", "name recorded in the high score table")

	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "debug logging")
	rootCmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "disable the audio device entirely")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file path (overrides config)")

	rootCmd.AddCommand(newScoresCmd(opts))
	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Logging.File = opts.logFile
	}
	if opts.scoresPath != "" {
		cfg.Scores.Path = opts.scoresPath
	}
	if opts.playerName != "" {
		cfg.Scores.PlayerName = opts.playerName
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
