package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/ball-game/config"
	"github.com/lixenwraith/ball-game/highscore"
	"github.com/lixenwraith/ball-game/parameter"
)

func newScoresCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the saved high score table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			path := cfg.Scores.Path
			if opts.scoresPath != "" {
				path = opts.scoresPath
			}
			if path == "" {
				return fmt.Errorf("no high score file configured; set scores.path or pass --scores")
			}

			table, err := highscore.NewStore(path).Load()
			if err != nil {
				return err
			}
			return printScores(cmd, table, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", parameter.HighScoresShown, "number of entries to show")
	return cmd
}

func printScores(cmd *cobra.Command, table *highscore.Table, limit int) error {
	out := cmd.OutOrStdout()
	top := table.Top(limit)
	if len(top) == 0 {
		_, err := fmt.Fprintln(out, "no scores yet")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSCORE")
	for i, e := range top {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i+1, e.Name, e.Score)
	}
	return tw.Flush()
}
