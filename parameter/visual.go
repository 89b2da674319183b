package parameter

// RGB triplets, 0-255
type RGB struct {
	R, G, B uint8
}

var (
	PlayerColor = RGB{60, 120, 230}
	EnemyColor  = RGB{220, 60, 60}
	StarColor   = RGB{250, 210, 60}
	BorderColor = RGB{90, 90, 110}
	HUDColor    = RGB{220, 220, 220}
	PausedColor = RGB{250, 210, 60}

	// Menu button colors: 0.15 / 0.25 gray, pressed 0.35/0.75/0.35 green
	ButtonNormalColor  = RGB{38, 38, 38}
	ButtonHoveredColor = RGB{64, 64, 64}
	ButtonPressedColor = RGB{89, 191, 89}
	ButtonTextColor    = RGB{255, 255, 255}
)

// Menu layout in terminal cells
const (
	ButtonWidth  = 14
	ButtonHeight = 3
	ButtonGap    = 1
	MenuTitle    = "Ball Game"
)
