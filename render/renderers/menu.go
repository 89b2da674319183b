package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/render"
)

const menuHints = "[G] play  [Up/Down] select  [Enter] activate  [Esc] quit"

// MenuRenderer draws the main menu title, ball icons and buttons
type MenuRenderer struct {
	world *engine.World
}

func NewMenuRenderer(world *engine.World) *MenuRenderer {
	return &MenuRenderer{world: world}
}

func (r *MenuRenderer) IsVisible() bool {
	return r.world.Resources.Menu.Active
}

func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	menu := r.world.Resources.Menu

	r.drawTitle(buf, menu.TitleY)
	r.drawIcons(buf, menu.TitleY+1)

	for i := range menu.Buttons {
		drawButton(buf, &menu.Buttons[i])
	}

	if buf.Height() > 1 {
		buf.DrawTextCentered(buf.Height()-1, menuHints, render.RgbDim)
	}
}

// drawTitle shades the title from the player color to the star color
func (r *MenuRenderer) drawTitle(buf *render.RenderBuffer, y int) {
	title := []rune(parameter.MenuTitle)
	x := (buf.Width() - runewidth.StringWidth(parameter.MenuTitle)) / 2
	for i, ch := range title {
		t := 0.0
		if len(title) > 1 {
			t = float64(i) / float64(len(title)-1)
		}
		buf.SetFg(x, y, ch, render.Blend(parameter.PlayerColor, parameter.StarColor, t))
		x += runewidth.RuneWidth(ch)
	}
}

// drawIcons shows one of each sprite under the title
func (r *MenuRenderer) drawIcons(buf *render.RenderBuffer, y int) {
	icons := []struct {
		glyph rune
		color render.RGB
	}{
		{'●', parameter.PlayerColor},
		{'●', parameter.EnemyColor},
		{'*', parameter.StarColor},
	}
	x := buf.Width()/2 - 4
	for _, ic := range icons {
		buf.SetFg(x, y, ic.glyph, ic.color)
		x += 4
	}
}

func buttonColor(i engine.Interaction) render.RGB {
	switch i {
	case engine.InteractionPressed:
		return parameter.ButtonPressedColor
	case engine.InteractionHovered:
		return parameter.ButtonHoveredColor
	default:
		return parameter.ButtonNormalColor
	}
}

func drawButton(buf *render.RenderBuffer, b *engine.MenuButton) {
	buf.Fill(b.X, b.Y, b.W, b.H, buttonColor(b.Interaction))
	labelX := b.X + (b.W-runewidth.StringWidth(b.Label))/2
	buf.DrawText(labelX, b.Y+b.H/2, b.Label, parameter.ButtonTextColor)
}
