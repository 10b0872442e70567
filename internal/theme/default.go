package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

type DefaultTheme struct {
}

func paint(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(decoy, ghost bool) string {
	switch {
	case decoy && ghost:
		return "\033[2m" + paint(decoyGhostColor, decoySym)
	case decoy:
		return paint(decoyColor, decoySym)
	case ghost:
		return "\033[2m" + paint(ghostColor, noteSym)
	}
	return paint(noteColor, noteSym)
}

func (t *DefaultTheme) RenderHitField() string {
	return barSym
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	c, ok := judgementColors[j.Grade]
	if !ok {
		c = noteColor
	}
	return "\033[1m" + paint(c, j.Name)
}

// RenderSpecter picks the largest mask that fits the reveal scale.
func (t *DefaultTheme) RenderSpecter(scale float64) []string {
	mask := specterMasks[0]
	for i, m := range specterMasks {
		if scale >= specterScales[i] {
			mask = m
		}
	}
	lines := make([]string, len(mask))
	for i, l := range mask {
		lines[i] = paint(specterColor, l)
	}
	return lines
}

const (
	noteSym  = "⬤"
	decoySym = "◯"
	barSym   = "━"
)

var (
	noteColor       = color.RGBA{255, 255, 255, 255}
	ghostColor      = color.RGBA{220, 220, 220, 255}
	decoyColor      = color.RGBA{150, 150, 150, 255}
	decoyGhostColor = color.RGBA{130, 130, 130, 255}
	specterColor    = color.RGBA{236, 30, 0, 255}

	judgementColors = map[game.Grade]color.RGBA{
		game.Perfect: {255, 220, 40, 255},
		game.Good:    {220, 40, 40, 255},
		game.Ok:      {40, 200, 40, 255},
		game.Miss:    {106, 106, 106, 255},
	}

	specterScales = []float64{0, 0.8, 1.1}
	specterMasks  = [][]string{
		{
			"/\\ /\\",
			"(o o)",
			" ~~~ ",
		},
		{
			" /\\   /\\ ",
			"/  \\_/  \\",
			"| >   < |",
			" \\ ▼▼▼ / ",
			"  \\___/  ",
		},
		{
			"  /\\       /\\  ",
			" /  \\_____/  \\ ",
			"|    \\   /    |",
			"|  >==\\ /==<  |",
			" \\    ▼▼▼    / ",
			"  \\  ▲▲▲▲▲  /  ",
			"   \\_______/   ",
		},
	}
)
