package theme

import (
	"git.lost.host/meutraa/mokugyo/internal/game"
)

type Theme interface {
	RenderNote(decoy, ghost bool) string
	RenderHitField() string
	RenderJudgement(j game.Judgement) string
	RenderSpecter(scale float64) []string
}
