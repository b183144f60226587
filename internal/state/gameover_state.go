// internal/state/gameover_state.go
package state

import (
	"fmt"

	"go-zombie-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GameOverState — итоговый экран: счёт, время выживания, достигнутая волна.
type GameOverState struct {
	sm          *StateMachine
	res         *Resources
	score       int
	surviveTime float64
	wave        int
}

func NewGameOverState(sm *StateMachine, res *Resources, score int, surviveTime float64, wave int) *GameOverState {
	return &GameOverState{
		sm:          sm,
		res:         res,
		score:       score,
		surviveTime: surviveTime,
		wave:        wave,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.res))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2

	text.Draw(screen, "GAME OVER", s.res.FontFace, cx-70, config.ScreenHeight/2-50, config.GameOverColor)
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.score), s.res.FontFace, cx-60, config.ScreenHeight/2-10, config.ScoreTextColor)
	text.Draw(screen, fmt.Sprintf("SURVIVED %.1f S  -  WAVE %d", s.surviveTime, s.wave), s.res.FontFace, cx-150, config.ScreenHeight/2+20, config.ScoreTextColor)
	text.Draw(screen, "PRESS SPACE TO RESTART", s.res.FontFace, cx-150, config.ScreenHeight/2+60, config.MenuTextColor)
}

func (s *GameOverState) Exit() {}
