// internal/state/pause_state.go
package state

import (
	"go-zombie-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: предыдущее состояние рисуется,
// но не обновляется.
type PauseState struct {
	sm            *StateMachine
	previousState State
	res           *Resources
}

func NewPauseState(sm *StateMachine, prevState State, res *Resources) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		res:           res,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	text.Draw(screen, "PAUSED", s.res.FontFace, config.ScreenWidth/2-40, config.ScreenHeight/2, config.MenuTextColor)
}

func (s *PauseState) Exit() {}
