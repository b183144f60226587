// internal/state/menu_state.go
package state

import (
	"go-zombie-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран
type MenuState struct {
	sm  *StateMachine
	res *Resources
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	return &MenuState{sm: sm, res: res}
}

func (m *MenuState) Enter() {
	ebiten.SetWindowTitle(m.res.WindowTitle)
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.res))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "TOP-DOWN ZOMBIES", m.res.FontFace, config.ScreenWidth/2-120, config.ScreenHeight/2-20, config.MenuTextColor)
	text.Draw(screen, "PRESS SPACE TO START", m.res.FontFace, config.ScreenWidth/2-140, config.ScreenHeight/2+20, config.MenuTextColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
