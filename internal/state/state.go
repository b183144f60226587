// internal/state/state.go
package state

import (
	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resources — загруженные при старте ресурсы, общие для всех состояний:
// конфиг волн, слоты оружия, спрайты и шрифт HUD.
type Resources struct {
	WaveConfig  config.WaveConfig
	Weapons     []defs.WeaponDefinition
	Sprites     *assets.SpriteManager
	FontFace    font.Face
	WindowTitle string
	Seed        int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
