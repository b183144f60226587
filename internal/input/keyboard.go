// internal/input/keyboard.go
package input

import (
	"go-zombie-survival/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard — источник ввода на клавиатуре и мыши:
// WASD — движение, курсор — прицел, ЛКМ — выстрел, 1/2/3 — слоты оружия.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

var _ interfaces.InputSource = (*Keyboard)(nil)

func (k *Keyboard) Axes() interfaces.MoveAxes {
	return interfaces.MoveAxes{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

func (k *Keyboard) AimTarget() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (k *Keyboard) FireRequested() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (k *Keyboard) WeaponSelected() (int, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		return 0, true
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		return 1, true
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		return 2, true
	}
	return 0, false
}
