// internal/ui/health_indicator.go
package ui

import (
	"go-zombie-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthSquareSize    = 10.0
	healthSquareSpacing = 6.0
)

// HealthIndicator отображает здоровье игрока рядом квадратов.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator создает новый индикатор здоровья.
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует по квадрату на каждое очко здоровья.
func (i *HealthIndicator) Draw(screen *ebiten.Image, hp int) {
	for j := 0; j < hp; j++ {
		x := i.X + float32(j)*(healthSquareSize+healthSquareSpacing)
		vector.DrawFilledRect(screen, x, i.Y, healthSquareSize, healthSquareSize, config.HealthColor, false)
	}
}
