// internal/ui/progress_bar.go
package ui

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WaveProgressBar — полоса прогресса волны внизу экрана:
// доля убитых от общего числа врагов волны.
type WaveProgressBar struct {
	X, Y, Width, Height float32
}

// NewWaveProgressBar создает полосу прогресса во всю ширину арены.
func NewWaveProgressBar() *WaveProgressBar {
	return &WaveProgressBar{
		X:      20,
		Y:      config.ScreenHeight - 18,
		Width:  config.ScreenWidth - 40,
		Height: 6,
	}
}

// Draw рисует подложку и заполненную часть.
func (b *WaveProgressBar) Draw(screen *ebiten.Image, killed, total int) {
	pct := 0.0
	if total > 0 {
		pct = utils.Clamp(float64(killed)/float64(total), 0, 1)
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.ProgressBgColor, false)
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width*float32(pct), b.Height, config.ProgressFgColor, false)
}
