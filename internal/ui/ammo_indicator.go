// internal/ui/ammo_indicator.go
package ui

import (
	"strconv"

	"go-zombie-survival/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// AmmoIndicator отображает имя активного оружия и остаток патронов.
type AmmoIndicator struct {
	X, Y     int
	fontFace font.Face
}

// NewAmmoIndicator создает новый индикатор патронов.
func NewAmmoIndicator(x, y int, fontFace font.Face) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует строку вида "SG 24"; бесконечный боезапас — "INF".
func (i *AmmoIndicator) Draw(screen *ebiten.Image, weaponName string, ammo int) {
	ammoText := "INF"
	if ammo >= 0 {
		ammoText = strconv.Itoa(ammo)
	}
	text.Draw(screen, weaponName+" "+ammoText, i.fontFace, i.X, i.Y, config.AmmoTextColor)
}
