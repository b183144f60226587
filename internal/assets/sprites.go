// internal/assets/sprites.go
package assets

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadFunc загружает одно изображение по пути. Выделен в тип,
// чтобы логику перебора путей можно было тестировать без ebiten.
type LoadFunc func(path string) (*ebiten.Image, error)

// LoadFirstAvailable перебирает пути-кандидаты и возвращает первое
// загрузившееся изображение. nil — если не загрузился ни один;
// отсутствующий спрайт не ошибка, рендер рисует примитив.
func LoadFirstAvailable(load LoadFunc, paths ...string) *ebiten.Image {
	for _, p := range paths {
		if img, err := load(p); err == nil && img != nil {
			return img
		}
	}
	return nil
}

// directionNames — имена файлов по секторам направления:
// 0 — вправо, дальше по часовой стрелке (ось Y вниз).
var directionNames = [8]string{
	"Right",
	"Down Right",
	"Down",
	"Down Left",
	"Left",
	"Up Left",
	"Up",
	"Up Right",
}

// SpriteManager загружает и хранит все спрайты игры.
// Любое поле может остаться nil — вызывающий код обязан это терпеть.
type SpriteManager struct {
	Player     [8]*ebiten.Image
	Zombie     [8]*ebiten.Image
	Weapons    map[string]*ebiten.Image
	Background *ebiten.Image

	assetDir string
	load     LoadFunc
}

// NewSpriteManager создает менеджер и сразу загружает все спрайты
// из assetDir с запасными путями.
func NewSpriteManager(assetDir string) *SpriteManager {
	m := &SpriteManager{
		Weapons:  make(map[string]*ebiten.Image),
		assetDir: assetDir,
		load:     loadImageFile,
	}

	for i, dir := range directionNames {
		m.Player[i] = m.loadSprite("Player " + dir + ".png")
		m.Zombie[i] = m.loadSprite("Zombie " + dir + ".png")
	}

	m.Weapons["WEAPON_PISTOL"] = m.loadSprite("Pistol.png")
	m.Weapons["WEAPON_SHOTGUN"] = m.loadSprite("Shotgun.png")
	m.Weapons["WEAPON_RIFLE"] = m.loadSprite("Rifle.png")

	m.Background = m.loadSprite("map.png")
	return m
}

// loadSprite пробует стандартную цепочку путей для одного файла.
func (m *SpriteManager) loadSprite(name string) *ebiten.Image {
	img := LoadFirstAvailable(m.load,
		filepath.Join(m.assetDir, name),
		filepath.Join(m.assetDir, "assets", name),
		name,
	)
	if img == nil {
		log.Printf("sprite %q not found, falling back to primitive", name)
	}
	return img
}

// WeaponSprite возвращает спрайт оружия по ID определения.
func (m *SpriteManager) WeaponSprite(id string) *ebiten.Image {
	return m.Weapons[id]
}

func loadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}
