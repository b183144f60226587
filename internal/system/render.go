// internal/system/render.go
package system

import (
	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует арену и сущности. Ядро решает, что рисовать
// (позиция, сектор направления), спрайты подбирает SpriteManager;
// отсутствующий спрайт заменяется примитивом из Renderable.
type RenderSystem struct {
	ecs     *entity.ECS
	sprites *assets.SpriteManager
}

func NewRenderSystem(ecs *entity.ECS, sprites *assets.SpriteManager) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	// рамка арены
	vector.StrokeRect(screen, 10, 10, config.ScreenWidth-20, config.ScreenHeight-20, 2, config.BorderColor, true)

	// игрок смотрит туда же, куда целится
	ppos := s.ecs.Positions[s.ecs.PlayerID]
	s.drawDirectional(screen, s.sprites.Player[:], s.ecs.Player.AimDir, ppos, s.ecs.Renderables[s.ecs.PlayerID])
	s.drawGun(screen, ppos)

	for id, z := range s.ecs.Zombies {
		s.drawDirectional(screen, s.sprites.Zombie[:], z.FaceDir, s.ecs.Positions[id], s.ecs.Renderables[id])
	}

	for id := range s.ecs.Bullets {
		pos := s.ecs.Positions[id]
		if r := s.ecs.Renderables[id]; r != nil {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
		}
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	bg := s.sprites.Background
	if bg == nil {
		screen.Fill(config.BackgroundColor)
		return
	}
	op := &ebiten.DrawImageOptions{}
	bounds := bg.Bounds()
	op.GeoM.Scale(
		float64(config.ScreenWidth)/float64(bounds.Dx()),
		float64(config.ScreenHeight)/float64(bounds.Dy()),
	)
	screen.DrawImage(bg, op)
}

// drawDirectional рисует спрайт по сектору направления или примитив,
// если спрайт этого сектора не загрузился.
func (s *RenderSystem) drawDirectional(screen *ebiten.Image, set []*ebiten.Image, dir utils.Vec2, pos *component.Position, fallback *component.Renderable) {
	img := set[utils.FacingSector(dir)]
	if img == nil {
		if fallback != nil {
			if fallback.HasStroke {
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), fallback.Radius+2, config.BorderColor, true)
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), fallback.Radius, fallback.Color, true)
		}
		return
	}

	bounds := img.Bounds()
	w := float64(bounds.Dx()) * config.SpriteScale
	h := float64(bounds.Dy()) * config.SpriteScale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.SpriteScale, config.SpriteScale)
	op.GeoM.Translate(pos.X-w/2, pos.Y-h/2)
	screen.DrawImage(img, op)
}

// drawGun рисует спрайт активного оружия, повёрнутый по прицелу
// и смещённый от центра игрока в сторону выстрела.
func (s *RenderSystem) drawGun(screen *ebiten.Image, ppos *component.Position) {
	p := s.ecs.Player
	gun := s.sprites.WeaponSprite(p.CurrentWeapon().ID)
	if gun == nil {
		return
	}

	bounds := gun.Bounds()
	scale := config.GunSpriteHeight / float64(bounds.Dy())
	angle := p.AimDir.Angle()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(-float64(bounds.Dx())*scale/2, -config.GunSpriteHeight/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(
		ppos.X+p.AimDir.X*config.GunDrawOffset,
		ppos.Y+p.AimDir.Y*config.GunDrawOffset,
	)
	screen.DrawImage(gun, op)
}
