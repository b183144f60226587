// internal/system/player.go
package system

import (
	"math"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/utils"
)

// PlayerSystem превращает ввод в движение, прицел и выстрелы игрока.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// ResolveInput задаёт скорость игрока по осям движения, направляет прицел
// на целевую точку и гасит кулдаун выстрела.
func (s *PlayerSystem) ResolveInput(dt float64, axes interfaces.MoveAxes, aimX, aimY float64) {
	p := s.ecs.Player
	pos := s.ecs.Positions[s.ecs.PlayerID]
	vel := s.ecs.Velocities[s.ecs.PlayerID]

	var dir utils.Vec2
	if axes.Up {
		dir.Y--
	}
	if axes.Down {
		dir.Y++
	}
	if axes.Left {
		dir.X--
	}
	if axes.Right {
		dir.X++
	}
	move := dir.Normalized().Scale(p.MoveSpeed)
	vel.X, vel.Y = move.X, move.Y

	// Прицел обновляется только ненулевым вектором: когда цель совпадает
	// с игроком, остаётся прежнее направление, а не нулевое
	aim := utils.Vec2{X: aimX, Y: aimY}.Sub(utils.Vec2{X: pos.X, Y: pos.Y}).Normalized()
	if aim.Len() > utils.Epsilon {
		p.AimDir = aim
	}

	p.ShootTimer = math.Max(0, p.ShootTimer-dt)
}

// TickImmunity гасит таймер неуязвимости после урона.
func (s *PlayerSystem) TickImmunity(dt float64) {
	p := s.ecs.Player
	p.DamageCooldown = math.Max(0, p.DamageCooldown-dt)
}

// AttemptFire производит один выстрел активным оружием, если кулдаун
// истёк и в слоте есть патроны. Патрон списывается один раз за выстрел,
// независимо от числа дробин. Возвращает число выпущенных пуль.
func (s *PlayerSystem) AttemptFire(rng *utils.PRNGService) int {
	p := s.ecs.Player
	if p.ShootTimer > 0 {
		return 0
	}
	w := p.CurrentWeapon()
	if p.Ammo[p.ActiveWeapon] == 0 {
		return 0
	}

	p.ShootTimer = 1.0 / w.FireRate
	if p.Ammo[p.ActiveWeapon] > 0 {
		p.Ammo[p.ActiveWeapon]--
	}

	pos := s.ecs.Positions[s.ecs.PlayerID]
	baseAngle := p.AimDir.Angle()
	// Точка вылета смещена вперёд вдоль несмещённого прицела
	muzzle := utils.Vec2{X: pos.X, Y: pos.Y}.Add(p.AimDir.Scale(config.MuzzleOffset))

	for i := 0; i < w.Pellets; i++ {
		angle := baseAngle + rng.FloatRange(-w.SpreadDeg, w.SpreadDeg)*math.Pi/180
		dir := utils.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		s.spawnBullet(muzzle, dir.Scale(w.BulletSpeed), w.BulletLife)
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponFired, Amount: w.Pellets})
	return w.Pellets
}

// SelectWeapon делает слот активным. Индекс зажимается в допустимый
// диапазон, кулдаун не сбрасывается.
func (s *PlayerSystem) SelectWeapon(idx int) {
	p := s.ecs.Player
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.Weapons)-1 {
		idx = len(p.Weapons) - 1
	}
	p.ActiveWeapon = idx
}

func (s *PlayerSystem) spawnBullet(pos, vel utils.Vec2, lifetime float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{X: vel.X, Y: vel.Y}
	s.ecs.Bullets[id] = &component.Bullet{
		Lifetime: lifetime,
		Radius:   config.BulletRadius,
		Alive:    true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.BulletColor,
		Radius: float32(config.BulletRadius),
	}
}
