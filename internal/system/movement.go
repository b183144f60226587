// internal/system/movement.go
package system

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/utils"
)

// MovementSystem обновляет позиции всех сущностей: игрока, зомби и пуль.
// Зомби каждый кадр заново наводятся на текущую позицию игрока —
// собственной памяти курса у них нет.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// AdvancePlayer интегрирует позицию игрока и зажимает её в арене.
func (s *MovementSystem) AdvancePlayer(dt float64) {
	pos := s.ecs.Positions[s.ecs.PlayerID]
	vel := s.ecs.Velocities[s.ecs.PlayerID]
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	clampToArena(pos)
}

// AdvanceZombies наводит каждого зомби на игрока, двигает и зажимает в арене.
func (s *MovementSystem) AdvanceZombies(dt float64) {
	playerPos := s.ecs.Positions[s.ecs.PlayerID]
	target := utils.Vec2{X: playerPos.X, Y: playerPos.Y}

	for id, z := range s.ecs.Zombies {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]

		dir := target.Sub(utils.Vec2{X: pos.X, Y: pos.Y}).Normalized()
		vel.X = dir.X * z.Speed
		vel.Y = dir.Y * z.Speed
		if dir.Len() > utils.Epsilon {
			z.FaceDir = dir
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		clampToArena(pos)
	}
}

// AdvanceBullets старит пули и двигает их. Пуля, чей возраст достиг
// времени жизни, помечается мёртвой; этот кадр она ещё долетает,
// но в коллизиях уже не участвует.
func (s *MovementSystem) AdvanceBullets(dt float64) {
	for id, b := range s.ecs.Bullets {
		b.Age += dt
		if b.Age >= b.Lifetime {
			b.Alive = false
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}

// clampToArena не даёт сущности покинуть игровое поле.
func clampToArena(pos *component.Position) {
	pos.X = utils.Clamp(pos.X, config.ArenaMargin, config.ScreenWidth-config.ArenaMargin)
	pos.Y = utils.Clamp(pos.Y, config.ArenaMargin, config.ScreenHeight-config.ArenaMargin)
}
