package system

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/utils"
)

// newTestECS собирает минимальный контейнер с игроком в центре арены
// и стандартными слотами оружия.
func newTestECS() *entity.ECS {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Positions[id] = &component.Position{
		X: config.ScreenWidth / 2,
		Y: config.ScreenHeight / 2,
	}
	ecs.Velocities[id] = &component.Velocity{}

	weapons := defs.DefaultWeapons()
	ammo := make([]int, len(weapons))
	for i, w := range weapons {
		ammo[i] = w.Ammo
	}
	ecs.Player = &component.Player{
		HP:        config.PlayerMaxHP,
		MoveSpeed: config.PlayerSpeed,
		Radius:    config.PlayerRadius,
		AimDir:    utils.Vec2{X: 1},
		Weapons:   weapons,
		Ammo:      ammo,
	}
	return ecs
}

func addZombie(ecs *entity.ECS, x, y, speed float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Zombies[id] = &component.Zombie{
		Speed:   speed,
		Radius:  config.ZombieRadius,
		FaceDir: utils.Vec2{X: 1},
		Alive:   true,
	}
	return id
}

func addBullet(ecs *entity.ECS, x, y, vx, vy, lifetime float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy}
	ecs.Bullets[id] = &component.Bullet{
		Lifetime: lifetime,
		Radius:   config.BulletRadius,
		Alive:    true,
	}
	return id
}
