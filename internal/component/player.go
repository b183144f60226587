// internal/component/player.go
package component

import (
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/utils"
)

// Player хранит всё состояние игрока: здоровье, прицел,
// слоты оружия и таймеры стрельбы/неуязвимости.
type Player struct {
	HP             int
	MoveSpeed      float64
	Radius         float64
	AimDir         utils.Vec2 // единичный вектор прицела
	ShootTimer     float64    // оставшийся кулдаун выстрела
	DamageCooldown float64    // оставшиеся секунды неуязвимости

	Weapons      []defs.WeaponDefinition
	Ammo         []int // счётчик патронов по слотам, -1 — бесконечно
	ActiveWeapon int   // индекс активного слота
}

// CurrentWeapon возвращает определение активного оружия.
func (p *Player) CurrentWeapon() defs.WeaponDefinition {
	return p.Weapons[p.ActiveWeapon]
}

// CurrentAmmo возвращает остаток патронов активного слота.
func (p *Player) CurrentAmmo() int {
	return p.Ammo[p.ActiveWeapon]
}
