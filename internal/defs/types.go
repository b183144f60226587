// internal/defs/types.go
package defs

// WeaponDefinition описывает один слот оружия игрока.
type WeaponDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`        // короткое имя для HUD
	FireRate    float64 `json:"fireRate"`    // выстрелов в секунду, кулдаун = 1/FireRate
	BulletSpeed float64 `json:"bulletSpeed"` // px/s
	BulletLife  float64 `json:"bulletLife"`  // время жизни пули, секунды
	SpreadDeg   float64 `json:"spreadDeg"`   // полуширина равномерного разброса, градусы
	Pellets     int     `json:"pellets"`     // снарядов за одно нажатие
	Ammo        int     `json:"ammo"`        // ёмкость слота, -1 — бесконечно
}
