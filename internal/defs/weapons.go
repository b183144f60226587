// internal/defs/weapons.go
package defs

// DefaultWeapons возвращает встроенный набор слотов оружия.
// Порядок в срезе и есть порядок слотов: 0 — пистолет, 1 — дробовик, 2 — винтовка.
func DefaultWeapons() []WeaponDefinition {
	return []WeaponDefinition{
		{ID: "WEAPON_PISTOL", Name: "PST", FireRate: 7.0, BulletSpeed: 620, BulletLife: 0.9, SpreadDeg: 4, Pellets: 1, Ammo: -1},
		{ID: "WEAPON_SHOTGUN", Name: "SG", FireRate: 1.2, BulletSpeed: 520, BulletLife: 0.7, SpreadDeg: 22, Pellets: 6, Ammo: 24},
		{ID: "WEAPON_RIFLE", Name: "RF", FireRate: 10.0, BulletSpeed: 780, BulletLife: 1.0, SpreadDeg: 2, Pellets: 1, Ammo: 90},
	}
}
