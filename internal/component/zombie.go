// internal/component/zombie.go
package component

import "go-zombie-survival/internal/utils"

// Zombie — преследующий игрока враг. Скорость фиксируется при спавне,
// направление пересчитывается каждый кадр от текущей позиции игрока.
// FaceDir — последнее ненулевое направление движения, нужно только рендеру.
type Zombie struct {
	Speed   float64
	Radius  float64
	FaceDir utils.Vec2
	Alive   bool
}
