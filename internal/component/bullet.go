// internal/component/bullet.go
package component

// Bullet — снаряд игрока. Живёт, пока Age < Lifetime; в кадр,
// когда Age достигает Lifetime, помечается мёртвым.
type Bullet struct {
	Age      float64 // секунды с момента выстрела
	Lifetime float64
	Radius   float64
	Alive    bool
}
