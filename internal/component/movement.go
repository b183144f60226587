// internal/component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (вектор, px/s)
type Velocity struct {
	X, Y float64
}
