// internal/utils/math.go
package utils

import "math"

// Epsilon — порог длины, ниже которого вектор считается нулевым
const Epsilon = 1e-4

// Vec2 — двумерный вектор (позиция или скорость)
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму двух векторов
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub возвращает разность двух векторов
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale умножает вектор на скаляр
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len возвращает длину вектора
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized возвращает единичный вектор того же направления.
// Для вектора короче Epsilon возвращается нулевой вектор,
// чтобы не делить на ноль для совпадающих точек.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle возвращает угол вектора в радианах (atan2)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// CirclesOverlap проверяет пересечение двух окружностей по квадрату
// расстояния между центрами. Симметрична относительно аргументов.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := ra + rb
	return dx*dx+dy*dy <= rr*rr
}

// FacingSector возвращает один из 8 секторов направления (0 — вправо,
// далее по часовой стрелке при оси Y вниз). Используется для выбора
// направленного спрайта.
func FacingSector(dir Vec2) int {
	a := dir.Angle()
	if a < 0 {
		a += 2 * math.Pi
	}
	return int(math.Floor((a+math.Pi/8)/(math.Pi/4))) & 7
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
