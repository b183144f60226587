// internal/interfaces/input.go
package interfaces

// MoveAxes — четыре булевых оси движения
type MoveAxes struct {
	Up, Down, Left, Right bool
}

// InputSource — узкий интерфейс источника ввода. Ядро не знает,
// клавиатура это, геймпад или фейк в тестах.
type InputSource interface {
	// Axes возвращает непрерывное состояние осей движения.
	Axes() MoveAxes
	// AimTarget возвращает точку прицеливания в координатах арены.
	AimTarget() (float64, float64)
	// FireRequested — одноразовое событие "выстрел запрошен" (по фронту).
	FireRequested() bool
	// WeaponSelected возвращает запрошенный слот оружия, если был выбор.
	WeaponSelected() (int, bool)
}
