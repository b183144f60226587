// internal/event/event.go
package event

import "go-zombie-survival/internal/types"

// EventType — вид игрового события
type EventType string

// Event — одно событие симуляции. Поля заполняются по смыслу типа:
// Wave — номер волны, Entity — затронутая сущность, Amount — числовое
// значение (остаток HP, число выпущенных пуль). Незадействованные
// поля остаются нулевыми.
type Event struct {
	Type   EventType
	Wave   int
	Entity types.EntityID
	Amount int
}

// Listener получает события, на типы которых подписан
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher доставляет события подписчикам синхронно, в порядке
// подписки. Через него директор волн узнаёт об убийствах, а HUD —
// о старте новой волны.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика на события типа eventType.
func (d *Dispatcher) Subscribe(eventType EventType, l Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], l)
}

// Unsubscribe убирает подписчика; отписка неподписанного безвредна.
func (d *Dispatcher) Unsubscribe(eventType EventType, l Listener) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s == l {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch вручает событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
