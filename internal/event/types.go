// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"   // Началась новая волна, Wave — её номер
	WaveEnded     EventType = "WaveEnded"     // Волна добита, Wave — её номер
	ZombieKilled  EventType = "ZombieKilled"  // Зомби убит пулей, Entity — его ID
	PlayerDamaged EventType = "PlayerDamaged" // Игрок получил урон, Amount — остаток HP
	PlayerDied    EventType = "PlayerDied"    // HP игрока дошло до нуля
	WeaponFired   EventType = "WeaponFired"   // Успешный выстрел, Amount — число пуль
)
