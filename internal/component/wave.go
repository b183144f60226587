// internal/component/wave.go
package component

// Wave — состояние директора волн. Принадлежит симуляции,
// никто кроме WaveSystem его не мутирует.
type Wave struct {
	Number   int // номер волны, растёт без ограничения
	Total    int // сколько всего врагов в этой волне
	Spawned  int // сколько уже выпущено
	Killed   int // сколько уже убито
	Pending  int // сколько осталось выпустить
	Cap      int // лимит одновременно живых врагов

	ZombieSpeed   float64 // скорость врагов этой волны
	SpawnInterval float64 // интервал между спавнами
	SpawnTimer    float64 // обратный отсчёт до следующего спавна

	InIntermission    bool
	IntermissionTimer float64
}
