// internal/system/wave.go
package system

import (
	"math"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/utils"
)

// WaveSystem — директор волн: решает, сколько зомби выпустить, с каким
// темпом и скоростью, и когда волна считается добитой. Счёт убийств
// ведёт по событиям ZombieKilled, о смерти игрока ничего не знает.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	baseSpeed       float64
	baseInterval    float64
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, cfg config.WaveConfig) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		baseSpeed:       cfg.ZombieSpeed,
		baseInterval:    cfg.SpawnInterval,
	}
	eventDispatcher.Subscribe(event.ZombieKilled, ws)
	return ws
}

// TotalForWave — сколько всего зомби в волне n.
func TotalForWave(n int) int {
	return config.WaveBaseTotal + (n-1)*config.WaveTotalIncrement
}

// CapForWave — лимит одновременно живых зомби в волне n. Насыщается.
func CapForWave(n int) int {
	cap := config.WaveBaseCap + (n-1)*config.WaveCapIncrement
	if cap > config.WaveCapLimit {
		cap = config.WaveCapLimit
	}
	return cap
}

// IntervalForWave — интервал спавна волны n от базового значения конфига.
func (s *WaveSystem) IntervalForWave(n int) float64 {
	return math.Max(config.MinSpawnInterval, s.baseInterval*math.Pow(config.SpawnIntervalDecay, float64(n-1)))
}

// SpeedForWave — скорость зомби волны n от базового значения конфига.
func (s *WaveSystem) SpeedForWave(n int) float64 {
	return s.baseSpeed * (1 + config.SpeedGrowthPerWave*float64(n-1))
}

// StartWave пересчитывает параметры волны n, сбрасывает счётчики
// и переводит директора в фазу спавна.
func (s *WaveSystem) StartWave(n int) {
	total := TotalForWave(n)
	s.ecs.Wave = &component.Wave{
		Number:        n,
		Total:         total,
		Pending:       total,
		Cap:           CapForWave(n),
		SpawnInterval: s.IntervalForWave(n),
		ZombieSpeed:   s.SpeedForWave(n),
		SpawnTimer:    config.FirstSpawnDelay,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Wave: n})
}

// TickIntermission отсчитывает перерыв между волнами; по истечении
// запускает следующую волну.
func (s *WaveSystem) TickIntermission(dt float64) {
	wave := s.ecs.Wave
	if wave == nil || !wave.InIntermission {
		return
	}
	wave.IntermissionTimer -= dt
	if wave.IntermissionTimer <= 0 {
		s.StartWave(wave.Number + 1)
	}
}

// TickSpawning принимает решение о спавне. При упоре в лимит живых
// ставится короткая пауза вместо полного интервала, чтобы директор
// быстро опросил лимит снова, как только освободится место.
func (s *WaveSystem) TickSpawning(dt float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.InIntermission {
		return
	}
	wave.SpawnTimer -= dt
	if wave.Pending <= 0 || wave.SpawnTimer > 0 {
		return
	}
	if s.ecs.AliveZombies() < wave.Cap {
		s.spawnZombie(wave)
		wave.Pending--
		wave.Spawned++
		wave.SpawnTimer = wave.SpawnInterval
	} else {
		wave.SpawnTimer = config.CapRetryDelay
	}
}

// CheckWaveEnd переводит директора в перерыв, когда волна полностью
// выпущена, полностью убита и живых не осталось. Нужны все три условия
// сразу: равенство spawned==killed само по себе не гарантирует, что
// на поле пусто.
func (s *WaveSystem) CheckWaveEnd() {
	wave := s.ecs.Wave
	if wave == nil || wave.InIntermission {
		return
	}
	if wave.Spawned >= wave.Total && wave.Killed >= wave.Total && s.ecs.AliveZombies() == 0 {
		wave.InIntermission = true
		wave.IntermissionTimer = config.IntermissionDuration
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Wave: wave.Number})
	}
}

// OnEvent ведёт счёт убитых зомби текущей волны.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.ZombieKilled && s.ecs.Wave != nil {
		s.ecs.Wave.Killed++
	}
}

// spawnZombie выпускает одного зомби на случайной кромке арены:
// координата вдоль кромки равномерна внутри поля, перпендикулярная
// прижата к краю.
func (s *WaveSystem) spawnZombie(wave *component.Wave) {
	var x, y float64
	switch s.rng.Intn(4) {
	case 0:
		x = s.rng.FloatRange(config.ArenaMargin, config.ScreenWidth-config.ArenaMargin)
		y = config.SpawnEdgeMargin
	case 1:
		x = s.rng.FloatRange(config.ArenaMargin, config.ScreenWidth-config.ArenaMargin)
		y = config.ScreenHeight - config.SpawnEdgeMargin
	case 2:
		x = config.SpawnEdgeMargin
		y = s.rng.FloatRange(config.ArenaMargin, config.ScreenHeight-config.ArenaMargin)
	case 3:
		x = config.ScreenWidth - config.SpawnEdgeMargin
		y = s.rng.FloatRange(config.ArenaMargin, config.ScreenHeight-config.ArenaMargin)
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Zombies[id] = &component.Zombie{
		Speed:   wave.ZombieSpeed,
		Radius:  config.ZombieRadius,
		FaceDir: utils.Vec2{X: 1},
		Alive:   true,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ZombieColor,
		Radius: float32(config.ZombieRadius),
	}
}
