package system

import (
	"math"
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/utils"
)

func newWaveSystem(ecs *entity.ECS) (*WaveSystem, *event.Dispatcher) {
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(ecs, dispatcher, utils.NewPRNGService(1), config.DefaultWaveConfig())
	return ws, dispatcher
}

func TestWaveFormulas(t *testing.T) {
	if got := TotalForWave(1); got != 8 {
		t.Errorf("TotalForWave(1) = %d, want 8", got)
	}
	if got := TotalForWave(3); got != 18 {
		t.Errorf("TotalForWave(3) = %d, want 18", got)
	}
	if got := CapForWave(1); got != 6 {
		t.Errorf("CapForWave(1) = %d, want 6", got)
	}
	if got := CapForWave(10); got != 24 {
		t.Errorf("CapForWave(10) = %d, want 24", got)
	}
	// лимит насыщается на 40
	if got := CapForWave(25); got != 40 {
		t.Errorf("CapForWave(25) = %d, want 40", got)
	}
}

func TestWaveScalingFromBaseConfig(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)

	if got := ws.IntervalForWave(1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("IntervalForWave(1) = %f, want 1.0", got)
	}
	// интервал не опускается ниже нижней границы
	if got := ws.IntervalForWave(100); got != config.MinSpawnInterval {
		t.Errorf("IntervalForWave(100) = %f, want %f", got, config.MinSpawnInterval)
	}
	if got := ws.SpeedForWave(1); math.Abs(got-90.0) > 1e-9 {
		t.Errorf("SpeedForWave(1) = %f, want 90", got)
	}
	if got := ws.SpeedForWave(2); math.Abs(got-95.4) > 1e-9 {
		t.Errorf("SpeedForWave(2) = %f, want 95.4", got)
	}
}

func TestStartWave(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)

	ws.StartWave(1)
	w := ecs.Wave
	if w == nil {
		t.Fatal("wave not created")
	}
	if w.Number != 1 || w.Total != 8 || w.Pending != 8 || w.Cap != 6 {
		t.Errorf("wave 1 params: %+v", w)
	}
	if w.Spawned != 0 || w.Killed != 0 {
		t.Errorf("counters not reset: %+v", w)
	}
	if math.Abs(w.SpawnTimer-config.FirstSpawnDelay) > 1e-9 {
		t.Errorf("first spawn delay = %f, want %f", w.SpawnTimer, config.FirstSpawnDelay)
	}
	if w.InIntermission {
		t.Error("new wave must start in spawning phase")
	}
}

func TestTickSpawningReleasesZombie(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	ws.StartWave(1)

	ws.TickSpawning(config.FirstSpawnDelay + 0.01)

	w := ecs.Wave
	if w.Spawned != 1 || w.Pending != 7 {
		t.Errorf("spawned = %d, pending = %d, want 1/7", w.Spawned, w.Pending)
	}
	if len(ecs.Zombies) != 1 {
		t.Fatalf("expected 1 zombie, got %d", len(ecs.Zombies))
	}
	if math.Abs(w.SpawnTimer-w.SpawnInterval) > 1e-9 {
		t.Errorf("timer reset to %f, want full interval %f", w.SpawnTimer, w.SpawnInterval)
	}
	for _, z := range ecs.Zombies {
		if math.Abs(z.Speed-ws.SpeedForWave(1)) > 1e-9 {
			t.Errorf("zombie speed = %f, want %f", z.Speed, ws.SpeedForWave(1))
		}
	}
}

func TestTickSpawningSpawnPlacementOnEdge(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	ws.StartWave(1)

	// выпускаем всю волну без лимита и проверяем кромки
	ecs.Wave.Cap = 1000
	for i := 0; i < ecs.Wave.Total; i++ {
		ecs.Wave.SpawnTimer = 0
		ws.TickSpawning(0.01)
	}

	for id := range ecs.Zombies {
		pos := ecs.Positions[id]
		onEdge := pos.X == config.SpawnEdgeMargin ||
			pos.X == config.ScreenWidth-config.SpawnEdgeMargin ||
			pos.Y == config.SpawnEdgeMargin ||
			pos.Y == config.ScreenHeight-config.SpawnEdgeMargin
		if !onEdge {
			t.Errorf("zombie spawned off edge: (%f, %f)", pos.X, pos.Y)
		}
	}
}

func TestTickSpawningCapBlocked(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	ws.StartWave(1)

	// заполняем поле до лимита
	for i := 0; i < ecs.Wave.Cap; i++ {
		addZombie(ecs, 100, 100, 80)
	}

	ws.TickSpawning(config.FirstSpawnDelay + 0.01)

	w := ecs.Wave
	if w.Spawned != 0 {
		t.Errorf("spawned over cap: %d", w.Spawned)
	}
	// короткая пауза вместо полного интервала
	if math.Abs(w.SpawnTimer-config.CapRetryDelay) > 1e-9 {
		t.Errorf("retry delay = %f, want %f", w.SpawnTimer, config.CapRetryDelay)
	}
}

func TestCheckWaveEndRequiresAllThree(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	ws.StartWave(1)
	w := ecs.Wave

	// всё выпущено, но недобито — перехода нет, даже при пустом поле
	w.Spawned = w.Total
	w.Killed = w.Total - 1
	ws.CheckWaveEnd()
	if w.InIntermission {
		t.Fatal("premature intermission: killed < total")
	}

	// добито, но на поле остался живой
	w.Killed = w.Total
	alive := addZombie(ecs, 100, 100, 80)
	ws.CheckWaveEnd()
	if w.InIntermission {
		t.Fatal("premature intermission: zombie still alive")
	}

	ecs.RemoveEntity(alive)
	ws.CheckWaveEnd()
	if !w.InIntermission {
		t.Fatal("intermission must start when all three conditions hold")
	}
	if math.Abs(w.IntermissionTimer-config.IntermissionDuration) > 1e-9 {
		t.Errorf("intermission timer = %f, want %f", w.IntermissionTimer, config.IntermissionDuration)
	}
}

func TestTickIntermissionAdvancesWave(t *testing.T) {
	ecs := newTestECS()
	ws, _ := newWaveSystem(ecs)
	ws.StartWave(1)
	w := ecs.Wave
	w.InIntermission = true
	w.IntermissionTimer = config.IntermissionDuration

	// перерыв ещё идёт
	ws.TickIntermission(1.0)
	if !ecs.Wave.InIntermission {
		t.Fatal("intermission ended early")
	}

	ws.TickIntermission(2.1)
	next := ecs.Wave
	if next.Number != 2 {
		t.Fatalf("wave number = %d, want 2", next.Number)
	}
	if next.Total != 13 || next.Cap != 8 {
		t.Errorf("wave 2 params: total = %d cap = %d, want 13/8", next.Total, next.Cap)
	}
	if next.InIntermission {
		t.Error("new wave must start in spawning phase")
	}
}

func TestKillBookkeepingViaEvents(t *testing.T) {
	ecs := newTestECS()
	ws, dispatcher := newWaveSystem(ecs)
	ws.StartWave(1)

	dispatcher.Dispatch(event.Event{Type: event.ZombieKilled})
	dispatcher.Dispatch(event.Event{Type: event.ZombieKilled})
	if ecs.Wave.Killed != 2 {
		t.Errorf("killed = %d, want 2", ecs.Wave.Killed)
	}
}
