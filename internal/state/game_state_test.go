package state

import (
	"testing"

	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/event"
)

func newTestResources() *Resources {
	return &Resources{
		WaveConfig:  config.DefaultWaveConfig(),
		Weapons:     defs.DefaultWeapons(),
		WindowTitle: "T",
		Seed:        1,
	}
}

func TestGameStateTitleFollowsWave(t *testing.T) {
	sm := NewStateMachine()
	gs := NewGameState(sm, newTestResources())
	sm.SetState(gs)

	gs.game.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Wave: 3})
	if gs.windowTitle != "T  |  Wave 3" {
		t.Errorf("title = %q, want %q", gs.windowTitle, "T  |  Wave 3")
	}
}

func TestGameStateTitleSurvivesPause(t *testing.T) {
	sm := NewStateMachine()
	res := newTestResources()
	gs := NewGameState(sm, res)
	sm.SetState(gs)

	// пауза отписывает состояние, возврат из паузы подписывает заново
	sm.SetState(NewPauseState(sm, gs, res))
	sm.SetState(gs)

	gs.game.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Wave: 5})
	if gs.windowTitle != "T  |  Wave 5" {
		t.Errorf("title after resume = %q, want %q", gs.windowTitle, "T  |  Wave 5")
	}
}
