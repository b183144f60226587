// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	game "go-zombie-survival/internal/app"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры: симуляция плюс HUD поверх неё
type GameState struct {
	sm       *StateMachine
	res      *Resources
	game     *game.Game
	keyboard *input.Keyboard

	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.HealthIndicator
	ammoIndicator   *ui.AmmoIndicator
	progressBar     *ui.WaveProgressBar

	windowTitle string // текущий заголовок окна с номером волны
}

func NewGameState(sm *StateMachine, res *Resources) *GameState {
	gameLogic := game.NewGame(res.WaveConfig, res.Weapons, res.Sprites, res.Seed)

	gs := &GameState{
		sm:              sm,
		res:             res,
		game:            gameLogic,
		keyboard:        input.NewKeyboard(),
		waveIndicator:   ui.NewWaveIndicator(16, 24, res.FontFace),
		healthIndicator: ui.NewHealthIndicator(16, 34),
		ammoIndicator:   ui.NewAmmoIndicator(16, 64, res.FontFace),
		progressBar:     ui.NewWaveProgressBar(),
		windowTitle:     res.WindowTitle,
	}
	return gs
}

// Enter подписывает состояние на старты волн. Подписка живёт ровно
// пока состояние активно: пауза отписывает через Exit, возврат из
// паузы подписывает заново.
func (g *GameState) Enter() {
	g.game.EventDispatcher.Subscribe(event.WaveStarted, g)
}

// OnEvent обновляет заголовок окна при старте волны.
func (g *GameState) OnEvent(e event.Event) {
	if e.Type == event.WaveStarted {
		g.windowTitle = fmt.Sprintf("%s  |  Wave %d", g.res.WindowTitle, e.Wave)
		ebiten.SetWindowTitle(g.windowTitle)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.res))
		return
	}

	g.game.Update(deltaTime, g.keyboard)

	if g.game.IsGameOver() {
		st := g.game.ECS.Status
		g.sm.SetState(NewGameOverState(g.sm, g.res, st.Score, st.SurviveTime, g.game.ECS.Wave.Number))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)

	ecs := g.game.ECS
	if ecs.Wave != nil {
		g.waveIndicator.Draw(screen, ecs.Wave.Number)
		g.progressBar.Draw(screen, ecs.Wave.Killed, ecs.Wave.Total)
	}
	g.healthIndicator.Draw(screen, ecs.Player.HP)
	w := ecs.Player.CurrentWeapon()
	g.ammoIndicator.Draw(screen, w.Name, ecs.Player.CurrentAmmo())

	// Красное затемнение после смерти — чисто презентационное
	if !ecs.Status.Running && ecs.Status.GameOverFade > 0 {
		alpha := uint8(ecs.Status.GameOverFade / config.GameOverFadeDuration * 200)
		fade := config.FadeColor
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
			color.RGBA{fade.R, fade.G, fade.B, alpha}, false)
	}
}

func (g *GameState) Exit() {
	g.game.EventDispatcher.Unsubscribe(event.WaveStarted, g)
}
