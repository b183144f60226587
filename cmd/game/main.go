// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"time"

	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/settings"
	"go-zombie-survival/internal/state"
	"go-zombie-survival/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать сразу с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	cfg := settings.Load("settings.yaml")
	waveConfig := config.LoadWaveConfig(filepath.Join(cfg.AssetDir, "waves.txt"))

	weapons, err := defs.LoadWeaponDefinitions(filepath.Join(cfg.AssetDir, "weapons.json"))
	if err != nil {
		log.Printf("weapon definitions: %v, using built-in defaults", err)
		weapons = defs.DefaultWeapons()
	}

	res := &state.Resources{
		WaveConfig:  waveConfig,
		Weapons:     weapons,
		Sprites:     assets.NewSpriteManager(cfg.AssetDir),
		FontFace:    ui.LoadFontFace(9 * config.HUDTextScale),
		WindowTitle: cfg.WindowTitle,
		Seed:        cfg.RandomSeed,
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, res))
	} else {
		sm.SetState(state.NewMenuState(sm, res))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(
		int(config.ScreenWidth*cfg.WindowScale),
		int(config.ScreenHeight*cfg.WindowScale),
	)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
