// internal/app/game.go
package app

import (
	"math"

	"go-zombie-survival/internal/assets"
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/defs"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/system"
	"go-zombie-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game — корень композиции: владеет ECS, системами и диспетчером
// событий, прогоняет конвейер симуляции один раз за кадр.
type Game struct {
	ECS             *entity.ECS
	PlayerSystem    *system.PlayerSystem
	MovementSystem  *system.MovementSystem
	WaveSystem      *system.WaveSystem
	CombatSystem    *system.CombatSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	queuedFire bool // зафиксированный на вводе запрос выстрела
}

// NewGame собирает игру: системы, игрока в центре арены и первую волну.
func NewGame(cfg config.WaveConfig, weapons []defs.WeaponDefinition, sprites *assets.SpriteManager, seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, rng, cfg)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs, sprites)

	g.spawnPlayer(weapons)
	g.WaveSystem.StartWave(1)
	return g
}

func (g *Game) spawnPlayer(weapons []defs.WeaponDefinition) {
	id := g.ECS.NewEntity()
	g.ECS.PlayerID = id
	g.ECS.Positions[id] = &component.Position{
		X: config.ScreenWidth / 2,
		Y: config.ScreenHeight / 2,
	}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(config.PlayerRadius),
		HasStroke: true,
	}

	ammo := make([]int, len(weapons))
	for i, w := range weapons {
		ammo[i] = w.Ammo
	}
	g.ECS.Player = &component.Player{
		HP:        config.PlayerMaxHP,
		MoveSpeed: config.PlayerSpeed,
		Radius:    config.PlayerRadius,
		AimDir:    utils.Vec2{X: 1},
		Weapons:   weapons,
		Ammo:      ammo,
	}
}

// Update прогоняет один кадр симуляции. Порядок шагов фиксирован:
// таймеры, перерыв, ввод и выстрел, спавн, движение, коллизии,
// чистка мёртвых, проверка конца волны, накопление времени.
func (g *Game) Update(dt float64, in interfaces.InputSource) {
	// Выбор оружия и запрос выстрела — события по фронту, снимаем их
	// с ввода каждый кадр; применяются они только в работающей симуляции
	selIdx, selOK := in.WeaponSelected()
	if in.FireRequested() {
		g.queuedFire = true
	}

	st := g.ECS.Status
	if !st.Running {
		// после смерти игрока тикает только затемнение
		st.GameOverFade = math.Max(0, st.GameOverFade-dt)
		return
	}

	if selOK {
		g.PlayerSystem.SelectWeapon(selIdx)
	}

	g.PlayerSystem.TickImmunity(dt)

	g.WaveSystem.TickIntermission(dt)

	aimX, aimY := in.AimTarget()
	g.PlayerSystem.ResolveInput(dt, in.Axes(), aimX, aimY)
	if g.queuedFire {
		g.queuedFire = false
		g.PlayerSystem.AttemptFire(g.Rng)
	}

	g.WaveSystem.TickSpawning(dt)

	g.MovementSystem.AdvancePlayer(dt)
	g.MovementSystem.AdvanceZombies(dt)
	g.MovementSystem.AdvanceBullets(dt)

	g.CombatSystem.ResolveBulletHits()
	g.CombatSystem.ResolvePlayerContact()
	g.CombatSystem.Cleanup()

	g.WaveSystem.CheckWaveEnd()

	st.SurviveTime += dt
}

// Draw отрисовывает арену и сущности.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// IsGameOver — true, когда симуляция остановлена и затемнение догорело.
func (g *Game) IsGameOver() bool {
	return !g.ECS.Status.Running && g.ECS.Status.GameOverFade <= 0
}
