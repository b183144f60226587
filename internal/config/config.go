// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	MaxDeltaTime = 0.033 // максимальный шаг симуляции при просадке кадров

	ArenaMargin     = 20.0 // внутренний отступ арены, сущности не выходят за него
	SpawnEdgeMargin = 18.0 // отступ точки спавна от настоящего края экрана

	PlayerSpeed    = 220.0
	PlayerRadius   = 14.0
	PlayerMaxHP    = 3
	DamageImmunity = 0.6 // секунды неуязвимости после полученного урона

	ZombieRadius      = 14.0
	KnockbackDistance = 6.0 // косметический отброс зомби от игрока

	BulletRadius = 4.0
	MuzzleOffset = 18.0 // пуля появляется чуть впереди игрока вдоль прицела

	ScorePerKill = 10

	// Кривые сложности волн
	WaveBaseTotal      = 8
	WaveTotalIncrement = 5
	WaveBaseCap        = 6
	WaveCapIncrement   = 2
	WaveCapLimit       = 40
	MinSpawnInterval   = 0.20
	SpawnIntervalDecay = 0.92
	SpeedGrowthPerWave = 0.06

	IntermissionDuration = 3.0
	FirstSpawnDelay      = 0.25
	CapRetryDelay        = 0.15 // короткая пауза, когда спавн заблокирован лимитом

	GameOverFadeDuration = 2.0

	SpriteScale     = 0.06 // масштаб направленных спрайтов
	GunSpriteHeight = 22.0 // целевая высота спрайта оружия в пикселях
	GunDrawOffset   = 8.0  // смещение оружия от центра игрока вдоль прицела

	HUDTextScale = 2.0
)

var (
	BackgroundColor = color.RGBA{18, 14, 22, 255}
	BorderColor     = color.RGBA{60, 50, 80, 255}

	PlayerColor = color.RGBA{120, 170, 255, 255}
	ZombieColor = color.RGBA{120, 255, 120, 255}
	BulletColor = color.RGBA{255, 230, 110, 255}

	WaveTextColor   = color.RGBA{255, 220, 120, 255}
	AmmoTextColor   = color.RGBA{190, 240, 255, 255}
	HealthColor     = color.RGBA{255, 90, 90, 255}
	ProgressBgColor = color.RGBA{40, 40, 60, 180}
	ProgressFgColor = color.RGBA{120, 230, 120, 255}
	FadeColor       = color.RGBA{220, 40, 40, 255}

	MenuTextColor  = color.RGBA{240, 240, 240, 255}
	PauseOverlay   = color.RGBA{0, 0, 0, 128}
	GameOverColor  = color.RGBA{255, 90, 90, 255}
	ScoreTextColor = color.RGBA{240, 240, 240, 255}
)
