package system

import (
	"math"
	"testing"

	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/interfaces"
	"go-zombie-survival/internal/utils"
)

func TestAttemptFireEmitsPellets(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(1)

	ps.SelectWeapon(1) // дробовик, 6 дробин
	emitted := ps.AttemptFire(rng)
	if emitted != 6 {
		t.Fatalf("shotgun emitted %d bullets, want 6", emitted)
	}
	if len(ecs.Bullets) != 6 {
		t.Fatalf("expected 6 bullets in ECS, got %d", len(ecs.Bullets))
	}
}

func TestAttemptFirePelletsWithinSpread(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(7)

	ps.SelectWeapon(1)
	w := ecs.Player.CurrentWeapon()
	ps.AttemptFire(rng)

	// прицел — вправо, базовый угол 0
	maxSpread := w.SpreadDeg*math.Pi/180 + 1e-9
	for id := range ecs.Bullets {
		vel := ecs.Velocities[id]
		angle := math.Atan2(vel.Y, vel.X)
		if math.Abs(angle) > maxSpread {
			t.Errorf("pellet angle %f exceeds spread %f", angle, maxSpread)
		}
		speed := math.Hypot(vel.X, vel.Y)
		if math.Abs(speed-w.BulletSpeed) > 1e-6 {
			t.Errorf("pellet speed %f, want %f", speed, w.BulletSpeed)
		}
	}
}

func TestAttemptFireDecrementsAmmoOnce(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(1)

	ps.SelectWeapon(1)
	before := ecs.Player.Ammo[1]
	ps.AttemptFire(rng)
	// один патрон за нажатие, не за дробину
	if got := ecs.Player.Ammo[1]; got != before-1 {
		t.Errorf("ammo = %d, want %d", got, before-1)
	}
}

func TestAttemptFireUnlimitedAmmoNeverDecrements(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(1)

	ps.SelectWeapon(0) // пистолет, ammo = -1
	for i := 0; i < 5; i++ {
		ecs.Player.ShootTimer = 0
		ps.AttemptFire(rng)
	}
	if got := ecs.Player.Ammo[0]; got != -1 {
		t.Errorf("unlimited ammo changed to %d", got)
	}
}

func TestAttemptFireEmptySlot(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(1)

	ps.SelectWeapon(1)
	ecs.Player.Ammo[1] = 0
	if emitted := ps.AttemptFire(rng); emitted != 0 {
		t.Errorf("empty weapon emitted %d bullets", emitted)
	}
	if ecs.Player.Ammo[1] != 0 {
		t.Errorf("empty weapon ammo changed to %d", ecs.Player.Ammo[1])
	}
	if len(ecs.Bullets) != 0 {
		t.Errorf("empty weapon spawned %d bullets", len(ecs.Bullets))
	}
}

func TestAttemptFireBlockedByCooldown(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())
	rng := utils.NewPRNGService(1)

	if ps.AttemptFire(rng) == 0 {
		t.Fatal("first shot must succeed")
	}
	// кулдаун установлен, повторный выстрел в тот же кадр молчит
	if emitted := ps.AttemptFire(rng); emitted != 0 {
		t.Errorf("cooldown ignored, emitted %d", emitted)
	}
	w := ecs.Player.CurrentWeapon()
	if math.Abs(ecs.Player.ShootTimer-1/w.FireRate) > 1e-9 {
		t.Errorf("cooldown = %f, want %f", ecs.Player.ShootTimer, 1/w.FireRate)
	}
}

func TestSelectWeaponClamps(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())

	ps.SelectWeapon(-3)
	if ecs.Player.ActiveWeapon != 0 {
		t.Errorf("negative index: active = %d, want 0", ecs.Player.ActiveWeapon)
	}
	ps.SelectWeapon(99)
	if ecs.Player.ActiveWeapon != len(ecs.Player.Weapons)-1 {
		t.Errorf("oversized index: active = %d, want %d", ecs.Player.ActiveWeapon, len(ecs.Player.Weapons)-1)
	}
}

func TestResolveInput(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())

	ecs.Player.ShootTimer = 0.5
	ps.ResolveInput(0.1, interfaces.MoveAxes{Right: true, Down: true}, 9999, ecs.Positions[ecs.PlayerID].Y)

	vel := ecs.Velocities[ecs.PlayerID]
	speed := math.Hypot(vel.X, vel.Y)
	if math.Abs(speed-ecs.Player.MoveSpeed) > 1e-6 {
		t.Errorf("diagonal speed %f, want %f (normalized axes)", speed, ecs.Player.MoveSpeed)
	}
	if math.Abs(ecs.Player.ShootTimer-0.4) > 1e-9 {
		t.Errorf("shoot timer = %f, want 0.4", ecs.Player.ShootTimer)
	}
	// цель справа от игрока — прицел (1, 0)
	if math.Abs(ecs.Player.AimDir.X-1) > 1e-9 || math.Abs(ecs.Player.AimDir.Y) > 1e-9 {
		t.Errorf("aim = %v, want (1, 0)", ecs.Player.AimDir)
	}
}

func TestResolveInputAimOnSelf(t *testing.T) {
	ecs := newTestECS()
	ps := NewPlayerSystem(ecs, event.NewDispatcher())

	pos := ecs.Positions[ecs.PlayerID]
	prev := ecs.Player.AimDir
	// цель совпадает с игроком — прежний прицел сохраняется
	ps.ResolveInput(0.016, interfaces.MoveAxes{}, pos.X, pos.Y)
	if ecs.Player.AimDir != prev {
		t.Errorf("aim changed to %v on coincident target", ecs.Player.AimDir)
	}
}
