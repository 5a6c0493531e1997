package battle

import (
	"math"

	"github.com/guilhem-/chwazam/common"
)

// Tower is a single battling combatant: a finger-bound circle with a ring
// of orbiting cannons. Position is fixed once battle starts; everything
// else (health, cannons, presence, animation timers) evolves tick by tick.
type Tower struct {
	ID    int
	X, Y  float64
	Color int

	Health     int
	Alive      bool
	Invincible bool

	// Cannons in the order they were added. Cannons are never removed;
	// they stop mattering when the tower dies.
	Cannons []*Cannon

	// DeathOrder records the relative order of elimination (1 = first to
	// die). Used to resolve simultaneous-elimination draws: the last to
	// die wins by default.
	DeathOrder int

	// SpawnScale animates the tower growing in at placement, 0..1.
	SpawnScale float64

	// Presence is 1 while a tracking input is active and decays toward 0
	// when the finger lifts. Headless probes never clear the tracked
	// flag, so presence stays at 1 for the whole offline run.
	Presence float64
	tracked  bool

	// Hit feedback timers, drained by Tick. Purely visual but kept in the
	// core so offline and live tower state stay bit-identical.
	FlashT float64
	ShakeT float64
}

// FireEvent is an emitted cannon shot: a world-space muzzle position and
// an aim angle. The engine turns these into ballistic bullets.
type FireEvent struct {
	X, Y  float64
	Angle float64
}

// NewTower spawns a combatant at full health with no cannons.
func NewTower(id int, x, y float64, color int) *Tower {
	return &Tower{
		ID:       id,
		X:        x,
		Y:        y,
		Color:    color,
		Health:   MaxHealth,
		Alive:    true,
		Presence: 1,
		tracked:  true,
	}
}

// AddCannon appends one cannon. The first cannon lands at a uniformly
// random perimeter angle; each later one is offset from the previous
// cannon's angle by 2π/(n+1), where n is the count before the append, so
// the ring spreads out as it grows. All draws come from rng.
func (t *Tower) AddCannon(rng *common.SeededRNG) *Cannon {
	n := len(t.Cannons)
	var angle float64
	if n == 0 {
		angle = rng.RandomAngle()
	} else {
		angle = t.Cannons[n-1].OrbitAngle + 2*math.Pi/float64(n+1)
	}
	c := NewCannon(angle, rng)
	t.Cannons = append(t.Cannons, c)
	return c
}

// SetTracked flips the live-input flag. While untracked, presence decays;
// once tracked again it recovers in place, keeping accumulated cannons.
func (t *Tower) SetTracked(tracked bool) {
	t.tracked = tracked
}

// Tracked reports whether a live input currently claims this tower.
func (t *Tower) Tracked() bool {
	return t.tracked
}

// CanFight reports whether the tower is present enough to escalate, fire
// and launch volleys.
func (t *Tower) CanFight() bool {
	return t.Alive && t.Presence >= PresenceFightThreshold
}

// Targetable reports whether bullets may collide with this tower. Towers
// that have decayed below the gone threshold are treated as already gone
// even though the struct still exists.
func (t *Tower) Targetable() bool {
	return t.Alive && !t.Invincible && t.Presence >= PresenceGoneThreshold
}

// EffectiveRadius is the collision radius: the base radius scaled by the
// spawn-in animation and the presence decay.
func (t *Tower) EffectiveRadius() float64 {
	return TowerRadius * t.SpawnScale * t.Presence
}

// CannonPosition returns the world-space mount point of the given cannon
// on the tower rim.
func (t *Tower) CannonPosition(c *Cannon) (x, y float64) {
	r := TowerRadius * t.SpawnScale
	return t.X + math.Cos(c.OrbitAngle)*r, t.Y + math.Sin(c.OrbitAngle)*r
}

// MuzzlePosition returns the bullet launch point: the cannon mount pushed
// out along the aim direction by the barrel length.
func (t *Tower) MuzzlePosition(c *Cannon) (x, y float64) {
	mx, my := t.CannonPosition(c)
	aim := c.AimAngle()
	return mx + math.Cos(aim)*CannonLength, my + math.Sin(aim)*CannonLength
}

// Tick advances the tower by one fixed step and appends any fire events to
// fires, which is returned. Fire events are only emitted while the tower
// is present enough to fight; untracked towers quietly decay instead.
func (t *Tower) Tick(dt float64, fires []FireEvent) []FireEvent {
	if !t.Alive {
		return fires
	}

	if t.SpawnScale < 1 {
		t.SpawnScale += dt / SpawnScaleDuration
		if t.SpawnScale > 1 {
			t.SpawnScale = 1
		}
	}

	if t.tracked {
		t.Presence += PresenceRecoveryRate * dt
		if t.Presence > 1 {
			t.Presence = 1
		}
	} else {
		t.Presence -= PresenceDecayRate * dt
		if t.Presence < 0 {
			t.Presence = 0
		}
	}

	if t.FlashT > 0 {
		t.FlashT -= dt
	}
	if t.ShakeT > 0 {
		t.ShakeT -= dt
	}

	canFight := t.Presence >= PresenceFightThreshold
	for _, c := range t.Cannons {
		c.Tick(dt)
		if c.ReadyToFire() {
			if canFight {
				x, y := t.MuzzlePosition(c)
				fires = append(fires, FireEvent{X: x, Y: y, Angle: c.AimAngle()})
			}
			c.ResetFireTimer()
		}
	}
	return fires
}

// Hit applies one point of damage. Invincible towers ignore hits and the
// call reports false. Health is clamped at zero; reaching zero flips the
// tower to dead. Returns whether the hit was applied.
func (t *Tower) Hit() bool {
	if t.Invincible || !t.Alive {
		return false
	}
	t.Health--
	t.FlashT = HitFlashDuration
	t.ShakeT = HitShakeDuration
	if t.Health <= 0 {
		t.Health = 0
		t.Alive = false
	}
	return true
}
