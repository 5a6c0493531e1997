package battle

import (
	"math"

	"github.com/guilhem-/chwazam/common"
)

// Cannon is a single armament orbiting its tower's perimeter. The orbit
// angle advances at a constant signed rate; a separate oscillation phase
// sweeps the aim back and forth within ±CannonSweepMax of the outward
// radial direction. Fire timing is drawn from the battle RNG at creation
// and thereafter repeats at a fixed interval.
type Cannon struct {
	OrbitAngle float64 // position on the tower perimeter, radians
	OrbitSpeed float64 // signed radians per second
	SweepPhase float64
	SweepSpeed float64

	FireTimer    float64 // counts down to the next shot
	FireInterval float64
}

// NewCannon creates a cannon at the given perimeter angle. All random
// draws come from rng; the battle core never falls back to unseeded
// randomness, so offline probes and live play consume identical streams.
func NewCannon(orbitAngle float64, rng *common.SeededRNG) *Cannon {
	return &Cannon{
		OrbitAngle:   orbitAngle,
		OrbitSpeed:   rng.RandomFloat(CannonOrbitSpeedMin, CannonOrbitSpeedMax) * rng.RandomSign(),
		SweepPhase:   rng.RandomAngle(),
		SweepSpeed:   rng.RandomFloat(CannonSweepSpeedMin, CannonSweepSpeedMax),
		FireTimer:    rng.RandomFloat(CannonFireDelayMin, CannonFireDelayMax),
		FireInterval: rng.RandomFloat(CannonFireIntervalMin, CannonFireIntervalMax),
	}
}

// Tick advances the orbit, the aim sweep and the fire countdown.
func (c *Cannon) Tick(dt float64) {
	c.OrbitAngle += c.OrbitSpeed * dt
	c.SweepPhase += c.SweepSpeed * dt
	c.FireTimer -= dt
}

// AimAngle returns the current firing direction. The sweep is bounded to
// ±CannonSweepMax off the outward radial, so the result never points back
// through the owning tower.
func (c *Cannon) AimAngle() float64 {
	return c.OrbitAngle + math.Sin(c.SweepPhase)*CannonSweepMax
}

// ReadyToFire reports whether the fire countdown has elapsed.
func (c *Cannon) ReadyToFire() bool {
	return c.FireTimer <= 0
}

// ResetFireTimer restarts the countdown at the cannon's fixed interval.
func (c *Cannon) ResetFireTimer() {
	c.FireTimer = c.FireInterval
}
