package battle

import (
	"math"
	"testing"

	"github.com/guilhem-/chwazam/common"
)

// TestNewCannon_DrawsWithinTuning tests that every randomized cannon
// parameter lands inside its tuning range.
func TestNewCannon_DrawsWithinTuning(t *testing.T) {
	rng := common.NewSeededRNG(31)

	for i := 0; i < 50; i++ {
		c := NewCannon(0, rng)

		speed := math.Abs(c.OrbitSpeed)
		if speed < CannonOrbitSpeedMin || speed >= CannonOrbitSpeedMax {
			t.Errorf("Orbit speed magnitude out of range: %v", c.OrbitSpeed)
		}
		if c.SweepSpeed < CannonSweepSpeedMin || c.SweepSpeed >= CannonSweepSpeedMax {
			t.Errorf("Sweep speed out of range: %v", c.SweepSpeed)
		}
		if c.FireTimer < CannonFireDelayMin || c.FireTimer >= CannonFireDelayMax {
			t.Errorf("Initial fire delay out of range: %v", c.FireTimer)
		}
		if c.FireInterval < CannonFireIntervalMin || c.FireInterval >= CannonFireIntervalMax {
			t.Errorf("Fire interval out of range: %v", c.FireInterval)
		}
	}
}

// TestNewCannon_BothOrbitDirections tests that the signed orbit speed
// produces both rotation directions over many draws.
func TestNewCannon_BothOrbitDirections(t *testing.T) {
	rng := common.NewSeededRNG(7)

	var cw, ccw bool
	for i := 0; i < 100; i++ {
		c := NewCannon(0, rng)
		if c.OrbitSpeed > 0 {
			ccw = true
		} else {
			cw = true
		}
	}
	if !cw || !ccw {
		t.Errorf("Expected both orbit directions, got cw=%v ccw=%v", cw, ccw)
	}
}

// TestAimAngle_BoundedSweep tests that the aim never strays more than the
// sweep bound from the outward radial.
func TestAimAngle_BoundedSweep(t *testing.T) {
	rng := common.NewSeededRNG(12)
	c := NewCannon(1.0, rng)

	for i := 0; i < 600; i++ {
		c.Tick(TickDelta)
		off := c.AimAngle() - c.OrbitAngle
		if math.Abs(off) > CannonSweepMax+1e-9 {
			t.Fatalf("Aim offset %v exceeds sweep bound after %d ticks", off, i+1)
		}
	}
}

// TestTick_AdvancesOrbitAndCountdown tests the per-tick integration.
func TestTick_AdvancesOrbitAndCountdown(t *testing.T) {
	rng := common.NewSeededRNG(3)
	c := NewCannon(0.5, rng)

	angle := c.OrbitAngle
	timer := c.FireTimer
	c.Tick(TickDelta)

	wantAngle := angle + c.OrbitSpeed*TickDelta
	if math.Abs(c.OrbitAngle-wantAngle) > 1e-12 {
		t.Errorf("Orbit angle: expected %v, got %v", wantAngle, c.OrbitAngle)
	}
	if math.Abs(c.FireTimer-(timer-TickDelta)) > 1e-12 {
		t.Errorf("Fire timer: expected %v, got %v", timer-TickDelta, c.FireTimer)
	}
}

// TestReadyToFire_Countdown tests the ready flag and the interval reset.
func TestReadyToFire_Countdown(t *testing.T) {
	rng := common.NewSeededRNG(3)
	c := NewCannon(0, rng)

	if c.ReadyToFire() {
		t.Fatal("Fresh cannon should still be counting down its initial delay")
	}

	for i := 0; i < TickBudget && !c.ReadyToFire(); i++ {
		c.Tick(TickDelta)
	}
	if !c.ReadyToFire() {
		t.Fatal("Cannon never became ready")
	}

	c.ResetFireTimer()
	if c.ReadyToFire() {
		t.Error("Reset cannon should not be ready")
	}
	if c.FireTimer != c.FireInterval {
		t.Errorf("Reset should restore the full interval %v, got %v", c.FireInterval, c.FireTimer)
	}
}

// TestNewCannon_DeterministicDraws tests that two cannons built from
// identical seeds are identical.
func TestNewCannon_DeterministicDraws(t *testing.T) {
	c1 := NewCannon(2.0, common.NewSeededRNG(77))
	c2 := NewCannon(2.0, common.NewSeededRNG(77))

	if *c1 != *c2 {
		t.Errorf("Same-seed cannons differ: %+v vs %+v", c1, c2)
	}
}
