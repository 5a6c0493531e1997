package game

import (
	"testing"
)

// TestExplosionPool_AcquireRelease tests swap-and-pop pooling: acquire to
// capacity, release from the middle, and keep indices consistent.
func TestExplosionPool_AcquireRelease(t *testing.T) {
	pool := NewExplosionPool(3)

	a := pool.Acquire()
	b := pool.Acquire()
	c := pool.Acquire()
	if a == nil || b == nil || c == nil {
		t.Fatal("Pool should hand out up to its capacity")
	}
	if pool.Acquire() != nil {
		t.Error("Exhausted pool should return nil")
	}

	// Release the middle element; the last one swaps into its slot.
	pool.Release(b.PoolIndex)
	if pool.ActiveCount != 2 {
		t.Fatalf("Expected 2 active, got %d", pool.ActiveCount)
	}
	for i := 0; i < pool.ActiveCount; i++ {
		if pool.Pool[i].PoolIndex != i {
			t.Errorf("Slot %d holds stale pool index %d", i, pool.Pool[i].PoolIndex)
		}
	}

	// The freed slot is reusable.
	if pool.Acquire() == nil {
		t.Error("Released slot should be acquirable again")
	}
}

// TestExplosionPool_ReleaseDuringReverseIteration tests the pattern the
// frame update relies on: releasing inside ForEachReverse visits every
// element exactly once.
func TestExplosionPool_ReleaseDuringReverseIteration(t *testing.T) {
	pool := NewExplosionPool(8)
	for i := 0; i < 8; i++ {
		e := pool.Acquire()
		e.Alpha = float64(i%2) + 0.05 // alternate faded and visible
	}

	visited := 0
	pool.ForEachReverse(func(e *Explosion, idx int) {
		visited++
		if e.Alpha < 0.1 {
			pool.Release(idx)
		}
	})

	if visited != 8 {
		t.Errorf("Expected 8 visits, got %d", visited)
	}
	if pool.ActiveCount != 4 {
		t.Errorf("Expected 4 survivors, got %d", pool.ActiveCount)
	}
}

// TestExplosion_AdvanceFades tests the burst animation lifecycle.
func TestExplosion_AdvanceFades(t *testing.T) {
	e := &Explosion{Size: 10, Alpha: 1}

	alive := true
	frames := 0
	for alive && frames < 100 {
		alive = e.Advance()
		frames++
	}
	if alive {
		t.Fatal("Explosion never faded out")
	}
	if e.Size <= 10 {
		t.Error("Explosion should expand while fading")
	}
}

// TestSpark_AdvanceLifetime tests particle motion, drag and expiry.
func TestSpark_AdvanceLifetime(t *testing.T) {
	s := &Spark{X: 100, Y: 100, XAcc: 10, YAcc: 0, T: 3}

	if !s.Advance() {
		t.Fatal("Spark expired too early")
	}
	if s.X != 110 {
		t.Errorf("Spark should move by its velocity, got X=%v", s.X)
	}
	if s.XAcc >= 10 {
		t.Error("Drag should slow the spark down")
	}

	s.Advance()
	if s.Advance() {
		t.Error("Spark should expire when its lifetime runs out")
	}
}

// TestSparkPool_Clear tests the bulk reset used between contests.
func TestSparkPool_Clear(t *testing.T) {
	pool := NewSparkPool(4)
	pool.Acquire()
	pool.Acquire()

	pool.Clear()
	if pool.ActiveCount != 0 {
		t.Errorf("Cleared pool should be empty, got %d", pool.ActiveCount)
	}
	if pool.Acquire() == nil {
		t.Error("Cleared pool should hand out objects again")
	}
}
