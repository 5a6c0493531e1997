package battle

import (
	"testing"
)

// testSnapshot places n towers on a centered ring, far enough apart that
// no early shot connects within a few ticks.
func testSnapshot(n int) Snapshot {
	ring := []Placement{
		{ID: 0, X: 540, Y: 400, Color: 0},
		{ID: 1, X: 240, Y: 1300, Color: 1},
		{ID: 2, X: 840, Y: 1300, Color: 2},
		{ID: 3, X: 540, Y: 960, Color: 3},
		{ID: 4, X: 240, Y: 700, Color: 4},
	}
	return NewSnapshot(ring[:n])
}

// cornerSnapshot places two towers in opposite corners, farther apart
// than any bullet can travel in the given number of seconds.
func cornerSnapshot() Snapshot {
	return NewSnapshot([]Placement{
		{ID: 0, X: 100, Y: 100, Color: 0},
		{ID: 1, X: Width - 100, Y: Height - 100, Color: 1},
	})
}

// TestNewArena_EmptySnapshot tests the no-participant shortcut.
func TestNewArena_EmptySnapshot(t *testing.T) {
	a := NewArena(NewSnapshot(nil), 0)

	if !a.Done() {
		t.Fatal("Empty arena should be decided immediately")
	}
	if _, ok := a.Winner(); ok {
		t.Error("Empty arena should have no winner")
	}
}

// TestNewArena_SingleTowerShortcut tests that one combatant wins
// instantly, invincible, with zero ticks simulated.
func TestNewArena_SingleTowerShortcut(t *testing.T) {
	a := NewArena(testSnapshot(1), 42)

	if !a.Done() {
		t.Fatal("Single-tower arena should be decided immediately")
	}
	id, ok := a.Winner()
	if !ok || id != 0 {
		t.Errorf("Expected winner 0, got %d (ok=%v)", id, ok)
	}
	if a.Ticks != 0 {
		t.Errorf("Shortcut should simulate zero ticks, got %d", a.Ticks)
	}
	if !a.Towers[0].Invincible {
		t.Error("Shortcut winner should be invincible")
	}
	if a.Undecided() {
		t.Error("Shortcut must not report undecided")
	}
}

// TestNewArena_InitialCannons tests that every combatant starts armed
// with exactly one cannon.
func TestNewArena_InitialCannons(t *testing.T) {
	a := NewArena(testSnapshot(3), 7)

	for _, tw := range a.Towers {
		if len(tw.Cannons) != 1 {
			t.Errorf("Tower %d should start with 1 cannon, got %d", tw.ID, len(tw.Cannons))
		}
	}
}

// TestStep_NoOpWhenDecided tests that stepping a decided arena changes
// nothing.
func TestStep_NoOpWhenDecided(t *testing.T) {
	a := NewArena(testSnapshot(1), 0)
	a.Step()

	if a.Ticks != 0 || a.Elapsed != 0 {
		t.Errorf("Decided arena advanced: ticks=%d elapsed=%v", a.Ticks, a.Elapsed)
	}
}

// TestStep_Escalation tests that every fighting tower gains a cannon at
// the escalation interval. The towers sit in opposite corners, farther
// apart than a bullet travels in the test window, so no hit interferes.
func TestStep_Escalation(t *testing.T) {
	a := NewArena(cornerSnapshot(), 11)

	steps := int(EscalationInterval/TickDelta) + 1
	for i := 0; i < steps; i++ {
		a.Step()
	}
	for _, tw := range a.Towers {
		if len(tw.Cannons) != 2 {
			t.Errorf("Tower %d should have 2 cannons after one escalation, got %d",
				tw.ID, len(tw.Cannons))
		}
	}
}

// TestStep_HomingVolley tests that homing bullets appear on the volley
// timer once the activation threshold has passed.
func TestStep_HomingVolley(t *testing.T) {
	a := NewArena(cornerSnapshot(), 11)
	a.Elapsed = HomingActivationTime + 0.01 // skip ahead to activation

	steps := int(HomingVolleyInterval/TickDelta) + 1
	for i := 0; i < steps; i++ {
		a.Step()
	}

	homing := 0
	for _, b := range a.Bullets {
		if b.Kind == HomingBullet {
			homing++
		}
	}
	if homing != len(a.Towers) {
		t.Errorf("Expected one homing bullet per tower (%d), got %d", len(a.Towers), homing)
	}
}

// TestStep_NoVolleyBeforeActivation tests that no homing bullet exists
// before the activation threshold.
func TestStep_NoVolleyBeforeActivation(t *testing.T) {
	a := NewArena(cornerSnapshot(), 11)

	steps := int(HomingVolleyInterval/TickDelta) * 2
	for i := 0; i < steps; i++ {
		a.Step()
	}
	for _, b := range a.Bullets {
		if b.Kind == HomingBullet {
			t.Fatal("Homing bullet launched before the activation threshold")
		}
	}
}

// TestStep_TickBudget tests the undecided outcome: towers whose presence
// has fully decayed neither fire nor die, so the attempt must run out the
// clock.
func TestStep_TickBudget(t *testing.T) {
	a := NewArena(testSnapshot(2), 5)
	for _, tw := range a.Towers {
		tw.SetTracked(false)
	}

	for !a.Done() {
		a.Step()
	}

	if !a.Undecided() {
		t.Fatal("Stalled battle should end undecided")
	}
	if a.Ticks != TickBudget {
		t.Errorf("Undecided battle should stop at the budget %d, got %d", TickBudget, a.Ticks)
	}
	if _, ok := a.Winner(); ok {
		t.Error("Undecided battle should have no winner")
	}
}

// TestStep_SimultaneousElimination tests the draw rule: when the last two
// towers die in the same tick, the later death wins by default.
func TestStep_SimultaneousElimination(t *testing.T) {
	a := NewArena(testSnapshot(2), 5)
	ta, tb := a.Towers[0], a.Towers[1]

	// Strip the opening arsenal and hand-craft a mutual kill.
	ta.Cannons = nil
	tb.Cannons = nil
	ta.SpawnScale, tb.SpawnScale = 1, 1
	ta.Health, tb.Health = 1, 1
	a.Bullets = append(a.Bullets,
		NewBallisticBullet(ta.ID, tb.X, tb.Y, 0), // A's bullet sitting on B
		NewBallisticBullet(tb.ID, ta.X, ta.Y, 0), // B's bullet sitting on A
	)

	a.Step()

	if !a.Done() {
		t.Fatal("Mutual kill should decide the battle")
	}
	if ta.Alive || tb.Alive {
		t.Fatal("Both towers should be dead")
	}
	if tb.DeathOrder != 1 || ta.DeathOrder != 2 {
		t.Fatalf("Death order: expected B first then A, got A=%d B=%d",
			ta.DeathOrder, tb.DeathOrder)
	}
	id, ok := a.Winner()
	if !ok || id != ta.ID {
		t.Errorf("Last to die should win by default: expected %d, got %d (ok=%v)",
			ta.ID, id, ok)
	}
}

// TestStep_SoleSurvivorWins tests the normal termination path and the
// winner's invincibility.
func TestStep_SoleSurvivorWins(t *testing.T) {
	a := NewArena(testSnapshot(2), 5)
	loser := a.Towers[1]
	loser.Health = 1
	loser.Cannons = nil
	loser.SpawnScale = 1
	a.Bullets = append(a.Bullets, NewBallisticBullet(a.Towers[0].ID, loser.X, loser.Y, 0))

	a.Step()

	if !a.Done() {
		t.Fatal("Sole survivor should decide the battle")
	}
	id, ok := a.Winner()
	if !ok || id != a.Towers[0].ID {
		t.Errorf("Expected winner %d, got %d (ok=%v)", a.Towers[0].ID, id, ok)
	}
	if !a.Towers[0].Invincible {
		t.Error("Winner should be invincible")
	}
	if a.Undecided() {
		t.Error("Decided battle must not report undecided")
	}
}

// TestStep_BulletCulling tests that out-of-bounds bullets are removed
// while in-flight bullets are kept in creation order.
func TestStep_BulletCulling(t *testing.T) {
	a := NewArena(cornerSnapshot(), 11)
	for _, tw := range a.Towers {
		tw.Cannons = nil // keep the tick's bullet set under test control
	}

	inFlightA := NewBallisticBullet(0, Width/2, Height/2, 0)
	leaving := NewBallisticBullet(0, Width+BoundsMargin-1, Height/2, 0)
	inFlightB := NewBallisticBullet(1, Width/2, Height/2+100, 0)
	a.Bullets = append(a.Bullets, inFlightA, leaving, inFlightB)

	a.Step()

	if len(a.Bullets) != 2 {
		t.Fatalf("Expected 2 surviving bullets, got %d", len(a.Bullets))
	}
	if a.Bullets[0] != inFlightA || a.Bullets[1] != inFlightB {
		t.Error("Bullet removal must preserve creation order")
	}
}

// TestTowerByID tests the lookup helper.
func TestTowerByID(t *testing.T) {
	a := NewArena(testSnapshot(3), 1)

	if tw := a.TowerByID(2); tw == nil || tw.ID != 2 {
		t.Error("Lookup of an existing tower failed")
	}
	if tw := a.TowerByID(99); tw != nil {
		t.Error("Lookup of a missing tower should return nil")
	}
}
