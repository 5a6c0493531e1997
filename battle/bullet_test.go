package battle

import (
	"math"
	"testing"
)

// TestNewBallisticBullet_VelocityFromAngle tests the launch velocity
// decomposition.
func TestNewBallisticBullet_VelocityFromAngle(t *testing.T) {
	b := NewBallisticBullet(1, 100, 200, math.Pi/2)

	if math.Abs(b.VelX) > 1e-9 {
		t.Errorf("Straight-down shot should have no x velocity, got %v", b.VelX)
	}
	if math.Abs(b.VelY-BulletSpeed) > 1e-9 {
		t.Errorf("Expected y velocity %v, got %v", BulletSpeed, b.VelY)
	}
	if b.OwnerID != 1 {
		t.Errorf("Owner not recorded: %d", b.OwnerID)
	}
}

// TestAdvance_MovesAlongVelocity tests one integration step.
func TestAdvance_MovesAlongVelocity(t *testing.T) {
	b := NewBallisticBullet(1, 0, 0, 0)
	b.Advance(TickDelta)

	want := BulletSpeed * TickDelta
	if math.Abs(b.X-want) > 1e-9 || math.Abs(b.Y) > 1e-9 {
		t.Errorf("Expected position (%v, 0), got (%v, %v)", want, b.X, b.Y)
	}
}

// TestSteer_PicksNearestTargetable tests target selection: nearest wins,
// the owner and untargetable towers are skipped.
func TestSteer_PicksNearestTargetable(t *testing.T) {
	owner := createTestTower(1)
	owner.X, owner.Y = 500, 500

	near := createTestTower(2)
	near.X, near.Y = 600, 500

	far := createTestTower(3)
	far.X, far.Y = 900, 500

	gone := createTestTower(4)
	gone.X, gone.Y = 520, 500
	gone.Presence = 0 // closest of all, but untargetable

	b := NewHomingBullet(1, 500, 500, 0)
	b.Steer(TickDelta, []*Tower{owner, near, far, gone})

	if !b.HasTarget {
		t.Fatal("Bullet should have locked a target")
	}
	if b.TargetX != near.X || b.TargetY != near.Y {
		t.Errorf("Expected lock on nearest tower at (%v,%v), got (%v,%v)",
			near.X, near.Y, b.TargetX, b.TargetY)
	}
}

// TestSteer_TurnRateClamped tests that one tick turns the heading by at
// most the configured rate, toward the target.
func TestSteer_TurnRateClamped(t *testing.T) {
	target := createTestTower(2)
	target.X, target.Y = 500, 900 // straight below the bullet

	b := NewHomingBullet(1, 500, 500, 0) // heading +x, target at +90°
	b.Steer(TickDelta, []*Tower{target})

	heading := math.Atan2(b.VelY, b.VelX)
	maxTurn := HomingTurnRate * TickDelta
	if heading < 0 || heading > maxTurn+1e-9 {
		t.Errorf("Heading %v should have turned toward the target by at most %v", heading, maxTurn)
	}
	if math.Abs(heading-maxTurn) > 1e-9 {
		t.Errorf("Large correction should saturate the turn rate: got %v, want %v", heading, maxTurn)
	}

	speed := math.Hypot(b.VelX, b.VelY)
	if math.Abs(speed-HomingSpeed) > 1e-9 {
		t.Errorf("Turning must preserve speed %v, got %v", HomingSpeed, speed)
	}
}

// TestSteer_ConvergesOnTarget tests that repeated steering ends up heading
// straight at a stationary target.
func TestSteer_ConvergesOnTarget(t *testing.T) {
	target := createTestTower(2)
	target.X, target.Y = 500, 900

	b := NewHomingBullet(1, 500, 500, 0)
	towers := []*Tower{target}
	for i := 0; i < 120; i++ {
		b.Steer(TickDelta, towers)
	}

	heading := math.Atan2(b.VelY, b.VelX)
	if math.Abs(heading-math.Pi/2) > 1e-6 {
		t.Errorf("Heading should converge on π/2, got %v", heading)
	}
}

// TestSteer_DegradesWithoutTarget tests ballistic degradation when no
// eligible enemy remains.
func TestSteer_DegradesWithoutTarget(t *testing.T) {
	owner := createTestTower(1)

	b := NewHomingBullet(1, 100, 100, 0.3)
	vx, vy := b.VelX, b.VelY
	b.Steer(TickDelta, []*Tower{owner})

	if b.HasTarget {
		t.Error("Bullet should have no target when only its owner remains")
	}
	if b.VelX != vx || b.VelY != vy {
		t.Error("Targetless homing bullet should keep its last heading")
	}
}

// TestSteer_BallisticIsNoOp tests that ballistic bullets never steer.
func TestSteer_BallisticIsNoOp(t *testing.T) {
	target := createTestTower(2)
	target.X, target.Y = 500, 900

	b := NewBallisticBullet(1, 500, 500, 0)
	vx, vy := b.VelX, b.VelY
	b.Steer(TickDelta, []*Tower{target})

	if b.VelX != vx || b.VelY != vy || b.HasTarget {
		t.Error("Ballistic bullet must ignore steering")
	}
}

// TestOutOfBounds_Margin tests culling against the expanded rectangle.
func TestOutOfBounds_Margin(t *testing.T) {
	b := NewBallisticBullet(1, -BoundsMargin+1, Height/2, 0)
	if b.OutOfBounds() {
		t.Error("Bullet inside the margin should be kept")
	}

	b.X = -BoundsMargin - 1
	if !b.OutOfBounds() {
		t.Error("Bullet past the left margin should be culled")
	}

	b.X, b.Y = Width/2, Height+BoundsMargin+1
	if !b.OutOfBounds() {
		t.Error("Bullet past the bottom margin should be culled")
	}
}

// TestHits_CombinedRadii tests the overlap predicate against the tower's
// effective radius.
func TestHits_CombinedRadii(t *testing.T) {
	tw := createTestTower(2)
	tw.X, tw.Y = 500, 500

	b := NewBallisticBullet(1, 500+TowerRadius+BulletRadius-1, 500, 0)
	if !b.Hits(tw) {
		t.Error("Overlapping bullet should hit")
	}

	b.X = 500 + TowerRadius + BulletRadius + 1
	if b.Hits(tw) {
		t.Error("Separated bullet should miss")
	}

	// A decayed tower shrinks its hit circle.
	tw.Presence = 0.5
	b.X = 500 + TowerRadius*0.75
	if b.Hits(tw) {
		t.Error("Bullet outside the shrunken radius should miss")
	}
}
