package battle

import "math"

// BulletKind distinguishes the two munition types.
type BulletKind int

const (
	// BallisticBullet flies straight at a fixed speed until it leaves the
	// arena or hits something.
	BallisticBullet BulletKind = iota
	// HomingBullet is slower and steers toward the nearest living enemy,
	// up to a bounded turn rate per tick.
	HomingBullet
)

// Bullet is a projectile in flight. OwnerID excludes self-collision.
// Homing bullets keep a live target position, refreshed every tick, which
// the renderer also uses to draw lock lines.
type Bullet struct {
	Kind       BulletKind
	X, Y       float64
	VelX, VelY float64
	OwnerID    int

	TargetX, TargetY float64
	HasTarget        bool
}

// NewBallisticBullet launches a straight-flying bullet from (x, y) at the
// given angle.
func NewBallisticBullet(ownerID int, x, y, angle float64) *Bullet {
	return &Bullet{
		Kind:    BallisticBullet,
		X:       x,
		Y:       y,
		VelX:    math.Cos(angle) * BulletSpeed,
		VelY:    math.Sin(angle) * BulletSpeed,
		OwnerID: ownerID,
	}
}

// NewHomingBullet launches a homing bullet from (x, y) with an initial
// heading at the given angle. The heading is corrected toward the nearest
// enemy on every subsequent tick.
func NewHomingBullet(ownerID int, x, y, angle float64) *Bullet {
	return &Bullet{
		Kind:    HomingBullet,
		X:       x,
		Y:       y,
		VelX:    math.Cos(angle) * HomingSpeed,
		VelY:    math.Sin(angle) * HomingSpeed,
		OwnerID: ownerID,
	}
}

// Steer retargets and turns a homing bullet. Among all targetable towers
// excluding the owner it picks the nearest by Euclidean distance (ties
// broken by iteration order, first found). With no eligible enemy the
// bullet degrades to ballistic flight on its last heading. The turn is
// clamped to ±HomingTurnRate*dt radians along the shortest arc.
func (b *Bullet) Steer(dt float64, towers []*Tower) {
	if b.Kind != HomingBullet {
		return
	}

	var target *Tower
	best := math.MaxFloat64
	for _, t := range towers {
		if t.ID == b.OwnerID || !t.Targetable() {
			continue
		}
		dx := t.X - b.X
		dy := t.Y - b.Y
		if d := dx*dx + dy*dy; d < best {
			best = d
			target = t
		}
	}

	if target == nil {
		b.HasTarget = false
		return
	}
	b.TargetX, b.TargetY = target.X, target.Y
	b.HasTarget = true

	desired := math.Atan2(target.Y-b.Y, target.X-b.X)
	heading := math.Atan2(b.VelY, b.VelX)

	// Shortest signed angle from heading to desired.
	delta := math.Mod(desired-heading+3*math.Pi, 2*math.Pi) - math.Pi

	maxTurn := HomingTurnRate * dt
	if delta > maxTurn {
		delta = maxTurn
	} else if delta < -maxTurn {
		delta = -maxTurn
	}

	heading += delta
	b.VelX = math.Cos(heading) * HomingSpeed
	b.VelY = math.Sin(heading) * HomingSpeed
}

// Advance moves the bullet by one fixed step.
func (b *Bullet) Advance(dt float64) {
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// OutOfBounds reports whether the bullet has left the expanded arena
// rectangle and should be removed.
func (b *Bullet) OutOfBounds() bool {
	return b.X < -BoundsMargin || b.X > Width+BoundsMargin ||
		b.Y < -BoundsMargin || b.Y > Height+BoundsMargin
}

// Hits reports whether the bullet overlaps the tower: the distance between
// them is less than the bullet radius plus the tower's effective radius.
// Owner and targetability filtering is the caller's job.
func (b *Bullet) Hits(t *Tower) bool {
	dx := t.X - b.X
	dy := t.Y - b.Y
	reach := BulletRadius + t.EffectiveRadius()
	return dx*dx+dy*dy < reach*reach
}
