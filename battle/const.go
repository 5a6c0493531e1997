package battle

import "math"

// Fixed numeric contract. The seed-search oracle and the live game loop both
// run this engine with these exact values; changing any of them invalidates
// recorded seeds and breaks the fairness search.
const (
	// TickDelta is the fixed simulation timestep in seconds.
	TickDelta = 1.0 / 60.0
	// TickBudget is the maximum number of ticks per battle attempt.
	// A battle that has not terminated by then is reported undecided.
	TickBudget = 3600
	// EscalationInterval is how often (seconds) every living combatant
	// gains one new cannon.
	EscalationInterval = 3.0
	// HomingActivationTime is the battle time (seconds) after which
	// homing volleys start.
	HomingActivationTime = 10.0
	// HomingVolleyInterval is the repeat period (seconds) of homing volleys.
	HomingVolleyInterval = 1.5
	// SeedSearchBound is the exclusive upper bound of the seed probe range.
	SeedSearchBound = 2000
	// MaxHealth is the hit count a tower survives.
	MaxHealth = 3
)

// Arena dimensions. Portrait orientation to match a handheld touch screen.
const (
	Width  = 1080.0
	Height = 1920.0

	// BoundsMargin expands the arena rectangle for bullet culling so
	// projectiles fully leave the visible area before being removed.
	BoundsMargin = 64.0
)

// Tower tuning
const (
	TowerRadius        = 52.0
	SpawnScaleDuration = 0.35
	HitFlashDuration   = 0.18
	HitShakeDuration   = 0.25

	// PresenceFightThreshold is the minimum presence at which a tower
	// still escalates, fires and launches volleys.
	PresenceFightThreshold = 0.5
	// PresenceGoneThreshold is the presence below which a tower is
	// untargetable and treated as already gone.
	PresenceGoneThreshold = 0.05
	// PresenceDecayRate is presence lost per second while untracked.
	PresenceDecayRate = 1.6
	// PresenceRecoveryRate is presence regained per second while tracked.
	PresenceRecoveryRate = 2.4
)

// Cannon tuning
const (
	CannonOrbitSpeedMin = 0.7
	CannonOrbitSpeedMax = 1.5
	CannonSweepSpeedMin = 1.6
	CannonSweepSpeedMax = 2.8

	// CannonSweepMax bounds the aim sweep to ±90° off the outward radial,
	// so a cannon never aims into its own tower.
	CannonSweepMax = math.Pi / 2

	CannonFireIntervalMin = 0.9
	CannonFireIntervalMax = 1.7
	CannonFireDelayMin    = 0.25
	CannonFireDelayMax    = 1.25

	// CannonLength is the muzzle offset beyond the tower rim, used both
	// as the bullet launch point and by the renderer for the barrel.
	CannonLength = 26.0
)

// Bullet tuning
const (
	BulletSpeed  = 540.0
	BulletRadius = 7.0

	// Homing bullets are slower but steer toward the nearest enemy.
	HomingSpeed    = 300.0
	HomingTurnRate = 3.2 // radians per second
)
