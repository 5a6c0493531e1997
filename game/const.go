package game

import "github.com/guilhem-/chwazam/battle"

// Constants for screen and frame configuration. The canvas uses the
// battle arena's coordinate space directly, so no world-to-screen
// transform is needed anywhere in the renderer.
const (
	WIDTH         = int(battle.Width)
	HEIGHT        = int(battle.Height)
	FrameDuration = 1000.0 / 60.0 // ms, matches the fixed battle tick
)

// Phase timing
const (
	// MinCombatants is the fewest fingers that make a contest; the lock
	// countdown never arms below it.
	MinCombatants = 2
	// MaxCombatants is bounded by the color palette and by what a screen
	// full of hands can physically hold.
	MaxCombatants = 8

	// LockCountdown is how long (seconds) the finger set must stay stable
	// before placements are frozen into a snapshot.
	LockCountdown = 3.0

	// VictoryDuration is how long (seconds) the winner celebration runs
	// before returning to the idle screen.
	VictoryDuration = 5.0
)

// Cinematic tuning for the scripted fallback battle.
const (
	// CinematicStrikeInterval is the pause (seconds) between scripted
	// eliminations.
	CinematicStrikeInterval = 1.1
	// CinematicWindup is the charge-up delay (seconds) before the first
	// scripted strike.
	CinematicWindup = 1.6
)

// Touch tuning
const (
	// TouchClaimRadius is how close (px) a new touch must land to a
	// decayed tower to reclaim it instead of being ignored mid-battle.
	TouchClaimRadius = 140.0
	// TouchMinSpacing keeps placements from overlapping; touches closer
	// than this to an existing placement are rejected during gathering.
	TouchMinSpacing = battle.TowerRadius * 2.5
)

// Effect pool sizes
const (
	MaxExplosions = 64
	MaxSparks     = 256
)
