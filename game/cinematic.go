package game

import (
	"github.com/guilhem-/chwazam/battle"
)

// Cinematic is the scripted fallback for snapshots where no seed in the
// search range produced the designated winner. It stages a fake battle
// with a fixed choreography: a wind-up, then one elimination at a time in
// placement order with the winner skipped, so the designated winner is
// the last tower standing no matter what the snapshot looks like.
//
// Like the real engine it is pure and fixed-step; the renderer draws its
// towers with the same code it uses for a live arena.
type Cinematic struct {
	Towers   []*battle.Tower
	WinnerID int

	Elapsed float64

	// victims holds the ids still to eliminate, in placement order.
	victims []int
	timer   float64
	done    bool
}

// StrikeEvent reports one scripted elimination for effects and audio.
type StrikeEvent struct {
	TargetID int
	X, Y     float64
	Final    bool // last elimination; the winner stands alone after this
}

// NewCinematic stages the fallback for a snapshot and its designated
// winner. Towers are created fully spawned since the placements were
// already on screen when the search gave up.
func NewCinematic(snap battle.Snapshot, winnerID int) *Cinematic {
	var towers []*battle.Tower
	for _, p := range snap.Placements {
		t := battle.NewTower(p.ID, p.X, p.Y, p.Color)
		t.SpawnScale = 1
		towers = append(towers, t)
	}
	return NewCinematicFromTowers(towers, winnerID)
}

// NewCinematicFromTowers stages the fallback over an existing tower set,
// typically a stalled live arena's, so the handoff is seamless: towers
// that already fell stay down and only the standing non-winners get
// choreographed away.
func NewCinematicFromTowers(towers []*battle.Tower, winnerID int) *Cinematic {
	c := &Cinematic{
		WinnerID: winnerID,
		Towers:   towers,
		timer:    CinematicWindup,
	}
	for _, t := range towers {
		if t.Alive && t.ID != winnerID {
			c.victims = append(c.victims, t.ID)
		}
	}
	if t := c.TowerByID(winnerID); t != nil && !t.Alive {
		// A diverged live run can have killed the designated winner before
		// stalling out; the scripted ending still needs them standing.
		t.Alive = true
		t.Health = 1
		t.SpawnScale = 1
	}
	if len(c.victims) == 0 {
		c.finish()
	}
	return c
}

// Advance moves the choreography forward by dt and returns the strikes
// that fired during this step, at most one in practice.
func (c *Cinematic) Advance(dt float64) []StrikeEvent {
	if c.done {
		return nil
	}
	c.Elapsed += dt
	c.timer -= dt
	if c.timer > 0 {
		return nil
	}

	id := c.victims[0]
	c.victims = c.victims[1:]
	c.timer += CinematicStrikeInterval

	var events []StrikeEvent
	if t := c.TowerByID(id); t != nil {
		for t.Alive {
			t.Hit()
		}
		events = append(events, StrikeEvent{
			TargetID: id,
			X:        t.X,
			Y:        t.Y,
			Final:    len(c.victims) == 0,
		})
	}

	if len(c.victims) == 0 {
		c.finish()
	}
	return events
}

// finish marks the winner invincible so the ending matches a real
// battle's terminal state.
func (c *Cinematic) finish() {
	c.done = true
	if t := c.TowerByID(c.WinnerID); t != nil {
		t.Invincible = true
	}
}

// Done reports whether the choreography has played out.
func (c *Cinematic) Done() bool {
	return c.done
}

// TowerByID returns the staged tower with the given id, or nil.
func (c *Cinematic) TowerByID(id int) *battle.Tower {
	for _, t := range c.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}
