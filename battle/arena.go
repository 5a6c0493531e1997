package battle

import (
	"math"

	"github.com/guilhem-/chwazam/common"
)

// Arena advances N towers and their bullets one fixed tick at a time,
// applying escalation and homing-volley rules, until at most one tower
// remains alive or the tick budget runs out.
//
// The engine is pure with respect to its inputs: given the same snapshot
// and seed it produces the same winner, the same tick count and the same
// final tower state, bit for bit. It holds no references to rendering or
// input state; both the headless seed search and the live rendered loop
// drive this same struct. Iteration order is part of the contract: towers
// in creation order, bullets in creation order, collision checks in tower
// creation order per bullet.
type Arena struct {
	Towers  []*Tower
	Bullets []*Bullet
	RNG     *common.SeededRNG

	Elapsed float64
	Ticks   int

	escalationTimer float64
	volleyTimer     float64
	deathCounter    int

	winnerID  int
	decided   bool
	undecided bool

	// scratch buffer for per-tick fire events, reused across ticks
	fires []FireEvent
}

// NewArena builds a fresh battle attempt from a snapshot and a seed. Each
// tower starts with one cannon drawn from the seeded stream in creation
// order. Degenerate snapshots short-circuit: a single combatant is
// immediately the invincible winner with zero ticks simulated, and an
// empty snapshot resolves to "no match" (decided, no winner).
func NewArena(snap Snapshot, seed uint32) *Arena {
	a := &Arena{
		RNG:      common.NewSeededRNG(seed),
		winnerID: -1,
	}
	for _, p := range snap.Placements {
		a.Towers = append(a.Towers, NewTower(p.ID, p.X, p.Y, p.Color))
	}

	switch len(a.Towers) {
	case 0:
		a.decided = true
		return a
	case 1:
		t := a.Towers[0]
		t.Invincible = true
		t.SpawnScale = 1
		a.winnerID = t.ID
		a.decided = true
		return a
	}

	for _, t := range a.Towers {
		t.AddCannon(a.RNG)
	}
	return a
}

// Done reports whether the attempt has reached a terminal state.
func (a *Arena) Done() bool {
	return a.decided
}

// Winner returns the winning tower id. ok is false while the battle is
// still running or when the attempt ended undecided.
func (a *Arena) Winner() (id int, ok bool) {
	if !a.decided || a.winnerID < 0 {
		return -1, false
	}
	return a.winnerID, true
}

// Undecided reports whether the attempt exhausted its tick budget without
// a terminal state.
func (a *Arena) Undecided() bool {
	return a.undecided
}

// TowerByID returns the tower with the given id, or nil.
func (a *Arena) TowerByID(id int) *Tower {
	for _, t := range a.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Step advances the battle by exactly one tick. Order within a tick is
// fixed: escalation, homing volleys, tower updates (fire events become
// ballistic bullets), bullet updates (steer, move, cull, collide), then
// the termination check. Calling Step on a decided arena is a no-op.
func (a *Arena) Step() {
	if a.decided {
		return
	}
	a.Ticks++
	a.Elapsed += TickDelta

	a.escalate()
	a.volley()
	a.tickTowers()
	a.tickBullets()
	a.checkTermination()

	if !a.decided && a.Ticks >= TickBudget {
		a.decided = true
		a.undecided = true
	}
}

// escalate hands every living, sufficiently-present tower one new cannon
// at each escalation interval.
func (a *Arena) escalate() {
	a.escalationTimer += TickDelta
	if a.escalationTimer < EscalationInterval {
		return
	}
	a.escalationTimer -= EscalationInterval
	for _, t := range a.Towers {
		if t.CanFight() {
			t.AddCannon(a.RNG)
		}
	}
}

// volley fires one homing bullet per living, sufficiently-present tower
// once battle time passes the activation threshold, on a repeating timer.
// Each bullet launches from a uniformly random one of the tower's cannon
// mounts (the tower center if it somehow has none), with an initial
// heading toward a uniformly random targetable enemy.
func (a *Arena) volley() {
	if a.Elapsed <= HomingActivationTime {
		return
	}
	a.volleyTimer += TickDelta
	if a.volleyTimer < HomingVolleyInterval {
		return
	}
	a.volleyTimer -= HomingVolleyInterval

	for _, t := range a.Towers {
		if !t.CanFight() {
			continue
		}

		var enemies []*Tower
		for _, e := range a.Towers {
			if e.ID != t.ID && e.Targetable() {
				enemies = append(enemies, e)
			}
		}
		if len(enemies) == 0 {
			continue
		}
		target := enemies[a.RNG.RandomInt(0, len(enemies))]

		x, y := t.X, t.Y
		if len(t.Cannons) > 0 {
			c := t.Cannons[a.RNG.RandomInt(0, len(t.Cannons))]
			x, y = t.CannonPosition(c)
		}

		angle := angleBetween(x, y, target.X, target.Y)
		a.Bullets = append(a.Bullets, NewHomingBullet(t.ID, x, y, angle))
	}
}

// tickTowers updates every tower in creation order and converts emitted
// fire events into ballistic bullets. A fire event's angle is the
// cannon's own aim angle; no enemy reselection or spread is applied, so
// cannon fire consumes no RNG during the run.
func (a *Arena) tickTowers() {
	a.fires = a.fires[:0]
	for _, t := range a.Towers {
		a.fires = t.Tick(TickDelta, a.fires)
		for _, f := range a.fires {
			a.Bullets = append(a.Bullets, NewBallisticBullet(t.ID, f.X, f.Y, f.Angle))
		}
		a.fires = a.fires[:0]
	}
}

// tickBullets steers, moves, culls and collides every bullet in creation
// order. Removal compacts the slice in place without reordering, so the
// creation-order contract survives across ticks. A bullet hits at most
// one tower per tick: the first targetable tower in creation order whose
// circle it overlaps.
func (a *Arena) tickBullets() {
	kept := a.Bullets[:0]
	for _, b := range a.Bullets {
		b.Steer(TickDelta, a.Towers)
		b.Advance(TickDelta)

		if b.OutOfBounds() {
			continue
		}

		hit := false
		for _, t := range a.Towers {
			if t.ID == b.OwnerID || !t.Targetable() {
				continue
			}
			if !b.Hits(t) {
				continue
			}
			if t.Hit() {
				hit = true
				if !t.Alive {
					a.deathCounter++
					t.DeathOrder = a.deathCounter
				}
			}
			break
		}
		if hit {
			continue
		}
		kept = append(kept, b)
	}
	a.Bullets = kept
}

func angleBetween(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// checkTermination ends the battle once at most one tower is alive. A
// sole survivor wins and is marked invincible. Zero survivors means a
// simultaneous elimination: the tower with the highest death order (the
// last to die) wins by default.
func (a *Arena) checkTermination() {
	aliveCount := 0
	var survivor *Tower
	for _, t := range a.Towers {
		if t.Alive {
			aliveCount++
			survivor = t
		}
	}
	if aliveCount > 1 {
		return
	}

	if survivor == nil {
		best := -1
		for _, t := range a.Towers {
			if t.DeathOrder > best {
				best = t.DeathOrder
				survivor = t
			}
		}
	}
	if survivor != nil {
		survivor.Invincible = true
		a.winnerID = survivor.ID
	}
	a.decided = true
}
