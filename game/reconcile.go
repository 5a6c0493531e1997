package game

import (
	"github.com/guilhem-/chwazam/battle"
)

// LiveStatus is the reconciler's view of the battle in progress.
type LiveStatus int

const (
	// LiveRunning means the battle has not terminated yet.
	LiveRunning LiveStatus = iota
	// LiveWinner means the battle terminated with a winner.
	LiveWinner
	// LiveUndecided means the live run hit the tick budget, which can only
	// happen when presence interference stalled the fight.
	LiveUndecided
	// LiveAborted means presence loss left fewer than two viable
	// combatants and the contest is void.
	LiveAborted
)

// Reconciler drives the same battle engine the seed search probed, one
// tick per rendered frame, and feeds live finger presence into it.
// Without presence interference the live run is bit-identical to the
// headless probe, so Expected records what the probe concluded and the
// stats overlay can show live drift.
type Reconciler struct {
	Arena    *battle.Arena
	Seed     uint32
	Expected battle.Result

	aborted   bool
	forfeitID int
}

// NewReconciler builds the live arena for a found seed. The headless
// probe is re-run once to pin the expected outcome; at ~3600 ticks of
// pure arithmetic this is far cheaper than one rendered frame.
func NewReconciler(snap battle.Snapshot, seed uint32) *Reconciler {
	return &Reconciler{
		Arena:     battle.NewArena(snap, seed),
		Seed:      seed,
		Expected:  battle.Simulate(snap, seed),
		forfeitID: -1,
	}
}

// SetPresence binds or releases the live finger for one tower. Unknown
// ids are ignored; the touch layer can race tower death.
func (r *Reconciler) SetPresence(id int, tracked bool) {
	if t := r.Arena.TowerByID(id); t != nil {
		t.SetTracked(tracked)
	}
}

// Step advances the live battle by one tick.
func (r *Reconciler) Step() {
	r.Arena.Step()
	r.checkAbort()
}

// checkAbort enforces the presence floor. A battle needs at least two
// viable combatants: alive, with a finger down or presence still
// decaying. Below two the contest is void, with one exception: when the
// sole viable tower is the designated winner, the match resolves
// immediately in their favor instead of stalling against ghosts.
func (r *Reconciler) checkAbort() {
	if r.Arena.Done() || r.forfeitID >= 0 {
		return
	}
	var viable []*battle.Tower
	for _, t := range r.Arena.Towers {
		if t.Alive && (t.Tracked() || t.Presence > 0) {
			viable = append(viable, t)
		}
	}
	if len(viable) >= 2 {
		return
	}
	if len(viable) == 1 && viable[0].ID == r.Expected.WinnerID {
		viable[0].Invincible = true
		r.forfeitID = viable[0].ID
		return
	}
	r.aborted = true
}

// Status reports the current live outcome.
func (r *Reconciler) Status() LiveStatus {
	if r.aborted {
		return LiveAborted
	}
	if r.forfeitID >= 0 {
		return LiveWinner
	}
	if !r.Arena.Done() {
		return LiveRunning
	}
	if _, ok := r.Arena.Winner(); ok {
		return LiveWinner
	}
	return LiveUndecided
}

// Winner returns the live winner id once Status is LiveWinner, whether
// the battle was fought out or taken by forfeit.
func (r *Reconciler) Winner() (int, bool) {
	if r.forfeitID >= 0 {
		return r.forfeitID, true
	}
	return r.Arena.Winner()
}

// Diverged reports whether the live run has already left the headless
// script: it terminated with a different outcome than the probe. Purely
// informational; the live result is always the one that stands.
func (r *Reconciler) Diverged() bool {
	if !r.Arena.Done() {
		return false
	}
	id, ok := r.Arena.Winner()
	if !ok {
		return !r.Expected.Undecided
	}
	return id != r.Expected.WinnerID
}
