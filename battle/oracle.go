package battle

import (
	"crypto/rand"
	"math/big"
)

// Result is the outcome of one headless battle run.
type Result struct {
	WinnerID  int
	Ticks     int
	Undecided bool
}

// Simulate runs a full battle attempt headlessly: fresh arena, fixed
// ticks until termination or budget. It is the engine the oracle probes
// with and the reference the live loop must match tick for tick.
func Simulate(snap Snapshot, seed uint32) Result {
	a := NewArena(snap, seed)
	for !a.Done() {
		a.Step()
	}
	id, ok := a.Winner()
	if !ok {
		return Result{WinnerID: -1, Ticks: a.Ticks, Undecided: a.Undecided()}
	}
	return Result{WinnerID: id, Ticks: a.Ticks}
}

// ChooseWinner picks the designated winner uniformly at random among the
// snapshot's participants. This single draw is the entire fairness
// guarantee: the seed search afterwards only looks for a battle
// consistent with it and never re-rolls the choice. crypto/rand keeps the
// draw independent of anything the deterministic core does.
//
// Returns -1 for an empty snapshot, which callers treat as "no match".
func ChooseWinner(snap Snapshot) int {
	n := len(snap.Placements)
	if n == 0 {
		return -1
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// The system entropy source is unavailable; without it there is
		// no fairness guarantee to give, so default to the first placed.
		return snap.Placements[0].ID
	}
	return snap.Placements[idx.Int64()].ID
}

// FindWinningSeed probes seeds 0, 1, 2, … up to SeedSearchBound in order,
// running the full battle engine headlessly for each, and returns the
// first (lowest) seed whose outcome is the desired winner. The lowest
// match is a deterministic tie-break, not a random one. found is false
// when the bound is exhausted; the caller must then fall back to the
// scripted cinematic, which guarantees the same winner by construction.
func FindWinningSeed(snap Snapshot, winnerID int) (seed uint32, found bool) {
	for s := uint32(0); s < SeedSearchBound; s++ {
		r := Simulate(snap, s)
		if !r.Undecided && r.WinnerID == winnerID {
			return s, true
		}
	}
	return 0, false
}
