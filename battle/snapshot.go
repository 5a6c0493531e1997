package battle

// Placement captures one combatant at the instant the battle begins.
type Placement struct {
	ID    int
	X, Y  float64
	Color int // palette index, carried through for the renderer and the fallback cinematic
}

// Snapshot is the immutable battle-start state. It is the sole input to
// every seed probe, so each candidate seed is evaluated against identical
// starting conditions.
type Snapshot struct {
	Placements []Placement
}

// NewSnapshot copies the given placements so later mutation of the source
// slice cannot leak into in-flight probes.
func NewSnapshot(placements []Placement) Snapshot {
	cp := make([]Placement, len(placements))
	copy(cp, placements)
	return Snapshot{Placements: cp}
}

// Size returns the number of combatants in the snapshot.
func (s Snapshot) Size() int {
	return len(s.Placements)
}
