package game

// Phase is the top-level state of the contest flow.
type Phase int

const (
	// PhaseIdle shows the attract screen; no fingers are down.
	PhaseIdle Phase = iota
	// PhaseGathering collects finger placements as they land.
	PhaseGathering
	// PhaseLocking counts down while the finger set stays stable.
	PhaseLocking
	// PhaseSearching freezes the snapshot, draws the winner and probes
	// seeds. Usually lasts well under a frame.
	PhaseSearching
	// PhaseBattle replays the found seed live.
	PhaseBattle
	// PhaseCinematic runs the scripted fallback when no seed matched.
	PhaseCinematic
	// PhaseVictory celebrates the winner, then returns to idle.
	PhaseVictory
)

// String returns the phase name for logs and the stats overlay.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGathering:
		return "gathering"
	case PhaseLocking:
		return "locking"
	case PhaseSearching:
		return "searching"
	case PhaseBattle:
		return "battle"
	case PhaseCinematic:
		return "cinematic"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// PhaseMachine drives the pre- and post-battle flow. It is pure state:
// the game feeds it touch counts and elapsed time, and reads back the
// current phase. Battle and cinematic termination are reported by their
// own drivers, so the machine only owns the transitions around them.
type PhaseMachine struct {
	Phase Phase

	// LockTimer counts down during PhaseLocking.
	LockTimer float64
	// VictoryTimer counts down during PhaseVictory.
	VictoryTimer float64

	// lockCount is the finger count the countdown was armed with; any
	// change restarts the gathering.
	lockCount int
}

// NewPhaseMachine starts at the idle screen.
func NewPhaseMachine() *PhaseMachine {
	return &PhaseMachine{Phase: PhaseIdle}
}

// TouchesChanged reacts to the live finger count. Only the gathering
// phases care; once the snapshot is frozen, finger changes are presence
// updates for the battle, not flow transitions.
func (m *PhaseMachine) TouchesChanged(count int) {
	switch m.Phase {
	case PhaseIdle:
		if count > 0 {
			m.Phase = PhaseGathering
			m.TouchesChanged(count)
		}
	case PhaseGathering:
		if count == 0 {
			m.Phase = PhaseIdle
			return
		}
		if count >= MinCombatants {
			m.Phase = PhaseLocking
			m.LockTimer = LockCountdown
			m.lockCount = count
		}
	case PhaseLocking:
		if count != m.lockCount {
			// The set changed; restart the countdown from gathering so a
			// single finger landing or lifting re-arms cleanly.
			m.Phase = PhaseGathering
			m.TouchesChanged(count)
		}
	}
}

// Tick advances the countdown timers. It returns true when a timer just
// expired and the caller must act: locking expiry means "freeze the
// snapshot and search", victory expiry means "reset to idle".
func (m *PhaseMachine) Tick(dt float64) bool {
	switch m.Phase {
	case PhaseLocking:
		m.LockTimer -= dt
		if m.LockTimer <= 0 {
			m.Phase = PhaseSearching
			return true
		}
	case PhaseVictory:
		m.VictoryTimer -= dt
		if m.VictoryTimer <= 0 {
			m.Phase = PhaseIdle
			return true
		}
	}
	return false
}

// BeginBattle moves from searching into the live replay.
func (m *PhaseMachine) BeginBattle() {
	m.Phase = PhaseBattle
}

// BeginCinematic moves from searching into the scripted fallback.
func (m *PhaseMachine) BeginCinematic() {
	m.Phase = PhaseCinematic
}

// BeginVictory starts the celebration timer.
func (m *PhaseMachine) BeginVictory() {
	m.Phase = PhaseVictory
	m.VictoryTimer = VictoryDuration
}

// Abort drops back to the idle screen from any phase, e.g. when every
// finger lifts mid-battle.
func (m *PhaseMachine) Abort() {
	m.Phase = PhaseIdle
	m.LockTimer = 0
	m.VictoryTimer = 0
	m.lockCount = 0
}
