package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// Cue identifies one of the fixed sound effects.
type Cue int

const (
	// CueJoin plays when a finger lands and claims a pad.
	CueJoin Cue = iota
	// CueLeave plays when a finger lifts before the lock.
	CueLeave
	// CueBattleStart plays when the snapshot freezes and combat begins.
	CueBattleStart
	// CueHit plays when a tower takes damage.
	CueHit
	// CueExplosion plays when a tower dies.
	CueExplosion
	// CueStrike plays on each scripted cinematic elimination.
	CueStrike
	// CueVictory plays when the winner is crowned.
	CueVictory
)

// cueSpec describes a cue as a simple oscillator envelope: a frequency
// sweep over a duration at a volume. Everything is synthesized at play
// time; there are no audio assets to load.
type cueSpec struct {
	wave     string
	from, to float64 // Hz
	duration float64 // seconds
	volume   float64
}

var cues = map[Cue]cueSpec{
	CueJoin:        {wave: "sine", from: 420, to: 660, duration: 0.12, volume: 0.4},
	CueLeave:       {wave: "sine", from: 540, to: 300, duration: 0.12, volume: 0.3},
	CueBattleStart: {wave: "square", from: 160, to: 880, duration: 0.45, volume: 0.5},
	CueHit:         {wave: "square", from: 700, to: 320, duration: 0.07, volume: 0.35},
	CueExplosion:   {wave: "sawtooth", from: 220, to: 40, duration: 0.6, volume: 0.7},
	CueStrike:      {wave: "sawtooth", from: 1200, to: 60, duration: 0.5, volume: 0.7},
	CueVictory:     {wave: "triangle", from: 330, to: 990, duration: 0.9, volume: 0.6},
}

// Manager plays the contest's sound cues through the Web Audio API. On a
// native build (tests, the verify tool) every method is a no-op.
type Manager struct {
	ctx        *js.Object
	masterGain *js.Object
}

// NewManager creates a manager. The audio context is created lazily on
// the first user gesture, which is when browsers allow it anyway.
func NewManager() *Manager {
	return &Manager{}
}

// Resume creates or resumes the audio context. Call from an input
// handler; browsers refuse to start audio outside a user gesture.
func (m *Manager) Resume() {
	if js.Global == nil {
		return
	}
	if m.ctx == nil {
		ctor := js.Global.Get("AudioContext")
		if ctor == js.Undefined || ctor == nil {
			ctor = js.Global.Get("webkitAudioContext")
		}
		if ctor == js.Undefined || ctor == nil {
			return
		}
		m.ctx = ctor.New()
		m.masterGain = m.ctx.Call("createGain")
		m.masterGain.Get("gain").Set("value", 0.8)
		m.masterGain.Call("connect", m.ctx.Get("destination"))
	}
	if m.ctx.Get("state").String() == "suspended" {
		m.ctx.Call("resume")
	}
}

// Play synthesizes and plays one cue.
func (m *Manager) Play(cue Cue) {
	if m.ctx == nil {
		return
	}
	spec, ok := cues[cue]
	if !ok {
		return
	}

	now := m.ctx.Get("currentTime").Float()

	osc := m.ctx.Call("createOscillator")
	osc.Set("type", spec.wave)
	osc.Get("frequency").Call("setValueAtTime", spec.from, now)
	osc.Get("frequency").Call("exponentialRampToValueAtTime", spec.to, now+spec.duration)

	gain := m.ctx.Call("createGain")
	gain.Get("gain").Call("setValueAtTime", spec.volume, now)
	gain.Get("gain").Call("exponentialRampToValueAtTime", 0.001, now+spec.duration)

	osc.Call("connect", gain)
	gain.Call("connect", m.masterGain)
	osc.Call("start", now)
	osc.Call("stop", now+spec.duration)
}
