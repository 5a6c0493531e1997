package game

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"github.com/guilhem-/chwazam/audio"
	"github.com/guilhem-/chwazam/battle"
	"github.com/guilhem-/chwazam/common"
)

// Game holds the complete contest state: the phase flow, the pre-battle
// placements, the live battle or cinematic driver, effect pools and the
// rendering handles.
type Game struct {
	Machine *PhaseMachine

	// Placements gathered from live fingers, in touch order. Frozen into
	// Snapshot when the lock countdown expires.
	Placements []battle.Placement
	nextID     int

	// Frozen contest inputs, valid from PhaseSearching onward.
	Snapshot  battle.Snapshot
	WinnerID  int
	Seed      uint32
	SeedFound bool

	// Exactly one of these drives PhaseBattle / PhaseCinematic.
	Recon *Reconciler
	Cine  *Cinematic

	// Effect pools
	Explosions *ExplosionPool
	Sparks     *SparkPool

	// FxRNG feeds cosmetic draws only. It is deliberately a separate
	// stream so effects can never desync the battle engine.
	FxRNG *common.SeededRNG

	// Audio
	Audio *audio.Manager

	// Rendering
	Canvas *js.Object
	Ctx    *js.Object

	// Browser touch identifier -> placement/tower id
	touchIDs map[int]int

	// Animation
	AnimationFrameID int
	LastFrameTime    float64

	// Flash is the full-screen flash alpha, drained each frame.
	Flash float64

	StatsOverlay *StatsOverlay

	// Last-seen tower vitals, used to derive hit and death effects from
	// state deltas instead of threading callbacks through the engine.
	prevHealth map[int]int
	prevAlive  map[int]bool
}

// NewGame creates a new game instance. It touches no browser APIs, so
// tests can drive the full contest flow natively; AttachCanvas wires the
// rendering handles separately.
func NewGame() *Game {
	return &Game{
		Machine:    NewPhaseMachine(),
		Explosions: NewExplosionPool(MaxExplosions),
		Sparks:     NewSparkPool(MaxSparks),
		FxRNG:      common.NewSeededRNG(0x5f3759df),
		Audio:      audio.NewManager(),
		touchIDs:   make(map[int]int),
		prevHealth: make(map[int]int),
		prevAlive:  make(map[int]bool),
	}
}

// AttachCanvas wires the rendering context.
func (g *Game) AttachCanvas(canvas, ctx *js.Object) {
	g.Canvas = canvas
	g.Ctx = ctx
	g.StatsOverlay = NewStatsOverlay()
}

// --- Touch handling ---

// TouchDown registers a new finger. Before the snapshot freezes it adds a
// placement; during battle it can reclaim a decayed tower.
func (g *Game) TouchDown(browserID int, x, y float64) {
	switch g.Machine.Phase {
	case PhaseIdle, PhaseGathering, PhaseLocking:
		g.addPlacement(browserID, x, y)
	case PhaseBattle:
		g.reclaimTower(browserID, x, y)
	}
}

// TouchMove follows a finger. Placements track their finger until the
// snapshot freezes; afterwards position is fixed and movement is ignored.
func (g *Game) TouchMove(browserID int, x, y float64) {
	if g.Machine.Phase != PhaseIdle && g.Machine.Phase != PhaseGathering &&
		g.Machine.Phase != PhaseLocking {
		return
	}
	id, ok := g.touchIDs[browserID]
	if !ok {
		return
	}
	for i := range g.Placements {
		if g.Placements[i].ID == id {
			g.Placements[i].X = x
			g.Placements[i].Y = y
			return
		}
	}
}

// TouchUp releases a finger: drops the placement pre-battle, or starts
// the tower's presence decay mid-battle.
func (g *Game) TouchUp(browserID int) {
	id, ok := g.touchIDs[browserID]
	if !ok {
		return
	}
	delete(g.touchIDs, browserID)

	switch g.Machine.Phase {
	case PhaseIdle, PhaseGathering, PhaseLocking:
		for i := range g.Placements {
			if g.Placements[i].ID == id {
				g.Placements = append(g.Placements[:i], g.Placements[i+1:]...)
				break
			}
		}
		g.Audio.Play(audio.CueLeave)
		g.Machine.TouchesChanged(len(g.Placements))
	case PhaseBattle:
		if g.Recon != nil {
			g.Recon.SetPresence(id, false)
		}
	}
}

func (g *Game) addPlacement(browserID int, x, y float64) {
	if len(g.Placements) >= MaxCombatants {
		return
	}
	for _, p := range g.Placements {
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy < TouchMinSpacing*TouchMinSpacing {
			return
		}
	}

	id := g.nextID
	g.nextID++
	g.Placements = append(g.Placements, battle.Placement{
		ID:    id,
		X:     x,
		Y:     y,
		Color: id % len(Palette),
	})
	g.touchIDs[browserID] = id
	g.Audio.Play(audio.CueJoin)
	g.Machine.TouchesChanged(len(g.Placements))
}

// reclaimTower rebinds a mid-battle touch to the nearest living tower
// that lost its finger, within the claim radius.
func (g *Game) reclaimTower(browserID int, x, y float64) {
	if g.Recon == nil {
		return
	}
	var best *battle.Tower
	bestDist := TouchClaimRadius * TouchClaimRadius
	for _, t := range g.Recon.Arena.Towers {
		if !t.Alive || t.Tracked() {
			continue
		}
		dx, dy := t.X-x, t.Y-y
		if d := dx*dx + dy*dy; d < bestDist {
			bestDist = d
			best = t
		}
	}
	if best == nil {
		return
	}
	g.touchIDs[browserID] = best.ID
	g.Recon.SetPresence(best.ID, true)
	g.Audio.Play(audio.CueJoin)
}

// --- Fixed-step update ---

// Update advances the contest by one fixed tick. The loop calls this at
// the battle tick rate; everything time-based in the game runs off the
// same step.
func (g *Game) Update() {
	dt := battle.TickDelta

	if g.Machine.Tick(dt) {
		switch g.Machine.Phase {
		case PhaseSearching:
			g.freezeAndSearch()
		case PhaseIdle:
			g.ResetGame()
		}
	}

	switch g.Machine.Phase {
	case PhaseBattle:
		g.updateBattle()
	case PhaseCinematic:
		g.updateCinematic()
	}

	g.updateEffects()
	if g.Flash > 0 {
		g.Flash -= 0.06
	}
}

// freezeAndSearch is the heart of the trick: freeze placements, draw the
// winner uniformly, then hunt for a seed whose battle produces exactly
// that winner. Falls back to the scripted cinematic when the search range
// is exhausted.
func (g *Game) freezeAndSearch() {
	g.Snapshot = battle.NewSnapshot(g.Placements)
	g.WinnerID = battle.ChooseWinner(g.Snapshot)
	g.Seed, g.SeedFound = battle.FindWinningSeed(g.Snapshot, g.WinnerID)

	Debug("Search done. winner:", g.WinnerID, "seed:", g.Seed, "found:", g.SeedFound)

	if g.SeedFound {
		g.Recon = NewReconciler(g.Snapshot, g.Seed)
		g.rememberVitals(g.Recon.Arena.Towers)
		g.Machine.BeginBattle()
		g.Audio.Play(audio.CueBattleStart)
		return
	}
	g.Cine = NewCinematic(g.Snapshot, g.WinnerID)
	g.Machine.BeginCinematic()
	g.Audio.Play(audio.CueBattleStart)
}

func (g *Game) updateBattle() {
	if g.Recon == nil {
		return
	}
	g.Recon.Step()
	g.deriveTowerEffects(g.Recon.Arena.Towers)

	switch g.Recon.Status() {
	case LiveWinner:
		if id, ok := g.Recon.Winner(); ok {
			g.WinnerID = id // live outcome stands, divergence included
		}
		g.Machine.BeginVictory()
		g.Audio.Play(audio.CueVictory)
	case LiveUndecided:
		// Presence interference ran out the clock; hand the surviving
		// towers to the scripted fallback so the designated winner still
		// emerges without a scene cut.
		g.Cine = NewCinematicFromTowers(g.Recon.Arena.Towers, g.WinnerID)
		g.Recon = nil
		g.Machine.BeginCinematic()
	case LiveAborted:
		g.Machine.Abort()
		g.ResetGame()
	}
}

func (g *Game) updateCinematic() {
	if g.Cine == nil {
		return
	}
	for _, ev := range g.Cine.Advance(battle.TickDelta) {
		g.Explode(ev.X, ev.Y, battle.TowerRadius*3)
		g.Explode(ev.X, ev.Y, battle.TowerRadius*5)
		g.Flash = 0.5
		if ev.Final {
			g.Flash = 0.8
		}
		g.Audio.Play(audio.CueStrike)
	}
	if g.Cine.Done() {
		g.Machine.BeginVictory()
		g.Audio.Play(audio.CueVictory)
	}
}

// deriveTowerEffects compares tower vitals against the previous tick and
// spawns hit sparks, death explosions and audio cues for the deltas.
func (g *Game) deriveTowerEffects(towers []*battle.Tower) {
	for _, t := range towers {
		if prev, ok := g.prevHealth[t.ID]; ok && t.Health < prev {
			g.SpawnSparks(t.X, t.Y, t.Color)
			g.Audio.Play(audio.CueHit)
		}
		if wasAlive, ok := g.prevAlive[t.ID]; ok && wasAlive && !t.Alive {
			g.Explode(t.X, t.Y, battle.TowerRadius*4)
			g.Explode(t.X, t.Y, battle.TowerRadius*6)
			g.Flash = 0.35
			g.Audio.Play(audio.CueExplosion)
		}
	}
	g.rememberVitals(towers)
}

func (g *Game) rememberVitals(towers []*battle.Tower) {
	for _, t := range towers {
		g.prevHealth[t.ID] = t.Health
		g.prevAlive[t.ID] = t.Alive
	}
}

func (g *Game) updateEffects() {
	g.Explosions.ForEachReverse(func(e *Explosion, idx int) {
		if !e.Advance() {
			g.Explosions.Release(idx)
		}
	})
	g.Sparks.ForEachReverse(func(s *Spark, idx int) {
		if !s.Advance() {
			g.Sparks.Release(idx)
		}
	})
}

// --- Effects spawning ---

// Explode creates an explosion effect.
func (g *Game) Explode(x, y, size float64) {
	exp := g.Explosions.Acquire()
	if exp == nil {
		return
	}
	exp.X = x
	exp.Y = y
	if size == 0 {
		size = g.FxRNG.RandomFloat(24, 88)
	}
	exp.Size = size
	exp.Angle = g.FxRNG.RandomAngle()
	exp.D = g.FxRNG.RandomFloat(-0.2, 0.2)
	exp.Alpha = 1
}

// SpawnSparks throws a burst of particles in the hit tower's color.
func (g *Game) SpawnSparks(x, y float64, color int) {
	for i := 0; i < 12; i++ {
		s := g.Sparks.Acquire()
		if s == nil {
			return
		}
		angle := g.FxRNG.RandomAngle()
		speed := g.FxRNG.RandomFloat(2, 9)
		s.X = x
		s.Y = y
		s.XAcc = speed * math.Cos(angle)
		s.YAcc = speed * math.Sin(angle)
		s.T = int(g.FxRNG.RandomFloat(10, 26))
		s.Color = color
	}
}

// ResetGame clears all contest state for the next round.
func (g *Game) ResetGame() {
	g.Placements = g.Placements[:0]
	g.Snapshot = battle.Snapshot{}
	g.Recon = nil
	g.Cine = nil
	g.WinnerID = -1
	g.Seed = 0
	g.SeedFound = false
	g.Explosions.Clear()
	g.Sparks.Clear()
	g.Flash = 0
	for k := range g.touchIDs {
		delete(g.touchIDs, k)
	}
	for k := range g.prevHealth {
		delete(g.prevHealth, k)
	}
	for k := range g.prevAlive {
		delete(g.prevAlive, k)
	}
}

// LiveTowers returns whichever tower set is currently on screen: the live
// arena's, the cinematic's, or nil outside battle phases.
func (g *Game) LiveTowers() []*battle.Tower {
	switch {
	case g.Recon != nil:
		return g.Recon.Arena.Towers
	case g.Cine != nil:
		return g.Cine.Towers
	}
	return nil
}
