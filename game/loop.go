package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// Start kicks off the requestAnimationFrame loop.
func (g *Game) Start() {
	Debug("Start!")

	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
	}
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()
}

// GameLoopRAF is the main loop using requestAnimationFrame. Rendering
// happens every animation frame; game state advances on a fixed timestep
// matching the battle tick, so the live battle replays the headless probe
// tick for tick regardless of display refresh rate.
func (g *Game) GameLoopRAF(currentTime float64) {
	// Schedule next frame
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()

	g.StatsOverlay.UpdateFPS(currentTime)

	if g.LastFrameTime == 0 {
		g.LastFrameTime = currentTime
	}

	// Fixed timestep with catch-up, capped so a backgrounded tab does not
	// fast-forward a whole battle on resume.
	elapsed := currentTime - g.LastFrameTime
	if elapsed > 250 {
		elapsed = 250
		g.LastFrameTime = currentTime - elapsed
	}

	steps := 0
	for elapsed >= FrameDuration && steps < 15 {
		g.Update()
		elapsed -= FrameDuration
		g.LastFrameTime += FrameDuration
		steps++
	}

	g.Render()
}

// Render draws one complete frame.
func (g *Game) Render() {
	g.RenderBackground()

	switch g.Machine.Phase {
	case PhaseIdle:
		g.RenderTitleScreen()
	case PhaseGathering, PhaseLocking:
		g.RenderPlacements()
		g.RenderCountdown()
	case PhaseBattle, PhaseCinematic, PhaseVictory:
		g.RenderArena()
	}

	// Screen flash effect
	if g.Flash > 0 {
		g.Ctx.Set("fillStyle", Theme.StrikeFlashColor+formatAlpha(g.Flash)+")")
		g.Ctx.Call("fillRect", 0, 0, WIDTH, HEIGHT)
	}

	// Stats overlay (rendered last, on top of everything)
	g.StatsOverlay.Render(g.Ctx, g)
}
