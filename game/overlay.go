package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// StatsOverlay displays real-time contest statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      int
	PanelY      int
	LineHeight  int
	PanelWidth  int
	PanelHeight int
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		Visible:     false,
		PanelX:      WIDTH - 300,
		PanelY:      16,
		LineHeight:  20,
		PanelWidth:  284,
		PanelHeight: 240,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(ctx *js.Object, g *Game) {
	if !s.Visible {
		return
	}

	// Panel background
	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	// Title
	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "CONTEST STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 44

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Phase", g.Machine.Phase.String(), "#ffffff", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Fingers", strconv.Itoa(len(g.Placements)), "#ffffff", y)
	y += s.LineHeight

	if g.SeedFound || g.Machine.Phase == PhaseCinematic {
		seed := "none (scripted)"
		if g.SeedFound {
			seed = strconv.FormatUint(uint64(g.Seed), 10)
		}
		s.drawStatLine(ctx, "Seed", seed, "#ffff00", y)
		y += s.LineHeight
	}

	if g.Recon != nil {
		s.drawStatLine(ctx, "Tick", strconv.Itoa(g.Recon.Arena.Ticks), "#ffffff", y)
		y += s.LineHeight
		s.drawStatLine(ctx, "Bullets", strconv.Itoa(len(g.Recon.Arena.Bullets)), "#ffffff", y)
		y += s.LineHeight
		s.drawStatLine(ctx, "Expected ticks", strconv.Itoa(g.Recon.Expected.Ticks), "#888888", y)
		y += s.LineHeight
		if g.Recon.Diverged() {
			s.drawStatLine(ctx, "Diverged", "yes", "#ff4444", y)
			y += s.LineHeight
		}
	}

	s.drawStatLine(ctx, "Explosions", strconv.Itoa(g.Explosions.ActiveCount), "#888888", y)
	y += s.LineHeight
	s.drawStatLine(ctx, "Sparks", strconv.Itoa(g.Sparks.ActiveCount), "#888888", y)
}

// drawStatLine draws a single label/value pair
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, color string, y int) {
	ctx.Set("fillStyle", "#aaaaaa")
	ctx.Call("fillText", label+":", s.PanelX+10, y)
	ctx.Set("fillStyle", color)
	ctx.Call("fillText", value, s.PanelX+150, y)
}
