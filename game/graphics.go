package game

import (
	"math"
	"strconv"

	"github.com/guilhem-/chwazam/battle"
)

func formatAlpha(a float64) string {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return strconv.FormatFloat(a, 'f', 2, 64)
}

func towerColor(t *battle.Tower) string {
	return Palette[t.Color%len(Palette)]
}

// RenderBackground clears the frame and draws the faint grid.
func (g *Game) RenderBackground() {
	g.Ctx.Set("fillStyle", Theme.BackgroundColor)
	g.Ctx.Call("fillRect", 0, 0, WIDTH, HEIGHT)

	g.Ctx.Set("strokeStyle", Theme.BackgroundLineColor)
	g.Ctx.Set("lineWidth", 1)
	g.Ctx.Call("beginPath")
	for x := 0; x <= WIDTH; x += 120 {
		g.Ctx.Call("moveTo", x, 0)
		g.Ctx.Call("lineTo", x, HEIGHT)
	}
	for y := 0; y <= HEIGHT; y += 120 {
		g.Ctx.Call("moveTo", 0, y)
		g.Ctx.Call("lineTo", WIDTH, y)
	}
	g.Ctx.Call("stroke")
}

// RenderTitleScreen draws the attract screen.
func (g *Game) RenderTitleScreen() {
	g.Ctx.Set("fillStyle", Theme.TextPrimaryColor)
	g.Ctx.Set("font", Theme.TitleFont)
	g.Ctx.Set("textAlign", "center")
	g.Ctx.Call("fillText", "CHWAZAM", WIDTH/2, HEIGHT/2-40)

	g.Ctx.Set("fillStyle", Theme.TextSecondaryColor)
	g.Ctx.Set("font", Theme.InstructFont)
	g.Ctx.Call("fillText", "EVERYONE HOLD A FINGER ON THE SCREEN", WIDTH/2, HEIGHT/2+40)
	g.Ctx.Call("fillText", "LAST TOWER STANDING WINS", WIDTH/2, HEIGHT/2+84)
}

// RenderPlacements draws the gathered finger pads before battle.
func (g *Game) RenderPlacements() {
	for _, p := range g.Placements {
		color := Palette[p.Color%len(Palette)]

		g.Ctx.Call("save")
		g.Ctx.Set("shadowBlur", Theme.TowerShadowBlur)
		g.Ctx.Set("shadowColor", color)
		g.Ctx.Set("strokeStyle", color)
		g.Ctx.Set("lineWidth", Theme.TowerLineWidth)
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", p.X, p.Y, battle.TowerRadius, 0, 2*math.Pi)
		g.Ctx.Call("stroke")

		g.Ctx.Set("fillStyle", color)
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", p.X, p.Y, 8, 0, 2*math.Pi)
		g.Ctx.Call("fill")
		g.Ctx.Call("restore")
	}
}

// RenderCountdown draws the lock countdown digits once it is armed.
func (g *Game) RenderCountdown() {
	if g.Machine.Phase != PhaseLocking {
		g.Ctx.Set("fillStyle", Theme.TextSecondaryColor)
		g.Ctx.Set("font", Theme.InstructFont)
		g.Ctx.Set("textAlign", "center")
		g.Ctx.Call("fillText", "WAITING FOR CHALLENGERS", WIDTH/2, HEIGHT-64)
		return
	}

	secs := int(math.Ceil(g.Machine.LockTimer))
	g.Ctx.Call("save")
	g.Ctx.Set("globalAlpha", 0.85)
	g.Ctx.Set("fillStyle", Theme.CountdownColor)
	g.Ctx.Set("font", Theme.CountdownFont)
	g.Ctx.Set("textAlign", "center")
	g.Ctx.Call("fillText", strconv.Itoa(secs), WIDTH/2, HEIGHT/2+70)
	g.Ctx.Call("restore")
}

// RenderArena draws the battle or cinematic scene: towers, bullets and
// effects, with additive blending for the glowy parts.
func (g *Game) RenderArena() {
	for _, t := range g.LiveTowers() {
		g.RenderTower(t)
	}

	// Enable additive blending
	g.Ctx.Set("globalCompositeOperation", "lighter")

	if g.Recon != nil {
		g.RenderBullets()
	}
	g.RenderExplosions()
	g.RenderSparks()

	// Disable additive blending
	g.Ctx.Set("globalCompositeOperation", "source-over")

	if g.Machine.Phase == PhaseVictory {
		g.RenderVictory()
	}
}

// RenderTower draws one combatant: body circle, hit flash, health pips
// and the cannon ring. Dead towers collapse to a dim husk.
func (g *Game) RenderTower(t *battle.Tower) {
	if !t.Alive && !t.Invincible {
		g.Ctx.Set("strokeStyle", Theme.TowerDeadColor)
		g.Ctx.Set("lineWidth", 2)
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", t.X, t.Y, battle.TowerRadius*0.5, 0, 2*math.Pi)
		g.Ctx.Call("stroke")
		return
	}

	color := towerColor(t)
	r := t.EffectiveRadius()
	if r < 2 {
		return
	}

	x, y := t.X, t.Y
	if t.ShakeT > 0 {
		x += g.FxRNG.RandomFloat(-4, 4)
		y += g.FxRNG.RandomFloat(-4, 4)
	}

	g.Ctx.Call("save")
	g.Ctx.Set("shadowBlur", Theme.TowerShadowBlur)
	g.Ctx.Set("shadowColor", color)

	// Winner halo
	if t.Invincible {
		g.Ctx.Set("strokeStyle", Theme.WinnerHaloColor)
		g.Ctx.Set("lineWidth", 2)
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", x, y, r+16, 0, 2*math.Pi)
		g.Ctx.Call("stroke")
	}

	bodyColor := color
	if t.FlashT > 0 {
		bodyColor = Theme.HitFlashColor
	}
	g.Ctx.Set("strokeStyle", bodyColor)
	g.Ctx.Set("lineWidth", Theme.TowerLineWidth)
	g.Ctx.Call("beginPath")
	g.Ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	g.Ctx.Call("stroke")

	g.Ctx.Set("fillStyle", Theme.TowerCenterColor)
	g.Ctx.Call("beginPath")
	g.Ctx.Call("arc", x, y, 6, 0, 2*math.Pi)
	g.Ctx.Call("fill")

	// Health pips above the tower
	for i := 0; i < battle.MaxHealth; i++ {
		pipColor := Theme.HealthPipEmpty
		if i < t.Health {
			pipColor = Theme.HealthPipColor
		}
		g.Ctx.Set("fillStyle", pipColor)
		px := x + float64(i-1)*18
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", px, y-r-22, 5, 0, 2*math.Pi)
		g.Ctx.Call("fill")
	}

	// Cannons
	g.Ctx.Set("strokeStyle", bodyColor)
	g.Ctx.Set("lineWidth", Theme.CannonLineWidth)
	g.Ctx.Call("beginPath")
	for _, c := range t.Cannons {
		mx, my := t.CannonPosition(c)
		aim := c.AimAngle()
		g.Ctx.Call("moveTo", mx, my)
		g.Ctx.Call("lineTo",
			mx+math.Cos(aim)*battle.CannonLength,
			my+math.Sin(aim)*battle.CannonLength)
	}
	g.Ctx.Call("stroke")

	g.Ctx.Call("restore")
}

// RenderBullets draws the live arena's projectiles. Homing bullets get a
// faint lock line to their current target.
func (g *Game) RenderBullets() {
	g.Ctx.Call("save")
	g.Ctx.Set("shadowBlur", Theme.BulletShadowBlur)

	for _, b := range g.Recon.Arena.Bullets {
		color := Theme.BulletColor
		radius := battle.BulletRadius
		if b.Kind == battle.HomingBullet {
			color = Theme.HomingColor
			radius = battle.BulletRadius + 2

			if b.HasTarget {
				g.Ctx.Set("strokeStyle", Theme.LockLineColor)
				g.Ctx.Set("lineWidth", 1)
				g.Ctx.Call("beginPath")
				g.Ctx.Call("moveTo", b.X, b.Y)
				g.Ctx.Call("lineTo", b.TargetX, b.TargetY)
				g.Ctx.Call("stroke")
			}
		}

		g.Ctx.Set("shadowColor", color)
		g.Ctx.Set("fillStyle", color)
		g.Ctx.Call("beginPath")
		g.Ctx.Call("arc", b.X, b.Y, radius, 0, 2*math.Pi)
		g.Ctx.Call("fill")
	}
	g.Ctx.Call("restore")
}

// RenderExplosions draws the active explosion bursts.
func (g *Game) RenderExplosions() {
	g.Explosions.ForEachReverse(func(exp *Explosion, idx int) {
		g.Ctx.Call("save")
		g.Ctx.Set("globalAlpha", exp.Alpha)
		g.Ctx.Set("shadowBlur", Theme.ExplosionShadowBlur)
		g.Ctx.Set("shadowColor", Theme.ExplosionColor)
		g.Ctx.Set("strokeStyle", Theme.ExplosionColor)
		g.Ctx.Set("lineWidth", 3)
		g.Ctx.Call("translate", exp.X, exp.Y)
		g.Ctx.Call("rotate", exp.Angle)
		g.Ctx.Call("strokeRect", -exp.Size/2, -exp.Size/2, exp.Size, exp.Size)
		g.Ctx.Call("restore")
	})
}

// RenderSparks draws the hit particles.
func (g *Game) RenderSparks() {
	g.Sparks.ForEachReverse(func(s *Spark, idx int) {
		g.Ctx.Set("fillStyle", Palette[s.Color%len(Palette)])
		g.Ctx.Call("fillRect", s.X-2, s.Y-2, 4, 4)
	})
}

// RenderVictory draws the winner banner over the final scene.
func (g *Game) RenderVictory() {
	color := Theme.TextPrimaryColor
	if t := g.winnerTower(); t != nil {
		color = towerColor(t)
	}

	g.Ctx.Set("fillStyle", color)
	g.Ctx.Set("font", Theme.TitleFont)
	g.Ctx.Set("textAlign", "center")
	g.Ctx.Call("fillText", "WINNER", WIDTH/2, 180)
}

func (g *Game) winnerTower() *battle.Tower {
	for _, t := range g.LiveTowers() {
		if t.ID == g.WinnerID {
			return t
		}
	}
	return nil
}
