package game

// Palette holds the per-combatant colors, assigned by placement order.
// Index with a tower's Color field modulo the palette length.
var Palette = []string{
	"#F43", // red
	"#3CF", // cyan
	"#9F0", // lime
	"#FC0", // amber
	"#C5F", // violet
	"#0FA", // mint
	"#F6C", // pink
	"#FFF", // white
}

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Background colors
	BackgroundColor     string
	BackgroundLineColor string

	// Tower styling
	TowerCenterColor string
	TowerDeadColor   string
	HitFlashColor    string
	WinnerHaloColor  string

	// Health pips
	HealthPipColor string
	HealthPipEmpty string

	// Bullet colors
	BulletColor   string
	HomingColor   string
	LockLineColor string

	// Explosion colors
	ExplosionColor string

	// UI/HUD colors
	TextPrimaryColor   string
	TextSecondaryColor string
	CountdownColor     string

	// Screen flash color, alpha appended at call sites
	StrikeFlashColor string

	// Fonts
	TitleFont     string
	CountdownFont string
	InstructFont  string

	// Line widths
	TowerLineWidth  float64
	CannonLineWidth float64
	BulletLineWidth float64

	// Shadow/glow blur values
	DefaultShadowBlur   float64
	TowerShadowBlur     float64
	BulletShadowBlur    float64
	ExplosionShadowBlur float64
}{
	// Background colors - dark slate
	BackgroundColor:     "#000",
	BackgroundLineColor: "#111",

	// Tower styling
	TowerCenterColor: "#FFF",
	TowerDeadColor:   "#333",
	HitFlashColor:    "#FFF",
	WinnerHaloColor:  "#FE8",

	// Health pips
	HealthPipColor: "#FFF",
	HealthPipEmpty: "#444",

	// Bullet colors
	BulletColor:   "#FE6",
	HomingColor:   "#F4A",
	LockLineColor: "rgba(255,68,170,.25)",

	// Explosion colors - orange/red
	ExplosionColor: "#F63",

	// UI/HUD colors
	TextPrimaryColor:   "#FFF",
	TextSecondaryColor: "#789",
	CountdownColor:     "#FE8",

	// Screen flash color
	StrikeFlashColor: "rgba(255,255,255,",

	// Fonts
	TitleFont:     "bold 64px Consolas,monospace",
	CountdownFont: "bold 220px Consolas,monospace",
	InstructFont:  "28px sans-serif",

	// Line widths
	TowerLineWidth:  4.0,
	CannonLineWidth: 5.0,
	BulletLineWidth: 3.0,

	// Shadow/glow blur values
	DefaultShadowBlur:   6.0,
	TowerShadowBlur:     14.0,
	BulletShadowBlur:    8.0,
	ExplosionShadowBlur: 6.0,
}
