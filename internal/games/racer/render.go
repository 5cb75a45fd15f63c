package racer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/neon-highway/internal/config"
	"github.com/vovakirdan/neon-highway/internal/core"
)

const (
	minScreenW = 48
	minScreenH = 20
	panelWidth = 24
	hudRows    = 1
)

// Glyphs.
const (
	CarGlyph        = '█'
	TankGlyph       = '▓'
	ShooterGlyph    = '▒'
	ProjectileGlyph = '┃'
	GhostGlyph      = '░'
	FogGlyph        = '▒'
	LaneGlyph       = '╎'
	EdgeGlyph       = '║'
	ParticleGlyph   = '·'
	SparkGlyph      = '*'
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	x0, y0     int
	cols, rows int
	sx, sy     float64
}

func newViewport(dst *core.Screen, road config.RoadConfig) viewport {
	rows := dst.Height() - hudRows
	cols := dst.Width() - panelWidth - 2
	// Terminal cells are about twice as tall as wide.
	if want := int(float64(rows) * road.Width / road.Height * 2); want < cols {
		cols = want
	}
	cols = max(cols, road.Lanes)
	return viewport{
		x0:   1,
		y0:   hudRows,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / road.Width,
		sy:   float64(rows) / road.Height,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return v.x0 + int(math.Floor(x*v.sx)), v.y0 + int(math.Floor(y*v.sy))
}

// rect converts a world box to cells, at least one cell in each direction.
func (v viewport) rect(r core.RectF) core.Rect {
	x, y := v.cell(r.X, r.Y)
	w := max(1, int(math.Round(r.W*v.sx)))
	h := max(1, int(math.Round(r.H*v.sy)))
	return core.NewRect(x, y, w, h)
}

func (v viewport) inside(x, y int) bool {
	return x >= v.x0 && x < v.x0+v.cols && y >= v.y0 && y < v.y0+v.rows
}

// fill paints r, skipping cells outside the road.
func (v viewport) fill(dst *core.Screen, r core.Rect, fill rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if v.inside(x, y) {
				dst.SetColored(x, y, fill, c)
			}
		}
	}
}

// Render draws the current state. It only reads the state store.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.state == nil {
		return
	}

	vp := newViewport(dst, g.cfg.Road)
	g.renderRoad(dst, vp)
	if g.state.Phase() != core.PhaseMenu {
		g.renderGhost(dst, vp)
		g.renderPowerUps(dst, vp)
		g.renderEnemies(dst, vp)
		g.renderProjectiles(dst, vp)
		g.renderPlayer(dst, vp)
		g.renderParticles(dst, vp)
	}
	if g.weather == WeatherFog {
		g.renderFog(dst, vp)
	}
	g.renderHUD(dst)
	g.renderPanel(dst, vp)
	g.renderOverlay(dst, vp)
}

func (g *Game) renderRoad(dst *core.Screen, vp viewport) {
	dst.DrawVLine(vp.x0-1, vp.y0, vp.rows, EdgeGlyph, core.ColorBrightMagenta)
	dst.DrawVLine(vp.x0+vp.cols, vp.y0, vp.rows, EdgeGlyph, core.ColorBrightMagenta)

	road := g.cfg.Road
	laneWidth := road.Width / float64(road.Lanes)
	for _, line := range g.state.RoadLines() {
		for lane := 1; lane < road.Lanes; lane++ {
			r := vp.rect(core.NewRectF(float64(lane)*laneWidth, line.Y, 0, line.Height))
			vp.fill(dst, r, LaneGlyph, core.ColorDim)
		}
	}
}

func (g *Game) renderGhost(dst *core.Screen, vp viewport) {
	if g.ghost == nil || g.state.Phase() == core.PhaseGameOver {
		return
	}
	x, y, ok := g.ghost.PositionAt(int(g.tick)) //#nosec G115 -- run length fits in int
	if !ok {
		return
	}
	p := g.state.Player()
	vp.fill(dst, vp.rect(core.NewRectF(x, y, p.Width, p.Height)), GhostGlyph, core.ColorGray)
}

func (g *Game) renderPowerUps(dst *core.Screen, vp viewport) {
	for _, p := range g.state.PowerUps() {
		r := vp.rect(p.Bounds())
		vp.fill(dst, r, ' ', p.Type.Color())
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		if vp.inside(cx, cy) {
			dst.SetColored(cx, cy, p.Type.Glyph(), p.Type.Color())
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, vp viewport) {
	for _, e := range g.state.Enemies() {
		glyph := CarGlyph
		switch e.Type {
		case EnemyTank:
			glyph = TankGlyph
		case EnemyShooter:
			glyph = ShooterGlyph
		}
		vp.fill(dst, vp.rect(e.Bounds()), glyph, e.Color)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, vp viewport) {
	for _, p := range g.state.Projectiles() {
		vp.fill(dst, vp.rect(p.Bounds()), ProjectileGlyph, core.ColorHotPink)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp viewport) {
	p := g.state.Player()
	c := core.ColorBrightCyan
	if p.BoostActive {
		c = core.ColorOrange
	}
	r := vp.rect(p.Bounds())
	vp.fill(dst, r, CarGlyph, c)
	if r.W >= 3 && vp.inside(r.X+r.W/2, r.Y) {
		dst.SetColored(r.X+r.W/2, r.Y, '▲', core.ColorBrightWhite)
	}
	if g.state.Shielded() {
		for x := r.X - 1; x <= r.Right(); x++ {
			if vp.inside(x, r.Y-1) {
				dst.SetColored(x, r.Y-1, '─', core.ColorBrightCyan)
			}
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen, vp viewport) {
	for _, p := range g.state.Particles() {
		x, y := vp.cell(p.X, p.Y)
		if !vp.inside(x, y) {
			continue
		}
		glyph := ParticleGlyph
		if p.Size >= 3 {
			glyph = SparkGlyph
		}
		dst.SetColored(x, y, glyph, p.Color)
	}
}

func (g *Game) renderFog(dst *core.Screen, vp viewport) {
	rows := int(float64(vp.rows) * fogLine)
	for y := vp.y0; y < vp.y0+rows; y++ {
		for x := vp.x0; x < vp.x0+vp.cols; x++ {
			dst.SetColored(x, y, FogGlyph, core.ColorDim)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score()), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightMagenta)
	hi := fmt.Sprintf("Hi: %d", s.HighScore())
	dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorYellow)
}

// renderPanel draws the stats column right of the road.
func (g *Game) renderPanel(dst *core.Screen, vp viewport) {
	s := g.state
	d := s.Data()
	x := vp.x0 + vp.cols + 3
	y := vp.y0 + 1
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line(fmt.Sprintf("LEVEL %d", d.Level), core.ColorBrightCyan)
	line(config.LevelName(d.Level), core.ColorCyan)
	line(progressBar(s.Difficulty().Progress(d.Score, d.Level), panelWidth-4), core.ColorCyan)
	y++
	line(fmt.Sprintf("Speed  %5.1f", d.Speed), core.ColorWhite)
	line(fmt.Sprintf("Dist   %5.0f", d.Distance), core.ColorWhite)
	if g.mode == ModeTimeTrial {
		c := core.ColorWhite
		if d.TimeRemaining < 10*time.Second {
			c = core.ColorBrightRed
		}
		line(fmt.Sprintf("Time   %5.1f", d.TimeRemaining.Seconds()), c)
	}
	y++

	combo := g.combo.State()
	if combo.Active {
		line(fmt.Sprintf("COMBO x%.1f", combo.Multiplier), core.ColorHotPink)
		line(fmt.Sprintf("%d units %.1fs", combo.Count, combo.Timer.Seconds()), core.ColorPink)
	} else {
		line(fmt.Sprintf("Best x%.1f", combo.MaxMultiplier), core.ColorGray)
		y++
	}
	y++

	p := s.Player()
	nitro := core.ColorOrange
	if p.BoostEnergy < g.cfg.Player.BoostCost {
		nitro = core.ColorGray
	}
	line("NITRO", nitro)
	line(progressBar(p.BoostEnergy/100, panelWidth-4), nitro)

	now := s.Now()
	if d.ShieldActive {
		line(fmt.Sprintf("Shield %4.1fs", (d.ShieldUntil-now).Seconds()), core.ColorBrightCyan)
	}
	if d.SlowMoActive {
		line(fmt.Sprintf("SlowMo %4.1fs", (d.SlowMoUntil-now).Seconds()), core.ColorBrightMagenta)
	}
	if d.MagnetActive {
		line(fmt.Sprintf("Magnet %4.1fs", (d.MagnetUntil-now).Seconds()), core.ColorBrightYellow)
	}
	if p.BoostActive {
		line(fmt.Sprintf("Boost  %4.1fs", (p.BoostUntil-now).Seconds()), core.ColorOrange)
	}
	if g.weather != WeatherClear {
		line("Weather: "+g.weather.String(), core.ColorBlue)
	}
}

func progressBar(frac float64, width int) string {
	frac = core.ClampF(frac, 0, 1)
	filled := int(math.Round(frac * float64(width)))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func (g *Game) renderOverlay(dst *core.Screen, vp viewport) {
	var lines []string
	color := core.ColorBrightWhite
	switch g.state.Phase() {
	case core.PhaseMenu:
		lines = []string{"NEON HIGHWAY", "", g.state.Mode().String() + " mode", "", "ENTER to start"}
		color = core.ColorBrightMagenta
	case core.PhasePaused:
		lines = []string{"PAUSED", "", "P to resume"}
	case core.PhaseGameOver:
		sum := g.summary
		lines = []string{
			"GAME OVER",
			sum.Cause,
			"",
			fmt.Sprintf("Score %d", sum.Score),
			fmt.Sprintf("Level %d  x%.1f max", sum.Level, sum.MaxMultiplier),
		}
		if sum.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		for _, id := range sum.Achievements {
			if a, ok := AchievementByID(id); ok {
				lines = append(lines, "* "+a.Name)
			}
		}
		lines = append(lines, "", "R restart  ESC menu")
		color = core.ColorBrightRed
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, vp.cols+2)
	boxH := len(lines) + 2
	bx := vp.x0 + (vp.cols-boxW)/2
	by := vp.y0 + (vp.rows-boxH)/2
	box := core.NewRect(bx, by, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		lx := bx + (boxW-len([]rune(l)))/2
		c := color
		if i > 0 {
			c = core.ColorWhite
		}
		dst.DrawTextColored(lx, by+1+i, l, c)
	}
}
