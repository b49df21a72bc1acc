package brickstorm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/brickstorm/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	LaserChar    = '|'
	BulletChar   = '▼'
	DebrisChar   = '·'
	BossChar     = '▒'
	ShieldChar   = '♦'
	hpBarWidth   = 20
	hudRows      = 1
	minBrickCell = 1
)

// Brick glyphs by remaining hits, weakest first.
var brickGlyphs = []rune{'░', '▒', '▓', '█'}

// viewport maps logical playfield units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / core.PlayfieldW,
		sy:  float64(dst.Height()-hudRows) / core.PlayfieldH,
		top: hudRows,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// span returns the cell columns [x0, x1) covered by a logical interval.
func (v viewport) span(x, w float64) (int, int) {
	x0 := int(x * v.sx)
	x1 := int((x + w) * v.sx)
	if x1-x0 < minBrickCell {
		x1 = x0 + minBrickCell
	}
	return x0, x1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.session == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	s := g.session
	v := newViewport(dst)

	renderHUD(dst, s)
	renderBricks(dst, v, s)
	renderBoss(dst, v, s)
	renderPowerUps(dst, v, s)
	renderLasers(dst, v, s)
	renderParticles(dst, v, s)
	renderPaddle(dst, v, s)
	renderBalls(dst, v, s)
	renderOverlay(dst, s)
}

// renderHUD draws score, lives, level, shields and the high score.
func renderHUD(dst *core.Screen, s *Session) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score %d", s.Score), core.ColorBrightWhite)

	mid := fmt.Sprintf("Lives %d  Level %d", s.Lives, s.Level)
	x := (dst.Width() - len(mid)) / 2
	dst.DrawText(x, 0, mid)
	if s.Shields > 0 {
		dst.DrawTextColored(x+len(mid)+1, 0, strings.Repeat(string(ShieldChar), s.Shields), core.ColorSky)
	}

	hi := fmt.Sprintf("Hi %d", s.HighScore)
	dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorGray)
}

// BrickColor is the palette color for a brick type, shared by every front end.
func BrickColor(t BrickType) core.Color {
	switch t {
	case BrickSturdy:
		return core.ColorOrange
	case BrickPower:
		return core.ColorGreen
	default:
		return core.ColorBlue
	}
}

func renderBricks(dst *core.Screen, v viewport, s *Session) {
	for _, b := range s.Bricks {
		if !b.Alive {
			continue
		}
		x0, x1 := v.span(b.X, b.W)
		_, y := v.cell(b.X, b.Y)
		glyph := brickGlyphs[core.Clamp(b.Hits, 1, len(brickGlyphs))-1]
		color := BrickColor(b.Type)

		// Leave a one-cell seam between neighbours when there is room.
		if x1-x0 > 2 {
			x1--
		}
		dst.DrawHLine(x0, y, x1-x0, glyph, color)
	}
}

func renderBoss(dst *core.Screen, v viewport, s *Session) {
	bs := s.Boss
	if bs == nil {
		return
	}
	x0, x1 := v.span(bs.X, bs.W)
	_, y0 := v.cell(bs.X, bs.Y)
	_, y1 := v.cell(bs.X, bs.Y+bs.H)
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), BossChar, core.ColorMagenta)

	filled := 0
	if bs.MaxHP > 0 {
		filled = core.Clamp(bs.HP*hpBarWidth/bs.MaxHP, 0, hpBarWidth)
	}
	bar := "BOSS [" + strings.Repeat("#", filled) + strings.Repeat(".", hpBarWidth-filled) + "]"
	dst.DrawTextColored((dst.Width()-len(bar))/2, hudRows, bar, core.ColorBrightMagenta)
}

func renderPowerUps(dst *core.Screen, v viewport, s *Session) {
	for _, p := range s.PowerUps {
		x, y := v.cell(p.X, p.Y)
		dst.SetColored(x, y, p.Type.Glyph(), core.ColorPink)
	}
}

func renderLasers(dst *core.Screen, v viewport, s *Session) {
	for _, l := range s.Lasers {
		x, y := v.cell(l.X, l.Y)
		dst.SetColored(x, y, LaserChar, core.ColorBrightYellow)
	}
}

func renderParticles(dst *core.Screen, v viewport, s *Session) {
	for _, p := range s.Particles {
		x, y := v.cell(p.X, p.Y)
		if p.Bullet {
			dst.SetColored(x, y, BulletChar, core.ColorOrange)
			continue
		}
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, DebrisChar, p.Color)
		}
	}
}

func renderPaddle(dst *core.Screen, v viewport, s *Session) {
	p := &s.Paddle
	x0, x1 := v.span(p.X, p.W)
	_, y := v.cell(p.X, p.Y)

	color := core.ColorCyan
	switch {
	case p.LaserActive(s.Time):
		color = core.ColorBrightYellow
	case p.ExpandUntil > 0:
		color = core.ColorBrightCyan
	}
	dst.DrawHLine(x0, y, x1-x0, PaddleChar, color)
}

func renderBalls(dst *core.Screen, v viewport, s *Session) {
	for _, b := range s.Balls {
		x, y := v.cell(b.X, b.Y)
		color := core.ColorBrightWhite
		if b.SlowUntil > s.Time {
			color = core.ColorSky
		}
		dst.SetColored(x, y, BallChar, color)
	}
}

// renderOverlay draws the pause and game-over boxes.
func renderOverlay(dst *core.Screen, s *Session) {
	switch {
	case s.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score)
		if s.Score > 0 && s.Score >= s.HighScore {
			subtitle = fmt.Sprintf("New high score: %d  |  Press R to restart", s.Score)
		}
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case s.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
