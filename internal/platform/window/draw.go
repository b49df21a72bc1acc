package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickstorm/internal/core"
	"github.com/vovakirdan/brickstorm/internal/games/brickstorm"
)

// Sizes of things the session models as points.
const (
	laserLength  = 14
	laserWidth   = 3
	debrisSize   = 3
	bulletRadius = 5
	hpBarHeight  = 6
	glyphWidth   = 6 // ebitenutil debug font cell
	glyphHeight  = 16
)

var (
	background = color.RGBA{0x0b, 0x10, 0x20, 0xff}
	dimOverlay = color.NRGBA{0x00, 0x00, 0x00, 0xa0}
	hpBarBack  = color.RGBA{0x33, 0x1a, 0x40, 0xff}
)

// rgba converts a palette color to an opaque RGBA value.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}

// shade darkens a brick color by how many hits it has left.
func shade(c color.RGBA, hits int) color.RGBA {
	f := 0.55 + 0.15*float64(core.Clamp(hits, 1, 3))
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}

// fade applies the remaining life of a particle as alpha.
func fade(c color.RGBA, age, life float64) color.NRGBA {
	a := 1.0
	if life > 0 {
		a = core.ClampF(1-age/life, 0, 1)
	}
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(a * 255))}
}

// hudText is the status line drawn over the playfield.
func hudText(s *brickstorm.Session) string {
	return fmt.Sprintf("Score %d   Lives %d   Level %d   Shields %d   Hi %d",
		s.Score, s.Lives, s.Level, s.Shields, s.HighScore)
}

// centerX returns the x at which text is centered with the debug font.
func centerX(text string) int {
	return (core.PlayfieldW - len(text)*glyphWidth) / 2
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func fillCircle(dst *ebiten.Image, x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), c, true)
}

// drawSession draws every entity of s in logical units.
func drawSession(dst *ebiten.Image, s *brickstorm.Session) {
	dst.Fill(background)

	for _, b := range s.Bricks {
		if !b.Alive {
			continue
		}
		fillRect(dst, b.X+1, b.Y+1, b.W-2, b.H-2, shade(rgba(brickstorm.BrickColor(b.Type)), b.Hits))
	}

	if bs := s.Boss; bs != nil {
		fillRect(dst, bs.X, bs.Y, bs.W, bs.H, rgba(core.ColorMagenta))
		fillRect(dst, bs.X, bs.Y-hpBarHeight-4, bs.W, hpBarHeight, hpBarBack)
		if bs.MaxHP > 0 {
			frac := core.ClampF(float64(bs.HP)/float64(bs.MaxHP), 0, 1)
			fillRect(dst, bs.X, bs.Y-hpBarHeight-4, bs.W*frac, hpBarHeight, rgba(core.ColorBrightMagenta))
		}
	}

	for _, p := range s.PowerUps {
		fillRect(dst, p.X-p.W/2, p.Y-p.H/2, p.W, p.H, rgba(core.ColorPink))
		ebitenutil.DebugPrintAt(dst, string(p.Type.Glyph()), int(p.X)-glyphWidth/2, int(p.Y)-glyphHeight/2)
	}

	for _, l := range s.Lasers {
		fillRect(dst, l.X-laserWidth/2.0, l.Y, laserWidth, laserLength, rgba(core.ColorBrightYellow))
	}

	for _, p := range s.Particles {
		if p.Bullet {
			fillCircle(dst, p.X, p.Y, bulletRadius, rgba(core.ColorOrange))
			continue
		}
		fillRect(dst, p.X-debrisSize/2.0, p.Y-debrisSize/2.0, debrisSize, debrisSize, fade(rgba(p.Color), p.Age, p.Life))
	}

	drawPaddle(dst, s)

	for _, b := range s.Balls {
		c := core.ColorBrightWhite
		if b.SlowUntil > s.Time {
			c = core.ColorSky
		}
		fillCircle(dst, b.X, b.Y, b.R, rgba(c))
	}

	ebitenutil.DebugPrintAt(dst, hudText(s), 8, core.PlayfieldH-glyphHeight-2)
	drawOverlay(dst, s)
}

func drawPaddle(dst *ebiten.Image, s *brickstorm.Session) {
	p := &s.Paddle
	c := core.ColorCyan
	switch {
	case p.LaserActive(s.Time):
		c = core.ColorBrightYellow
	case p.ExpandUntil > 0:
		c = core.ColorBrightCyan
	}
	fillRect(dst, p.X, p.Y, p.W, p.H, rgba(c))
}

func drawOverlay(dst *ebiten.Image, s *brickstorm.Session) {
	var title, hint string
	switch {
	case s.GameOver:
		title = "GAME OVER"
		hint = fmt.Sprintf("Score %d  -  R to restart, Q to quit", s.Score)
	case s.Paused:
		title = "PAUSED"
		hint = "P to resume"
	default:
		return
	}

	fillRect(dst, 0, 0, core.PlayfieldW, core.PlayfieldH, dimOverlay)
	y := core.PlayfieldH/2 - glyphHeight
	ebitenutil.DebugPrintAt(dst, title, centerX(title), y)
	ebitenutil.DebugPrintAt(dst, hint, centerX(hint), y+2*glyphHeight)
}
