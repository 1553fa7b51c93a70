package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gauge/internal/config"
	"github.com/iburimskiy/gauge/internal/gauge"
	"github.com/iburimskiy/gauge/internal/widget"
)

// Debug font glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// maxStepDeg bounds the angle covered by one quad of a ring arc.
const maxStepDeg = 2.0

var (
	handColor   = color.RGBA{R: 235, G: 238, B: 245, A: 255}
	trackColor  = color.RGBA{R: 40, G: 46, B: 60, A: 255}
	borderColor = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	fillColor   = color.RGBA{R: 0, G: 122, B: 255, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	s := g.model.Scene()
	g.drawRing(screen, s)
	g.drawLabels(screen, s)
	g.drawHands(screen, s)

	g.drawSliders(screen)

	status := formatClock(g.model.Time()) + " | S: sound " + onOff(g.sound.enabled) + " | Esc/Q: quit"
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(12 + 10*ratio)
		g_val := uint8(14 + 8*ratio)
		b := uint8(22 + 14*ratio)
		vector.StrokeLine(screen, 0, float32(y), config.WindowWidth, float32(y), 1, color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

// drawRing fills each dash as a strip of quads between the inner and outer
// radius, coloring every vertex from the gradient at its angle.
func (g *Game) drawRing(screen *ebiten.Image, s gauge.Scene) {
	ring := s.Ring
	if len(ring.Arcs) == 0 {
		return
	}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, arc := range ring.Arcs {
		steps := int(math.Ceil((arc.EndDeg - arc.StartDeg) / maxStepDeg))
		if steps < 1 {
			steps = 1
		}
		base := uint16(len(g.vertices))
		for i := 0; i <= steps; i++ {
			deg := arc.StartDeg + (arc.EndDeg-arc.StartDeg)*float64(i)/float64(steps)
			// Gradient angles run from three o'clock, face angles from twelve.
			cr, cg, cb, ca := vertexColor(ring.Gradient.At(deg - 90))
			for _, r := range [2]float64{ring.InnerRadius, ring.OuterRadius} {
				x, y := s.Face.Point(deg, r)
				g.vertices = append(g.vertices, ebiten.Vertex{
					DstX: float32(x), DstY: float32(y),
					SrcX: 1, SrcY: 1,
					ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
				})
			}
		}
		for i := 0; i < steps; i++ {
			v := base + uint16(2*i)
			g.indices = append(g.indices, v, v+1, v+2, v+1, v+3, v+2)
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(g.vertices, g.indices, g.white, op)
}

func (g *Game) drawLabels(screen *ebiten.Image, s gauge.Scene) {
	for _, l := range s.Labels {
		x := int(l.X) - len(l.Text)*glyphWidth/2
		y := int(l.Y) - glyphHeight/2
		ebitenutil.DebugPrintAt(screen, l.Text, x, y)
	}
}

func (g *Game) drawHands(screen *ebiten.Image, s gauge.Scene) {
	cx, cy := float32(s.Face.CenterX), float32(s.Face.CenterY)
	for _, h := range s.Hands {
		x, y := h.Tip(s.Face)
		vector.StrokeLine(screen, cx, cy, float32(x), float32(y), float32(h.Width), handColor, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(s.DotRadius), handColor, true)
}

func (g *Game) drawSliders(screen *ebiten.Image) {
	for _, sl := range g.model.Sliders() {
		drawSlider(screen, sl)
	}
}

func drawSlider(screen *ebiten.Image, s *widget.Slider) {
	x, y := float32(s.X), float32(s.Y)
	w, h := float32(s.Width), float32(s.Height)

	vector.DrawFilledRect(screen, x, y, w, h, trackColor, false)
	vector.DrawFilledRect(screen, x, y, float32(s.Fraction())*w, h, fillColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, borderColor, false)

	knob := float32(h * 0.75)
	if s.Hovered() || s.Dragging() {
		knob = h
	}
	kx, ky := float32(s.KnobX()), y+h/2
	vector.DrawFilledCircle(screen, kx, ky, knob, handColor, true)
	vector.StrokeCircle(screen, kx, ky, knob, 2, borderColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.1f", s.Label, s.Value), s.X, s.Y-glyphHeight-6)
}
