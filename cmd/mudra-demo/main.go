// Command mudra-demo runs a self-contained visual exercise of the
// interaction core: a scripted hand glides through the demo choreography
// while the synthesized recognizer frames drive a live session against a
// small shape scene.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/interact"
	"github.com/ayusman/mudra/internal/scene"
)

const (
	screenW = 640
	screenH = 480

	// Recognizer cadence relative to the 60 TPS game loop: every fourth
	// tick processes for real, the rest redraw feedback only.
	processEvery = 4

	eventLogSize = 9
)

type game struct {
	session  *interact.Session
	scene    *scene.Scene
	player   *scriptPlayer
	feedback *demoFeedback

	elements []interact.Element
	region   geom.Rect
	events   []string
	label    string
	tick     int
}

func newGame() *game {
	g := &game{
		region: geom.Rect{Left: 100, Top: 60, Width: 440, Height: 340},
		elements: []interact.Element{
			{ID: "disc", Kind: interact.KindCircle, Bounds: geom.Rect{Left: 150, Top: 120, Width: 64, Height: 64}},
			{ID: "box", Kind: interact.KindRect, Bounds: geom.Rect{Left: 330, Top: 150, Width: 70, Height: 50}},
			{ID: "blob", Kind: interact.KindEllipse, Bounds: geom.Rect{Left: 170, Top: 190, Width: 90, Height: 70}},
		},
		scene:  scene.New(),
		player: newScriptPlayer(script()),
	}

	canvas := interact.Canvas{
		Width:  screenW,
		Height: screenH,
		Rect:   geom.Rect{Left: 0, Top: 0, Width: screenW, Height: screenH},
	}
	g.feedback = &demoFeedback{canvas: canvas}

	region := g.region
	g.scene.Replace(scene.Snapshot{Elements: g.elements, Region: &region})

	g.session = interact.New(interact.Config{
		Canvas:   canvas,
		Surface:  g.scene,
		Feedback: g.feedback,
		Handler:  g.logEvent,
		Source:   "demo",
	})
	return g
}

func (g *game) logEvent(ev interact.Event) {
	g.events = append(g.events, describe(ev))
	if len(g.events) > eventLogSize {
		g.events = g.events[len(g.events)-eventLogSize:]
	}
}

func describe(ev interact.Event) string {
	switch {
	case ev.Target != nil:
		return fmt.Sprintf("%-13s %-5s %s", ev.Kind, ev.Hand, ev.Target.ID)
	case ev.Transform != nil:
		return fmt.Sprintf("%-13s scale %.2f (%.0f, %.0f)",
			ev.Kind, ev.Transform.Scale, ev.Transform.X, ev.Transform.Y)
	default:
		return string(ev.Kind)
	}
}

func (g *game) Update() error {
	frame, label := g.player.Advance(1.0 / 60.0)
	g.label = label
	g.tick++

	g.feedback.reset()
	g.session.Process(frame, g.tick%processEvery != 0)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 28, A: 255})

	// Interactive region boundary.
	vector.StrokeRect(screen, float32(g.region.Left), float32(g.region.Top),
		float32(g.region.Width), float32(g.region.Height), 1,
		color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)

	g.drawElements(screen)
	g.feedback.draw(screen)

	// While a zoom hands off to a one-hand drag, mark the center the view
	// is still anchored to.
	if center, ok := g.session.ZoomCenter(); ok {
		x, y := float32(center.X), float32(center.Y)
		c := color.RGBA{R: 230, G: 90, B: 90, A: 255}
		vector.StrokeLine(screen, x-6, y, x+6, y, 1.5, c, true)
		vector.StrokeLine(screen, x, y-6, x, y+6, 1.5, c, true)
	}

	g.drawStatus(screen)
}

// drawElements renders the scene under the session's current view
// transform, the way a client would apply drag/zoom events.
func (g *game) drawElements(screen *ebiten.Image) {
	view := g.session.View()
	fill := color.RGBA{R: 70, G: 120, B: 190, A: 255}

	for _, el := range g.elements {
		b := el.Bounds
		x := float32(b.Left*view.Scale + view.X)
		y := float32(b.Top*view.Scale + view.Y)
		w := float32(b.Width * view.Scale)
		h := float32(b.Height * view.Scale)

		switch el.Kind {
		case interact.KindCircle, interact.KindEllipse:
			r := w
			if h < r {
				r = h
			}
			vector.DrawFilledCircle(screen, x+w/2, y+h/2, r/2, fill, true)
		default:
			vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		}
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	view := g.session.View()
	status := fmt.Sprintf("mudra demo | %s | scale %.2f", g.label, view.Scale)
	ebitenutil.DebugPrintAt(screen, status, 10, 8)

	for i, line := range g.events {
		ebitenutil.DebugPrintAt(screen, line, 10, screenH-14*(len(g.events)-i)-8)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// demoFeedback renders the per-frame feedback marks: fingertip dots, the
// grasp hover circle with its sample grid, and the zoom guide. Surface
// coordinates are mapped back to screen space at record time.
type demoFeedback struct {
	canvas     interact.Canvas
	fingertips []fingertipMark
	hoverAreas []hoverAreaMark
	zoomGuides []zoomGuideMark
}

type fingertipMark struct {
	hand interact.Handedness
	at   geom.Point
}

type hoverAreaMark struct {
	center  geom.Point
	r       float64
	samples []geom.Point
}

type zoomGuideMark struct {
	a, b, center geom.Point
}

func (f *demoFeedback) DrawFingertip(hand interact.Handedness, pt interact.Point) {
	f.fingertips = append(f.fingertips, fingertipMark{hand: hand, at: pt.Screen})
}

func (f *demoFeedback) DrawHoverArea(circle geom.Circle, samples []geom.Point) {
	mark := hoverAreaMark{
		center: f.canvas.MapSurface(circle.Center).Screen,
		r:      circle.R,
	}
	for _, sp := range samples {
		mark.samples = append(mark.samples, f.canvas.MapSurface(sp).Screen)
	}
	f.hoverAreas = append(f.hoverAreas, mark)
}

func (f *demoFeedback) DrawZoomGuide(a, b, center geom.Point) {
	f.zoomGuides = append(f.zoomGuides, zoomGuideMark{
		a:      f.canvas.MapSurface(a).Screen,
		b:      f.canvas.MapSurface(b).Screen,
		center: f.canvas.MapSurface(center).Screen,
	})
}

func (f *demoFeedback) reset() {
	f.fingertips = f.fingertips[:0]
	f.hoverAreas = f.hoverAreas[:0]
	f.zoomGuides = f.zoomGuides[:0]
}

func (f *demoFeedback) draw(screen *ebiten.Image) {
	for _, m := range f.hoverAreas {
		vector.StrokeCircle(screen, float32(m.center.X), float32(m.center.Y),
			float32(m.r), 1.5, color.RGBA{R: 230, G: 180, B: 60, A: 200}, true)
		for _, sp := range m.samples {
			vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), 1.5,
				color.RGBA{R: 230, G: 180, B: 60, A: 120}, false)
		}
	}

	for _, m := range f.zoomGuides {
		vector.StrokeLine(screen, float32(m.a.X), float32(m.a.Y),
			float32(m.b.X), float32(m.b.Y), 1.5,
			color.RGBA{R: 170, G: 90, B: 220, A: 220}, true)
		vector.DrawFilledCircle(screen, float32(m.center.X), float32(m.center.Y),
			4, color.RGBA{R: 170, G: 90, B: 220, A: 255}, true)
	}

	for _, m := range f.fingertips {
		c := color.RGBA{R: 80, G: 220, B: 120, A: 255}
		if m.hand == interact.Left {
			c = color.RGBA{R: 80, G: 180, B: 230, A: 255}
		}
		vector.DrawFilledCircle(screen, float32(m.at.X), float32(m.at.Y), 6, c, true)
	}
}

func main() {
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("Mudra Demo")

	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
