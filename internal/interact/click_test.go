package interact

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/geom"
)

func TestClick_PinchThenPointSelects(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	pinchAt := geom.Point{X: 110, Y: 110}
	pointAt := geom.Point{X: 140, Y: 140} // still over a, different point

	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: pinchAt}), false)
	if len(rec.events) != 0 {
		t.Fatalf("pinch phase must not emit, got %v", rec.kinds())
	}

	clock.advance(150 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: pointAt}), false)

	selects := rec.ofKind(PointerSelect)
	if len(selects) != 1 {
		t.Fatalf("expected exactly one pointerselect, got %v", rec.kinds())
	}
	sel := selects[0]
	if sel.Target.ID != "a" {
		t.Errorf("select target = %s, want a", sel.Target.ID)
	}
	// The select carries the point captured at pinch time, not the
	// current fingertip.
	if sel.Point.Screen != pinchAt {
		t.Errorf("select point = %v, want pinch anchor %v", sel.Point.Screen, pinchAt)
	}

	// The composer is idle again: another point gesture emits nothing.
	rec.reset()
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: pointAt}), false)
	if len(rec.events) != 0 {
		t.Errorf("expected idle composer to stay quiet, got %v", rec.kinds())
	}
}

func TestClick_WindowExpiry(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	at := geom.Point{X: 110, Y: 110}
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)

	clock.advance(DefaultClickWindow + 10*time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: at}), false)

	if len(rec.events) != 0 {
		t.Fatalf("expected no select after window expiry, got %v", rec.kinds())
	}
}

func TestClick_DifferentElementAborts(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	elB := rectElement("b", KindRect, 300, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA, elB}}
	s, rec, _, clock := newTestSession(fs)

	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: geom.Point{X: 110, Y: 110}}), false)
	clock.advance(50 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 310, Y: 110}}), false)

	if len(rec.events) != 0 {
		t.Fatalf("expected no select when hit-test resolves elsewhere, got %v", rec.kinds())
	}

	// The failed second phase resets to idle: pointing again over a does
	// nothing either.
	clock.advance(10 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 110, Y: 110}}), false)
	if len(rec.events) != 0 {
		t.Errorf("expected idle composer after abort, got %v", rec.kinds())
	}
}

func TestClick_GracePeriodSurvivesMisreadLabels(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	at := geom.Point{X: 110, Y: 110}
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)

	// A momentarily misread label within the window keeps the pending
	// click alive.
	clock.advance(60 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "palm", index: at}), false)

	clock.advance(60 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: at}), false)

	if len(rec.ofKind(PointerSelect)) != 1 {
		t.Fatalf("expected select after in-window grace period, got %v", rec.kinds())
	}
}

func TestClick_StalePendingExpiresOnOtherGesture(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	at := geom.Point{X: 110, Y: 110}
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)

	// Continued pinch past the window resets to idle.
	clock.advance(DefaultClickWindow + time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)

	// So the next in-window point phase has nothing to complete.
	clock.advance(time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: at}), false)

	if len(rec.events) != 0 {
		t.Fatalf("expected stale pending click to expire, got %v", rec.kinds())
	}
}

func TestClick_NoHandsForcesIdle(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	at := geom.Point{X: 110, Y: 110}
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)

	// Hands vanish: pending click discarded regardless of elapsed time.
	s.Click(frameOf(s.canvas), false)

	clock.advance(10 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: at}), false)

	if len(rec.events) != 0 {
		t.Fatalf("expected discarded click after empty frame, got %v", rec.kinds())
	}
}

func TestClick_NonInteractableNeverArms(t *testing.T) {
	label := rectElement("label", KindText, 100, 100, 80, 20)
	fs := &fakeSurface{elements: []*Element{label}}
	s, rec, _, clock := newTestSession(fs)

	at := geom.Point{X: 110, Y: 110}
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: at}), false)
	clock.advance(50 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: at}), false)

	if len(rec.events) != 0 {
		t.Fatalf("expected no select over non-interactable target, got %v", rec.kinds())
	}
}

func TestClick_PinchOnlyWhileStillPinchedKeepsAnchor(t *testing.T) {
	// Re-pinching within the window does not move the recorded anchor.
	elA := rectElement("a", KindRect, 100, 100, 100, 100)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, clock := newTestSession(fs)

	first := geom.Point{X: 110, Y: 110}
	second := geom.Point{X: 180, Y: 180}

	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: first}), false)
	clock.advance(50 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "pinch", index: second}), false)
	clock.advance(50 * time.Millisecond)
	s.Click(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: second}), false)

	selects := rec.ofKind(PointerSelect)
	if len(selects) != 1 {
		t.Fatalf("expected one select, got %v", rec.kinds())
	}
	if selects[0].Point.Screen != first {
		t.Errorf("anchor moved: got %v, want %v", selects[0].Point.Screen, first)
	}
}
