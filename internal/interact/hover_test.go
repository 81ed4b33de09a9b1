package interact

import (
	"testing"

	"github.com/ayusman/mudra/internal/geom"
)

func TestPointHover_EnterStableLeave(t *testing.T) {
	// End-to-end scenario: pointing held over A for 3 frames, moved off for
	// 1 frame, then the gesture changes away.
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, _ := newTestSession(fs)

	onA := geom.Point{X: 125, Y: 125}
	offA := geom.Point{X: 400, Y: 400}

	// Frame 1: enter A.
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: onA}), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOver {
		t.Fatalf("frame 1: expected single pointerover, got %v", kinds)
	}
	if rec.events[0].Target.ID != "a" || rec.events[0].Hand != Right {
		t.Errorf("frame 1: wrong target/hand: %+v", rec.events[0])
	}

	// Frames 2-3: no new events while hovering the same element.
	rec.reset()
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: onA}), false)
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: onA}), false)
	if len(rec.events) != 0 {
		t.Fatalf("frames 2-3: expected no events, got %v", rec.kinds())
	}

	// Frame 4: fingertip off every element emits leave(A).
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: offA}), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOut {
		t.Fatalf("frame 4: expected single pointerout, got %v", kinds)
	}

	// Frame 5: gesture mismatch produces no point-hover events.
	rec.reset()
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "grabbing", index: onA}), false)
	if len(rec.events) != 0 {
		t.Fatalf("frame 5: expected no events on gesture change, got %v", rec.kinds())
	}
}

func TestPointHover_SwitchBetweenElements(t *testing.T) {
	elA := rectElement("a", KindRect, 100, 100, 50, 50)
	elB := rectElement("b", KindEllipse, 300, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA, elB}}
	s, rec, _, _ := newTestSession(fs)

	s.PointHover(frameOf(s.canvas, testHand{hand: "left", gesture: "one", index: geom.Point{X: 110, Y: 110}}), false)
	s.PointHover(frameOf(s.canvas, testHand{hand: "left", gesture: "one", index: geom.Point{X: 310, Y: 110}}), false)

	kinds := rec.kinds()
	want := []EventKind{PointerOver, PointerOut, PointerOver}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, kinds)
		}
	}
	if rec.events[1].Target.ID != "a" || rec.events[2].Target.ID != "b" {
		t.Errorf("wrong leave/enter targets: %v -> %v",
			rec.events[1].Target.ID, rec.events[2].Target.ID)
	}
}

func TestPointHover_NonInteractableTarget(t *testing.T) {
	// Text containers are hit-testable but never receive enter events.
	label := rectElement("label", KindText, 100, 100, 80, 20)
	elA := rectElement("a", KindRect, 300, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{label, elA}}
	s, rec, _, _ := newTestSession(fs)

	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 110, Y: 110}}), false)
	if len(rec.events) != 0 {
		t.Fatalf("expected no events over text element, got %v", rec.kinds())
	}

	// Moving from the text element onto an interactable one: enter only,
	// the text element was never entered so it gets no leave.
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 310, Y: 110}}), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOver {
		t.Fatalf("expected single pointerover, got %v", kinds)
	}
}

func TestPointHover_HandDisappearance(t *testing.T) {
	elA := rectElement("a", KindCircle, 100, 100, 50, 50)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, _ := newTestSession(fs)

	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 125, Y: 125}}), false)
	rec.reset()

	// Empty frame: hover memory clears with a paired leave.
	s.PointHover(frameOf(s.canvas), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOut {
		t.Fatalf("expected pointerout on hand disappearance, got %v", kinds)
	}

	// Reappearing over the same element is a fresh enter.
	rec.reset()
	s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 125, Y: 125}}), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOver {
		t.Fatalf("expected pointerover on reappearance, got %v", kinds)
	}
}

func TestAreaHover_EnterAndLeaveAtBoundsCenter(t *testing.T) {
	elA := rectElement("a", KindCircle, 180, 220, 40, 40)
	elB := rectElement("b", KindRect, 260, 220, 40, 40)
	fs := &fakeSurface{elements: []*Element{elA, elB}}
	s, rec, fb, _ := newTestSession(fs)

	// A grasp circle wide enough to cover both elements.
	s.AreaHover(grabFrame(s.canvas, "right", geom.Point{X: 240, Y: 240}, 80), false)

	overs := rec.ofKind(PointerOver)
	if len(overs) != 2 {
		t.Fatalf("expected 2 enter events, got %v", rec.kinds())
	}
	for _, ev := range overs {
		wantCenter := ev.Target.Bounds.Center()
		if ev.Point.Screen != wantCenter {
			t.Errorf("enter for %s at %v, want bounds center %v",
				ev.Target.ID, ev.Point.Screen, wantCenter)
		}
	}
	if fb.hoverAreas != 1 {
		t.Errorf("expected 1 hover-area drawing call, got %d", fb.hoverAreas)
	}

	// Shrink the grasp around element A only: B gets its leave.
	rec.reset()
	s.AreaHover(grabFrame(s.canvas, "right", geom.Point{X: 200, Y: 240}, 25), false)

	outs := rec.ofKind(PointerOut)
	if len(outs) != 1 || outs[0].Target.ID != "b" {
		t.Fatalf("expected single leave for b, got %v", rec.kinds())
	}
	if len(rec.ofKind(PointerOver)) != 0 {
		t.Errorf("element a re-entered without leaving: %v", rec.kinds())
	}
}

func TestAreaHover_DegenerateCircleClears(t *testing.T) {
	elA := rectElement("a", KindCircle, 180, 220, 40, 40)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, _ := newTestSession(fs)

	s.AreaHover(grabFrame(s.canvas, "right", geom.Point{X: 200, Y: 240}, 30), false)
	if len(rec.ofKind(PointerOver)) != 1 {
		t.Fatalf("expected one enter, got %v", rec.kinds())
	}

	// All five fingertips coincident: zero radius, no hover region, prior
	// set fully cleared.
	rec.reset()
	s.AreaHover(grabFrame(s.canvas, "right", geom.Point{X: 200, Y: 240}, 0), false)

	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOut {
		t.Fatalf("expected single pointerout, got %v", kinds)
	}
	if len(rec.ofKind(PointerOver)) != 0 {
		t.Errorf("sample-driven enter fired for a degenerate circle")
	}
}

func TestAreaHover_GestureChangeClearsSet(t *testing.T) {
	elA := rectElement("a", KindCircle, 180, 220, 40, 40)
	fs := &fakeSurface{elements: []*Element{elA}}
	s, rec, _, _ := newTestSession(fs)

	s.AreaHover(grabFrame(s.canvas, "right", geom.Point{X: 200, Y: 240}, 30), false)
	rec.reset()

	// Same hand, different gesture: whole set clears with leaves.
	s.AreaHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: geom.Point{X: 200, Y: 240}}), false)
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != PointerOut {
		t.Fatalf("expected pointerout on gesture change, got %v", kinds)
	}
}

func TestHoverAlternation(t *testing.T) {
	// Enter and leave alternate per element across an arbitrary wander.
	elA := rectElement("a", KindRect, 100, 100, 60, 60)
	elB := rectElement("b", KindCircle, 300, 100, 60, 60)
	fs := &fakeSurface{elements: []*Element{elA, elB}}
	s, rec, _, _ := newTestSession(fs)

	path := []geom.Point{
		{X: 130, Y: 130}, {X: 130, Y: 131}, {X: 330, Y: 130}, {X: 500, Y: 400},
		{X: 130, Y: 130}, {X: 330, Y: 130}, {X: 330, Y: 131}, {X: 130, Y: 130},
	}
	for _, p := range path {
		s.PointHover(frameOf(s.canvas, testHand{hand: "right", gesture: "one", index: p}), false)
	}

	entered := map[string]bool{}
	for _, ev := range rec.events {
		id := ev.Target.ID
		switch ev.Kind {
		case PointerOver:
			if entered[id] {
				t.Fatalf("consecutive enter for %s without leave", id)
			}
			entered[id] = true
		case PointerOut:
			if !entered[id] {
				t.Fatalf("leave for %s without prior enter", id)
			}
			entered[id] = false
		}
	}
}
