package interact

import "github.com/ayusman/mudra/internal/detector"

// Click advances the two-phase click composer for every hand in the frame.
//
// A pinch over an interactable element arms a pending click recording the
// target, the interaction point and the arming time. If the hand
// transitions to the pointing gesture within the click window and a fresh
// hit-test still resolves to the same element, exactly one pointerselect
// fires carrying the originally recorded point. The window lapsing, or the
// pointing phase resolving elsewhere, silently discards the pending click.
// Other gesture labels inside the window are a grace period for momentary
// recognizer misreads and keep the pending click alive.
//
// A frame with no hands at all forces both hands back to idle.
func (s *Session) Click(f *detector.Frame, drawOnly bool) {
	if drawOnly {
		return
	}

	n := f.HandCount()
	if n == 0 {
		for _, st := range s.clicks {
			st.reset()
		}
		return
	}

	for i := 0; i < n; i++ {
		hand := ParseHandedness(f.Handedness[i])
		gesture := ParseGesture(f.Gestures[i])
		st := s.click(hand)

		if !st.pending {
			if gesture != GesturePinch {
				continue
			}
			pt := s.canvas.MapLandmark(f.Landmarks[i][detector.IndexTip])
			el := s.surface.HitTest(pt.Screen)
			if !el.Interactable() {
				continue
			}
			st.pending = true
			st.start = s.now()
			st.target = el
			st.anchor = pt
			continue
		}

		switch gesture {
		case GesturePoint:
			if s.now().Sub(st.start) <= s.clickWindow {
				pt := s.canvas.MapLandmark(f.Landmarks[i][detector.IndexTip])
				if el := s.surface.HitTest(pt.Screen); sameElement(el, st.target) {
					anchor := st.anchor
					s.emit(Event{
						Kind:   PointerSelect,
						Hand:   hand,
						Point:  &anchor,
						Target: st.target,
					})
				}
			}
			// Idle again whether the select fired or not.
			st.reset()
		default:
			// Grace period: the pending click survives unrelated labels
			// until the window lapses.
			if s.now().Sub(st.start) > s.clickWindow {
				st.reset()
			}
		}
	}
}
