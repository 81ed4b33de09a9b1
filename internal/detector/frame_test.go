package detector

import "testing"

func TestFrameAligned(t *testing.T) {
	tests := []struct {
		name  string
		frame *Frame
		want  bool
	}{
		{
			name:  "nil frame",
			frame: nil,
			want:  false,
		},
		{
			name:  "empty frame",
			frame: &Frame{},
			want:  false,
		},
		{
			name: "aligned single hand",
			frame: &Frame{
				Landmarks:  []Landmarks{PointingLandmarks(0.5, 0.5)},
				Handedness: []string{"right"},
				Gestures:   []string{"one"},
			},
			want: true,
		},
		{
			name: "missing gesture list",
			frame: &Frame{
				Landmarks:  []Landmarks{PointingLandmarks(0.5, 0.5)},
				Handedness: []string{"right"},
			},
			want: false,
		},
		{
			name: "handedness length mismatch",
			frame: &Frame{
				Landmarks:  []Landmarks{PointingLandmarks(0.5, 0.5)},
				Handedness: []string{"right", "left"},
				Gestures:   []string{"one"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.Aligned(); got != tt.want {
				t.Errorf("Aligned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameHandCount(t *testing.T) {
	f := &Frame{
		Landmarks:  []Landmarks{PointingLandmarks(0.2, 0.3), OKLandmarks(0.7, 0.4)},
		Handedness: []string{"right", "left"},
		Gestures:   []string{"one", "ok"},
	}
	if got := f.HandCount(); got != 2 {
		t.Errorf("HandCount() = %d, want 2", got)
	}

	misaligned := &Frame{
		Landmarks: []Landmarks{PointingLandmarks(0.2, 0.3)},
		Gestures:  []string{"one"},
	}
	if got := misaligned.HandCount(); got != 0 {
		t.Errorf("HandCount() = %d for misaligned frame, want 0", got)
	}
}

func TestFixtureFingertips(t *testing.T) {
	lm := PointingLandmarks(0.25, 0.4)
	if lm[IndexTip].X != 0.25 || lm[IndexTip].Y != 0.4 {
		t.Errorf("index tip at (%f, %f), want (0.25, 0.4)", lm[IndexTip].X, lm[IndexTip].Y)
	}

	grab := GrabLandmarks(0.5, 0.5, 0.1)
	for _, idx := range Fingertips {
		p := grab[idx]
		if p.X < 0.3 || p.X > 0.7 || p.Y < 0.3 || p.Y > 0.7 {
			t.Errorf("fingertip %d at (%f, %f) outside expected spread", idx, p.X, p.Y)
		}
	}

	ok := OKLandmarks(0.6, 0.3)
	if ok[ThumbTip].X <= ok[IndexTip].X {
		t.Errorf("expected thumb tip beside index tip, got thumb=%v index=%v",
			ok[ThumbTip], ok[IndexTip])
	}
}
