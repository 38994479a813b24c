package scene

import (
	"errors"
	"testing"
)

type stubHost struct {
	vp Viewport
	ds []Drawable
}

func (h *stubHost) Viewport() Viewport    { return h.vp }
func (h *stubHost) Drawables() []Drawable { return h.ds }

func TestCaptureIsImmutable(t *testing.T) {
	curve := &Curve{X: Vec{0, 1}, Y: Vec{0, 1}, Stroke: MustColor("red")}
	host := &stubHost{
		vp: Viewport{XLim: [2]float64{0, 1}, Background: MustColor("white")},
		ds: []Drawable{curve},
	}
	snap := Capture(host)

	// Mutate the live scene after capture.
	curve.Y[0] = 99
	curve.Stroke = MustColor("blue")
	host.vp.XLim[1] = 42

	got := snap.Drawable(0).(*Curve)
	if got.Y[0] != 0 {
		t.Errorf("snapshot leaked live y mutation: %g", got.Y[0])
	}
	if got.Stroke != MustColor("red") {
		t.Errorf("snapshot leaked live color mutation: %+v", got.Stroke)
	}
	if snap.Viewport().XLim[1] != 1 {
		t.Errorf("snapshot leaked viewport mutation: %+v", snap.Viewport())
	}
}

func TestNewSnapshotClones(t *testing.T) {
	r := &Rect{X: 1, W: 2, H: 3}
	snap := NewSnapshot(Viewport{}, r)
	r.H = 99
	if snap.Drawable(0).(*Rect).H != 3 {
		t.Error("NewSnapshot must deep-copy drawables")
	}
}

// Pairing truncates to the shorter snapshot: the unmatched tail is dropped
// outright and never rendered, by design.
func TestPairsTruncation(t *testing.T) {
	from := NewSnapshot(Viewport{},
		&Rect{H: 1}, &Rect{H: 2}, &Rect{H: 3})
	to := NewSnapshot(Viewport{},
		&Rect{H: 4}, &Rect{H: 5})

	pairs, errs := Pairs(from, to)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected exactly 2 pairs, got %d", len(pairs))
	}
	for i, p := range pairs {
		if p.Index != i {
			t.Errorf("pair %d has index %d", i, p.Index)
		}
	}
}

func TestPairsKindMismatchSkipsPair(t *testing.T) {
	from := NewSnapshot(Viewport{},
		&Curve{X: Vec{0}, Y: Vec{0}},
		&Curve{X: Vec{0}, Y: Vec{0}},
	)
	to := NewSnapshot(Viewport{},
		&Curve{X: Vec{1}, Y: Vec{1}},
		&Rect{H: 1},
	)

	pairs, errs := Pairs(from, to)
	if len(pairs) != 1 || pairs[0].Index != 0 {
		t.Fatalf("expected only pair 0 to survive, got %+v", pairs)
	}
	if len(errs) != 1 {
		t.Fatalf("expected one structural error, got %v", errs)
	}
	var se StructureError
	if !errors.As(errs[0], &se) {
		t.Fatalf("expected StructureError, got %v", errs[0])
	}
	if se.Index != 1 || se.FromKind != KindCurve || se.ToKind != KindRect {
		t.Errorf("unexpected error detail: %+v", se)
	}
}

func TestDrawableClones(t *testing.T) {
	pc := &PointCloud{
		X: Vec{1}, Y: Vec{2}, Sizes: Vec{3},
		Colors: []Color{MustColor("red")},
	}
	clone := pc.Clone().(*PointCloud)
	pc.X[0] = 9
	pc.Colors[0] = MustColor("blue")
	if clone.X[0] != 1 || clone.Colors[0] != MustColor("red") {
		t.Error("PointCloud clone shares storage with original")
	}
}
