// Package interp blends pairs of scene values at a given progress.
//
// Dispatch is type-directed over the closed set of value kinds: scalars and
// vectors blend linearly, colors blend per RGBA channel, categorical tokens
// switch hard at progress 0.5. A property present on only one side is passed
// through unchanged for every frame instead of failing.
package interp

import (
	"fmt"

	"github.com/san-kum/plotmorph/internal/scene"
)

// ValueError reports a per-property shape or type mismatch. The property
// falls back to its "from" value; the transition is not aborted.
type ValueError struct {
	Property string
	Reason   string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("property %s: %s, keeping source value", e.Property, e.Reason)
}

// Scalar blends two reals linearly.
func Scalar(a, b, p float64) float64 {
	return a + (b-a)*p
}

// Vector blends two vectors elementwise. Vectors must be the same length;
// mismatched lengths are a ValueError, never a silent truncation. A nil
// vector on one side means the property is absent there, and the present
// side is returned unchanged.
func Vector(a, b scene.Vec, p float64) (scene.Vec, error) {
	if a == nil {
		return b.Clone(), nil
	}
	if b == nil {
		return a.Clone(), nil
	}
	if len(a) != len(b) {
		return a.Clone(), ValueError{
			Property: "vector",
			Reason:   fmt.Sprintf("length mismatch %d vs %d", len(a), len(b)),
		}
	}
	out := make(scene.Vec, len(a))
	for i := range a {
		out[i] = Scalar(a[i], b[i], p)
	}
	return out, nil
}

// Color blends per channel, alpha included. A zero (absent) color on one
// side passes the present side through.
func Color(a, b scene.Color, p float64) scene.Color {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	return a.Lerp(b, p)
}

// Categorical switches from a to b exactly at progress 0.5: the result is a
// while p < 0.5 and b otherwise. The strict < on the boundary is part of the
// contract. Discrete tokens cannot blend, so this is a hard cut by design.
// An empty token on one side passes the present side through.
func Categorical(a, b string, p float64) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if p < 0.5 {
		return a
	}
	return b
}

// Viewport blends axis limits and background, and switches the text chrome
// categorically.
func Viewport(a, b scene.Viewport, p float64) scene.Viewport {
	return scene.Viewport{
		XLim:       [2]float64{Scalar(a.XLim[0], b.XLim[0], p), Scalar(a.XLim[1], b.XLim[1], p)},
		YLim:       [2]float64{Scalar(a.YLim[0], b.YLim[0], p), Scalar(a.YLim[1], b.YLim[1], p)},
		Background: Color(a.Background, b.Background, p),
		Title:      Categorical(a.Title, b.Title, p),
		XLabel:     Categorical(a.XLabel, b.XLabel, p),
		YLabel:     Categorical(a.YLabel, b.YLabel, p),
	}
}

// Drawable blends a kind-matched pair at progress p. Per-property mismatches
// are returned as ValueError diagnostics while the affected property keeps
// its source value; the blended drawable is always usable. Both drawables
// must share the same kind; the diff layer guarantees this.
func Drawable(a, b scene.Drawable, p float64) (scene.Drawable, []error) {
	switch from := a.(type) {
	case *scene.Curve:
		return blendCurve(from, b.(*scene.Curve), p)
	case *scene.PointCloud:
		return blendPoints(from, b.(*scene.PointCloud), p)
	case *scene.Rect:
		return blendRect(from, b.(*scene.Rect), p), nil
	default:
		return a.Clone(), []error{ValueError{
			Property: "drawable",
			Reason:   fmt.Sprintf("unsupported kind %s", a.Kind()),
		}}
	}
}

func blendCurve(a, b *scene.Curve, p float64) (scene.Drawable, []error) {
	var errs []error
	x, err := Vector(a.X, b.X, p)
	if err != nil {
		errs = append(errs, propErr("curve.x", err))
	}
	y, err := Vector(a.Y, b.Y, p)
	if err != nil {
		errs = append(errs, propErr("curve.y", err))
	}
	return &scene.Curve{
		X:          x,
		Y:          y,
		Stroke:     Color(a.Stroke, b.Stroke, p),
		Width:      Scalar(a.Width, b.Width, p),
		Style:      Categorical(a.Style, b.Style, p),
		Marker:     Categorical(a.Marker, b.Marker, p),
		MarkerSize: Scalar(a.MarkerSize, b.MarkerSize, p),
	}, errs
}

func blendPoints(a, b *scene.PointCloud, p float64) (scene.Drawable, []error) {
	var errs []error
	x, err := Vector(a.X, b.X, p)
	if err != nil {
		errs = append(errs, propErr("points.x", err))
	}
	y, err := Vector(a.Y, b.Y, p)
	if err != nil {
		errs = append(errs, propErr("points.y", err))
	}
	sizes, err := Vector(a.Sizes, b.Sizes, p)
	if err != nil {
		errs = append(errs, propErr("points.sizes", err))
	}
	colors, err := blendColorSlice(a.Colors, b.Colors, p)
	if err != nil {
		errs = append(errs, err)
	}
	return &scene.PointCloud{X: x, Y: y, Sizes: sizes, Colors: colors}, errs
}

func blendRect(a, b *scene.Rect, p float64) scene.Drawable {
	return &scene.Rect{
		X:    Scalar(a.X, b.X, p),
		Y:    Scalar(a.Y, b.Y, p),
		W:    Scalar(a.W, b.W, p),
		H:    Scalar(a.H, b.H, p),
		Fill: Color(a.Fill, b.Fill, p),
		Edge: Color(a.Edge, b.Edge, p),
	}
}

func blendColorSlice(a, b []scene.Color, p float64) ([]scene.Color, error) {
	if a == nil {
		return cloneColors(b), nil
	}
	if b == nil {
		return cloneColors(a), nil
	}
	if len(a) != len(b) {
		return cloneColors(a), ValueError{
			Property: "points.colors",
			Reason:   fmt.Sprintf("length mismatch %d vs %d", len(a), len(b)),
		}
	}
	out := make([]scene.Color, len(a))
	for i := range a {
		out[i] = Color(a[i], b[i], p)
	}
	return out, nil
}

func cloneColors(cs []scene.Color) []scene.Color {
	if cs == nil {
		return nil
	}
	out := make([]scene.Color, len(cs))
	copy(out, cs)
	return out
}

func propErr(property string, err error) error {
	if ve, ok := err.(ValueError); ok {
		ve.Property = property
		return ve
	}
	return err
}
