package transition

import (
	"fmt"

	"github.com/san-kum/plotmorph/internal/scene"
)

// Series is the convenience input form: raw values for a single drawable
// instead of full snapshots. Only the fields relevant to the plot kind are
// read; nil fields fall back to defaults (X defaults to point indices).
type Series struct {
	X, Y    scene.Vec // line, scatter
	Heights scene.Vec // bar
	Sizes   scene.Vec // scatter marker sizes, uniform when len == 1
	Color   string    // stroke/fill/marker color spec
}

// Plot kinds accepted by NewSeriesSession.
const (
	PlotLine    = "line"
	PlotScatter = "scatter"
	PlotBar     = "bar"
)

const (
	defaultColor      = "blue"
	defaultLineWidth  = 1.5
	defaultMarkerSize = 50
	defaultBarWidth   = 0.8
)

// NewSeriesSession builds a session from simple from/to value pairs for one
// drawable. The plot kind selects the drawable shape: "line" builds a curve
// from Y (and optional X), "scatter" a point cloud, "bar" one rectangle per
// height. Unknown kinds are fatal. Viewports are autoscaled per snapshot
// from the data so axis limits animate along with the values. Descriptor
// From/To are ignored.
func NewSeriesSession(plotKind string, from, to Series, d Descriptor) (*Session, error) {
	var diags []error

	fromSnap, err := seriesSnapshot(plotKind, from, &diags)
	if err != nil {
		return nil, err
	}
	toSnap, err := seriesSnapshot(plotKind, to, &diags)
	if err != nil {
		return nil, err
	}

	d.From, d.To = fromSnap, toSnap
	s, err := NewSession(d)
	if err != nil {
		return nil, err
	}
	s.diags = append(s.diags, diags...)
	return s, nil
}

// seriesSnapshot normalizes one Series into a single-drawable snapshot.
// Color parse failures are recoverable: the default color is used and the
// error recorded.
func seriesSnapshot(plotKind string, s Series, diags *[]error) (*scene.Snapshot, error) {
	col := parseSeriesColor(s.Color, diags)

	switch plotKind {
	case PlotLine:
		if s.Y == nil {
			return nil, DescriptorError{Field: "series", Reason: "line plot requires y values"}
		}
		x := s.X
		if x == nil {
			x = indexVec(len(s.Y))
		}
		curve := &scene.Curve{
			X: x, Y: s.Y,
			Stroke: col,
			Width:  defaultLineWidth,
			Style:  "solid",
		}
		return scene.NewSnapshot(autoscale(x, s.Y), curve), nil

	case PlotScatter:
		if s.X == nil || s.Y == nil {
			return nil, DescriptorError{Field: "series", Reason: "scatter plot requires x and y values"}
		}
		sizes := s.Sizes
		if sizes == nil {
			sizes = scene.Vec{defaultMarkerSize}
		}
		points := &scene.PointCloud{
			X: s.X, Y: s.Y,
			Sizes:  sizes,
			Colors: []scene.Color{col},
		}
		return scene.NewSnapshot(autoscale(s.X, s.Y), points), nil

	case PlotBar:
		if s.Heights == nil {
			return nil, DescriptorError{Field: "series", Reason: "bar plot requires heights"}
		}
		bars := make([]scene.Drawable, len(s.Heights))
		xs := make(scene.Vec, len(s.Heights))
		for i, h := range s.Heights {
			xs[i] = float64(i)
			bars[i] = &scene.Rect{
				X:    float64(i) - defaultBarWidth/2,
				W:    defaultBarWidth,
				H:    h,
				Fill: col,
			}
		}
		vp := autoscale(xs, append(scene.Vec{0}, s.Heights...))
		return scene.NewSnapshot(vp, bars...), nil

	default:
		return nil, DescriptorError{
			Field:  "plotKind",
			Reason: fmt.Sprintf("unknown plot kind %q", plotKind),
		}
	}
}

func parseSeriesColor(spec string, diags *[]error) scene.Color {
	if spec == "" {
		spec = defaultColor
	}
	col, err := scene.ParseColor(spec)
	if err != nil {
		*diags = append(*diags, err)
		col = scene.MustColor(defaultColor)
	}
	return col
}

func indexVec(n int) scene.Vec {
	v := make(scene.Vec, n)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}

// autoscale derives viewport limits from the data with a 5% margin, the way
// a plotting host would autoscale its axes.
func autoscale(x, y scene.Vec) scene.Viewport {
	xmin, xmax := bounds(x)
	ymin, ymax := bounds(y)
	return scene.Viewport{
		XLim:       pad(xmin, xmax),
		YLim:       pad(ymin, ymax),
		Background: scene.MustColor("white"),
	}
}

func bounds(v scene.Vec) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 1
	}
	lo, hi = v[0], v[0]
	for _, val := range v[1:] {
		if val < lo {
			lo = val
		}
		if val > hi {
			hi = val
		}
	}
	return lo, hi
}

func pad(lo, hi float64) [2]float64 {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	margin := span * 0.05
	return [2]float64{lo - margin, hi + margin}
}
