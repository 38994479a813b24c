// Package scene defines the immutable scene model the transition engine
// blends: drawable elements, the viewport, snapshots, and the positional
// diff between two snapshots.
package scene

// Vec is a fixed-length ordered sequence of reals, used for coordinate
// arrays and per-point attributes.
type Vec []float64

// Clone returns an independent copy of the vector.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	c := make(Vec, len(v))
	copy(c, v)
	return c
}

// Kind tags the closed set of drawable variants. Interpolation dispatch is
// resolved once per pairing from this tag, never by runtime inspection.
type Kind int

const (
	KindCurve Kind = iota
	KindPoints
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "curve"
	case KindPoints:
		return "points"
	case KindRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Drawable is one visual element within a scene. The concrete types form a
// closed tagged union; Clone produces a deep copy so snapshots stay
// independent of the live scene they were captured from.
type Drawable interface {
	Kind() Kind
	Clone() Drawable
}

// Curve is an ordered polyline with stroke styling.
type Curve struct {
	X, Y       Vec
	Stroke     Color
	Width      float64
	Style      string // line style token, e.g. "solid", "dashed"
	Marker     string
	MarkerSize float64
}

func (c *Curve) Kind() Kind { return KindCurve }

func (c *Curve) Clone() Drawable {
	out := *c
	out.X = c.X.Clone()
	out.Y = c.Y.Clone()
	return &out
}

// PointCloud is an ordered set of 2D positions with per-point size and color.
// Sizes and Colors may hold a single element meaning "uniform", or one entry
// per point. Nil means the attribute is absent.
type PointCloud struct {
	X, Y   Vec
	Sizes  Vec
	Colors []Color
}

func (p *PointCloud) Kind() Kind { return KindPoints }

func (p *PointCloud) Clone() Drawable {
	out := *p
	out.X = p.X.Clone()
	out.Y = p.Y.Clone()
	out.Sizes = p.Sizes.Clone()
	if p.Colors != nil {
		out.Colors = make([]Color, len(p.Colors))
		copy(out.Colors, p.Colors)
	}
	return &out
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	X, Y float64
	W, H float64
	Fill Color
	Edge Color
}

func (r *Rect) Kind() Kind { return KindRect }

func (r *Rect) Clone() Drawable {
	out := *r
	return &out
}

// Viewport holds the axis ranges and chrome of a scene.
type Viewport struct {
	XLim, YLim [2]float64
	Background Color
	Title      string
	XLabel     string
	YLabel     string
}

// Host is the live scene handle exposed by the rendering collaborator.
// Capture reads it exactly once; the engine never writes through it.
type Host interface {
	Viewport() Viewport
	Drawables() []Drawable
}
