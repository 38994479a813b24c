// Package render is the host plotting collaborator: a mutable live scene
// (Plot) that transitions are captured from, and sinks that turn delivered
// frames into terminal output.
package render

import (
	"github.com/san-kum/plotmorph/internal/scene"
)

// Plot is a mutable scene owned by the caller. It implements scene.Host for
// snapshot capture and theme.Target for palette toggling. It is not safe
// for concurrent mutation.
type Plot struct {
	vp        scene.Viewport
	drawables []scene.Drawable
}

// NewPlot creates an empty plot with a white background and unit limits.
func NewPlot() *Plot {
	return &Plot{
		vp: scene.Viewport{
			XLim:       [2]float64{0, 1},
			YLim:       [2]float64{0, 1},
			Background: scene.MustColor("white"),
		},
	}
}

// Viewport returns the current viewport.
func (p *Plot) Viewport() scene.Viewport { return p.vp }

// SetViewport replaces the viewport.
func (p *Plot) SetViewport(vp scene.Viewport) { p.vp = vp }

// Drawables returns the live elements in draw order. The returned elements
// are the plot's own mutable objects.
func (p *Plot) Drawables() []scene.Drawable {
	out := make([]scene.Drawable, len(p.drawables))
	copy(out, p.drawables)
	return out
}

// Line adds a curve and returns the live element for further mutation.
func (p *Plot) Line(x, y scene.Vec, stroke scene.Color) *scene.Curve {
	c := &scene.Curve{X: x.Clone(), Y: y.Clone(), Stroke: stroke, Width: 1.5, Style: "solid"}
	p.drawables = append(p.drawables, c)
	return c
}

// Scatter adds a point cloud with a uniform color and size.
func (p *Plot) Scatter(x, y scene.Vec, size float64, col scene.Color) *scene.PointCloud {
	pc := &scene.PointCloud{
		X: x.Clone(), Y: y.Clone(),
		Sizes:  scene.Vec{size},
		Colors: []scene.Color{col},
	}
	p.drawables = append(p.drawables, pc)
	return pc
}

// Bar adds one rectangle per height, centered on integer x positions.
func (p *Plot) Bar(heights scene.Vec, fill scene.Color) []*scene.Rect {
	rects := make([]*scene.Rect, len(heights))
	for i, h := range heights {
		r := &scene.Rect{X: float64(i) - 0.4, W: 0.8, H: h, Fill: fill}
		rects[i] = r
		p.drawables = append(p.drawables, r)
	}
	return rects
}

// Autoscale fits the axis limits to the current data with a 5% margin.
func (p *Plot) Autoscale() {
	first := true
	var xmin, xmax, ymin, ymax float64
	grow := func(x, y float64) {
		if first {
			xmin, xmax, ymin, ymax = x, x, y, y
			first = false
			return
		}
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
	}
	for _, d := range p.drawables {
		switch v := d.(type) {
		case *scene.Curve:
			for i := range v.X {
				grow(v.X[i], v.Y[i])
			}
		case *scene.PointCloud:
			for i := range v.X {
				grow(v.X[i], v.Y[i])
			}
		case *scene.Rect:
			grow(v.X, v.Y)
			grow(v.X+v.W, v.Y+v.H)
		}
	}
	if first {
		return
	}
	p.vp.XLim = padRange(xmin, xmax)
	p.vp.YLim = padRange(ymin, ymax)
}

func padRange(lo, hi float64) [2]float64 {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	m := span * 0.05
	return [2]float64{lo - m, hi + m}
}
