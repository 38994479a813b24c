package render

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/transition"
)

// CanvasSink rasterizes each delivered frame onto a Braille canvas. The
// latest frame stays available through String until the next Render, which
// is what the live viewer displays.
type CanvasSink struct {
	canvas *Canvas
	last   transition.Frame
}

// NewCanvasSink creates a sink with a w x h character canvas.
func NewCanvasSink(w, h int) *CanvasSink {
	return &CanvasSink{canvas: NewCanvas(w, h)}
}

// Render draws the frame's transient scene.
func (s *CanvasSink) Render(f transition.Frame) error {
	s.last = f
	s.canvas.Clear()
	vp := f.Scene.Viewport()
	for _, d := range f.Scene.Drawables() {
		s.drawOne(d, vp)
	}
	return nil
}

// String returns the rendered text of the most recent frame.
func (s *CanvasSink) String() string { return s.canvas.String() }

// Last returns the most recently rendered frame.
func (s *CanvasSink) Last() transition.Frame { return s.last }

// Canvas exposes the underlying grid, e.g. for image export.
func (s *CanvasSink) Canvas() *Canvas { return s.canvas }

func (s *CanvasSink) drawOne(d scene.Drawable, vp scene.Viewport) {
	switch v := d.(type) {
	case *scene.Curve:
		n := len(v.X)
		if len(v.Y) < n {
			n = len(v.Y)
		}
		for i := 1; i < n; i++ {
			x0, y0 := s.project(v.X[i-1], v.Y[i-1], vp)
			x1, y1 := s.project(v.X[i], v.Y[i], vp)
			s.canvas.DrawLine(x0, y0, x1, y1)
		}
	case *scene.PointCloud:
		n := len(v.X)
		if len(v.Y) < n {
			n = len(v.Y)
		}
		for i := 0; i < n; i++ {
			x, y := s.project(v.X[i], v.Y[i], vp)
			s.canvas.DrawDot(x, y, dotRadius(v.Sizes, i))
		}
	case *scene.Rect:
		x0, y0 := s.project(v.X, v.Y, vp)
		x1, y1 := s.project(v.X+v.W, v.Y+v.H, vp)
		s.canvas.FillRect(x0, y0, x1, y1)
	}
}

// project maps data coordinates to sub-pixel canvas coordinates, flipping y
// so larger values render higher.
func (s *CanvasSink) project(x, y float64, vp scene.Viewport) (int, int) {
	cw := float64(s.canvas.Width*2 - 1)
	ch := float64(s.canvas.Height*4 - 1)
	xspan := vp.XLim[1] - vp.XLim[0]
	yspan := vp.YLim[1] - vp.YLim[0]
	if xspan == 0 {
		xspan = 1
	}
	if yspan == 0 {
		yspan = 1
	}
	px := (x - vp.XLim[0]) / xspan * cw
	py := (1 - (y-vp.YLim[0])/yspan) * ch
	return int(math.Round(px)), int(math.Round(py))
}

// dotRadius scales marker area (plotting convention) to a sub-pixel radius.
func dotRadius(sizes scene.Vec, i int) int {
	size := 50.0
	if len(sizes) == 1 {
		size = sizes[0]
	} else if i < len(sizes) {
		size = sizes[i]
	}
	r := int(math.Sqrt(size) / 5)
	if r < 0 {
		r = 0
	}
	if r > 4 {
		r = 4
	}
	return r
}

// AsciiSink prints every curve of each frame as an asciigraph chart,
// captioned with frame index and progress. Non-curve drawables are skipped;
// use CanvasSink for mixed scenes.
type AsciiSink struct {
	Out    io.Writer
	Width  int
	Height int
}

func NewAsciiSink(out io.Writer) *AsciiSink {
	return &AsciiSink{Out: out, Width: 60, Height: 10}
}

func (s *AsciiSink) Render(f transition.Frame) error {
	var series [][]float64
	for _, d := range f.Scene.Drawables() {
		if c, ok := d.(*scene.Curve); ok {
			series = append(series, c.Y)
		}
	}
	if len(series) == 0 {
		return nil
	}
	caption := fmt.Sprintf("frame %d/%d progress %.2f", f.Index, f.Total, f.Progress)
	var chart string
	if len(series) == 1 {
		chart = asciigraph.Plot(series[0],
			asciigraph.Height(s.Height),
			asciigraph.Width(s.Width),
			asciigraph.Caption(caption))
	} else {
		chart = asciigraph.PlotMany(series,
			asciigraph.Height(s.Height),
			asciigraph.Width(s.Width),
			asciigraph.Caption(caption))
	}
	_, err := fmt.Fprintf(s.Out, "%s\n\n", chart)
	return err
}
