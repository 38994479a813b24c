package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/transition"
)

// SVGSink writes each frame as frame_NNNN.svg in Dir, drawing drawables as
// native SVG shapes with their interpolated colors.
type SVGSink struct {
	Dir    string
	Width  float64
	Height float64
}

// NewSVGSink creates a sink writing 640x480 frames into dir.
func NewSVGSink(dir string) *SVGSink {
	return &SVGSink{Dir: dir, Width: 640, Height: 480}
}

func (s *SVGSink) Render(f transition.Frame) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("frame_%04d.svg", f.Index))
	return os.WriteFile(path, []byte(s.frameSVG(f)), 0644)
}

func (s *SVGSink) frameSVG(f transition.Frame) string {
	vp := f.Scene.Viewport()
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&sb, "<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", vp.Background.Hex())

	for _, d := range f.Scene.Drawables() {
		switch v := d.(type) {
		case *scene.Curve:
			s.writeCurve(&sb, v, vp)
		case *scene.PointCloud:
			s.writePoints(&sb, v, vp)
		case *scene.Rect:
			s.writeRect(&sb, v, vp)
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVGSink) writeCurve(sb *strings.Builder, c *scene.Curve, vp scene.Viewport) {
	n := len(c.X)
	if len(c.Y) < n {
		n = len(c.Y)
	}
	if n < 2 {
		return
	}
	var pts strings.Builder
	for i := 0; i < n; i++ {
		px, py := s.project(c.X[i], c.Y[i], vp)
		fmt.Fprintf(&pts, "%.1f,%.1f ", px, py)
	}
	width := c.Width
	if width <= 0 {
		width = 1
	}
	fmt.Fprintf(sb, "<polyline points=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.1f\" stroke-opacity=\"%.3f\"/>\n",
		strings.TrimSpace(pts.String()), c.Stroke.Hex(), width, c.Stroke.A)
}

func (s *SVGSink) writePoints(sb *strings.Builder, p *scene.PointCloud, vp scene.Viewport) {
	n := len(p.X)
	if len(p.Y) < n {
		n = len(p.Y)
	}
	for i := 0; i < n; i++ {
		px, py := s.project(p.X[i], p.Y[i], vp)
		size := 50.0
		if len(p.Sizes) == 1 {
			size = p.Sizes[0]
		} else if i < len(p.Sizes) {
			size = p.Sizes[i]
		}
		col := scene.MustColor("blue")
		if len(p.Colors) == 1 {
			col = p.Colors[0]
		} else if i < len(p.Colors) {
			col = p.Colors[i]
		}
		// Marker area follows scatter size semantics.
		r := size / 15
		if r < 1 {
			r = 1
		}
		fmt.Fprintf(sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" fill-opacity=\"%.3f\"/>\n",
			px, py, r, col.Hex(), col.A)
	}
}

func (s *SVGSink) writeRect(sb *strings.Builder, r *scene.Rect, vp scene.Viewport) {
	x0, y0 := s.project(r.X, r.Y+r.H, vp)
	x1, y1 := s.project(r.X+r.W, r.Y, vp)
	edge := ""
	if !r.Edge.IsZero() {
		edge = fmt.Sprintf(" stroke=\"%s\"", r.Edge.Hex())
	}
	fmt.Fprintf(sb, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"%.3f\"%s/>\n",
		x0, y0, x1-x0, y1-y0, r.Fill.Hex(), r.Fill.A, edge)
}

func (s *SVGSink) project(x, y float64, vp scene.Viewport) (float64, float64) {
	xspan := vp.XLim[1] - vp.XLim[0]
	yspan := vp.YLim[1] - vp.YLim[0]
	if xspan == 0 {
		xspan = 1
	}
	if yspan == 0 {
		yspan = 1
	}
	px := (x - vp.XLim[0]) / xspan * s.Width
	py := (1 - (y-vp.YLim[0])/yspan) * s.Height
	return px, py
}
