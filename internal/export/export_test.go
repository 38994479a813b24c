package export

import (
	"bytes"
	"encoding/json"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/transition"
)

func frameAt(idx int, progress float64) transition.Frame {
	snap := scene.NewSnapshot(
		scene.Viewport{
			XLim: [2]float64{0, 4}, YLim: [2]float64{0, 4},
			Background: scene.MustColor("white"),
		},
		&scene.Curve{
			X: scene.Vec{0, 1, 2, 3, 4}, Y: scene.Vec{0, 2, 4, 2, 0},
			Stroke: scene.MustColor("steelblue"), Width: 1.5,
		},
		&scene.Rect{X: 1, Y: 0, W: 1, H: 2, Fill: scene.MustColor("tomato")},
	)
	return transition.Frame{Index: idx, Total: 5, Progress: progress, Eased: progress, Scene: snap}
}

func TestJSONLog(t *testing.T) {
	log := NewJSONLog("ease_in_out_quad", 1.0, 30)
	log.Render(frameAt(0, 0))
	log.Render(frameAt(1, 0.5))

	var buf bytes.Buffer
	if err := log.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded JSONLog
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Easing != "ease_in_out_quad" || len(decoded.Frames) != 2 {
		t.Errorf("unexpected log %+v", decoded)
	}
	if decoded.Frames[1].Progress != 0.5 || decoded.Frames[1].Elements != 2 {
		t.Errorf("unexpected frame record %+v", decoded.Frames[1])
	}
}

func TestJSONLogWriteFile(t *testing.T) {
	log := NewJSONLog("linear", 1.0, 10)
	log.Render(frameAt(0, 1))

	path := filepath.Join(t.TempDir(), "frames.json")
	if err := log.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !json.Valid(data) {
		t.Error("file does not contain valid JSON")
	}
}

func TestSVGSink(t *testing.T) {
	dir := t.TempDir()
	s := NewSVGSink(dir)
	if err := s.Render(frameAt(7, 0.5)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frame_0007.svg"))
	if err != nil {
		t.Fatalf("frame file missing: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("output is not an svg document")
	}
	if !strings.Contains(svg, "<polyline") {
		t.Error("curve not rendered as polyline")
	}
	if !strings.Contains(svg, "<rect") {
		t.Error("rect not rendered")
	}
	if !strings.Contains(svg, scene.MustColor("steelblue").Hex()) {
		t.Error("stroke color missing from output")
	}
}

func TestSVGSinkPoints(t *testing.T) {
	dir := t.TempDir()
	s := NewSVGSink(dir)
	snap := scene.NewSnapshot(
		scene.Viewport{XLim: [2]float64{0, 1}, YLim: [2]float64{0, 1}},
		&scene.PointCloud{
			X: scene.Vec{0.5}, Y: scene.Vec{0.5},
			Sizes: scene.Vec{60}, Colors: []scene.Color{scene.MustColor("orchid")},
		},
	)
	if err := s.Render(transition.Frame{Index: 0, Scene: snap}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "frame_0000.svg"))
	if !strings.Contains(string(data), "<circle") {
		t.Error("points not rendered as circles")
	}
}

func TestGIFSink(t *testing.T) {
	g := NewGIFSink(20, 8, 30)
	for i := 0; i < 3; i++ {
		if err := g.Render(frameAt(i, float64(i)/2)); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "anim.gif")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("output is not a valid gif: %v", err)
	}
	if len(decoded.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(decoded.Image))
	}
	if decoded.Delay[0] != 3 { // int(100/30)
		t.Errorf("unexpected delay %d", decoded.Delay[0])
	}
}

func TestGIFSinkSaveEmpty(t *testing.T) {
	g := NewGIFSink(10, 4, 30)
	if err := g.Save(filepath.Join(t.TempDir(), "empty.gif")); err == nil {
		t.Error("expected error when no frames were recorded")
	}
}
