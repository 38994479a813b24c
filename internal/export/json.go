// Package export persists delivered transition frames: a JSON frame log,
// per-frame SVG files, and an animated GIF recorder. Serialization lives
// outside the core engine; each exporter is just another render sink.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/plotmorph/internal/transition"
)

// FrameRecord is the logged metadata of one delivered frame.
type FrameRecord struct {
	Index    int     `json:"index"`
	Progress float64 `json:"progress"`
	Eased    float64 `json:"eased"`
	Elements int     `json:"elements"`
}

// JSONLog accumulates frame metadata and writes it as indented JSON.
type JSONLog struct {
	Easing    string        `json:"easing"`
	Duration  float64       `json:"duration"`
	FrameRate float64       `json:"frame_rate"`
	Frames    []FrameRecord `json:"frames"`
}

// NewJSONLog creates a log sink annotated with the transition parameters.
func NewJSONLog(easing string, duration, frameRate float64) *JSONLog {
	return &JSONLog{Easing: easing, Duration: duration, FrameRate: frameRate}
}

// Render records the frame's metadata.
func (l *JSONLog) Render(f transition.Frame) error {
	l.Frames = append(l.Frames, FrameRecord{
		Index:    f.Index,
		Progress: f.Progress,
		Eased:    f.Eased,
		Elements: f.Scene.Len(),
	})
	return nil
}

// Write encodes the log to w.
func (l *JSONLog) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// WriteFile encodes the log to a file.
func (l *JSONLog) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return l.Write(file)
}
