// Package theme toggles scenes between light and dark palettes.
//
// This is a reversible property-copy collaborator, not part of the
// interpolation engine: applying a palette swaps colors in place on a live
// scene and restoring puts the originals back. The palette pair is an
// explicit configuration value and saved originals live in a registry keyed
// by a caller-chosen scene id with explicit Register/Unregister, so there is
// no process-wide mutable state and no reliance on GC hooks.
package theme

import (
	"fmt"

	"github.com/san-kum/plotmorph/internal/scene"
)

// Palette is one color scheme for scene chrome.
type Palette struct {
	Background scene.Color
	Text       scene.Color
	Grid       scene.Color
	Spine      scene.Color
}

// Scheme pairs the two palettes a toggler switches between.
type Scheme struct {
	Light Palette
	Dark  Palette
}

// DefaultScheme mirrors the stock light/dark palettes.
func DefaultScheme() Scheme {
	return Scheme{
		Light: Palette{
			Background: scene.MustColor("#ffffff"),
			Text:       scene.MustColor("#000000"),
			Grid:       scene.MustColor("#b0b0b0"),
			Spine:      scene.MustColor("#000000"),
		},
		Dark: Palette{
			Background: scene.MustColor("#121212"),
			Text:       scene.MustColor("#ffffff"),
			Grid:       scene.MustColor("#404040"),
			Spine:      scene.MustColor("#666666"),
		},
	}
}

// Target is the mutable scene surface a toggler operates on. The rendering
// collaborator's live plot implements it; snapshots do not, they are
// immutable.
type Target interface {
	Viewport() scene.Viewport
	SetViewport(scene.Viewport)
	Drawables() []scene.Drawable
}

// saved holds the original colors of one registered scene.
type saved struct {
	background scene.Color
	drawables  []drawableColors
}

type drawableColors struct {
	stroke, fill, edge scene.Color
	points             []scene.Color
}

// Toggler switches registered scenes between the scheme's palettes and
// restores their original appearance on the way back.
type Toggler struct {
	scheme Scheme
	// AdjustDataColors remaps data colors that would vanish against the new
	// background (e.g. black lines on a dark background). Restoration is
	// always exact regardless.
	AdjustDataColors bool

	saved map[string]*saved
}

// NewToggler creates a toggler for an explicit scheme.
func NewToggler(scheme Scheme) *Toggler {
	return &Toggler{scheme: scheme, saved: make(map[string]*saved)}
}

// Register captures the target's current colors under id. Registering the
// same id twice keeps the first capture so that restore always returns to
// the pre-toggle appearance.
func (t *Toggler) Register(id string, target Target) {
	if _, ok := t.saved[id]; ok {
		return
	}
	rec := &saved{background: target.Viewport().Background}
	for _, d := range target.Drawables() {
		rec.drawables = append(rec.drawables, captureColors(d))
	}
	t.saved[id] = rec
}

// Unregister drops the saved colors for id. The caller owns the lifecycle;
// nothing is unregistered implicitly.
func (t *Toggler) Unregister(id string) {
	delete(t.saved, id)
}

// Registered reports whether id has saved colors.
func (t *Toggler) Registered(id string) bool {
	_, ok := t.saved[id]
	return ok
}

// IsDark reports whether the target currently shows a dark background.
func (t *Toggler) IsDark(target Target) bool {
	return target.Viewport().Background.Brightness() < 0.5
}

// Toggle flips the target between modes: dark targets are restored to their
// registered appearance, light targets get the dark palette applied. The id
// must have been registered first.
func (t *Toggler) Toggle(id string, target Target) error {
	rec, ok := t.saved[id]
	if !ok {
		return fmt.Errorf("scene %q not registered with toggler", id)
	}
	if t.IsDark(target) {
		t.restore(rec, target)
		return nil
	}
	t.applyDark(target)
	return nil
}

func (t *Toggler) applyDark(target Target) {
	vp := target.Viewport()
	vp.Background = t.scheme.Dark.Background
	target.SetViewport(vp)

	if !t.AdjustDataColors {
		return
	}
	for _, d := range target.Drawables() {
		adjustForBackground(d, t.scheme.Dark)
	}
}

func (t *Toggler) restore(rec *saved, target Target) {
	vp := target.Viewport()
	vp.Background = rec.background
	target.SetViewport(vp)

	live := target.Drawables()
	n := len(live)
	if len(rec.drawables) < n {
		n = len(rec.drawables)
	}
	for i := 0; i < n; i++ {
		restoreColors(live[i], rec.drawables[i])
	}
}

func captureColors(d scene.Drawable) drawableColors {
	switch v := d.(type) {
	case *scene.Curve:
		return drawableColors{stroke: v.Stroke}
	case *scene.PointCloud:
		points := make([]scene.Color, len(v.Colors))
		copy(points, v.Colors)
		return drawableColors{points: points}
	case *scene.Rect:
		return drawableColors{fill: v.Fill, edge: v.Edge}
	default:
		return drawableColors{}
	}
}

func restoreColors(d scene.Drawable, c drawableColors) {
	switch v := d.(type) {
	case *scene.Curve:
		v.Stroke = c.stroke
	case *scene.PointCloud:
		copy(v.Colors, c.points)
	case *scene.Rect:
		v.Fill = c.fill
		v.Edge = c.edge
	}
}

// adjustForBackground lifts colors that would be invisible against the
// palette background. The threshold catches near-black defaults on a dark
// background.
func adjustForBackground(d scene.Drawable, p Palette) {
	switch v := d.(type) {
	case *scene.Curve:
		v.Stroke = liftColor(v.Stroke, p)
	case *scene.PointCloud:
		for i := range v.Colors {
			v.Colors[i] = liftColor(v.Colors[i], p)
		}
	case *scene.Rect:
		v.Fill = liftColor(v.Fill, p)
		v.Edge = liftColor(v.Edge, p)
	}
}

func liftColor(c scene.Color, p Palette) scene.Color {
	if c.IsZero() {
		return c
	}
	if diff := c.Brightness() - p.Background.Brightness(); diff < 0.2 && diff > -0.2 {
		return p.Text
	}
	return c
}
