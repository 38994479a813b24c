package scene

// Snapshot is an immutable captured copy of a scene: the viewport plus the
// ordered drawables. Order is significant, it defines pairing during a
// transition. A snapshot is a value, not a live handle; mutating the host it
// was captured from has no effect on it.
type Snapshot struct {
	viewport  Viewport
	drawables []Drawable
}

// Capture reads every drawable's current properties and the viewport from
// the live scene handle, once, into a deep copy.
func Capture(h Host) *Snapshot {
	live := h.Drawables()
	drawables := make([]Drawable, len(live))
	for i, d := range live {
		drawables[i] = d.Clone()
	}
	return &Snapshot{
		viewport:  h.Viewport(),
		drawables: drawables,
	}
}

// NewSnapshot builds a snapshot directly from values, deep-copying the
// drawables. Used by the convenience session builders and by tests.
func NewSnapshot(vp Viewport, drawables ...Drawable) *Snapshot {
	ds := make([]Drawable, len(drawables))
	for i, d := range drawables {
		ds[i] = d.Clone()
	}
	return &Snapshot{viewport: vp, drawables: ds}
}

// Viewport returns the captured viewport.
func (s *Snapshot) Viewport() Viewport { return s.viewport }

// Len returns the number of drawables in the snapshot.
func (s *Snapshot) Len() int { return len(s.drawables) }

// Drawable returns the element at index i. Callers must not mutate it.
func (s *Snapshot) Drawable(i int) Drawable { return s.drawables[i] }

// Drawables returns the captured elements in order. The slice is a copy but
// the elements are shared; callers must treat them as read-only.
func (s *Snapshot) Drawables() []Drawable {
	out := make([]Drawable, len(s.drawables))
	copy(out, s.drawables)
	return out
}
