// Package transition schedules smooth morphs between two scene snapshots.
//
// A Session is pull-driven: it owns no timer or goroutine. An external
// driver (TUI loop, exporter, test) calls Advance once per intended frame
// and receives the interpolated transient scene. Sessions are independent;
// a single session must only be driven by its owner, concurrent Advance
// calls on one session are unsupported.
package transition

import (
	"math"

	"github.com/san-kum/plotmorph/internal/easing"
	"github.com/san-kum/plotmorph/internal/interp"
	"github.com/san-kum/plotmorph/internal/scene"
)

// DefaultEasing is used when the descriptor names none.
const DefaultEasing = "ease_in_out_quad"

// State is the session lifecycle. Running is entered on the first Advance;
// Completed and Cancelled are terminal.
type State int

const (
	StatePending State = iota
	StateRunning
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Frame is one delivered step of a transition.
type Frame struct {
	Index    int
	Total    int
	Progress float64 // normalized position in [0,1]
	Eased    float64 // easing-warped progress
	Scene    *scene.Snapshot
}

// Sink consumes transient interpolated scenes. It is a delivery target
// only; sinks never drive the session lifecycle.
type Sink interface {
	Render(f Frame) error
}

// Descriptor configures a session.
type Descriptor struct {
	From, To  *scene.Snapshot
	Duration  float64 // seconds, > 0
	FrameRate float64 // frames per second, > 0
	Easing    string  // registry name; DefaultEasing when empty
	// EasingFunc overrides Easing when non-nil. Custom functions may leave
	// [0,1]; the built-in registry never does.
	EasingFunc easing.Func
	Sink       Sink
}

// Session is the frame-scheduling state machine for one transition. It is
// owned by the caller that created it and mutated only through Advance and
// Cancel.
type Session struct {
	from, to *scene.Snapshot
	pairs    []scene.Pair
	ease     easing.Func
	sink     Sink

	frame int
	total int
	state State
	diags []error
}

// NewSession validates the descriptor and builds a session. Bad duration or
// frame rate is fatal. Structural mismatches between the snapshots and an
// unknown easing name are recoverable: they are recorded as diagnostics and
// the session proceeds without the affected pairs (or with linear easing).
func NewSession(d Descriptor) (*Session, error) {
	if d.From == nil || d.To == nil {
		return nil, DescriptorError{Field: "snapshots", Reason: "must not be nil"}
	}
	if d.Duration <= 0 {
		return nil, DescriptorError{Field: "duration", Reason: "must be positive"}
	}
	if d.FrameRate <= 0 {
		return nil, DescriptorError{Field: "frameRate", Reason: "must be positive"}
	}

	s := &Session{
		from:  d.From,
		to:    d.To,
		sink:  d.Sink,
		state: StatePending,
	}

	s.ease = d.EasingFunc
	if s.ease == nil {
		name := d.Easing
		if name == "" {
			name = DefaultEasing
		}
		fn, err := easing.ForName(name)
		if err != nil {
			s.diags = append(s.diags, err)
		}
		s.ease = fn
	}

	var structural []error
	s.pairs, structural = scene.Pairs(d.From, d.To)
	s.diags = append(s.diags, structural...)

	s.total = int(math.Floor(d.Duration * d.FrameRate))
	if s.total < 1 {
		s.total = 1
	}
	return s, nil
}

// Total returns the number of frames this session will deliver.
func (s *Session) Total() int { return s.total }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Diagnostics returns the recoverable errors accumulated so far, in the
// order they occurred. The user-visible effect of each is a partially
// static frame, not a failure.
func (s *Session) Diagnostics() []error {
	out := make([]error, len(s.diags))
	copy(out, s.diags)
	return out
}

// Cancel halts the session. It is valid from Pending or Running and takes
// effect before the next Advance; the last delivered frame's state is left
// as-is, there is no rollback. Cancelling a finished session is a no-op.
func (s *Session) Cancel() {
	if s.state == StatePending || s.state == StateRunning {
		s.state = StateCancelled
	}
}

// Advance computes and delivers the next frame.
//
// Progress is frameIndex/(total-1) clamped to [0,1]; a session with a single
// frame jumps straight to progress 1 and shows the final state only. The
// transient scene blends the viewport and every paired drawable at the eased
// progress; per-property and sink failures become diagnostics. Advance
// returns ErrSessionEnded once the session has completed or been cancelled.
func (s *Session) Advance() (*Frame, error) {
	switch s.state {
	case StateCompleted, StateCancelled:
		return nil, ErrSessionEnded
	case StatePending:
		s.state = StateRunning
	}

	idx := s.frame
	p := 1.0
	if s.total > 1 {
		p = easing.Clamp(float64(idx) / float64(s.total-1))
	}
	eased := s.ease(p)

	f := &Frame{
		Index:    idx,
		Total:    s.total,
		Progress: p,
		Eased:    eased,
		Scene:    s.compose(eased),
	}

	if s.sink != nil {
		if err := s.sink.Render(*f); err != nil {
			s.diags = append(s.diags, SinkError{Frame: idx, Err: err})
		}
	}

	s.frame++
	if s.frame >= s.total {
		s.state = StateCompleted
	}
	return f, nil
}

// compose builds the transient scene for one eased progress value.
func (s *Session) compose(eased float64) *scene.Snapshot {
	vp := interp.Viewport(s.from.Viewport(), s.to.Viewport(), eased)
	drawables := make([]scene.Drawable, 0, len(s.pairs))
	for _, pair := range s.pairs {
		d, errs := interp.Drawable(pair.From, pair.To, eased)
		s.diags = append(s.diags, errs...)
		drawables = append(drawables, d)
	}
	return scene.NewSnapshot(vp, drawables...)
}
