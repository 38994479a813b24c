package transition_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotmorph/internal/easing"
	"github.com/san-kum/plotmorph/internal/scene"
	"github.com/san-kum/plotmorph/internal/transition"
)

// collector records every delivered frame.
type collector struct {
	frames []transition.Frame
	fail   error
}

func (c *collector) Render(f transition.Frame) error {
	c.frames = append(c.frames, f)
	return c.fail
}

func curveSnapshot(y ...float64) *scene.Snapshot {
	x := make(scene.Vec, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return scene.NewSnapshot(
		scene.Viewport{XLim: [2]float64{0, float64(len(y))}, YLim: [2]float64{0, 10}},
		&scene.Curve{X: x, Y: scene.Vec(y), Stroke: scene.MustColor("blue")},
	)
}

var _ = Describe("Session", func() {
	var sink *collector

	BeforeEach(func() {
		sink = &collector{}
	})

	newSession := func(d transition.Descriptor) *transition.Session {
		s, err := transition.NewSession(d)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	Describe("frame scheduling", func() {
		It("derives totalFrames from duration and frame rate", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0, 0), To: curveSnapshot(10, 10),
				Duration: 2.0, FrameRate: 30, Sink: sink,
			})
			Expect(s.Total()).To(Equal(60))
		})

		It("delivers the first frame at progress 0 and the last at progress 1", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0, 0), To: curveSnapshot(10, 10),
				Duration: 2.0, FrameRate: 30, Sink: sink,
			})

			first, err := s.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Index).To(Equal(0))
			Expect(first.Progress).To(BeNumerically("~", 0, 1e-9))

			var last *transition.Frame
			for {
				f, err := s.Advance()
				if err != nil {
					break
				}
				last = f
			}
			Expect(last.Index).To(Equal(59))
			Expect(last.Progress).To(BeNumerically("~", 1, 1e-9))
			Expect(sink.frames).To(HaveLen(60))
		})

		It("delivers frames in strictly increasing index order", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(10),
				Duration: 0.5, FrameRate: 20, Sink: sink,
			})
			for {
				if _, err := s.Advance(); err != nil {
					break
				}
			}
			for i, f := range sink.frames {
				Expect(f.Index).To(Equal(i))
			}
		})

		It("blends paired drawables at the eased progress", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0, 0), To: curveSnapshot(10, 10),
				Duration: 1.0, FrameRate: 3, // 3 frames: progress 0, 0.5, 1
				EasingFunc: easing.Linear,
			})
			s.Advance()
			mid, err := s.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(mid.Progress).To(BeNumerically("~", 0.5, 1e-9))
			c := mid.Scene.Drawable(0).(*scene.Curve)
			Expect(c.Y[0]).To(BeNumerically("~", 5.0, 1e-9))
		})
	})

	Describe("lifecycle", func() {
		It("moves Pending -> Running -> Completed", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 1.0, FrameRate: 2,
			})
			Expect(s.State()).To(Equal(transition.StatePending))

			s.Advance()
			Expect(s.State()).To(Equal(transition.StateRunning))

			s.Advance()
			Expect(s.State()).To(Equal(transition.StateCompleted))

			_, err := s.Advance()
			Expect(err).To(MatchError(transition.ErrSessionEnded))
		})

		It("never delivers another frame after cancellation", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0, 0), To: curveSnapshot(10, 10),
				Duration: 2.0, FrameRate: 30, Sink: sink,
			})
			for i := 0; i <= 10; i++ { // frames 0..10
				_, err := s.Advance()
				Expect(err).NotTo(HaveOccurred())
			}
			s.Cancel()
			Expect(s.State()).To(Equal(transition.StateCancelled))

			_, err := s.Advance()
			Expect(err).To(MatchError(transition.ErrSessionEnded))
			Expect(sink.frames).To(HaveLen(11))
			Expect(sink.frames[len(sink.frames)-1].Index).To(Equal(10))
		})

		It("can be cancelled before the first tick", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 1, FrameRate: 30,
			})
			s.Cancel()
			_, err := s.Advance()
			Expect(err).To(MatchError(transition.ErrSessionEnded))
		})

		It("ignores Cancel after completion", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 0.01, FrameRate: 30,
			})
			s.Advance()
			Expect(s.State()).To(Equal(transition.StateCompleted))
			s.Cancel()
			Expect(s.State()).To(Equal(transition.StateCompleted))
		})
	})

	Describe("single-frame boundary", func() {
		// duration*frameRate < 2 collapses to one frame showing the final
		// state only; the initial state is never emitted.
		It("renders only the final state", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(10),
				Duration: 0.02, FrameRate: 30, Sink: sink,
			})
			Expect(s.Total()).To(Equal(1))

			f, err := s.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Progress).To(Equal(1.0))
			c := f.Scene.Drawable(0).(*scene.Curve)
			Expect(c.Y[0]).To(BeNumerically("~", 10, 1e-9))

			_, err = s.Advance()
			Expect(err).To(MatchError(transition.ErrSessionEnded))
		})
	})

	Describe("descriptor validation", func() {
		It("rejects non-positive duration", func() {
			_, err := transition.NewSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 0, FrameRate: 30,
			})
			var de transition.DescriptorError
			Expect(err).To(BeAssignableToTypeOf(de))
		})

		It("rejects non-positive frame rate", func() {
			_, err := transition.NewSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 1, FrameRate: -1,
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects nil snapshots", func() {
			_, err := transition.NewSession(transition.Descriptor{
				Duration: 1, FrameRate: 30,
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("recoverable failures", func() {
		It("records an unknown easing name and proceeds linearly", func() {
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(10),
				Duration: 1, FrameRate: 30, Easing: "bounce_hard",
			})
			Expect(s.Diagnostics()).To(HaveLen(1))
			var unknown easing.UnknownError
			Expect(s.Diagnostics()[0]).To(BeAssignableToTypeOf(unknown))

			f, err := s.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Eased).To(Equal(f.Progress))
		})

		It("skips kind-mismatched pairs and animates the rest", func() {
			from := scene.NewSnapshot(scene.Viewport{},
				&scene.Curve{X: scene.Vec{0}, Y: scene.Vec{0}},
				&scene.Curve{X: scene.Vec{0}, Y: scene.Vec{0}},
			)
			to := scene.NewSnapshot(scene.Viewport{},
				&scene.Curve{X: scene.Vec{1}, Y: scene.Vec{1}},
				&scene.Rect{H: 1},
			)
			s := newSession(transition.Descriptor{
				From: from, To: to, Duration: 1, FrameRate: 2,
			})
			Expect(s.Diagnostics()).To(HaveLen(1))

			f, _ := s.Advance()
			Expect(f.Scene.Len()).To(Equal(1))
		})

		It("drops unmatched trailing elements from every frame", func() {
			from := scene.NewSnapshot(scene.Viewport{},
				&scene.Rect{H: 1}, &scene.Rect{H: 2}, &scene.Rect{H: 3})
			to := scene.NewSnapshot(scene.Viewport{},
				&scene.Rect{H: 4}, &scene.Rect{H: 5})
			s := newSession(transition.Descriptor{
				From: from, To: to, Duration: 1, FrameRate: 10, Sink: sink,
			})
			for {
				if _, err := s.Advance(); err != nil {
					break
				}
			}
			for _, f := range sink.frames {
				Expect(f.Scene.Len()).To(Equal(2))
			}
		})

		It("treats sink failures as diagnostics, not session errors", func() {
			sink.fail = errSink
			s := newSession(transition.Descriptor{
				From: curveSnapshot(0), To: curveSnapshot(1),
				Duration: 1, FrameRate: 2, Sink: sink,
			})
			_, err := s.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Diagnostics()).NotTo(BeEmpty())
			Expect(s.Diagnostics()[0]).To(MatchError(errSink))
		})
	})
})

var errSink = errString("sink exploded")

type errString string

func (e errString) Error() string { return string(e) }
