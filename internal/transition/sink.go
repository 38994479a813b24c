package transition

import "errors"

// MultiSink fans each frame out to several sinks in order. All sinks see
// every frame even when one fails; the failures are joined.
type MultiSink []Sink

func (ms MultiSink) Render(f Frame) error {
	var errs []error
	for _, s := range ms {
		if err := s.Render(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
