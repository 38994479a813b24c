// Package easing provides named time-warp functions for transitions.
//
// Every function maps clamped progress t in [0,1] to warped progress, with
// f(0) = 0 and f(1) = 1. The formulas come from github.com/fogleman/ease and
// follow the canonical family (ease_in_out_cubic is 4t³ for t < 0.5 and
// 1 − 4(1−t)³ otherwise).
package easing

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// Func warps normalized progress. Custom functions supplied by callers may
// return values outside [0,1]; the built-in library never does.
type Func func(t float64) float64

// Linear is the identity warp and the fallback for unknown names.
var Linear Func = ease.Linear

var registry = map[string]Func{
	"linear":            ease.Linear,
	"ease_in_quad":      ease.InQuad,
	"ease_out_quad":     ease.OutQuad,
	"ease_in_out_quad":  ease.InOutQuad,
	"ease_in_cubic":     ease.InCubic,
	"ease_out_cubic":    ease.OutCubic,
	"ease_in_out_cubic": ease.InOutCubic,
	"ease_in_sine":      ease.InSine,
	"ease_out_sine":     ease.OutSine,
	"ease_in_out_sine":  ease.InOutSine,
}

// UnknownError reports an easing name that is not in the registry. The caller
// still receives a usable function (linear), so this error is advisory.
type UnknownError struct {
	Name string
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown easing %q, falling back to linear", e.Name)
}

// ForName resolves an easing function by registry name. Unknown names return
// Linear together with an UnknownError; callers that care can record the
// error as a diagnostic, callers that don't get a sane default either way.
func ForName(name string) (Func, error) {
	if fn, ok := registry[name]; ok {
		return fn, nil
	}
	return Linear, UnknownError{Name: name}
}

// Names returns the registered easing names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clamp restricts t to [0,1] before warping.
func Clamp(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
