package scene

import "fmt"

// Pair is a positional correspondence between one drawable in the "from"
// snapshot and one in the "to" snapshot.
type Pair struct {
	Index    int
	From, To Drawable
}

// StructureError reports a pair whose drawable kinds differ. The pair is
// skipped; the transition continues for every other pair.
type StructureError struct {
	Index    int
	FromKind Kind
	ToKind   Kind
}

func (e StructureError) Error() string {
	return fmt.Sprintf("drawable %d: cannot pair %s with %s, element skipped",
		e.Index, e.FromKind, e.ToKind)
}

// Pairs matches elements of two snapshots strictly by position.
//
// Only the first min(from.Len(), to.Len()) positions are paired. Elements
// beyond that index exist in one snapshot only and are dropped outright:
// they are neither animated out nor faded in, and never appear in any
// delivered frame. Pairs with mismatched kinds are omitted and reported as
// StructureError values; everything else proceeds.
func Pairs(from, to *Snapshot) ([]Pair, []error) {
	n := from.Len()
	if to.Len() < n {
		n = to.Len()
	}
	pairs := make([]Pair, 0, n)
	var errs []error
	for i := 0; i < n; i++ {
		a, b := from.Drawable(i), to.Drawable(i)
		if a.Kind() != b.Kind() {
			errs = append(errs, StructureError{Index: i, FromKind: a.Kind(), ToKind: b.Kind()})
			continue
		}
		pairs = append(pairs, Pair{Index: i, From: a, To: b})
	}
	return pairs, errs
}
