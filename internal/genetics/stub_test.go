package genetics

import (
	"fmt"
	"sort"
)

// selectorFunc adapts a plain function into a Selector for test stubs.
type selectorFunc func(map[string]float64) (string, error)

func (f selectorFunc) Select(w map[string]float64) (string, error) { return f(w) }

// firstPositive deterministically picks the lexicographically smallest key
// with positive weight. Probability rolls built on it always come up "no",
// so marking draws resolve to their calmest outcome.
func firstPositive() Selector {
	return selectorFunc(func(w map[string]float64) (string, error) {
		keys := make([]string, 0, len(w))
		for k, v := range w {
			if v > 0 {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return "", fmt.Errorf("%w: no positive weights", ErrInvalidWeightMap)
		}
		sort.Strings(keys)
		return keys[0], nil
	})
}

// alwaysYes answers probability rolls with "yes" when possible, otherwise
// falls back to the first positive key.
func alwaysYes() Selector {
	first := firstPositive()
	return selectorFunc(func(w map[string]float64) (string, error) {
		if _, ok := w["yes"]; ok {
			return "yes", nil
		}
		return first.Select(w)
	})
}
