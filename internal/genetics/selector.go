package genetics

import (
	"fmt"
	"math"
	"sort"
)

// Selector picks one key from a non-negative weight map. It is the single
// randomness capability injected into the resolver; swapping in a
// deterministic stub makes every layer above it testable.

type Selector interface {
	Select(weights map[string]float64) (string, error)
}

// WeightedSelector draws a key with probability weight/total using rng.
type WeightedSelector struct {
	RNG RandomSource
}

// NewWeightedSelector wraps rng; nil falls back to the crypto-backed default.
func NewWeightedSelector(rng RandomSource) *WeightedSelector {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &WeightedSelector{RNG: rng}
}

// Select returns one key with probability weight_i / sum(weights). Weights
// need not sum to 1. A single-key map always returns that key.
func (s *WeightedSelector) Select(weights map[string]float64) (string, error) {
	if len(weights) == 0 {
		return "", fmt.Errorf("%w: empty map", ErrInvalidWeightMap)
	}
	keys := make([]string, 0, len(weights))
	total := 0.0
	for k, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return "", fmt.Errorf("%w: weight %q=%v", ErrInvalidWeightMap, k, w)
		}
		keys = append(keys, k)
		total += w
	}
	if total <= 0 {
		return "", fmt.Errorf("%w: all weights zero", ErrInvalidWeightMap)
	}

	// fixed draw order regardless of map iteration
	sort.Strings(keys)

	r := s.RNG.Float64() * total
	acc := 0.0
	for _, k := range keys {
		acc += weights[k]
		if r < acc {
			return k, nil
		}
	}
	// float accumulation can land exactly on total; return the last key
	// carrying weight
	for i := len(keys) - 1; i >= 0; i-- {
		if weights[keys[i]] > 0 {
			return keys[i], nil
		}
	}
	return keys[len(keys)-1], nil
}

// chance runs one yes/no draw with probability p through sel.
func chance(sel Selector, p float64) (bool, error) {
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	k, err := sel.Select(map[string]float64{"yes": p, "no": 1 - p})
	if err != nil {
		return false, err
	}
	return k == "yes", nil
}
