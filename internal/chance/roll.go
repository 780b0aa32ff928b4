package chance

import (
	"errors"
	"math"
)

var (
	ErrInvalidProb = errors.New("invalid probability p; must be 0..1")
	ErrEmptyChoice = errors.New("cannot pick from an empty set")
)

// Roll decides one event with probability p.
// p <= 0 => never. p >= 1 => always. otherwise, rng.Float64() <= p
func Roll(p float64, rng RandomSource) (bool, error) {
	if err := validateProb(p); err != nil {
		return false, err
	}
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	return rng.Float64() <= p, nil
}

// Pick returns a uniform index in [0, n).
func Pick(n int, rng RandomSource) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyChoice
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	i := rng.IntN(n)
	// clamp sources that ignore the [0, n) contract
	if i < 0 || i >= n {
		i = 0
	}
	return i, nil
}

func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return ErrInvalidProb
	}
	if p < 0 || p > 1 {
		return ErrInvalidProb
	}
	return nil
}

// ValidateProb reports whether p is usable as a probability.
func ValidateProb(p float64) error { return validateProb(p) }
