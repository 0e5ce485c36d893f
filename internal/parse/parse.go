// Package parse converts user-entered text into the numbers the calculators take.
package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmpty     = errors.New("empty input")
	ErrNotFinite = errors.New("value must be a finite number")
)

// Float parses a single number. Surrounding spaces are ignored.
func Float(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotFinite)
	}
	return v, nil
}

// Floats parses a comma separated list such as "1200, 1300,1400".
// Every item must be a number; an empty item is an error.
func Floats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmpty
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := Float(p)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// NonNegative parses a number that must be >= 0.
func NonNegative(s string) (float64, error) {
	v, err := Float(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%q must not be negative", strings.TrimSpace(s))
	}
	return v, nil
}
