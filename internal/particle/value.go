// Package particle provides the headless side of the game's decorative
// effects: a catalog of effect definitions keyed by name, and the trigger
// plumbing the terrain engine fires into. Actual particle simulation and
// drawing belong to the rendering layer; this package only validates keys,
// samples parameter ranges and hands the result over as an event.
package particle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// RangeValue is a numeric parameter that may vary per trigger.
// Catalog files write it either as a fixed value ("12") or as a
// bracketed range ("[8 14]").
type RangeValue struct {
	Min float64
	Max float64
}

// ParseRange parses a catalog value string.
//
// Supported formats:
//   - Fixed value: "12" → {12, 12}
//   - Range: "[8 14]" → {8, 14} (random value per trigger)
//   - Single bracketed value: "[5]" → {5, 5}
func ParseRange(s string) (RangeValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RangeValue{}, fmt.Errorf("empty value string")
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			val, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return RangeValue{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return RangeValue{Min: val, Max: val}, nil
		case 2:
			min, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return RangeValue{}, fmt.Errorf("invalid range min in %q: %w", s, err)
			}
			max, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return RangeValue{}, fmt.Errorf("invalid range max in %q: %w", s, err)
			}
			if max < min {
				return RangeValue{}, fmt.Errorf("range max below min in %q", s)
			}
			return RangeValue{Min: min, Max: max}, nil
		default:
			return RangeValue{}, fmt.Errorf("range %q must hold one or two numbers", s)
		}
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return RangeValue{}, fmt.Errorf("invalid fixed value %q: %w", s, err)
	}
	return RangeValue{Min: val, Max: val}, nil
}

// Sample draws a value from the range using rng. A nil rng or a
// degenerate range returns Min.
func (r RangeValue) Sample(rng *rand.Rand) float64 {
	if rng == nil || r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Fixed reports whether the range collapses to a single value.
func (r RangeValue) Fixed() bool {
	return r.Max == r.Min
}
