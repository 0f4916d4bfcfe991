// Package gc is for calculating the GC content of DNA sequences, either
// over a whole sequence or in a sliding window along it.
package gc

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned when the window or step length is not positive.
var ErrInvalidWindow = errors.New("window and step lengths must be positive")

// Sample is the GC content of a single window in a profile.
type Sample struct {
	// Position is the 0-indexed start of the window in the sequence
	Position int `json:"position"`

	// GC is the percentage of G and C bases in the window, [0, 100]
	GC float64 `json:"gc"`
}

// Content returns the percentage of G and C bases in a fragment.
// Only uppercase 'G' and 'C' are counted. An empty fragment has a GC content of 0.
func Content(fragment string) float64 {
	if len(fragment) == 0 {
		return 0
	}

	gc := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == 'G' || fragment[i] == 'C' {
			gc++
		}
	}

	return float64(gc) / float64(len(fragment)) * 100
}

// Profile slides a window along the sequence, advancing by step bases, and returns
// the GC content of each window.
//
// Windows start at 0, step, 2*step ... while the start is strictly less than
// len(seq)-window. So the window that would start at exactly len(seq)-window is not
// sampled, and a sequence no longer than the window returns no samples.
func Profile(seq string, window, step int) ([]Sample, error) {
	if window < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window=%d, step=%d", ErrInvalidWindow, window, step)
	}

	last := len(seq) - window
	if last <= 0 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, (last+step-1)/step)
	for i := 0; i < last; i += step {
		samples = append(samples, Sample{
			Position: i,
			GC:       Content(seq[i : i+window]),
		})
	}

	return samples, nil
}
