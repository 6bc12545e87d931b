// Package seq provides small composition analyses of the nucleotide
// sequence used to seed the board.
package seq

import (
	"gonum.org/v1/gonum/stat"
)

// GCContent returns the fraction of G and C bases in the sequence, the same
// quantity the board seeding keys on. An empty sequence has content 0.
func GCContent(sequence []byte) float64 {
	if len(sequence) == 0 {
		return 0
	}
	gc := 0
	for _, base := range sequence {
		if base == 'G' || base == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(sequence))
}

// GCProfile slides a window of the given size over the sequence and returns
// the GC fraction of each window. Window sizes outside (0, len(sequence)]
// collapse to a single whole-sequence window.
func GCProfile(sequence []byte, window int) []float64 {
	if len(sequence) == 0 {
		return nil
	}
	if window <= 0 || window > len(sequence) {
		window = len(sequence)
	}
	profile := make([]float64, 0, len(sequence)-window+1)
	for i := 0; i+window <= len(sequence); i++ {
		profile = append(profile, GCContent(sequence[i:i+window]))
	}
	return profile
}

// ProfileStats summarizes a GC profile.
type ProfileStats struct {
	Mean   float64
	StdDev float64
}

// Summarize computes mean and standard deviation of a profile. A profile
// with fewer than two windows has zero deviation.
func Summarize(profile []float64) ProfileStats {
	if len(profile) == 0 {
		return ProfileStats{}
	}
	s := ProfileStats{Mean: stat.Mean(profile, nil)}
	if len(profile) > 1 {
		s.StdDev = stat.StdDev(profile, nil)
	}
	return s
}
