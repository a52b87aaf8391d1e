// Package stats scores membership answers against the expected truth.
package stats

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Stats is a confusion matrix of membership queries.
type Stats struct {
	TruePos  int
	TrueNeg  int
	FalsePos int
	FalseNeg int
}

// Score records one answer. actual is what the filter said, expected is
// whether the key was inserted.
func (s *Stats) Score(actual, expected bool) {
	switch {
	case expected && actual:
		s.TruePos++
	case expected:
		s.FalseNeg++
	case actual:
		s.FalsePos++
	default:
		s.TrueNeg++
	}
}

// Total returns the number of scored answers.
func (s *Stats) Total() int {
	return s.TruePos + s.TrueNeg + s.FalsePos + s.FalseNeg
}

// Rate returns the false positive rate among keys that were not inserted,
// or 0 if none were scored.
func (s *Stats) Rate() float64 {
	neg := s.FalsePos + s.TrueNeg
	if neg == 0 {
		return 0
	}
	return float64(s.FalsePos) / float64(neg)
}

// Report logs the matrix and the false positive rate. False negatives are
// logged at error level since a Bloom filter must never produce them.
func (s *Stats) Report(logger log.Logger) {
	level.Info(logger).Log(
		"msg", "membership stats",
		"true_pos", s.TruePos,
		"true_neg", s.TrueNeg,
		"false_pos", s.FalsePos,
		"false_neg", s.FalseNeg,
		"false_pos_rate", s.Rate(),
	)
	if s.FalseNeg > 0 {
		level.Error(logger).Log("msg", "false negatives observed", "count", s.FalseNeg)
	}
}
