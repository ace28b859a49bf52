package main

import (
	"fmt"
	"io"
	"math"
)

const (
	_secondsPerTick = 0.6
	_slowFactor     = 1.31
)

// Summary is the aggregate of one scenario. Tick values are internal units,
// use the accessors for seconds.
type Summary struct {
	Specs         uint16
	Trials        int
	MeanTicks     float64
	Misses        int
	MissMeanTicks float64 // NaN when no trial missed every spec
	Threshold     float64
	Slows         int
}

func mean(xs []uint32) float64 {
	var sum uint64
	for _, x := range xs {
		sum += uint64(x)
	}
	return float64(sum) / float64(len(xs))
}

func summarize(specs uint16, res TrialResult) Summary {
	sum := Summary{
		Specs:         specs,
		Trials:        len(res.Times),
		MeanTicks:     mean(res.Times),
		Misses:        len(res.Misses),
		MissMeanTicks: mean(res.Misses),
	}
	sum.Threshold = sum.MeanTicks * _slowFactor
	if math.IsNaN(sum.Threshold) {
		return sum
	}

	// trial times are whole ticks, so compare against the truncated threshold
	cutoff := uint32(sum.Threshold)
	for _, t := range res.Times {
		if t >= cutoff {
			sum.Slows++
		}
	}
	return sum
}

func (s Summary) MeanSeconds() float64      { return s.MeanTicks * _secondsPerTick }
func (s Summary) MissMeanSeconds() float64  { return s.MissMeanTicks * _secondsPerTick }
func (s Summary) ThresholdSeconds() float64 { return s.Threshold * _secondsPerTick }

// MissPercent truncates, as does SlowPercent.
func (s Summary) MissPercent() int {
	return percent(s.Misses, s.Trials)
}

func (s Summary) SlowPercent() int {
	return percent(s.Slows, s.Trials)
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return n * 100 / total
}

func (s Summary) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "TTK with %d BGS specs: %.4f\n", s.Specs, s.MeanSeconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  miss %%: %d, TTK: %v\n", s.MissPercent(), s.MissMeanSeconds()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  %% slower than %.4f: %d\n", s.ThresholdSeconds(), s.SlowPercent())
	return err
}
