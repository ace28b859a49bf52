package main

import (
	"bytes"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	sum := summarize(1, TrialResult{Times: []uint32{10, 20, 30, 40}})
	if sum.MeanTicks != 25 {
		t.Errorf("MeanTicks = %v, want 25", sum.MeanTicks)
	}
	if !math.IsNaN(sum.MissMeanTicks) {
		t.Errorf("MissMeanTicks = %v, want NaN", sum.MissMeanTicks)
	}
	if sum.Slows != 1 {
		t.Errorf("Slows = %d, want 1", sum.Slows)
	}
	if sum.MissPercent() != 0 || sum.SlowPercent() != 25 {
		t.Errorf("percents = %d/%d, want 0/25", sum.MissPercent(), sum.SlowPercent())
	}
}

func TestSummarize_truncatedCutoff(t *testing.T) {
	// mean 100, threshold 131: exactly on the cutoff counts as slow
	sum := summarize(0, TrialResult{Times: []uint32{69, 131, 100}})
	if sum.Slows != 1 {
		t.Fatalf("Slows = %d, want 1", sum.Slows)
	}
}

func TestSummarize_truncatingPercent(t *testing.T) {
	sum := summarize(2, TrialResult{Times: []uint32{5, 5, 5}, Misses: []uint32{5}})
	if sum.MissPercent() != 33 {
		t.Fatalf("MissPercent = %d, want 33", sum.MissPercent())
	}
	if sum.MissMeanTicks != 5 {
		t.Fatalf("MissMeanTicks = %v, want 5", sum.MissMeanTicks)
	}
	if sum.SlowPercent() != 0 {
		t.Fatalf("SlowPercent = %d, want 0", sum.SlowPercent())
	}
}

func TestSummarize_empty(t *testing.T) {
	sum := summarize(0, TrialResult{})
	if sum.MissPercent() != 0 || sum.SlowPercent() != 0 {
		t.Fatalf("percents = %d/%d on empty result", sum.MissPercent(), sum.SlowPercent())
	}
	var buf bytes.Buffer
	if err := sum.Print(&buf); err != nil {
		t.Fatal(err)
	}
}

func TestSummary_Print(t *testing.T) {
	sum := summarize(1, TrialResult{Times: []uint32{10, 20, 30, 40}})
	var buf bytes.Buffer
	if err := sum.Print(&buf); err != nil {
		t.Fatal(err)
	}
	want := "TTK with 1 BGS specs: 15.0000\n" +
		"  miss %: 0, TTK: NaN\n" +
		"  % slower than 19.6500: 25\n"
	if buf.String() != want {
		t.Fatalf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestSummary_percentBounds(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		sum := summarize(1, testScenario(1, 300).simulateN(newSampler(seed)))
		for _, p := range []int{sum.MissPercent(), sum.SlowPercent()} {
			if p < 0 || p > 100 {
				t.Fatalf("seed %d: percent %d out of range", seed, p)
			}
		}
	}
}
