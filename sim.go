package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Scenario is one line of the report: a fixed number of defence-reducing
// specs followed by a damage race, repeated Trials times.
type Scenario struct {
	Specs      uint16
	Trials     int
	SpecPlayer Player
	DPSPlayer  Player
	Boss       BossProfile
}

// TrialResult holds the total ticks of every trial, plus the ticks of the
// trials in which no spec landed.
type TrialResult struct {
	Times  []uint32
	Misses []uint32
}

// specTicks is the time spent on the spec phase, which always costs every
// attempt whether it landed or not.
func (sc Scenario) specTicks() uint32 {
	return uint32(sc.SpecPlayer.AttackInterval) * uint32(sc.Specs)
}

func (sc Scenario) runTrial(s *sampler) (ticks uint32, drained uint32) {
	slash := sc.Boss.slash()
	drained = specReduce(sc.SpecPlayer, &slash, sc.Specs, s)

	ranged := newBoss(slash.HitPoints, slash.DefenseLevel, sc.Boss.RangedDefenseStat, sc.Boss.MinDefenseLevel)
	ticks = attackUntilDead(sc.DPSPlayer, &ranged, s) + sc.specTicks()
	return ticks, drained
}

// simulateN runs every trial of the scenario on one continuing stream.
func (sc Scenario) simulateN(s *sampler) TrialResult {
	res := TrialResult{Times: make([]uint32, 0, sc.Trials)}

	for i := 0; i < sc.Trials; i++ {
		// Trace only the first trial
		if i == 0 {
			startCombatTrace(sc.Specs)
		}

		ticks, drained := sc.runTrial(s)
		res.Times = append(res.Times, ticks)
		if drained == 0 {
			res.Misses = append(res.Misses, ticks)
		}

		if i == 0 {
			stopCombatTrace()
		}
	}
	return res
}

// runScenarios runs each scenario in order on the one stream s and prints
// its summary to w as soon as it completes.
func runScenarios(scs []Scenario, s *sampler, w io.Writer, logger *zap.Logger) ([]Summary, error) {
	out := make([]Summary, 0, len(scs))
	for _, sc := range scs {
		sum := summarize(sc.Specs, sc.simulateN(s))
		logger.Info("scenario complete",
			zap.Uint16("specs", sum.Specs),
			zap.Int("trials", sum.Trials),
			zap.Float64("mean_ticks", sum.MeanTicks),
			zap.Int("misses", sum.Misses),
			zap.Int("slows", sum.Slows),
		)
		if err := sum.Print(w); err != nil {
			return out, fmt.Errorf("print %d specs: %w", sc.Specs, err)
		}
		out = append(out, sum)
	}
	return out, nil
}
