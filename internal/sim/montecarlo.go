// Package sim estimates how long a shift takes for a player of a given
// accuracy by replaying the real state machine many times.
package sim

import (
	"errors"
	"math"
	"sort"

	"github.com/xtding233/esslend-store/internal/anomaly"
	"github.com/xtding233/esslend-store/internal/chance"
	"github.com/xtding233/esslend-store/internal/shift"
)

// TrialGoal selects what the simulation measures per trial.
type TrialGoal string

const (
	// Decisions until the shift is won, resets included.
	GoalDecisionsToWin TrialGoal = "decisions_to_win"
	// Penalty resets suffered before the shift is won.
	GoalResetsToWin TrialGoal = "resets_to_win"
)

var ErrUnknownGoal = errors.New("unknown trial goal")

// SimParams describes one simulation run.
type SimParams struct {
	Shift   shift.Config
	Catalog anomaly.Catalog

	// Accuracy is the probability the player judges a loop correctly.
	Accuracy float64
	// MaxDecisions caps one trial; a capped trial records the cap.
	// <= 0 means 10000.
	MaxDecisions int
	// Seed makes runs reproducible; trial i uses Seed+i.
	Seed uint64
}

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// Capped counts trials that hit MaxDecisions without winning.
	Capped int
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

type trialResult struct {
	decisions int
	resets    int
	won       bool
}

// simulateOne plays a single shift to completion or to the cap.
func simulateOne(p SimParams, seed uint64) (trialResult, error) {
	rng := chance.NewSeededRNG(seed)
	player := chance.NewSeededRNG(seed ^ 0x9e3779b97f4a7c15)

	sel := anomaly.NewSelector(p.Catalog, rng, nil)
	m, err := shift.New(p.Shift, sel, shift.WithRNG(rng), shift.WithID("sim"))
	if err != nil {
		return trialResult{}, err
	}
	if _, err := m.StartNewShift(); err != nil {
		return trialResult{}, err
	}

	limit := p.MaxDecisions
	if limit <= 0 {
		limit = 10000
	}
	var res trialResult
	for res.decisions < limit && !m.Complete() {
		right, err := chance.Roll(p.Accuracy, player)
		if err != nil {
			return trialResult{}, err
		}
		reported := m.AnomalyActive()
		if !right {
			reported = !reported
		}
		if _, err := m.ProcessPlayerDecision(reported); err != nil {
			return trialResult{}, err
		}
		res.decisions++
	}
	res.resets = m.Resets()
	res.won = m.Complete()
	return res, nil
}

// RunMonteCarlo repeats trials and returns summary stats.
func RunMonteCarlo(p SimParams, goal TrialGoal, trials int) (Stats, error) {
	if goal != GoalDecisionsToWin && goal != GoalResetsToWin {
		return Stats{}, ErrUnknownGoal
	}
	if err := chance.ValidateProb(p.Accuracy); err != nil {
		return Stats{}, err
	}
	if trials <= 0 {
		return Stats{}, nil
	}
	samples := make([]int, trials)
	capped := 0
	for i := 0; i < trials; i++ {
		r, err := simulateOne(p, p.Seed+uint64(i))
		if err != nil {
			return Stats{}, err
		}
		if !r.won {
			capped++
		}
		switch goal {
		case GoalDecisionsToWin:
			samples[i] = r.decisions
		case GoalResetsToWin:
			samples[i] = r.resets
		}
	}
	st := calcStats(samples)
	st.Capped = capped
	return st, nil
}
