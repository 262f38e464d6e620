package archipelago

import (
	"fmt"
	"time"

	"github.com/louisXW/pagmo/algorithm"
	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/population"
	"github.com/louisXW/pagmo/problem"
)

// Island owns one local population and evolves it via one algorithm
// handle. An island is bound to at most one Archipelago at a time; owner
// tracks that binding so a second PushBack onto a different archipelago
// is rejected (spec §4.1/§4.5).
type Island struct {
	idx int

	problem   problem.Problem
	algorithm algorithm.Algorithm
	pop       *population.Population

	selection   policy.SelectionPolicy
	replacement policy.ReplacementPolicy

	owner *Archipelago
}

// NewIsland builds an island around an already-populated Population. The
// problem and algorithm are cloned so the caller's originals stay
// independent.
func NewIsland(prob problem.Problem, algo algorithm.Algorithm, pop *population.Population, sel policy.SelectionPolicy, repl policy.ReplacementPolicy) *Island {
	return &Island{
		problem:     prob.Clone(),
		algorithm:   algo.Clone(),
		pop:         pop.Clone(),
		selection:   sel,
		replacement: repl,
	}
}

// Index returns the island's position within its archipelago.
func (isl *Island) Index() int { return isl.idx }

// Population returns the island's local population. Safe to call only
// while the owning archipelago is idle, or from the island's own worker.
func (isl *Island) Population() *population.Population { return isl.pop }

// Problem returns the island's problem handle.
func (isl *Island) Problem() problem.Problem { return isl.problem }

// clone returns a deep, unbound copy (owner cleared) for Archipelago.Copy.
func (isl *Island) clone() *Island {
	return &Island{
		idx:         isl.idx,
		problem:     isl.problem.Clone(),
		algorithm:   isl.algorithm.Clone(),
		pop:         isl.pop.Clone(),
		selection:   isl.selection,
		replacement: isl.replacement,
	}
}

// evolveEpochs runs n evolution epochs of the island's algorithm over its
// local population, invoking the archipelago's migration hooks before and
// after each epoch.
func (isl *Island) evolveEpochs(a *Archipelago, n int) error {
	for i := 0; i < n; i++ {
		if a.interrupted.Load() {
			return nil
		}
		a.preEvolutionHook(isl)
		if err := isl.algorithm.Evolve(isl.pop); err != nil {
			return fmt.Errorf("island %d: epoch %d: %w", isl.idx, i, err)
		}
		a.postEvolutionHook(isl)
		if a.metrics != nil {
			a.metrics.EpochCompleted(isl.idx)
		}
	}
	return nil
}

// evolveUntil runs epochs until at least deadline has passed, checking
// the interrupted flag at each epoch boundary, exactly like evolveEpochs.
func (isl *Island) evolveUntil(a *Archipelago, deadline time.Time) error {
	for epoch := 0; time.Now().Before(deadline); epoch++ {
		if a.interrupted.Load() {
			return nil
		}
		a.preEvolutionHook(isl)
		if err := isl.algorithm.Evolve(isl.pop); err != nil {
			return fmt.Errorf("island %d: epoch %d: %w", isl.idx, epoch, err)
		}
		a.postEvolutionHook(isl)
		if a.metrics != nil {
			a.metrics.EpochCompleted(isl.idx)
		}
	}
	return nil
}

// humanReadable renders a one-line summary of the island.
func (isl *Island) humanReadable() string {
	return fmt.Sprintf("  island %d: pop=%d best=%v evals=%d algo=%s",
		isl.idx, isl.pop.Len(), isl.pop.Best().F, isl.pop.Evaluations(), isl.algorithm.Name())
}
