// Package fixed implements an elitist Selection/Replacement pair: select
// the N best individuals as emigrants, and integrate immigrants by
// displacing the population's N worst. It plays the same "trivial default
// implementation of the pluggable contract" role that policy/lru played
// for the teacher's eviction contract.
package fixed

import (
	"sort"

	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/population"
)

// Selection selects the best-N individuals by the population's comparator.
type Selection struct {
	Rate policy.Rate
}

// NewSelection returns a Selection policy migrating Rate.Abs individuals,
// or Rate.Frac of the population size if Rate.Abs is negative.
func NewSelection(rate policy.Rate) Selection { return Selection{Rate: rate} }

// NumberToMigrate resolves the configured rate against pop's current size.
func (s Selection) NumberToMigrate(pop *population.Population) (int, error) {
	return policy.ResolveCount(s.Rate, pop.Len())
}

// Select returns deep copies of the best-N individuals.
func (s Selection) Select(pop *population.Population) ([]population.Individual, error) {
	n, err := s.NumberToMigrate(pop)
	if err != nil {
		return nil, err
	}
	return bestN(pop, n), nil
}

// Replacement integrates immigrants by displacing the population's worst
// individuals, one for one, as long as the immigrant is an improvement.
type Replacement struct{}

// NewReplacement returns an elitist Replacement policy.
func NewReplacement() Replacement { return Replacement{} }

// Assimilate walks the population worst-first and overwrites an entry
// with the next candidate whenever the candidate beats it, stopping once
// either runs out.
func (Replacement) Assimilate(pop *population.Population, candidates []population.Individual) (int, error) {
	if len(candidates) == 0 || pop.Len() == 0 {
		return 0, nil
	}
	worstFirst := sortedIndices(pop)
	integrated := 0
	for i, cand := range candidates {
		if i >= len(worstFirst) {
			break
		}
		idx := worstFirst[i]
		if !pop.Less(cand, pop.At(idx)) {
			continue
		}
		pop.Replace(idx, cand)
		integrated++
	}
	return integrated, nil
}

// bestN returns deep copies of the n best individuals (n clamped to
// pop.Len()).
func bestN(pop *population.Population, n int) []population.Individual {
	if n <= 0 {
		return nil
	}
	if n > pop.Len() {
		n = pop.Len()
	}
	idx := sortedIndices(pop)
	out := make([]population.Individual, n)
	for i := 0; i < n; i++ {
		// sortedIndices is worst-first; best individuals are at the tail.
		out[i] = pop.At(idx[len(idx)-1-i])
	}
	return out
}

// sortedIndices returns population indices ordered worst-to-best by the
// population's own comparator.
func sortedIndices(pop *population.Population) []int {
	n := pop.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	inds := pop.Individuals()
	sort.Slice(idx, func(i, j int) bool {
		return pop.Less(inds[idx[j]], inds[idx[i]])
	})
	return idx
}
