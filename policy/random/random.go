// Package random implements a uniform-random Selection/Replacement pair:
// emigrants are a random subset of the population, and immigrants displace
// random residents regardless of fitness. It is the second, differently
// tuned concrete policy, the same role policy/twoq played alongside
// policy/lru for the teacher's eviction contract — useful for preserving
// genetic diversity against the elitist bias of policy/fixed.
package random

import (
	"math/rand"

	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/population"
)

// Selection draws a uniform-random subset of the population as emigrants.
type Selection struct {
	Rate policy.Rate
	Rng  *rand.Rand
}

// NewSelection returns a Selection policy migrating Rate.Abs individuals
// (or Rate.Frac of the population size), drawn via rng.
func NewSelection(rate policy.Rate, rng *rand.Rand) Selection {
	return Selection{Rate: rate, Rng: rng}
}

// NumberToMigrate resolves the configured rate against pop's current size.
func (s Selection) NumberToMigrate(pop *population.Population) (int, error) {
	return policy.ResolveCount(s.Rate, pop.Len())
}

// Select returns deep copies of n distinct, uniformly chosen individuals.
func (s Selection) Select(pop *population.Population) ([]population.Individual, error) {
	n, err := s.NumberToMigrate(pop)
	if err != nil {
		return nil, err
	}
	if n <= 0 || pop.Len() == 0 {
		return nil, nil
	}
	if n > pop.Len() {
		n = pop.Len()
	}
	idx := s.Rng.Perm(pop.Len())[:n]
	out := make([]population.Individual, n)
	for i, j := range idx {
		out[i] = pop.At(j)
	}
	return out, nil
}

// Replacement integrates immigrants by overwriting random, distinct
// residents, independent of fitness.
type Replacement struct {
	Rng *rand.Rand
}

// NewReplacement returns a uniform-random Replacement policy.
func NewReplacement(rng *rand.Rand) Replacement { return Replacement{Rng: rng} }

// Assimilate overwrites min(len(candidates), pop.Len()) random, distinct
// residents with candidates, in the order candidates was given.
func (r Replacement) Assimilate(pop *population.Population, candidates []population.Individual) (int, error) {
	if len(candidates) == 0 || pop.Len() == 0 {
		return 0, nil
	}
	n := len(candidates)
	if n > pop.Len() {
		n = pop.Len()
	}
	idx := r.Rng.Perm(pop.Len())[:n]
	for i, j := range idx {
		pop.Replace(j, candidates[i])
	}
	return n, nil
}
