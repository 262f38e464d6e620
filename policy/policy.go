// Package policy declares the Selection and Replacement contracts a
// migration uses to pick emigrants and integrate immigrants. Like
// problem.Problem and algorithm.Algorithm, the core archipelago never
// defines a selection/replacement *rule* itself — see policy/fixed and
// policy/random for two minimal, swappable reference implementations,
// the same role policy/lru and policy/twoq played for the teacher's
// pluggable eviction contract.
package policy

import (
	"fmt"

	"github.com/louisXW/pagmo/population"
)

// SelectionPolicy picks emigrants from a population.
type SelectionPolicy interface {
	// NumberToMigrate returns how many individuals a migration involving
	// this policy should move, given the current population size. It is
	// also used, on the destination side, as the random-subset budget
	// for pulled offers (spec §4.3).
	NumberToMigrate(pop *population.Population) (int, error)

	// Select returns deep copies of the chosen emigrants.
	Select(pop *population.Population) ([]population.Individual, error)
}

// ReplacementPolicy integrates immigrants into a population.
type ReplacementPolicy interface {
	// Assimilate merges some or all of candidates into pop and returns
	// the count actually integrated.
	Assimilate(pop *population.Population, candidates []population.Individual) (int, error)
}

// Rate expresses a migration count as either an absolute number of
// individuals (Abs >= 0) or a fraction of the current population size
// (Abs < 0, Frac used instead), per spec §4.3/§6.
type Rate struct {
	Abs  int     // absolute count; negative means "use Frac instead"
	Frac float64 // fraction of population size in [0,1], used when Abs < 0
}

// ResolveCount turns a Rate into a concrete count for a population of the
// given size. A fractional rate outside [0,1], or an absolute rate larger
// than popSize, is a fatal configuration error (spec §4.3).
func ResolveCount(r Rate, popSize int) (int, error) {
	if r.Abs >= 0 {
		if r.Abs > popSize {
			return 0, fmt.Errorf("policy: absolute migration rate %d exceeds population size %d", r.Abs, popSize)
		}
		return r.Abs, nil
	}
	if r.Frac < 0 || r.Frac > 1.0 {
		return 0, fmt.Errorf("policy: fractional migration rate %v out of range [0,1]", r.Frac)
	}
	return int(r.Frac * float64(popSize)), nil
}
