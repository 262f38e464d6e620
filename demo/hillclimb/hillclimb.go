// Package hillclimb implements a Gaussian-mutation hill-climbing
// algorithm.Algorithm: each individual is perturbed by N(0, sigma) noise
// per decision variable and kept only if the mutation improves it.
package hillclimb

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/louisXW/pagmo/algorithm"
	"github.com/louisXW/pagmo/population"
	"github.com/louisXW/pagmo/problem"
)

// Hillclimb evolves a population in place via per-individual Gaussian
// mutation, clamped to the problem's bounds.
type Hillclimb struct {
	prob  problem.Problem
	sigma float64
	rng   *rand.Rand
}

// New returns a Hillclimb algorithm mutating with standard deviation
// sigma against prob, seeded from seed.
func New(prob problem.Problem, sigma float64, seed int64) *Hillclimb {
	return &Hillclimb{prob: prob.Clone(), sigma: sigma, rng: rand.New(rand.NewSource(seed))}
}

func (h *Hillclimb) Clone() algorithm.Algorithm {
	return &Hillclimb{prob: h.prob.Clone(), sigma: h.sigma, rng: rand.New(rand.NewSource(h.rng.Int63()))}
}

func (h *Hillclimb) Name() string { return "hillclimb" }

// Evolve mutates every resident individual once, keeping the mutation
// only if it is strictly better under the population's own comparator.
func (h *Hillclimb) Evolve(pop *population.Population) error {
	bounds := h.prob.Bounds()
	n := pop.Len()
	for i := 0; i < n; i++ {
		cur := pop.At(i)
		cand := cur.Clone()
		for j := range cand.X {
			cand.X[j] += h.rng.NormFloat64() * h.sigma
			cand.X[j] = clamp(cand.X[j], bounds.Lower[j], bounds.Upper[j])
		}
		f := make([]float64, h.prob.ObjectiveDim())
		c := make([]float64, h.prob.ConstraintDim())
		if err := h.prob.Objfun(f, c, cand.X); err != nil {
			return fmt.Errorf("hillclimb: objfun: %w", err)
		}
		cand.F = f
		cand.C = c
		pop.ChargeEvaluations(1)
		if pop.Less(cand, cur) {
			pop.Replace(i, cand)
		}
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
