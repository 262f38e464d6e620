// Package sphere implements the separable sphere function, a minimal
// single-objective, unconstrained problem.Problem: f(x) = sum(x_i^2).
package sphere

import "github.com/louisXW/pagmo/problem"

// Sphere is f(x) = sum(x_i^2) over [-lim, lim]^dim.
type Sphere struct {
	dim int
	lim float64
}

// New returns a Sphere problem of the given dimension, with decision
// variables bounded in [-lim, lim].
func New(dim int, lim float64) *Sphere {
	return &Sphere{dim: dim, lim: lim}
}

func (s *Sphere) Clone() problem.Problem { return &Sphere{dim: s.dim, lim: s.lim} }

func (s *Sphere) ContinuousDim() int { return s.dim }
func (s *Sphere) IntegerDim() int    { return 0 }
func (s *Sphere) ObjectiveDim() int  { return 1 }
func (s *Sphere) ConstraintDim() int { return 0 }

func (s *Sphere) Bounds() problem.Bounds {
	lo := make([]float64, s.dim)
	hi := make([]float64, s.dim)
	for i := range lo {
		lo[i] = -s.lim
		hi[i] = s.lim
	}
	return problem.Bounds{Lower: lo, Upper: hi}
}

// Objfun writes sum(x_i^2) into f[0]. c is unused (no constraints).
func (s *Sphere) Objfun(f, c, x []float64) error {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	f[0] = sum
	return nil
}
