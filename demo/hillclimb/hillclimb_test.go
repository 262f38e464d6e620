package hillclimb

import (
	"testing"

	"github.com/louisXW/pagmo/demo/sphere"
	"github.com/louisXW/pagmo/population"
)

func TestHillclimb_NeverWorsensTheBest(t *testing.T) {
	t.Parallel()

	prob := sphere.New(3, 5.0)
	algo := New(prob, 0.3, 1)

	inds := []population.Individual{
		{X: []float64{1, 1, 1}, F: []float64{3}},
		{X: []float64{2, 2, 2}, F: []float64{12}},
	}
	pop := population.New(inds)
	before := pop.Best().F[0]

	for i := 0; i < 20; i++ {
		if err := algo.Evolve(pop); err != nil {
			t.Fatalf("Evolve() error = %v", err)
		}
	}

	after := pop.Best().F[0]
	if after > before {
		t.Fatalf("best fitness got worse: before=%v after=%v", before, after)
	}
}

func TestHillclimb_ChargesEvaluations(t *testing.T) {
	t.Parallel()

	prob := sphere.New(2, 5.0)
	algo := New(prob, 0.1, 2)
	pop := population.New([]population.Individual{
		{X: []float64{1, 1}, F: []float64{2}},
		{X: []float64{2, 2}, F: []float64{8}},
	})

	if err := algo.Evolve(pop); err != nil {
		t.Fatalf("Evolve() error = %v", err)
	}
	if pop.Evaluations() != 2 {
		t.Fatalf("Evaluations() = %d, want 2 after one epoch over 2 individuals", pop.Evaluations())
	}
}

func TestHillclimb_RespectsBounds(t *testing.T) {
	t.Parallel()

	prob := sphere.New(1, 1.0)
	algo := New(prob, 50.0, 3) // huge sigma to force clamping
	pop := population.New([]population.Individual{{X: []float64{0}, F: []float64{0}}})

	for i := 0; i < 10; i++ {
		if err := algo.Evolve(pop); err != nil {
			t.Fatalf("Evolve() error = %v", err)
		}
	}
	x := pop.At(0).X[0]
	if x < -1.0 || x > 1.0 {
		t.Fatalf("X[0] = %v, out of bounds [-1,1]", x)
	}
}
