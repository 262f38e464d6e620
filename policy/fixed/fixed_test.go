package fixed

import (
	"testing"

	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/population"
)

func ind(f float64) population.Individual {
	return population.Individual{X: []float64{0}, F: []float64{f}}
}

func TestSelection_PicksBestN(t *testing.T) {
	t.Parallel()

	pop := population.New([]population.Individual{ind(5), ind(1), ind(3), ind(4), ind(2)})
	sel := NewSelection(policy.Rate{Abs: 2})

	out, err := sel.Select(pop)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Select() returned %d individuals, want 2", len(out))
	}
	if out[0].F[0] != 1 || out[1].F[0] != 2 {
		t.Fatalf("Select() = %v, want the two lowest-fitness individuals first", out)
	}
}

func TestReplacement_DisplacesWorstWhenImproving(t *testing.T) {
	t.Parallel()

	pop := population.New([]population.Individual{ind(10), ind(20), ind(1)})
	repl := NewReplacement()

	n, err := repl.Assimilate(pop, []population.Individual{ind(0.5)})
	if err != nil {
		t.Fatalf("Assimilate() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Assimilate() integrated %d, want 1", n)
	}

	best := pop.Best()
	if best.F[0] != 0.5 {
		t.Fatalf("new best = %v, want 0.5 to have displaced the population's worst", best.F)
	}
}

func TestReplacement_RejectsWorseCandidate(t *testing.T) {
	t.Parallel()

	pop := population.New([]population.Individual{ind(1), ind(2)})
	repl := NewReplacement()

	n, err := repl.Assimilate(pop, []population.Individual{ind(100)})
	if err != nil {
		t.Fatalf("Assimilate() error = %v", err)
	}
	if n != 0 {
		t.Fatalf("Assimilate() integrated %d, want 0 for a worse candidate", n)
	}
}
