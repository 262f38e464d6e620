package population

import "testing"

func TestIndividual_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := Individual{X: []float64{1, 2}, F: []float64{0.5}, C: []float64{0}}
	cp := orig.Clone()
	cp.X[0] = 99
	if orig.X[0] == 99 {
		t.Fatal("Clone shares backing array with the original")
	}
}

func TestCloneAll(t *testing.T) {
	t.Parallel()

	in := []Individual{{X: []float64{1}}, {X: []float64{2}}}
	out := CloneAll(in)
	out[0].X[0] = 42
	if in[0].X[0] == 42 {
		t.Fatal("CloneAll shares backing arrays with the input slice")
	}
	if len(out) != len(in) {
		t.Fatalf("CloneAll length = %d, want %d", len(out), len(in))
	}
}
