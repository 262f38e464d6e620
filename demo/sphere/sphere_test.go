package sphere

import "testing"

func TestSphere_OriginIsZero(t *testing.T) {
	t.Parallel()

	s := New(3, 5.0)
	f := make([]float64, 1)
	c := make([]float64, 0)
	if err := s.Objfun(f, c, []float64{0, 0, 0}); err != nil {
		t.Fatalf("Objfun() error = %v", err)
	}
	if f[0] != 0 {
		t.Fatalf("Objfun(0,0,0) = %v, want 0", f[0])
	}
}

func TestSphere_SumOfSquares(t *testing.T) {
	t.Parallel()

	s := New(2, 5.0)
	f := make([]float64, 1)
	c := make([]float64, 0)
	if err := s.Objfun(f, c, []float64{1, 2}); err != nil {
		t.Fatalf("Objfun() error = %v", err)
	}
	if f[0] != 5 {
		t.Fatalf("Objfun(1,2) = %v, want 5", f[0])
	}
}

func TestSphere_BoundsMatchDimension(t *testing.T) {
	t.Parallel()

	s := New(4, 2.5)
	b := s.Bounds()
	if len(b.Lower) != 4 || len(b.Upper) != 4 {
		t.Fatalf("Bounds() has %d/%d entries, want 4/4", len(b.Lower), len(b.Upper))
	}
	if b.Lower[0] != -2.5 || b.Upper[0] != 2.5 {
		t.Fatalf("Bounds()[0] = [%v,%v], want [-2.5,2.5]", b.Lower[0], b.Upper[0])
	}
}
