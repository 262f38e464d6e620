package migration

import (
	"testing"

	"github.com/louisXW/pagmo/population"
)

func ind(x float64) population.Individual { return population.Individual{X: []float64{x}} }

func TestStore_PublishConsume(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Publish(1, 0, []population.Individual{ind(1), ind(2)})

	out := s.Consume(1)
	if len(out[0]) != 2 {
		t.Fatalf("Consume(1)[0] = %v, want 2 individuals", out[0])
	}
	if len(s.Consume(1)) != 0 {
		t.Fatal("Consume should drain the queue")
	}
}

func TestStore_PublishReplacesMostRecentWins(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Publish(1, 0, []population.Individual{ind(1)})
	s.Publish(1, 0, []population.Individual{ind(2), ind(3)})

	out := s.Peek(1, 0)
	if len(out) != 2 {
		t.Fatalf("Peek(1,0) = %v, want the second publish to have replaced the first", out)
	}
}

func TestStore_PeekIsNonDestructive(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Publish(1, 0, []population.Individual{ind(1)})
	_ = s.Peek(1, 0)
	if s.PendingFor(1) != 1 {
		t.Fatal("Peek must not consume")
	}
}

func TestStore_ConsumeEmptyOwnerIsNil(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if out := s.Consume(5); out != nil {
		t.Fatalf("Consume on an empty owner = %v, want nil", out)
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Publish(1, 0, []population.Individual{ind(1)})
	cp := s.Clone()
	cp.Consume(1)
	if s.PendingFor(1) != 1 {
		t.Fatal("Clone should not share state with the original")
	}
}
