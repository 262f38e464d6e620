package topology

import "testing"

func TestGraph_ConnectIsUndirected(t *testing.T) {
	t.Parallel()

	g := NewGraph(3)
	g.Connect(0, 1)
	if _, ok := g.Neighbors(0)[1]; !ok {
		t.Fatal("0 should neighbor 1")
	}
	if _, ok := g.Neighbors(1)[0]; !ok {
		t.Fatal("1 should neighbor 0 (undirected)")
	}
	if len(g.Neighbors(2)) != 0 {
		t.Fatal("2 should have no neighbors")
	}
}

func TestGraph_PushVertex(t *testing.T) {
	t.Parallel()

	g := NewGraph(2)
	g.PushVertex()
	if g.NumVertices() != 3 {
		t.Fatalf("NumVertices() = %d, want 3", g.NumVertices())
	}
	if len(g.Neighbors(2)) != 0 {
		t.Fatal("new vertex should start unconnected")
	}
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := NewGraph(2)
	g.Connect(0, 1)
	cp := g.Clone().(*Graph)
	cp.PushVertex()
	if g.NumVertices() == cp.NumVertices() {
		t.Fatal("mutating the clone affected the original")
	}
}

func TestSortedNeighbors_Deterministic(t *testing.T) {
	t.Parallel()

	g := NewGraph(4)
	g.Connect(0, 3)
	g.Connect(0, 1)
	g.Connect(0, 2)
	got := SortedNeighbors(g, 0)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SortedNeighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedNeighbors = %v, want %v", got, want)
		}
	}
}
