// Package archipelago implements the coordinator that drives concurrent
// island-model evolution: a shared start barrier, the migration protocol
// (source- vs destination-initiated, point-to-point vs broadcast), and an
// append-only migration history.
package archipelago

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/louisXW/pagmo/algorithm"
	"github.com/louisXW/pagmo/migration"
	"github.com/louisXW/pagmo/policy"
	"github.com/louisXW/pagmo/population"
	"github.com/louisXW/pagmo/problem"
	"github.com/louisXW/pagmo/topology"
)

// Archipelago coordinates N islands: it owns the topology, the migration
// store and history, the shared RNGs, and the goroutines that drive
// concurrent evolution.
type Archipelago struct {
	opt Options

	// migMu guards everything migration touches: the store, the history,
	// and both RNGs (spec §5 — one mutex for all three, not one each).
	migMu  sync.Mutex
	store  *migration.Store
	hist   *migration.History
	dblRNG *rand.Rand
	intRNG *rand.Rand

	// stateMu guards islands/topology/barrier membership and the
	// busy/running bookkeeping below. Workers only ever take migMu; where
	// both are needed (Copy), stateMu is taken first, then migMu.
	stateMu sync.Mutex
	islands []*Island
	topo    topology.Topology

	running     atomic.Bool
	interrupted atomic.Bool
	wg          sync.WaitGroup // current evolve generation's worker count
	done        chan struct{}  // closed when all workers of the current generation finish
	joinErr     error

	metrics Metrics
}

// New returns an empty archipelago with no topology bound. PushBack is
// the only way to add islands afterward; it grows an unconnected Graph, so
// neighbors are wired by calling SetTopology once the islands are pushed.
func New(opt Options) *Archipelago {
	a := &Archipelago{
		opt:    opt,
		store:  migration.NewStore(),
		hist:   migration.NewHistory(),
		dblRNG: rand.New(rand.NewSource(1)),
		intRNG: rand.New(rand.NewSource(2)),
	}
	a.applyDefaults()
	return a
}

// NewWithTopology returns an empty archipelago bound to t. t's vertex
// count must be zero; islands pushed afterward grow it.
func NewWithTopology(t topology.Topology, opt Options) *Archipelago {
	a := New(opt)
	a.topo = t
	return a
}

// NewPopulated constructs an archipelago of n islands, each seeded with a
// fresh population of m random individuals on prob, each cloning algo,
// wired to topology t (whose vertex count must already be n) and to the
// given selection/replacement policies.
func NewPopulated(prob problem.Problem, algo algorithm.Algorithm, n, m int, t topology.Topology, sel policy.SelectionPolicy, repl policy.ReplacementPolicy, opt Options) (*Archipelago, error) {
	if t.NumVertices() != n {
		return nil, newConfigError("topology has %d vertices, want %d", t.NumVertices(), n)
	}
	a := New(opt)
	a.topo = t
	for i := 0; i < n; i++ {
		pop := randomPopulation(prob, m, a.intRNG)
		isl := NewIsland(prob, algo, pop, sel, repl)
		isl.idx = i
		isl.owner = a
		a.islands = append(a.islands, isl)
	}
	return a, nil
}

func (a *Archipelago) applyDefaults() {
	if a.opt.Metrics == nil {
		a.opt.Metrics = NoopMetrics{}
	}
	a.metrics = a.opt.Metrics
}

func randomPopulation(prob problem.Problem, m int, rng *rand.Rand) *population.Population {
	bounds := prob.Bounds()
	inds := make([]population.Individual, m)
	for i := range inds {
		x := make([]float64, len(bounds.Lower))
		for j := range x {
			x[j] = bounds.Lower[j] + rng.Float64()*(bounds.Upper[j]-bounds.Lower[j])
		}
		f := make([]float64, prob.ObjectiveDim())
		c := make([]float64, prob.ConstraintDim())
		_ = prob.Objfun(f, c, x)
		inds[i] = population.Individual{X: x, F: f, C: c}
	}
	pop := population.New(inds)
	pop.ChargeEvaluations(uint64(m))
	return pop
}

// PushBack appends isl at index N and adds a matching vertex to the
// topology; the next Evolve/EvolveFor sizes its start barrier to the new
// count of N+1 parties. Fails if the
// archipelago is busy, if isl is already bound to another archipelago, or
// if isl's problem is incompatible with any existing island's problem.
func (a *Archipelago) PushBack(isl *Island) error {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()

	if a.running.Load() {
		return newStateError("push_back called while archipelago is evolving")
	}
	if isl.owner != nil {
		return newOwnershipError("island is already bound to an archipelago")
	}
	for _, existing := range a.islands {
		if !problem.Compatible(existing.problem, isl.problem) {
			return newConfigError("island problem incompatible with existing island %d", existing.idx)
		}
	}

	isl.idx = len(a.islands)
	isl.owner = a
	a.islands = append(a.islands, isl)

	if a.topo == nil {
		a.topo = topology.NewGraph(0)
	}
	a.topo.PushVertex()

	return nil
}

// GetSize returns the current island count.
func (a *Archipelago) GetSize() int {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	return len(a.islands)
}

// GetTopology returns a deep copy of the current topology.
func (a *Archipelago) GetTopology() topology.Topology {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	if a.topo == nil {
		return topology.NewGraph(0)
	}
	return a.topo.Clone()
}

// SetTopology replaces the topology wholesale. Fails if t's vertex count
// does not match the current island count, or if the archipelago is busy.
func (a *Archipelago) SetTopology(t topology.Topology) error {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	if a.running.Load() {
		return newStateError("set_topology called while archipelago is evolving")
	}
	if t.NumVertices() != len(a.islands) {
		return newConfigError("topology has %d vertices, want %d", t.NumVertices(), len(a.islands))
	}
	a.topo = t
	return nil
}

// Copy returns a deep copy of the archipelago: cloned islands, topology,
// store, and history. If the source is currently evolving, Copy first
// joins it; the copy itself always starts idle.
func (a *Archipelago) Copy() (*Archipelago, error) {
	if a.running.Load() {
		if err := a.Join(); err != nil {
			return nil, err
		}
	}

	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	a.migMu.Lock()
	defer a.migMu.Unlock()

	out := &Archipelago{
		opt:     a.opt,
		store:   a.store.Clone(),
		hist:    a.hist.Clone(),
		dblRNG:  rand.New(rand.NewSource(a.dblRNG.Int63())),
		intRNG:  rand.New(rand.NewSource(a.intRNG.Int63())),
		metrics: a.metrics,
	}
	if a.topo != nil {
		out.topo = a.topo.Clone()
	}
	out.islands = make([]*Island, len(a.islands))
	for i, isl := range a.islands {
		cp := isl.clone()
		cp.owner = out
		out.islands[i] = cp
	}
	return out, nil
}

// HumanReadable renders a stable multi-line report: island count,
// topology summary, distribution mode, direction mode, per-island summary.
func (a *Archipelago) HumanReadable() string {
	a.stateMu.Lock()
	defer a.stateMu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "archipelago: %d islands, distribution=%s, direction=%s\n",
		len(a.islands), a.opt.Distribution, a.opt.Direction)
	if a.topo != nil {
		b.WriteString(a.topo.HumanReadable())
	}
	for _, isl := range a.islands {
		b.WriteString(isl.humanReadable())
		b.WriteByte('\n')
	}
	return b.String()
}

// DumpMigrHistory returns a copy of every recorded migration event.
func (a *Archipelago) DumpMigrHistory() []migration.HistoryItem {
	a.migMu.Lock()
	defer a.migMu.Unlock()
	return a.hist.Dump()
}

// ClearMigrHistory discards every recorded migration event.
func (a *Archipelago) ClearMigrHistory() {
	a.migMu.Lock()
	defer a.migMu.Unlock()
	a.hist.Clear()
}
