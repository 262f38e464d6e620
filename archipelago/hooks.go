package archipelago

import (
	"github.com/louisXW/pagmo/internal/util"
	"github.com/louisXW/pagmo/population"
	"github.com/louisXW/pagmo/topology"
)

// preEvolutionHook runs immediately before dst's algorithm step: it
// resolves incoming candidates from the store per the configured
// direction, delegates integration to dst's replacement policy, and
// records history for whatever was actually integrated.
func (a *Archipelago) preEvolutionHook(dst *Island) {
	a.migMu.Lock()
	defer a.migMu.Unlock()

	switch a.opt.Direction {
	case Destination:
		a.pullFromNeighbors(dst)
	default: // Source
		a.consumePublished(dst)
	}
}

// pullFromNeighbors implements the destination-initiated pre-evolution
// hook: for each neighbor u of dst, peek u's standing offer, take a
// random subset sized by dst's own selection budget, and integrate it.
func (a *Archipelago) pullFromNeighbors(dst *Island) {
	neighbors := topology.SortedNeighbors(a.topo, dst.idx)
	budget, err := dst.selection.NumberToMigrate(dst.pop)
	if err != nil || budget <= 0 {
		return
	}
	for _, u := range neighbors {
		offer := a.store.Peek(u, u)
		if len(offer) == 0 {
			continue
		}
		idx := util.RandomSubset(a.intRNG, len(offer), budget)
		picked := make([]population.Individual, len(idx))
		for i, j := range idx {
			picked[i] = offer[j]
		}
		a.integrate(dst, u, picked)
	}
}

// consumePublished implements the source-initiated pre-evolution hook:
// drain everything queued for dst, grouped by origin, and integrate each
// origin's batch independently.
func (a *Archipelago) consumePublished(dst *Island) {
	batches := a.store.Consume(dst.idx)
	for origin, inds := range batches {
		a.integrate(dst, origin, inds)
	}
}

// integrate delegates to dst's replacement policy and records a history
// item for whatever was actually integrated.
func (a *Archipelago) integrate(dst *Island, origin int, candidates []population.Individual) {
	if len(candidates) == 0 {
		return
	}
	n, err := dst.replacement.Assimilate(dst.pop, candidates)
	if err != nil || n <= 0 {
		return
	}
	a.hist.Append(n, origin, dst.idx)
	if a.metrics != nil {
		a.metrics.MigrationIntegrated(n)
	}
}

// postEvolutionHook runs immediately after src's algorithm step: it asks
// src's selection policy for emigrants and distributes them per the
// configured (distribution x direction) matrix.
func (a *Archipelago) postEvolutionHook(src *Island) {
	a.migMu.Lock()
	defer a.migMu.Unlock()

	switch a.opt.Direction {
	case Destination:
		a.publishOffer(src)
	default: // Source
		a.pushToNeighbors(src)
	}
}

// publishOffer implements destination-initiated migration's
// post-evolution side: src publishes its own best individual as a
// standing offer that neighbors may later pull.
func (a *Archipelago) publishOffer(src *Island) {
	best := src.pop.Best()
	a.store.Publish(src.idx, src.idx, []population.Individual{best})
	if a.metrics != nil {
		a.metrics.MigrationPublished(1)
	}
}

// pushToNeighbors implements source-initiated migration's post-evolution
// side: src selects emigrants and pushes them to one random neighbor
// (point-to-point) or to every neighbor (broadcast). History is recorded
// here, at publication time, since under source direction arrival is
// immediate.
func (a *Archipelago) pushToNeighbors(src *Island) {
	neighbors := topology.SortedNeighbors(a.topo, src.idx)
	if len(neighbors) == 0 {
		return
	}
	emigrants, err := src.selection.Select(src.pop)
	if err != nil || len(emigrants) == 0 {
		return
	}

	switch a.opt.Distribution {
	case Broadcast:
		for _, d := range neighbors {
			a.store.Publish(d, src.idx, emigrants)
			a.hist.Append(len(emigrants), src.idx, d)
			if a.metrics != nil {
				a.metrics.MigrationPublished(len(emigrants))
			}
		}
	default: // PointToPoint
		d := neighbors[a.intRNG.Intn(len(neighbors))]
		a.store.Publish(d, src.idx, emigrants)
		a.hist.Append(len(emigrants), src.idx, d)
		if a.metrics != nil {
			a.metrics.MigrationPublished(len(emigrants))
		}
	}
}
