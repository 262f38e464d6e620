// Package migration holds in-flight emigrants between islands and the
// append-only log of completed migrations. Both types are deliberately
// unlocked: spec §5 puts the store, the history, and the archipelago's
// RNGs under one coordinator-level mutex, so a second lock here would
// only invite a lock-ordering bug.
package migration

import "github.com/louisXW/pagmo/population"

// Store holds individuals published toward an island ("owner") by
// another island ("from"), indexed owner -> from -> individuals. Under
// destination-initiated migration, owner == from always (an island
// publishes its own standing offer). Under source-initiated migration,
// owner is the destination a source pushed toward. Callers must already
// hold the archipelago's mutex before touching a Store.
type Store struct {
	byOwner map[int]map[int][]population.Individual
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byOwner: make(map[int]map[int][]population.Individual)}
}

// Publish sets owner's queue from "from" to inds, replacing whatever was
// previously queued there. This is most-recent-wins, not append: if owner
// never consumes, a repeatedly-publishing source must not accumulate an
// unbounded backlog. An empty inds is ignored: it leaves any earlier
// queue from "from" in place.
func (s *Store) Publish(owner, from int, inds []population.Individual) {
	if len(inds) == 0 {
		return
	}
	row, ok := s.byOwner[owner]
	if !ok {
		row = make(map[int][]population.Individual)
		s.byOwner[owner] = row
	}
	row[from] = population.CloneAll(inds)
}

// Consume atomically extracts and returns everything queued for owner,
// across every publishing source, leaving owner's row empty.
func (s *Store) Consume(owner int) map[int][]population.Individual {
	row, ok := s.byOwner[owner]
	if !ok {
		return nil
	}
	delete(s.byOwner, owner)
	return row
}

// Peek returns what is queued for owner from "from" without consuming it.
func (s *Store) Peek(owner, from int) []population.Individual {
	row, ok := s.byOwner[owner]
	if !ok {
		return nil
	}
	return population.CloneAll(row[from])
}

// PendingFor reports how many individuals are queued for owner in total,
// across every source.
func (s *Store) PendingFor(owner int) int {
	row, ok := s.byOwner[owner]
	if !ok {
		return 0
	}
	n := 0
	for _, q := range row {
		n += len(q)
	}
	return n
}

// Clone returns a deep copy.
func (s *Store) Clone() *Store {
	out := NewStore()
	for owner, row := range s.byOwner {
		for from, inds := range row {
			out.Publish(owner, from, inds)
		}
	}
	return out
}
