package archipelago

import (
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisXW/pagmo/internal/barrier"
)

// Evolve spawns one concurrent worker per island, each running n epochs,
// and returns immediately without blocking. Call Join to wait for
// completion. Fails if the archipelago is already evolving.
func (a *Archipelago) Evolve(n int) error {
	return a.launch(func(isl *Island, b *barrier.Barrier) error {
		b.Wait()
		return isl.evolveEpochs(a, n)
	})
}

// EvolveFor is identical to Evolve, except each island evolves for at
// least d rather than a fixed epoch count. If Options.ProgressLogPeriod
// is positive, a background goroutine logs a one-line progress report at
// that interval until every island finishes.
func (a *Archipelago) EvolveFor(d time.Duration) error {
	err := a.launch(func(isl *Island, b *barrier.Barrier) error {
		b.Wait()
		return isl.evolveUntil(a, time.Now().Add(d))
	})
	if err != nil {
		return err
	}
	if a.opt.ProgressLogPeriod > 0 {
		go a.logProgress(a.opt.ProgressLogPeriod)
	}
	return nil
}

// launch is the shared body of Evolve/EvolveFor: it validates the
// archipelago isn't already busy, builds a fresh start barrier sized to
// the current island count, and spawns one errgroup goroutine per island
// running body. A separate monitor goroutine, outside the errgroup,
// closes a.done once every worker has returned, letting Busy() poll
// without blocking on Join.
func (a *Archipelago) launch(body func(*Island, *barrier.Barrier) error) error {
	a.stateMu.Lock()
	if a.running.Load() {
		a.stateMu.Unlock()
		return newStateError("evolve called on a busy archipelago")
	}
	a.running.Store(true)
	a.interrupted.Store(false)
	a.joinErr = nil
	islands := a.islands
	a.done = make(chan struct{})
	a.stateMu.Unlock()

	b := barrier.New(len(islands))
	var g errgroup.Group
	for _, isl := range islands {
		isl := isl
		g.Go(func() error { return body(isl, b) })
	}

	workersFinished := make(chan error, 1)
	go func() { workersFinished <- g.Wait() }()

	go func() {
		err := <-workersFinished
		a.stateMu.Lock()
		a.joinErr = err
		a.running.Store(false)
		close(a.done)
		a.stateMu.Unlock()
	}()

	return nil
}

// logProgress logs a one-line report every period until the archipelago
// finishes its current evolution.
func (a *Archipelago) logProgress(period time.Duration) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-a.done:
			return
		case <-t.C:
			log.Printf("archipelago: %d islands, busy=%v, history=%d", a.GetSize(), a.Busy(), len(a.DumpMigrHistory()))
		}
	}
}

// Join blocks until the current evolve generation's workers have all
// completed, then returns the first error any of them returned, if any.
// Calling Join when the archipelago was never launched, or after a prior
// Join already drained it, returns nil immediately.
func (a *Archipelago) Join() error {
	a.stateMu.Lock()
	done := a.done
	a.stateMu.Unlock()
	if done == nil {
		return nil
	}
	<-done
	a.stateMu.Lock()
	err := a.joinErr
	a.stateMu.Unlock()
	return err
}

// Busy reports whether the current evolve generation's workers are still
// running. Non-blocking.
func (a *Archipelago) Busy() bool {
	return a.running.Load()
}

// Interrupt signals every island to stop at its next epoch boundary.
// Join must still be called to reclaim the worker goroutines. Cooperative
// interruption is not an error: after Interrupt, Join returns nil unless
// a worker independently failed.
func (a *Archipelago) Interrupt() {
	a.interrupted.Store(true)
}
