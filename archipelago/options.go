package archipelago

import "time"

// DistributionType selects how a source island's emigrants are fanned out
// to its neighbors under source-initiated migration. It has no effect
// under destination-initiated migration (every island publishes one
// offer regardless of distribution).
type DistributionType int

const (
	// PointToPoint sends a source's emigrants to one uniformly random
	// neighbor. This is the default.
	PointToPoint DistributionType = iota
	// Broadcast sends a copy of a source's emigrants to every neighbor.
	Broadcast
)

// String renders the distribution mode for HumanReadable output.
func (d DistributionType) String() string {
	switch d {
	case Broadcast:
		return "broadcast"
	default:
		return "point_to_point"
	}
}

// MigrationDirection selects who initiates a migration: the island that
// just finished evolving (source), or the island about to start (destination).
type MigrationDirection int

const (
	// Destination migration: each island publishes its best individual as
	// a standing offer; neighbors pull a random subset before evolving.
	// This is the default.
	Destination MigrationDirection = iota
	// Source migration: a freshly evolved island pushes its selected
	// emigrants immediately, according to DistributionType.
	Source
)

// String renders the direction mode for HumanReadable output.
func (d MigrationDirection) String() string {
	switch d {
	case Source:
		return "source"
	default:
		return "destination"
	}
}

// Metrics exposes archipelago-level observability hooks. A NoopMetrics
// implementation is provided and used by default.
type Metrics interface {
	// EpochCompleted is called once per island per completed epoch.
	EpochCompleted(islandIdx int)
	// MigrationPublished is called whenever individuals are placed in the
	// migration store (once per destination under broadcast).
	MigrationPublished(count int)
	// MigrationIntegrated is called whenever a replacement policy
	// integrates immigrants into a population.
	MigrationIntegrated(count int)
	// BusyIslands reports the number of islands still running. The
	// archipelago itself never calls it; Join and Busy report nothing here.
	BusyIslands(n int)
}

// NoopMetrics discards every observation.
type NoopMetrics struct{}

func (NoopMetrics) EpochCompleted(int)     {}
func (NoopMetrics) MigrationPublished(int) {}
func (NoopMetrics) MigrationIntegrated(int) {}
func (NoopMetrics) BusyIslands(int)        {}

// Options configures an Archipelago. Zero values are safe; defaults are
// applied by the constructors:
//   - Distribution unset (zero value) => PointToPoint
//   - Direction unset (zero value)    => Destination
//   - nil Metrics                     => NoopMetrics
//
// The shared RNGs are not configurable here: New always seeds them with
// the fixed seeds 1 and 2.
type Options struct {
	Distribution DistributionType
	Direction    MigrationDirection

	// Metrics receives epoch and migration observability events.
	Metrics Metrics

	// ProgressLogPeriod, if positive, makes EvolveFor log a one-line
	// progress report at this interval while islands are still running.
	// Zero disables progress logging.
	ProgressLogPeriod time.Duration
}
