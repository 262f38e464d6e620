package population

// Comparator reports whether a is strictly better than b. The default
// (SumComparator) treats a lower sum of fitness components as better,
// which is adequate for the single-objective case; multi-objective
// problems can supply their own via WithComparator.
type Comparator func(a, b Individual) bool

// SumComparator is the default Comparator: lower sum-of-fitness wins.
func SumComparator(a, b Individual) bool {
	return sumF(a.F) < sumF(b.F)
}

func sumF(f []float64) float64 {
	var s float64
	for _, v := range f {
		s += v
	}
	return s
}

// Population is an island's local sub-population: an ordered sequence of
// individuals plus best-so-far tracking. A Population is owned exclusively
// by one island; the coordinator only reads it while the archipelago is
// idle.
type Population struct {
	individuals []Individual
	less        Comparator
	evalCount   uint64 // number of objective-function evaluations charged to this population
}

// Option configures a new Population.
type Option func(*Population)

// WithComparator overrides the default sum-of-fitness comparator.
func WithComparator(cmp Comparator) Option {
	return func(p *Population) { p.less = cmp }
}

// New builds a Population from an initial set of individuals (copied).
func New(inds []Individual, opts ...Option) *Population {
	p := &Population{
		individuals: CloneAll(inds),
		less:        SumComparator,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Len returns the number of resident individuals.
func (p *Population) Len() int { return len(p.individuals) }

// Individuals returns the live backing slice. Callers that need to retain
// entries beyond the current epoch must clone them.
func (p *Population) Individuals() []Individual { return p.individuals }

// At returns a copy of the individual at index i.
func (p *Population) At(i int) Individual { return p.individuals[i].Clone() }

// Replace overwrites the individual at index i.
func (p *Population) Replace(i int, ind Individual) { p.individuals[i] = ind }

// Append adds new individuals to the population.
func (p *Population) Append(inds ...Individual) {
	p.individuals = append(p.individuals, inds...)
}

// Less reports whether a is strictly better than b by the population's
// own comparator (its injected Comparator, or SumComparator by default).
func (p *Population) Less(a, b Individual) bool { return p.less(a, b) }

// Best returns a copy of the best individual by the population's
// comparator. Panics if the population is empty — callers must not ask
// for the best of nothing.
func (p *Population) Best() Individual {
	best := p.individuals[0]
	for _, ind := range p.individuals[1:] {
		if p.less(ind, best) {
			best = ind
		}
	}
	return best.Clone()
}

// ChargeEvaluations adds n to the evaluation counter; algorithms call this
// after evaluating n individuals against the problem's objective function.
func (p *Population) ChargeEvaluations(n uint64) { p.evalCount += n }

// Evaluations reports the cumulative number of objective-function
// evaluations charged against this population.
func (p *Population) Evaluations() uint64 { return p.evalCount }

// Clone deep-copies the population, including its evaluation counter; the
// comparator function itself is shared (comparators are stateless).
func (p *Population) Clone() *Population {
	return &Population{
		individuals: CloneAll(p.individuals),
		less:        p.less,
		evalCount:   p.evalCount,
	}
}
