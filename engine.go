package conversion

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Stats is a snapshot of cache and search activity.
type Stats struct {
	CacheHits    int64 // positive cache hits
	CacheMisses  int64 // positive cache misses
	Resolved     int   // pairs in the positive cache
	Unsupported  int   // pairs in the negative cache
	Searches     int64 // resolutions that reached the search phase
	PipeSearches int64 // frontier searches run
	HuntSearches int64 // depth-first fallbacks run
}

// Engine resolves converters between types of descriptor T.
// It is safe for concurrent use; create one per isolated registry.
type Engine[T comparable] struct {
	compat   Compatibility[T]
	registry *Registry[T]
	options  Options
	logger   *slog.Logger
	searchMu sync.Mutex // held for the whole search phase only with Options.SerializedSearch

	searches     atomic.Int64
	pipeSearches atomic.Int64
	huntSearches atomic.Int64
}

// New creates an engine over the given compatibility relation.
func New[T comparable](compat Compatibility[T], opts ...Option) *Engine[T] {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	if o.MaxNestingDepth <= 0 {
		o.MaxNestingDepth = DefaultMaxNestingDepth
	}
	logger := o.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &Engine[T]{compat: compat, registry: NewRegistry[T](), options: o, logger: logger}
}

// Registry exposes the engine's registry for inspection and cache control.
func (e *Engine[T]) Registry() *Registry[T] { return e.registry }

// Options returns the options the engine was built with.
func (e *Engine[T]) Options() Options { return e.options }

// Compatibility returns the relation the engine matches types with.
func (e *Engine[T]) Compatibility() Compatibility[T] { return e.compat }

// RegisterEdge registers an atomic converter from source to target.
func (e *Engine[T]) RegisterEdge(source, target T, c Converter, lossy bool) error {
	return e.Register(Edge[T]{Source: source, Target: target, Converter: c, Lossy: lossy})
}

// Register registers atomic edges in order, stopping at the first invalid one.
func (e *Engine[T]) Register(edges ...Edge[T]) error {
	for _, edge := range edges {
		replaced, err := e.registry.RegisterEdge(edge)
		if err != nil {
			return err
		}
		if replaced {
			e.logger.Debug("converter re-registered",
				slog.Any("source", edge.Source), slog.Any("target", edge.Target))
		}
	}
	return nil
}

// RegisterFactory appends a converter factory.
func (e *Engine[T]) RegisterFactory(f Factory[T]) error {
	return e.registry.RegisterFactory(f)
}

// Resolve returns a converter from source to target. A maxNestingDepth <= 0 uses the
// engine default. When no path exists the error matches ErrUnsupported.
func (e *Engine[T]) Resolve(source, target T, maxNestingDepth int) (Converter, error) {
	res, err := e.Lookup(source, target, maxNestingDepth)
	if err != nil {
		return nil, err
	}
	return res.Converter, nil
}

// Lookup is Resolve returning the full resolution, including the edges it was built from.
func (e *Engine[T]) Lookup(source, target T, maxNestingDepth int) (*Resolution[T], error) {
	if e.compat.IsAssignableTo(source, target) {
		return &Resolution[T]{Source: source, Target: target, Converter: Identity, Strategy: StrategyIdentity}, nil
	}
	if e.registry.IsKnownUnsupported(source, target) {
		return nil, &UnsupportedError{Source: source, Target: target}
	}
	if res, ok := e.registry.Cached(source, target); ok {
		return res, nil
	}
	if maxNestingDepth <= 0 {
		maxNestingDepth = e.options.MaxNestingDepth
	}

	// Outcomes built from snapshots older than a concurrent registration are returned
	// but not cached.
	gen := e.registry.Generation()
	res := e.matchDirect(source, target)
	if res == nil {
		res = e.search(source, target, maxNestingDepth)
	}
	if res == nil {
		cached := e.registry.MarkUnsupportedAt(gen, source, target)
		e.logger.Debug("conversion pair unsupported",
			slog.Any("source", source), slog.Any("target", target), slog.Bool("cached", cached))
		return nil, &UnsupportedError{Source: source, Target: target}
	}
	cached := e.registry.CacheResolvedAt(gen, res)
	e.logger.Debug("conversion path resolved",
		slog.Any("source", source),
		slog.Any("target", target),
		slog.String("strategy", res.Strategy.String()),
		slog.String("path", res.Describe()),
		slog.Int("score", res.Score),
		slog.Bool("cached", cached))
	return res, nil
}

// matchDirect looks for one atomic edge, then for a supporting factory.
func (e *Engine[T]) matchDirect(source, target T) *Resolution[T] {
	if edge, ok := e.registry.LookupDirect(source, target); ok {
		return directResolution(source, target, edge)
	}
	for _, edge := range e.registry.AtomicEdges() {
		if e.compat.IsAssignableTo(edge.Target, target) && e.compat.IsAssignableTo(source, edge.Source) {
			return directResolution(source, target, edge)
		}
	}
	for _, f := range e.registry.Factories() {
		if !f.Supports(source, target) {
			continue
		}
		c, ok := f.Create(target, nil, !e.options.FactoryLenient)
		if ok && c != nil {
			return &Resolution[T]{Source: source, Target: target, Converter: c, Strategy: StrategyFactory}
		}
	}
	return nil
}

func directResolution[T comparable](source, target T, edge Edge[T]) *Resolution[T] {
	return &Resolution[T]{
		Source:    source,
		Target:    target,
		Converter: edge.Converter,
		Strategy:  StrategyDirect,
		Path:      []Edge[T]{edge},
		Score:     edge.weight(),
	}
}

// search runs the frontier search, then the depth-first fallback.
func (e *Engine[T]) search(source, target T, maxNestingDepth int) *Resolution[T] {
	if e.options.SerializedSearch {
		e.searchMu.Lock()
		defer e.searchMu.Unlock()
		if res, ok := e.registry.peek(source, target); ok {
			return res
		}
	}
	e.searches.Add(1)
	edges := e.registry.AtomicEdges()

	e.pipeSearches.Add(1)
	if res := pipeSearch(e.compat, edges, source, target, maxNestingDepth); res != nil {
		return res
	}
	if e.options.DisableHunt {
		return nil
	}
	e.huntSearches.Add(1)
	return huntSearch(e.compat, edges, source, target)
}

// ConvertValue resolves (source, target) with the default depth and converts value.
// Converter failures are reported as *ConversionError.
func (e *Engine[T]) ConvertValue(value any, source, target T, hints Hints) (any, error) {
	c, err := e.Resolve(source, target, 0)
	if err != nil {
		return nil, err
	}
	out, err := c.Convert(value, hints)
	if err != nil {
		var ce *ConversionError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &ConversionError{Source: source, Target: target, Value: value, Err: err}
	}
	return out, nil
}

// Stats returns a snapshot of cache and search counters.
func (e *Engine[T]) Stats() Stats {
	hits, misses, resolved, unsupported := e.registry.CacheStats()
	return Stats{
		CacheHits:    hits,
		CacheMisses:  misses,
		Resolved:     resolved,
		Unsupported:  unsupported,
		Searches:     e.searches.Load(),
		PipeSearches: e.pipeSearches.Load(),
		HuntSearches: e.huntSearches.Load(),
	}
}

// Reset drops all cached resolutions and zeroes the counters; registrations are kept.
func (e *Engine[T]) Reset() {
	e.registry.ClearCaches()
	e.searches.Store(0)
	e.pipeSearches.Store(0)
	e.huntSearches.Store(0)
}
