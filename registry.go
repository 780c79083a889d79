package conversion

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Strategy names how a resolution was obtained.
type Strategy int

const (
	StrategyIdentity Strategy = iota // target accepts source as is
	StrategyDirect                   // one atomic edge
	StrategyFactory                  // converter produced by a factory
	StrategyPipe                     // composite found by frontier search
	StrategyHunt                     // composite found by depth-first fallback
)

func (s Strategy) String() string {
	switch s {
	case StrategyIdentity:
		return "identity"
	case StrategyDirect:
		return "direct"
	case StrategyFactory:
		return "factory"
	case StrategyPipe:
		return "pipe"
	case StrategyHunt:
		return "hunt"
	default:
		return "unknown"
	}
}

// Resolution is a resolved converter plus the edges it was built from.
type Resolution[T comparable] struct {
	Source    T
	Target    T
	Converter Converter
	Strategy  Strategy
	Path      []Edge[T] // source-to-target order; empty for identity and factory results
	Score     int
}

// Describe renders the path as "A->B->C" for diagnostics.
func (r *Resolution[T]) Describe() string {
	if r == nil {
		return ""
	}
	if len(r.Path) == 0 {
		return Pair[T]{Source: r.Source, Target: r.Target}.String()
	}
	parts := make([]string, 0, len(r.Path))
	for _, e := range r.Path {
		parts = append(parts, e.Pair().String())
	}
	return strings.Join(parts, " | ")
}

// edgeTable is an immutable snapshot of the atomic edges in registration order.
type edgeTable[T comparable] struct {
	edges []Edge[T]
	index map[Pair[T]]int
}

// Registry holds the atomic edge graph, the factories and both resolution caches.
// Edges and factories are swapped atomically (copy-on-write); caches use sync.Map,
// so reads never block on writers.
type Registry[T comparable] struct {
	mu          sync.Mutex   // serializes writers and generation-checked cache stores
	gen         atomic.Uint64
	edges       atomic.Value // holds *edgeTable[T]
	factories   atomic.Value // holds []Factory[T]
	resolved    sync.Map     // Pair[T] -> *Resolution[T]
	unsupported sync.Map     // Pair[T] -> struct{}
	hits        atomic.Int64
	misses      atomic.Int64
}

// NewRegistry creates an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	r := &Registry[T]{}
	r.edges.Store(&edgeTable[T]{index: make(map[Pair[T]]int)})
	r.factories.Store([]Factory[T](nil))
	return r
}

func (r *Registry[T]) table() *edgeTable[T] {
	return r.edges.Load().(*edgeTable[T])
}

// RegisterEdge adds an atomic edge. The last registration for a pair wins and keeps the
// iteration position of the first; cached outcomes for exactly that pair are dropped.
// It reports whether an earlier edge was replaced.
func (r *Registry[T]) RegisterEdge(edge Edge[T]) (bool, error) {
	var zero T
	switch {
	case edge.Source == zero || edge.Target == zero:
		return false, &RegistrationError{Reason: "edge endpoints must be set"}
	case edge.Converter == nil:
		return false, &RegistrationError{Reason: "edge converter must not be nil"}
	}
	key := edge.Pair()

	r.mu.Lock()
	old := r.table()
	next := &edgeTable[T]{
		edges: make([]Edge[T], len(old.edges), len(old.edges)+1),
		index: make(map[Pair[T]]int, len(old.index)+1),
	}
	copy(next.edges, old.edges)
	for k, v := range old.index {
		next.index[k] = v
	}
	i, replaced := next.index[key]
	if replaced {
		next.edges[i] = edge
	} else {
		next.index[key] = len(next.edges)
		next.edges = append(next.edges, edge)
	}
	r.edges.Store(next)
	r.gen.Add(1)
	r.invalidate(key)
	r.mu.Unlock()
	return replaced, nil
}

// RegisterFactory appends a factory to the iteration-ordered factory list.
func (r *Registry[T]) RegisterFactory(f Factory[T]) error {
	if f == nil {
		return &RegistrationError{Reason: "factory must not be nil"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.Factories()
	next := make([]Factory[T], len(old), len(old)+1)
	copy(next, old)
	r.factories.Store(append(next, f))
	r.gen.Add(1)
	return nil
}

// LookupDirect returns the atomic edge registered for exactly (source, target).
func (r *Registry[T]) LookupDirect(source, target T) (Edge[T], bool) {
	t := r.table()
	i, ok := t.index[Pair[T]{Source: source, Target: target}]
	if !ok {
		return Edge[T]{}, false
	}
	return t.edges[i], true
}

// AtomicEdges returns the hand-registered edges in registration order.
// Resolutions synthesized by search are never part of this set.
func (r *Registry[T]) AtomicEdges() []Edge[T] {
	return r.table().edges
}

// Edges returns every usable edge. Composite results live only in the cache, so this is
// the atomic set as well.
func (r *Registry[T]) Edges() []Edge[T] {
	return r.AtomicEdges()
}

// Factories returns the registered factories in registration order.
func (r *Registry[T]) Factories() []Factory[T] {
	return r.factories.Load().([]Factory[T])
}

// Len returns the number of atomic edges.
func (r *Registry[T]) Len() int {
	return len(r.table().edges)
}

// Generation counts registrations. A resolution computed from snapshots read under one
// generation may only be cached while that generation is still current.
func (r *Registry[T]) Generation() uint64 {
	return r.gen.Load()
}

// Cached returns a previously resolved converter for the pair.
func (r *Registry[T]) Cached(source, target T) (*Resolution[T], bool) {
	v, ok := r.resolved.Load(Pair[T]{Source: source, Target: target})
	if !ok {
		r.misses.Add(1)
		return nil, false
	}
	r.hits.Add(1)
	return v.(*Resolution[T]), true
}

// CacheResolved stores a resolution under its (source, target) pair.
func (r *Registry[T]) CacheResolved(res *Resolution[T]) {
	if res == nil || res.Converter == nil {
		return
	}
	r.resolved.Store(Pair[T]{Source: res.Source, Target: res.Target}, res)
}

// peek is Cached without touching the hit and miss counters.
func (r *Registry[T]) peek(source, target T) (*Resolution[T], bool) {
	v, ok := r.resolved.Load(Pair[T]{Source: source, Target: target})
	if !ok {
		return nil, false
	}
	return v.(*Resolution[T]), true
}

// CacheResolvedAt stores res only if no registration happened since generation gen.
// It reports whether res was stored.
func (r *Registry[T]) CacheResolvedAt(gen uint64, res *Resolution[T]) bool {
	if res == nil || res.Converter == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen.Load() != gen {
		return false
	}
	r.resolved.Store(Pair[T]{Source: res.Source, Target: res.Target}, res)
	return true
}

// MarkUnsupportedAt records the pair only if no registration happened since generation gen.
// It reports whether the pair was recorded.
func (r *Registry[T]) MarkUnsupportedAt(gen uint64, source, target T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen.Load() != gen {
		return false
	}
	r.unsupported.Store(Pair[T]{Source: source, Target: target}, struct{}{})
	return true
}

// IsKnownUnsupported reports whether the pair was proven to have no conversion path.
func (r *Registry[T]) IsKnownUnsupported(source, target T) bool {
	_, ok := r.unsupported.Load(Pair[T]{Source: source, Target: target})
	return ok
}

// MarkUnsupported records the pair in the negative cache.
func (r *Registry[T]) MarkUnsupported(source, target T) {
	r.unsupported.Store(Pair[T]{Source: source, Target: target}, struct{}{})
}

// Invalidate drops both cached outcomes for one pair.
func (r *Registry[T]) Invalidate(p Pair[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidate(p)
}

func (r *Registry[T]) invalidate(p Pair[T]) {
	r.resolved.Delete(p)
	r.unsupported.Delete(p)
}

// ClearCaches drops every cached outcome; edges and factories are kept.
func (r *Registry[T]) ClearCaches() {
	r.resolved.Range(func(k, _ any) bool {
		r.resolved.Delete(k)
		return true
	})
	r.unsupported.Range(func(k, _ any) bool {
		r.unsupported.Delete(k)
		return true
	})
	r.hits.Store(0)
	r.misses.Store(0)
}

// CacheStats returns positive cache hits, misses and the sizes of both caches.
func (r *Registry[T]) CacheStats() (hits, misses int64, resolved, unsupported int) {
	r.resolved.Range(func(_, _ any) bool {
		resolved++
		return true
	})
	r.unsupported.Range(func(_, _ any) bool {
		unsupported++
		return true
	})
	return r.hits.Load(), r.misses.Load(), resolved, unsupported
}
