package conversion

// huntGraph indexes the atomic edges by endpoint, preserving registration order.
type huntGraph[T comparable] struct {
	sources    []T              // distinct edge sources, registration order
	targets    []T              // distinct edge targets, registration order
	successors map[T][]T        // source -> targets it reaches in one edge
	reachers   map[T]map[T]bool // target -> sources that reach it in one edge
	byPair     map[Pair[T]]Edge[T]
}

func newHuntGraph[T comparable](edges []Edge[T]) *huntGraph[T] {
	g := &huntGraph[T]{
		successors: make(map[T][]T),
		reachers:   make(map[T]map[T]bool),
		byPair:     make(map[Pair[T]]Edge[T], len(edges)),
	}
	for _, e := range edges {
		if _, ok := g.byPair[e.Pair()]; ok {
			continue
		}
		g.byPair[e.Pair()] = e
		if _, ok := g.successors[e.Source]; !ok {
			g.sources = append(g.sources, e.Source)
		}
		g.successors[e.Source] = append(g.successors[e.Source], e.Target)
		if _, ok := g.reachers[e.Target]; !ok {
			g.targets = append(g.targets, e.Target)
			g.reachers[e.Target] = make(map[T]bool)
		}
		g.reachers[e.Target][e.Source] = true
	}
	return g
}

// walk descends from node until it reaches a type in ends. A type already on the current
// path is skipped, so the same type may appear on another branch but never twice on one.
func (g *huntGraph[T]) walk(node T, ends map[T]bool, path []T) []T {
	for _, t := range path {
		if t == node {
			return nil
		}
	}
	next := make([]T, len(path), len(path)+1)
	copy(next, path)
	next = append(next, node)
	if ends[node] {
		return next
	}
	for _, child := range g.successors[node] {
		if found := g.walk(child, ends, next); found != nil {
			return found
		}
	}
	return nil
}

// chain returns the first type sequence [source', ..., target'] that the atomic edges
// can carry from source to target, or nil.
func (g *huntGraph[T]) chain(compat Compatibility[T], source, target T) []T {
	var fromSources, toTargets []T
	for _, s := range g.sources {
		if compat.IsAssignableTo(source, s) {
			fromSources = append(fromSources, s)
		}
	}
	for _, t := range g.targets {
		if compat.IsAssignableTo(t, target) {
			toTargets = append(toTargets, t)
		}
	}
	for _, t := range toTargets {
		ends := g.reachers[t]
		for _, s := range fromSources {
			for _, first := range g.successors[s] {
				if found := g.walk(first, ends, []T{s}); found != nil {
					return append(found, t)
				}
			}
		}
	}
	return nil
}

// huntSearch is the first-found depth-first fallback over atomic edges only.
func huntSearch[T comparable](compat Compatibility[T], edges []Edge[T], source, target T) *Resolution[T] {
	g := newHuntGraph(edges)
	seq := g.chain(compat, source, target)
	if len(seq) < 2 {
		return nil
	}
	path := make([]Edge[T], 0, len(seq)-1)
	conv := Identity
	sum := 0
	for i := 1; i < len(seq); i++ {
		e, ok := g.byPair[Pair[T]{Source: seq[i-1], Target: seq[i]}]
		if !ok {
			return nil
		}
		path = append(path, e)
		conv = Then(conv, e.Converter)
		sum += e.weight()
	}
	return &Resolution[T]{
		Source:    source,
		Target:    target,
		Converter: conv,
		Strategy:  StrategyHunt,
		Path:      path,
		Score:     len(path) * sum,
	}
}
