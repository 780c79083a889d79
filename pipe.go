package conversion

// pipe is a path under construction, grown backward from the target.
// edges[0] feeds the requested target; tail is the edge furthest from it.
type pipe[T comparable] struct {
	edges   []Edge[T]
	members map[Pair[T]]struct{}
	tail    Edge[T]
	matched bool
	broken  bool
}

func newPipe[T comparable](seed Edge[T]) *pipe[T] {
	return &pipe[T]{
		edges:   []Edge[T]{seed},
		members: map[Pair[T]]struct{}{seed.Pair(): {}},
		tail:    seed,
	}
}

func (p *pipe[T]) clone() *pipe[T] {
	c := &pipe[T]{
		edges:   make([]Edge[T], len(p.edges), len(p.edges)+1),
		members: make(map[Pair[T]]struct{}, len(p.members)+1),
		tail:    p.tail,
	}
	copy(c.edges, p.edges)
	for k := range p.members {
		c.members[k] = struct{}{}
	}
	return c
}

func (p *pipe[T]) contains(e Edge[T]) bool {
	_, ok := p.members[e.Pair()]
	return ok
}

// append adds e unless it is already part of the pipe.
func (p *pipe[T]) append(e Edge[T]) bool {
	if p.contains(e) {
		return false
	}
	p.members[e.Pair()] = struct{}{}
	p.edges = append(p.edges, e)
	p.tail = e
	return true
}

// score penalizes both length and lossy edges; lower is better.
func (p *pipe[T]) score() int {
	sum := 0
	for _, e := range p.edges {
		sum += e.weight()
	}
	return len(p.edges) * sum
}

// resolution composes the pipe in source-to-target order.
func (p *pipe[T]) resolution(source, target T, strategy Strategy) *Resolution[T] {
	path := make([]Edge[T], 0, len(p.edges))
	conv := Identity
	for i := len(p.edges) - 1; i >= 0; i-- {
		path = append(path, p.edges[i])
		conv = Then(conv, p.edges[i].Converter)
	}
	return &Resolution[T]{
		Source:    source,
		Target:    target,
		Converter: conv,
		Strategy:  strategy,
		Path:      path,
		Score:     p.score(),
	}
}

// quickMatch reports whether any edge can start at source and any edge can end at target.
func quickMatch[T comparable](compat Compatibility[T], edges []Edge[T], source, target T) bool {
	var fromSource, toTarget bool
	for _, e := range edges {
		if !fromSource && compat.IsAssignableTo(source, e.Source) {
			fromSource = true
		}
		if !toTarget && compat.IsAssignableTo(e.Target, target) {
			toTarget = true
		}
		if fromSource && toTarget {
			return true
		}
	}
	return false
}

// pipeSearch finds the lowest-scoring chain of atomic edges from source to target whose
// length does not exceed maxDepth. The frontier is owned by the caller's goroutine.
func pipeSearch[T comparable](compat Compatibility[T], edges []Edge[T], source, target T, maxDepth int) *Resolution[T] {
	if maxDepth < 2 || !quickMatch(compat, edges, source, target) {
		return nil
	}
	var frontier, matched []*pipe[T]
	for _, e := range edges {
		if compat.IsAssignableTo(e.Target, target) {
			frontier = append(frontier, newPipe(e))
		}
	}
	bound := maxDepth
	for len(frontier) > 0 {
		p := frontier[0]
		frontier[0] = nil
		frontier = frontier[1:]
		if p.broken {
			continue
		}
		var candidates []Edge[T]
		for _, c := range edges {
			if !p.contains(c) && compat.IsAssignableTo(c.Target, p.tail.Source) {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			p.broken = true
			continue
		}
		if len(p.edges) < maxDepth {
			hit := -1
			for i, c := range candidates {
				if compat.IsAssignableTo(source, c.Source) {
					hit = i
					break
				}
			}
			if hit >= 0 && p.append(candidates[hit]) {
				p.matched = true
				matched = append(matched, p)
				bound = min(bound, len(p.edges))
				continue
			}
		}
		if len(p.edges) < bound {
			for _, c := range candidates {
				next := p.clone()
				if next.append(c) {
					frontier = append(frontier, next)
				}
			}
		}
	}

	var best *pipe[T]
	bestScore := 0
	for _, p := range matched {
		if s := p.score(); best == nil || s < bestScore {
			best, bestScore = p, s
		}
	}
	if best == nil {
		return nil
	}
	return best.resolution(source, target, StrategyPipe)
}
