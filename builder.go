package conversion

// Builder provides a fluent API to construct an Engine with options, edges and factories pre-registered.
type Builder[T comparable] struct {
	compat    Compatibility[T]
	opts      []Option
	edges     []Edge[T]
	factories []Factory[T]
}

// NewBuilder creates a new builder over the given compatibility relation.
func NewBuilder[T comparable](compat Compatibility[T]) *Builder[T] {
	return &Builder[T]{compat: compat}
}

// WithOptions appends engine options to the builder.
func (b *Builder[T]) WithOptions(opts ...Option) *Builder[T] { b.opts = append(b.opts, opts...); return b }

// AddEdge queues an atomic converter from source to target.
func (b *Builder[T]) AddEdge(source, target T, c Converter, lossy bool) *Builder[T] {
	b.edges = append(b.edges, Edge[T]{Source: source, Target: target, Converter: c, Lossy: lossy})
	return b
}

// AddFactory queues a converter factory.
func (b *Builder[T]) AddFactory(f Factory[T]) *Builder[T] {
	b.factories = append(b.factories, f)
	return b
}

// Build constructs an Engine using a single snapshot swap for edges and one for factories.
func (b *Builder[T]) Build() (*Engine[T], error) {
	e := New(b.compat, b.opts...)
	// Seed the snapshots in one shot to avoid many copy-on-write swaps.
	table := &edgeTable[T]{edges: make([]Edge[T], 0, len(b.edges)), index: make(map[Pair[T]]int, len(b.edges))}
	var zero T
	for _, edge := range b.edges {
		if edge.Source == zero || edge.Target == zero || edge.Converter == nil {
			return nil, &RegistrationError{Reason: "incomplete edge " + edge.Pair().String()}
		}
		if i, ok := table.index[edge.Pair()]; ok {
			table.edges[i] = edge
			continue
		}
		table.index[edge.Pair()] = len(table.edges)
		table.edges = append(table.edges, edge)
	}
	factories := make([]Factory[T], 0, len(b.factories))
	for _, f := range b.factories {
		if f == nil {
			return nil, &RegistrationError{Reason: "factory must not be nil"}
		}
		factories = append(factories, f)
	}
	e.registry.edges.Store(table)
	e.registry.factories.Store(factories)
	return e, nil
}
