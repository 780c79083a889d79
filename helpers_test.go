package conversion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// step appends its label, so a converted value spells out the path it took.
func step(label string) Converter {
	return ConverterFunc(func(v any, _ Hints) (any, error) {
		return v.(string) + ">" + label, nil
	})
}

func edge(src, dst string, lossy bool) Edge[string] {
	return Edge[string]{Source: src, Target: dst, Converter: step(dst), Lossy: lossy}
}

func newEngine(t testing.TB, h *Hierarchy[string], opts []Option, edges ...Edge[string]) *Engine[string] {
	t.Helper()
	if h == nil {
		h = NewHierarchy[string]()
	}
	e := New[string](h, opts...)
	require.NoError(t, e.Register(edges...))
	return e
}
