package conversion

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Identity(t *testing.T) {
	h := NewHierarchy[string]().Declare("Sub", "Super")
	e := newEngine(t, h, nil)

	for _, pair := range [][2]string{{"A", "A"}, {"Sub", "Super"}} {
		res, err := e.Lookup(pair[0], pair[1], 0)
		require.NoError(t, err)
		assert.Equal(t, StrategyIdentity, res.Strategy)
		out, err := res.Converter.Convert("v", nil)
		require.NoError(t, err)
		assert.Equal(t, "v", out)
	}
	assert.Zero(t, e.Stats().Searches)

	_, err := e.Lookup("Super", "Sub", 0)
	assert.True(t, IsUnsupported(err))
}

func TestEngine_DirectTakesPrecedence(t *testing.T) {
	e := newEngine(t, nil, nil,
		edge("A", "C", false),
		edge("C", "B", false),
		edge("A", "B", true),
	)

	res, err := e.Lookup("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, res.Strategy)
	assert.Equal(t, 13, res.Score)
	assert.Zero(t, e.Stats().PipeSearches)
}

func TestEngine_DirectThroughCompatibility(t *testing.T) {
	h := NewHierarchy[string]().Declare("Sub", "A").Declare("B", "Super")
	e := newEngine(t, h, nil, edge("A", "B", false))

	res, err := e.Lookup("Sub", "Super", 0)
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, res.Strategy)
	assert.Equal(t, "A->B", res.Describe())
}

func TestEngine_MultiHopScore(t *testing.T) {
	e := newEngine(t, nil, nil,
		edge("A", "B", false),
		edge("B", "C", true),
	)

	res, err := e.Lookup("A", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, StrategyPipe, res.Strategy)
	require.Len(t, res.Path, 2, spew.Sdump(res.Path))
	assert.Equal(t, 2*(3+13), res.Score)
	assert.Equal(t, "A->B | B->C", res.Describe())

	out, err := res.Converter.Convert("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "x>B>C", out)
}

func TestEngine_PicksLowestScore(t *testing.T) {
	e := newEngine(t, nil, nil,
		edge("A", "B", false),
		edge("B", "D", true),
		edge("A", "C", false),
		edge("C", "D", false),
	)

	res, err := e.Lookup("A", "D", 0)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Score, res.Describe())
	assert.Equal(t, "A->C | C->D", res.Describe())
}

func TestEngine_NegativeCache(t *testing.T) {
	e := newEngine(t, nil, nil, edge("A", "B", false))

	for i := 0; i < 3; i++ {
		_, err := e.Resolve("A", "Z", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupported))
		var ue *UnsupportedError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "Z", ue.Target)
	}
	st := e.Stats()
	assert.EqualValues(t, 1, st.Searches)
	assert.Equal(t, 1, st.Unsupported)
}

func TestEngine_PositiveCache(t *testing.T) {
	e := newEngine(t, nil, nil, edge("A", "B", false), edge("B", "C", false))

	first, err := e.Lookup("A", "C", 0)
	require.NoError(t, err)
	second, err := e.Lookup("A", "C", 0)
	require.NoError(t, err)
	assert.Same(t, first, second)

	st := e.Stats()
	assert.EqualValues(t, 1, st.Searches)
	assert.EqualValues(t, 1, st.CacheHits)
	assert.Equal(t, 1, st.Resolved)

	e.Reset()
	st = e.Stats()
	assert.Zero(t, st.Searches)
	assert.Zero(t, st.Resolved)
	assert.Equal(t, 2, e.Registry().Len())
}

func TestEngine_Cycles(t *testing.T) {
	e := newEngine(t, nil, nil,
		edge("A", "B", false),
		edge("B", "A", false),
		edge("B", "C", false),
		edge("C", "B", false),
		edge("C", "D", false),
	)

	_, err := e.Resolve("A", "Z", 0)
	assert.True(t, IsUnsupported(err))

	res, err := e.Lookup("A", "D", 0)
	require.NoError(t, err)
	assert.Equal(t, "A->B | B->C | C->D", res.Describe())
	assert.Equal(t, 27, res.Score)
}

func TestEngine_DepthBoundAndHunt(t *testing.T) {
	chain := []Edge[string]{
		edge("A", "B", false),
		edge("B", "C", false),
		edge("C", "D", false),
		edge("D", "E", false),
	}

	e := newEngine(t, nil, nil, chain...)
	res, err := e.Lookup("A", "E", 3)
	require.NoError(t, err)
	assert.Equal(t, StrategyHunt, res.Strategy)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, 48, res.Score)
	assert.EqualValues(t, 1, e.Stats().HuntSearches)
	out, err := res.Converter.Convert("x", nil)
	require.NoError(t, err)
	assert.Equal(t, "x>B>C>D>E", out)

	deep := newEngine(t, nil, nil, chain...)
	res, err = deep.Lookup("A", "E", 4)
	require.NoError(t, err)
	assert.Equal(t, StrategyPipe, res.Strategy)

	noHunt := newEngine(t, nil, []Option{WithHuntSearch(false)}, chain...)
	_, err = noHunt.Resolve("A", "E", 3)
	assert.True(t, IsUnsupported(err))
	assert.Zero(t, noHunt.Stats().HuntSearches)
}

func TestEngine_ReRegistrationInvalidates(t *testing.T) {
	e := newEngine(t, nil, nil, edge("A", "B", false))

	out, err := e.ConvertValue("x", "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, "x>B", out)

	require.NoError(t, e.RegisterEdge("A", "B", step("B2"), false))
	out, err = e.ConvertValue("x", "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, "x>B2", out)

	_, err = e.Resolve("A", "C", 0)
	require.True(t, IsUnsupported(err))
	require.NoError(t, e.RegisterEdge("A", "C", step("C"), false))
	_, err = e.Resolve("A", "C", 0)
	assert.NoError(t, err)
}

func TestEngine_Factories(t *testing.T) {
	declining := FactoryFunc[string]{
		SupportsFunc: func(_, target string) bool { return target == "F" },
		CreateFunc:   func(string, any, bool) (Converter, bool) { return nil, false },
	}
	var gotStrict bool
	accepting := FactoryFunc[string]{
		SupportsFunc: func(_, target string) bool { return target == "F" },
		CreateFunc: func(_ string, _ any, strict bool) (Converter, bool) {
			gotStrict = strict
			return step("F"), true
		},
	}
	e := newEngine(t, nil, nil)
	require.NoError(t, e.RegisterFactory(declining))
	require.NoError(t, e.RegisterFactory(accepting))

	res, err := e.Lookup("A", "F", 0)
	require.NoError(t, err)
	assert.Equal(t, StrategyFactory, res.Strategy)
	assert.Empty(t, res.Path)
	assert.True(t, gotStrict)

	lenient := newEngine(t, nil, []Option{WithFactoryStrict(false)})
	require.NoError(t, lenient.RegisterFactory(accepting))
	_, err = lenient.Lookup("A", "F", 0)
	require.NoError(t, err)
	assert.False(t, gotStrict)
}

func TestEngine_ConversionErrorsAreNotCached(t *testing.T) {
	failing := ConverterFunc(func(v any, _ Hints) (any, error) {
		if v == "bad" {
			return nil, fmt.Errorf("rejected %v", v)
		}
		return v, nil
	})
	e := newEngine(t, nil, nil, Edge[string]{Source: "A", Target: "B", Converter: failing})

	_, err := e.ConvertValue("bad", "A", "B", nil)
	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "bad", ce.Value)
	assert.False(t, IsUnsupported(err))

	out, err := e.ConvertValue("good", "A", "B", nil)
	require.NoError(t, err)
	assert.Equal(t, "good", out)
	assert.Zero(t, e.Stats().Unsupported)
}

func TestEngine_RegistrationErrors(t *testing.T) {
	e := newEngine(t, nil, nil)

	assert.ErrorIs(t, e.RegisterEdge("", "B", step("B"), false), ErrInvalidRegistration)
	assert.ErrorIs(t, e.RegisterEdge("A", "B", nil, false), ErrInvalidRegistration)
	assert.ErrorIs(t, e.RegisterFactory(nil), ErrInvalidRegistration)
	assert.Zero(t, e.Registry().Len())
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, nil, []Option{WithLogger(logger)}, edge("A", "B", false), edge("B", "C", false))

	_, err := e.Resolve("A", "C", 0)
	require.NoError(t, err)
	_, _ = e.Resolve("A", "Z", 0)
	require.NoError(t, e.Register(edge("A", "B", true)))

	out := buf.String()
	assert.Contains(t, out, "conversion path resolved")
	assert.Contains(t, out, "strategy=pipe")
	assert.Contains(t, out, "conversion pair unsupported")
	assert.Contains(t, out, "converter re-registered")
}

func TestEngine_RegistrationDuringSearch(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge[string]
	}{
		{name: "stale pipe", edges: []Edge[string]{edge("A", "B", false), edge("B", "C", false)}},
		{name: "stale unsupported", edges: []Edge[string]{edge("A", "B", false), edge("X", "C", false)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// The first A->A check happens inside the frontier search; it parks the
			// search until the direct edge has been registered.
			entered := make(chan struct{})
			release := make(chan struct{})
			var once sync.Once
			h := NewHierarchy[string]()
			compat := CompatibilityFunc[string](func(src, dst string) bool {
				if src == "A" && dst == "A" {
					once.Do(func() {
						close(entered)
						<-release
					})
				}
				return h.IsAssignableTo(src, dst)
			})
			e := New[string](compat)
			require.NoError(t, e.Register(tc.edges...))

			done := make(chan struct{})
			go func() {
				defer close(done)
				_, _ = e.Lookup("A", "C", 0)
			}()
			select {
			case <-entered:
			case <-time.After(5 * time.Second):
				t.Fatal("search never reached the compatibility check")
			}
			require.NoError(t, e.RegisterEdge("A", "C", step("DIRECT"), false))
			close(release)
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("search did not finish")
			}

			res, err := e.Lookup("A", "C", 0)
			require.NoError(t, err)
			assert.Equal(t, StrategyDirect, res.Strategy)
			out, err := res.Converter.Convert("x", nil)
			require.NoError(t, err)
			assert.Equal(t, "x>DIRECT", out)

			c, err := e.Resolve("A", "C", 0)
			require.NoError(t, err)
			out, err = c.Convert("x", nil)
			require.NoError(t, err)
			assert.Equal(t, "x>DIRECT", out)
		})
	}
}

func TestEngine_SerializedSearchCountsOneMiss(t *testing.T) {
	e := newEngine(t, nil, []Option{WithSerializedSearch(true)}, edge("A", "B", false), edge("B", "C", false))

	_, err := e.Resolve("A", "C", 0)
	require.NoError(t, err)
	st := e.Stats()
	assert.EqualValues(t, 1, st.CacheMisses)
	assert.EqualValues(t, 0, st.CacheHits)
	assert.EqualValues(t, 1, st.Searches)
}

// concurrencyGraph mixes clean and lossy edges, a cycle and a chain too long for the
// default depth, so the pairs below cover direct, pipe, hunt and unsupported outcomes.
func concurrencyGraph() []Edge[string] {
	return []Edge[string]{
		edge("A", "B", false),
		edge("B", "C", false),
		edge("C", "D", true),
		edge("A", "C", true),
		edge("D", "E", false),
		edge("B", "E", true),
		edge("E", "F", false),
		edge("C", "F", true),
		edge("F", "G", false),
		edge("G", "H", false),
		edge("H", "I", false),
		edge("E", "B", false),
	}
}

type outcome struct {
	unsupported bool
	strategy    Strategy
	path        string
	score       int
	output      any
}

func resolveOutcome(e *Engine[string], src, dst string) (outcome, error) {
	res, err := e.Lookup(src, dst, 0)
	if IsUnsupported(err) {
		return outcome{unsupported: true}, nil
	}
	if err != nil {
		return outcome{}, err
	}
	out, err := res.Converter.Convert("v", nil)
	if err != nil {
		return outcome{}, err
	}
	return outcome{strategy: res.Strategy, path: res.Describe(), score: res.Score, output: out}, nil
}

func TestEngine_Concurrency(t *testing.T) {
	nodes := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	var pairs []Pair[string]
	for _, src := range nodes {
		for _, dst := range nodes {
			if src != dst {
				pairs = append(pairs, Pair[string]{Source: src, Target: dst})
			}
		}
	}

	reference := newEngine(t, nil, nil, concurrencyGraph()...)
	want := make(map[Pair[string]]outcome, len(pairs))
	for _, p := range pairs {
		o, err := resolveOutcome(reference, p.Source, p.Target)
		require.NoError(t, err)
		want[p] = o
	}
	// spot checks of the scoring rule: 2*(13+13) beats 3*(3+3+13)
	require.Equal(t, "v>C>D", want[Pair[string]{"A", "D"}].output)
	require.Equal(t, 52, want[Pair[string]{"A", "D"}].score)
	require.True(t, want[Pair[string]{"D", "A"}].unsupported)

	for _, serialized := range []bool{false, true} {
		t.Run(fmt.Sprintf("serialized=%v", serialized), func(t *testing.T) {
			e := newEngine(t, nil, []Option{WithSerializedSearch(serialized)}, concurrencyGraph()...)

			const workers = 32
			errs := make(chan error, workers)
			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for round := 0; round < 3; round++ {
						for i := range pairs {
							p := pairs[(i+w*7)%len(pairs)]
							got, err := resolveOutcome(e, p.Source, p.Target)
							if err != nil {
								errs <- err
								return
							}
							if got != want[p] {
								errs <- fmt.Errorf("%s: got %+v, want %+v", p, got, want[p])
								return
							}
						}
					}
				}(w)
			}

			done := make(chan struct{})
			go func() { wg.Wait(); close(done) }()
			select {
			case <-done:
			case <-time.After(10 * time.Second):
				t.Fatal("timed out waiting for workers")
			}
			close(errs)
			for err := range errs {
				assert.NoError(t, err)
			}
		})
	}
}
