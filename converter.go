package conversion

import "time"

// Hints is an open configuration map passed to every conversion.
// Unrecognized keys are ignored, absent keys fall back to documented defaults.
type Hints map[string]any

const (
	// HintZone selects the zone for zone-dependent conversions: *time.Location or an IANA name.
	HintZone = "zone"
	// HintStrict disables lenient fallbacks (for example the local zone) when true.
	HintStrict = "strict"
	// HintEpochUnit selects seconds or milliseconds for epoch numbers: time.Duration or "s"/"ms".
	HintEpochUnit = "epoch.unit"
	// HintDateLayout is the time layout used when parsing strings into times.
	HintDateLayout = "date.layout"
)

// Get returns the hint value for key, or nil. Safe on a nil map.
func (h Hints) Get(key string) any {
	if h == nil {
		return nil
	}
	return h[key]
}

// Bool returns a boolean hint, def when absent or not a bool.
func (h Hints) Bool(key string, def bool) bool {
	if b, ok := h.Get(key).(bool); ok {
		return b
	}
	return def
}

// Duration returns a duration hint, def when absent.
func (h Hints) Duration(key string, def time.Duration) time.Duration {
	if d, ok := h.Get(key).(time.Duration); ok {
		return d
	}
	return def
}

// Converter turns a source-typed value into a target-typed value.
// Implementations hold no state beyond configuration and are safe for concurrent use.
type Converter interface {
	Convert(value any, hints Hints) (any, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(value any, hints Hints) (any, error)

func (f ConverterFunc) Convert(value any, hints Hints) (any, error) { return f(value, hints) }

type identity struct{}

func (identity) Convert(value any, _ Hints) (any, error) { return value, nil }

// Identity is the converter whose output equals its input.
var Identity Converter = identity{}

type composed struct {
	first, next Converter
}

func (c composed) Convert(value any, hints Hints) (any, error) {
	out, err := c.first.Convert(value, hints)
	if err != nil {
		return nil, err
	}
	return c.next.Convert(out, hints)
}

// Then composes f and g: the result has f's source and g's target.
// Identity is absorbed on either side.
func Then(f, g Converter) Converter {
	switch {
	case f == nil || f == Identity:
		if g == nil {
			return Identity
		}
		return g
	case g == nil || g == Identity:
		return f
	}
	return composed{first: f, next: g}
}

// Compose chains converters left-to-right starting from Identity.
// If any converter returns an error it aborts.
func Compose(cs ...Converter) Converter {
	out := Identity
	for _, c := range cs {
		out = Then(out, c)
	}
	return out
}

// MapString returns a converter applying f when the value is a string; other values pass through.
func MapString(f func(string) string) Converter {
	return ConverterFunc(func(value any, _ Hints) (any, error) {
		if s, ok := value.(string); ok {
			return f(s), nil
		}
		return value, nil
	})
}

// WithDefault wraps c so that a nil input yields def instead of reaching c.
func WithDefault(c Converter, def any) Converter {
	return ConverterFunc(func(value any, hints Hints) (any, error) {
		if value == nil {
			return def, nil
		}
		return c.Convert(value, hints)
	})
}

// Edge is an atomic, hand-registered converter between two types.
// Lossy marks conversions that may lose information (narrowing, zone interpretation).
type Edge[T comparable] struct {
	Source    T
	Target    T
	Converter Converter
	Lossy     bool
}

// Pair returns the (source, target) key of the edge.
func (e Edge[T]) Pair() Pair[T] { return Pair[T]{Source: e.Source, Target: e.Target} }

// weight is the edge's contribution to a pipe score.
func (e Edge[T]) weight() int {
	if e.Lossy {
		return 13
	}
	return 3
}

// Factory produces converters for a whole family of target types.
type Factory[T comparable] interface {
	// Supports reports whether the factory can convert source values into target.
	Supports(source, target T) bool
	// Create builds a converter for target, or declines with false.
	Create(target T, defaultValue any, strict bool) (Converter, bool)
}

// FactoryFunc builds a Factory from a support predicate and a constructor.
type FactoryFunc[T comparable] struct {
	SupportsFunc func(source, target T) bool
	CreateFunc   func(target T, defaultValue any, strict bool) (Converter, bool)
}

func (f FactoryFunc[T]) Supports(source, target T) bool {
	return f.SupportsFunc != nil && f.SupportsFunc(source, target)
}

func (f FactoryFunc[T]) Create(target T, defaultValue any, strict bool) (Converter, bool) {
	if f.CreateFunc == nil {
		return nil, false
	}
	return f.CreateFunc(target, defaultValue, strict)
}
