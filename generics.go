package conversion

import (
	"fmt"
	"reflect"
)

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// NewReflect creates an engine over Go runtime types.
func NewReflect(opts ...Option) *Engine[reflect.Type] {
	return New[reflect.Type](ReflectTypes{}, opts...)
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterFunc registers a typed function as the atomic edge S -> D.
func RegisterFunc[S, D any](e *Engine[reflect.Type], lossy bool, fn func(S, Hints) (D, error)) error {
	if fn == nil {
		return &RegistrationError{Reason: fmt.Sprintf("nil function for %v -> %v", TypeOf[S](), TypeOf[D]())}
	}
	return e.RegisterEdge(TypeOf[S](), TypeOf[D](), Func(fn), lossy)
}

// Func adapts a typed function to Converter. Inputs of another type are rejected.
func Func[S, D any](fn func(S, Hints) (D, error)) Converter {
	return ConverterFunc(func(value any, hints Hints) (any, error) {
		s, ok := value.(S)
		if !ok {
			return nil, fmt.Errorf("expected %v, got %T", TypeOf[S](), value)
		}
		return fn(s, hints)
	})
}

// ConvertTo converts value into T using the engine's default nesting depth.
// A nil value yields the zero T.
func ConvertTo[T any](e *Engine[reflect.Type], value any, hints Hints) (T, error) {
	var zero T
	if value == nil {
		return zero, nil
	}
	target := TypeOf[T]()
	out, err := e.ConvertValue(value, reflect.TypeOf(value), target, hints)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	if t, ok := out.(T); ok {
		return t, nil
	}
	rv := reflect.ValueOf(out)
	if rv.Type().ConvertibleTo(target) && rv.Kind() == target.Kind() {
		return rv.Convert(target).Interface().(T), nil
	}
	return zero, &ConversionError{
		Source: reflect.TypeOf(value),
		Target: target,
		Value:  value,
		Err:    fmt.Errorf("converter returned %T", out),
	}
}

// Convert converts value into target using the engine's default nesting depth.
func Convert(e *Engine[reflect.Type], value any, target reflect.Type, hints Hints) (any, error) {
	if value == nil {
		return reflect.Zero(target).Interface(), nil
	}
	return e.ConvertValue(value, reflect.TypeOf(value), target, hints)
}

// MustResolve is Resolve that panics when no path exists; intended for init-time wiring.
func MustResolve[T comparable](e *Engine[T], source, target T) Converter {
	c, err := e.Resolve(source, target, 0)
	if err != nil {
		panic(err)
	}
	return c
}
