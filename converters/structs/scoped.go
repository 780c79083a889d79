package structs

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// ValidatorFunc validates a field value after it has been assigned.
type ValidatorFunc func(value any) error

type scopeKey struct {
	src   reflect.Type // nil matches any source
	dst   reflect.Type // nil matches any destination
	field string
}

// scoped holds per-field functions at three scopes, swapped copy-on-write.
// Lookups prefer (src, dst) over dst over the global scope.
type scoped[F any] struct {
	mu sync.Mutex
	m  atomic.Pointer[map[scopeKey]F]
}

func (s *scoped[F]) set(src, dst reflect.Type, field string, fn F) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make(map[scopeKey]F)
	if old := s.m.Load(); old != nil {
		for k, v := range *old {
			next[k] = v
		}
	}
	next[scopeKey{src: src, dst: dst, field: field}] = fn
	s.m.Store(&next)
}

func (s *scoped[F]) lookup(src, dst reflect.Type, field string) (F, bool) {
	var zero F
	m := s.m.Load()
	if m == nil {
		return zero, false
	}
	for _, k := range [...]scopeKey{{src, dst, field}, {nil, dst, field}, {nil, nil, field}} {
		if fn, ok := (*m)[k]; ok {
			return fn, true
		}
	}
	return zero, false
}

// scopeType accepts a value, a pointer to it or a reflect.Type.
func scopeType(v any) reflect.Type {
	if t, ok := v.(reflect.Type); ok {
		return derefType(t)
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	return derefType(t)
}
