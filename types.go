package conversion

import (
	"fmt"
	"reflect"
	"sync"
)

// Compatibility answers "is a value of type src acceptable wherever dst is expected".
// Implementations must be reflexive and transitive along their subtype chains.
type Compatibility[T comparable] interface {
	IsAssignableTo(src, dst T) bool
}

// CompatibilityFunc adapts a plain function to Compatibility.
type CompatibilityFunc[T comparable] func(src, dst T) bool

func (f CompatibilityFunc[T]) IsAssignableTo(src, dst T) bool { return f(src, dst) }

// ReflectTypes is the Compatibility of the Go runtime type system.
// Interface targets accept every type that implements them.
type ReflectTypes struct{}

func (ReflectTypes) IsAssignableTo(src, dst reflect.Type) bool {
	if src == nil || dst == nil {
		return false
	}
	return src == dst || src.AssignableTo(dst)
}

// Pair is a (source, target) type pair; it keys edges and both caches.
type Pair[T comparable] struct {
	Source T
	Target T
}

func (p Pair[T]) String() string { return fmt.Sprintf("%v->%v", p.Source, p.Target) }

// Hierarchy is a declared subtype relation over arbitrary descriptors.
// It is useful for descriptors that have no runtime type system behind them.
type Hierarchy[T comparable] struct {
	mu      sync.RWMutex
	parents map[T][]T
}

// NewHierarchy creates an empty hierarchy; every descriptor is compatible with itself.
func NewHierarchy[T comparable]() *Hierarchy[T] {
	return &Hierarchy[T]{parents: make(map[T][]T)}
}

// Declare records that sub is acceptable wherever super is expected.
func (h *Hierarchy[T]) Declare(sub, super T) *Hierarchy[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.parents[sub] {
		if p == super {
			return h
		}
	}
	h.parents[sub] = append(h.parents[sub], super)
	return h
}

func (h *Hierarchy[T]) IsAssignableTo(src, dst T) bool {
	if src == dst {
		return true
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := map[T]bool{src: true}
	queue := []T{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range h.parents[cur] {
			if p == dst {
				return true
			}
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return false
}
