// Package observable provides nullable values whose changes can be watched.
package observable

import "sync"

// Value holds an optional T. Observers are called synchronously, in
// registration order, after every Set or Clear.
type Value[T any] struct {
	mu        sync.RWMutex
	value     T
	set       bool
	nextID    int
	observers map[int]func(T, bool)
	order     []int
}

// Get returns the current value and whether it is set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.set
}

// Value returns the current value, or the zero value when unset.
func (v *Value[T]) Value() T {
	val, _ := v.Get()
	return val
}

// IsSet reports whether a value is present.
func (v *Value[T]) IsSet() bool {
	_, ok := v.Get()
	return ok
}

// Set stores val and notifies observers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.value = val
	v.set = true
	observers := v.snapshot()
	v.mu.Unlock()

	for _, fn := range observers {
		fn(val, true)
	}
}

// Clear unsets the value and notifies observers.
func (v *Value[T]) Clear() {
	var zero T

	v.mu.Lock()
	v.value = zero
	v.set = false
	observers := v.snapshot()
	v.mu.Unlock()

	for _, fn := range observers {
		fn(zero, false)
	}
}

// Observe registers fn and returns a function that removes it.
func (v *Value[T]) Observe(fn func(val T, set bool)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.observers == nil {
		v.observers = make(map[int]func(T, bool))
	}
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	v.order = append(v.order, id)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.observers, id)
		for i, oid := range v.order {
			if oid == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// History records every value set on a Value. Clears are not recorded.
// It is meant for callers that need to see intermediate states such as a
// loading flag going true then false.
type History[T any] struct {
	mu     sync.Mutex
	values []T
}

// Record starts recording v into a new History.
func Record[T any](v *Value[T]) (*History[T], func()) {
	h := &History[T]{}
	cancel := v.Observe(func(val T, set bool) {
		if !set {
			return
		}
		h.mu.Lock()
		h.values = append(h.values, val)
		h.mu.Unlock()
	})
	return h, cancel
}

// Values returns a copy of the recorded values.
func (h *History[T]) Values() []T {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]T, len(h.values))
	copy(out, h.values)
	return out
}

func (v *Value[T]) snapshot() []func(T, bool) {
	fns := make([]func(T, bool), 0, len(v.order))
	for _, id := range v.order {
		fns = append(fns, v.observers[id])
	}
	return fns
}
