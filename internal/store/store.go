// Package store holds the mutable variable state of a single dataflow run.
package store

import "sync"

// Store maps variable names to their current values and remembers the order
// in which names were first registered. Initial bindings come first, in the
// order they were supplied, followed by variables first introduced as step
// outputs.
type Store struct {
	lock   sync.RWMutex
	values map[string]any
	order  []string
}

func New() *Store {
	return &Store{
		values: make(map[string]any),
	}
}

// Set writes a value and registers the name if it has not been seen before.
// Later writes overwrite earlier ones; registration order is kept from the
// first write.
func (s *Store) Set(name string, value any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}

	s.values[name] = value
}

// Get returns the current value of a registered name.
func (s *Store) Get(name string) (any, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.values[name]

	return value, ok
}

// Has reports whether the name has been registered.
func (s *Store) Has(name string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.values[name]

	return ok
}

// Registered returns every registered name in registration order.
func (s *Store) Registered() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)

	return names
}

// Len returns the number of registered names.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.values)
}

// Snapshot returns a shallow copy of the current values. Mutating the copy
// does not affect the store.
func (s *Store) Snapshot() map[string]any {
	s.lock.RLock()
	defer s.lock.RUnlock()

	snap := make(map[string]any, len(s.values))
	for name, value := range s.values {
		snap[name] = value
	}

	return snap
}
