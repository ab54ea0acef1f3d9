package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds the units the CLI can run, keyed by day number.
type Registry struct {
	mu    sync.RWMutex
	units map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[int]Solver)}
}

// Register adds s. Registering the same day twice is an error.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := s.Day()
	if day < 1 || day > 25 {
		return fmt.Errorf("register %q: day %d out of range", s.Title(), day)
	}
	if prev, ok := r.units[day]; ok {
		return fmt.Errorf("register %q: day %d already taken by %q", s.Title(), day, prev.Title())
	}
	r.units[day] = s
	return nil
}

// Get returns the unit for day.
func (r *Registry) Get(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.units[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := make([]int, 0, len(r.units))
	for d := range r.units {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Len is the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
