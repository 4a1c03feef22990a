package runner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yesoreyeram/thittam/pkg/types"
)

// Result is the stored outcome of one benchmark case.
type Result struct {
	ID       string        `json:"id"`
	CaseID   int           `json:"case_id"`
	Problem  string        `json:"problem"`
	Solver   string        `json:"solver"`
	Jobs     int           `json:"jobs"`
	Machines int           `json:"machines"`
	Optimum  types.Optimum `json:"optimum"`
	Solved   bool          `json:"solved"`
	Makespan float64       `json:"makespan,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
	Err      error         `json:"-"`
	Finished time.Time     `json:"finished"`
}

// Error returns the relative error against the optimum reference value in
// percent, or 0 when no optimum is known or the case is unsolved.
func (r Result) Error() float64 {
	if !r.Solved || !r.Optimum.Known() {
		return 0
	}
	ref := r.Optimum.Ref()
	if ref == 0 {
		return 0
	}
	return (r.Makespan/ref - 1) * 100
}

// Store defines the interface for benchmark result storage.
type Store interface {
	// Save records a result and returns its assigned ID.
	Save(result Result) string

	// Load retrieves a result by ID.
	Load(id string) (Result, bool)

	// List returns all results in insertion order.
	List() []Result
}

// InMemoryStore implements Store using in-memory storage.
type InMemoryStore struct {
	mu      sync.RWMutex
	results []Result
	byID    map[string]int
}

// NewInMemoryStore creates a new in-memory result store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID: make(map[string]int),
	}
}

// Save implements Store.
func (s *InMemoryStore) Save(result Result) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = uuid.New().String()
	s.byID[result.ID] = len(s.results)
	s.results = append(s.results, result)
	return result.ID
}

// Load implements Store.
func (s *InMemoryStore) Load(id string) (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Result{}, false
	}
	return s.results[i], true
}

// List implements Store.
func (s *InMemoryStore) List() []Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Result(nil), s.results...)
}
