package interactions

import (
	"context"
	"sync"
)

// memoryRepository is a development and test backend. State is lost on
// restart.
type memoryRepository struct {
	mu  sync.Mutex
	rec Record
	set bool
}

// NewMemoryRepository creates an in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Load(_ context.Context) (Record, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.set {
		return Record{}, false, nil
	}
	return r.rec.Clone(), true, nil
}

func (r *memoryRepository) Save(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec = rec.Clone()
	r.set = true
	return nil
}
