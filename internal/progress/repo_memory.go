package progress

import (
	"context"
	"sync"
)

// MemoryRepo stores progress snapshots in memory and is safe for concurrent
// use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]State
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]State)}
}

// Get returns the stored snapshot for a user.
func (r *MemoryRepo) Get(ctx context.Context, userID string) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.byUser[userID]
	if !ok {
		return State{}, ErrNotFound
	}
	return state, nil
}

// Save replaces the stored snapshot for a user.
func (r *MemoryRepo) Save(ctx context.Context, userID string, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = state
	return nil
}
