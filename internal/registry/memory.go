// Package registry holds the in-memory activity state for the process lifetime.
package registry

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// MemoryStore keeps every activity roster in memory. Activities are fixed at
// construction time; only participant lists mutate afterwards.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewMemoryStore constructs a store populated from the seed catalog.
func NewMemoryStore(seed []domain.Activity) *MemoryStore {
	store := &MemoryStore{activities: make(map[string]domain.Activity, len(seed))}
	for _, activity := range seed {
		activity.Participants = append([]string(nil), activity.Participants...)
		store.activities[activity.Name] = activity
	}
	return store
}

// Snapshot returns a copy of the full current state. Callers may mutate the
// result freely without affecting the store.
func (s *MemoryStore) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		activity.Participants = append([]string(nil), activity.Participants...)
		out[name] = activity
	}
	return out, nil
}

// Signup appends email to the activity roster, preserving signup order.
func (s *MemoryStore) Signup(ctx context.Context, activityName, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	for _, existing := range activity.Participants {
		if existing == email {
			return domain.Activity{}, domain.ErrAlreadyRegistered
		}
	}

	activity.Participants = append(append([]string(nil), activity.Participants...), email)
	s.activities[activityName] = activity
	return activity, nil
}

// Unregister removes email from the activity roster, keeping the remaining
// entries in their original order.
func (s *MemoryStore) Unregister(ctx context.Context, activityName, email string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}

	index := -1
	for i, existing := range activity.Participants {
		if existing == email {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	remaining := make([]string, 0, len(activity.Participants)-1)
	remaining = append(remaining, activity.Participants[:index]...)
	remaining = append(remaining, activity.Participants[index+1:]...)
	activity.Participants = remaining
	s.activities[activityName] = activity
	return activity, nil
}
