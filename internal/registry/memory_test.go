package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func seedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore drawing, painting, and mixed media projects",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
		},
	}
}

func TestSignupAppendsInOrder(t *testing.T) {
	store := NewMemoryStore(seedActivities())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "first@mergington.edu")
	require.NoError(t, err)
	activity, err := store.Signup(ctx, "Chess Club", "second@mergington.edu")
	require.NoError(t, err)

	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"first@mergington.edu",
		"second@mergington.edu",
	}, activity.Participants)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := NewMemoryStore(seedActivities())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot["Chess Club"].Participants, 2)
}

func TestSignupUnknownActivity(t *testing.T) {
	store := NewMemoryStore(seedActivities())

	_, err := store.Signup(context.Background(), "Robotics Club", "test@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupDoesNotEnforceCapacity(t *testing.T) {
	store := NewMemoryStore(seedActivities())

	// Art Club is seeded at its max of 2; signups still go through.
	activity, err := store.Signup(context.Background(), "Art Club", "overflow@mergington.edu")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 3)
	require.Greater(t, len(activity.Participants), activity.MaxParticipants)
}

func TestUnregisterPreservesOrder(t *testing.T) {
	store := NewMemoryStore(seedActivities())
	ctx := context.Background()

	_, err := store.Signup(ctx, "Chess Club", "third@mergington.edu")
	require.NoError(t, err)

	activity, err := store.Unregister(ctx, "Chess Club", "daniel@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu", "third@mergington.edu"}, activity.Participants)
}

func TestUnregisterNotRegistered(t *testing.T) {
	store := NewMemoryStore(seedActivities())

	_, err := store.Unregister(context.Background(), "Chess Club", "stranger@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	store := NewMemoryStore(seedActivities())

	_, err := store.Unregister(context.Background(), "Robotics Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSnapshotIsolation(t *testing.T) {
	seed := seedActivities()
	store := NewMemoryStore(seed)
	ctx := context.Background()

	// Mutating the seed after construction must not leak into the store.
	seed[0].Participants[0] = "mutated@mergington.edu"

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", snapshot["Chess Club"].Participants[0])

	// Mutating a snapshot must not leak back either.
	snapshot["Chess Club"].Participants[0] = "mutated@mergington.edu"
	delete(snapshot, "Art Club")

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "michael@mergington.edu", fresh["Chess Club"].Participants[0])
	require.Contains(t, fresh, "Art Club")
}

func TestConcurrentSignups(t *testing.T) {
	store := NewMemoryStore(seedActivities())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Signup(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot["Chess Club"].Participants, 18)
}
