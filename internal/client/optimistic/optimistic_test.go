package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SuccessKeepsOptimisticState(t *testing.T) {
	status := "inbox"
	rolledBack := false

	err := Run(context.Background(), Mutation[string]{
		Snapshot: func() string { return status },
		Apply:    func() { status = "public" },
		Commit:   func(ctx context.Context) error { return nil },
		Rollback: func(prev string) { status = prev; rolledBack = true },
	})

	require.NoError(t, err)
	assert.Equal(t, "public", status)
	assert.False(t, rolledBack)
}

func TestRun_FailureRestoresSnapshot(t *testing.T) {
	following := true
	boom := errors.New("network down")

	err := Run(context.Background(), Mutation[bool]{
		Snapshot: func() bool { return following },
		Apply:    func() { following = false },
		Commit:   func(ctx context.Context) error { return boom },
		Rollback: func(prev bool) { following = prev },
	})

	require.ErrorIs(t, err, boom)
	assert.True(t, following, "follow state must revert to its pre-call value")
}

func TestRun_RollbackIsScopedToTheMutation(t *testing.T) {
	// Two entities; a failing mutation on one must not clobber the other.
	statuses := map[int64]string{1: "inbox", 2: "inbox"}

	mutate := func(id int64, fail bool) error {
		return Run(context.Background(), Mutation[string]{
			Snapshot: func() string { return statuses[id] },
			Apply:    func() { statuses[id] = "public" },
			Commit: func(ctx context.Context) error {
				if fail {
					return errors.New("boom")
				}
				return nil
			},
			Rollback: func(prev string) { statuses[id] = prev },
		})
	}

	require.NoError(t, mutate(2, false))
	require.Error(t, mutate(1, true))

	assert.Equal(t, "inbox", statuses[1])
	assert.Equal(t, "public", statuses[2], "unrelated concurrent edit must survive")
}

func TestBegin_DeferredRollback(t *testing.T) {
	status := "inbox"

	rollback := Begin(Mutation[string]{
		Snapshot: func() string { return status },
		Apply:    func() { status = "public" },
		Rollback: func(prev string) { status = prev },
	})

	assert.Equal(t, "public", status, "apply happens immediately")

	// Commit failure arrives later as a message; the caller rolls back then.
	rollback()
	assert.Equal(t, "inbox", status)
}

func TestInflightSet(t *testing.T) {
	s := NewInflightSet()

	require.True(t, s.Start("message:1"))
	assert.True(t, s.Busy("message:1"))
	assert.False(t, s.Start("message:1"), "overlapping mutation on the same entity must be refused")

	// Other entities remain independently actionable.
	require.True(t, s.Start("message:2"))

	s.Done("message:1")
	assert.False(t, s.Busy("message:1"))
	require.True(t, s.Start("message:1"))
}
