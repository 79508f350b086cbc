// Package optimistic generalizes the optimistic-update pattern shared by
// message status changes, link deletion and follow toggles: apply the change
// locally first, issue the backend call, and restore the snapshot when the
// call fails. Rollback is scoped to the one mutation, never a global
// snapshot, so concurrent edits to other entities survive a failure.
package optimistic

import "context"

// Mutation describes one optimistic state change over a view's local state.
//
// Snapshot must capture only the state this mutation touches. Apply makes
// the local change immediately. Commit performs the backend call. Rollback
// restores the captured snapshot; it runs only when Commit fails.
type Mutation[S any] struct {
	Snapshot func() S
	Apply    func()
	Commit   func(ctx context.Context) error
	Rollback func(prev S)
}

// Run executes the optimistic lifecycle. On Commit failure the snapshot is
// restored and the commit error returned; local state is never left
// inconsistent with a failed backend call.
func Run[S any](ctx context.Context, m Mutation[S]) error {
	prev := m.Snapshot()
	m.Apply()
	if err := m.Commit(ctx); err != nil {
		m.Rollback(prev)
		return err
	}
	return nil
}

// Begin applies the mutation locally and returns the rollback to invoke if
// the commit later fails. It is the split form of Run for event loops where
// the commit result arrives asynchronously as a message.
func Begin[S any](m Mutation[S]) (rollback func()) {
	prev := m.Snapshot()
	m.Apply()
	return func() { m.Rollback(prev) }
}

// InflightSet tracks entities with a mutation in flight so a view can
// disable exactly those entities' actions. It is confined to the UI event
// loop and is not safe for concurrent use.
type InflightSet struct {
	keys map[string]struct{}
}

func NewInflightSet() *InflightSet {
	return &InflightSet{keys: make(map[string]struct{})}
}

// Start marks key as operating. It returns false when a mutation for the
// key is already in flight, in which case the caller must not start another.
func (s *InflightSet) Start(key string) bool {
	if _, busy := s.keys[key]; busy {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// Done clears the in-flight mark for key.
func (s *InflightSet) Done(key string) {
	delete(s.keys, key)
}

// Busy reports whether key has a mutation in flight.
func (s *InflightSet) Busy(key string) bool {
	_, busy := s.keys[key]
	return busy
}
