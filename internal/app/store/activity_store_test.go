package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/galacticorp/hr-portal/internal/app/models"
	"github.com/galacticorp/hr-portal/internal/pkg/apperrors"
	"github.com/galacticorp/hr-portal/internal/seed"
)

func newTestStore(t *testing.T) *ActivityStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portal.db")
	s, err := Open(path, "portal", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testActivity(id string) *models.Activity {
	return &models.Activity{
		ID:          id,
		Title:       "Asteroid Photography Workshop",
		Description: "Capture the belt with long exposures.",
		Type:        models.ActivityTypeEducation,
		Date:        time.Date(2025, time.June, 3, 16, 30, 0, 0, time.Local),
		Location:    "Observation Deck",
		HostID:      "7",
		HostName:    "Ansel Orbit",
		Attendees:   []string{},
		Tags:        []string{"photography"},
	}
}

func TestOpenSeedsEmptyMirror(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, len(seed.DefaultActivities()), s.Count())

	activity, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Introduction to Quantum Computing", activity.Title)
}

func TestOpenSeedsUnparseableMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")

	// Write garbage into the mirror slot before the store ever sees it.
	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("portal"))
		if err != nil {
			return err
		}
		return b.Put(activitiesKey, []byte("not json at all"))
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := Open(path, "portal", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, len(seed.DefaultActivities()), s.Count())
}

func TestAddAndGetReturnsCopies(t *testing.T) {
	s := newTestStore(t)

	activity := testActivity("ws-1")
	require.NoError(t, s.Add(activity))

	got, ok := s.Get("ws-1")
	require.True(t, ok)
	assert.Equal(t, activity, got)

	// Mutating the returned copy must not leak into the store.
	got.Title = "Changed"
	got.Tags[0] = "mutated"
	again, ok := s.Get("ws-1")
	require.True(t, ok)
	assert.Equal(t, "Asteroid Photography Workshop", again.Title)
	assert.Equal(t, []string{"photography"}, again.Tags)
}

func TestUpdateMissingActivity(t *testing.T) {
	s := newTestStore(t)

	found, err := s.Update(testActivity("nope"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteRemovesActivity(t *testing.T) {
	s := newTestStore(t)

	found, err := s.Delete("1")
	require.NoError(t, err)
	require.True(t, found)

	_, ok := s.Get("1")
	assert.False(t, ok)

	found, err = s.Delete("1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAddAttendeePreservesNoDuplicateInvariant(t *testing.T) {
	s := newTestStore(t)

	updated, changed, found, err := s.AddAttendee("1", "42")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, changed)
	assert.Contains(t, updated.Attendees, "42")

	// A second enrollment reports no change and leaves the roster untouched.
	updated, changed, found, err = s.AddAttendee("1", "42")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, changed)

	count := 0
	for _, id := range updated.Attendees {
		if id == "42" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRemoveAttendeeUnknownUser(t *testing.T) {
	s := newTestStore(t)

	before, ok := s.Get("1")
	require.True(t, ok)

	updated, changed, found, err := s.RemoveAttendee("1", "no-such-user")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, changed)
	assert.Equal(t, before.Attendees, updated.Attendees)
}

func TestAttendeeOpsOnMissingActivity(t *testing.T) {
	s := newTestStore(t)

	_, _, found, err := s.AddAttendee("missing", "42")
	require.NoError(t, err)
	assert.False(t, found)

	_, _, found, err = s.RemoveAttendee("missing", "42")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPersistFailureSurfacesWithoutRollback(t *testing.T) {
	s := newTestStore(t)

	// Closing the database makes every mirror write fail.
	require.NoError(t, s.Close())

	activity := testActivity("pf-1")
	err := s.Add(activity)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)

	// The in-memory mutation stands even though the mirror write failed.
	got, ok := s.Get("pf-1")
	require.True(t, ok)
	assert.Equal(t, activity.Title, got.Title)

	// Roster mutations surface the same failure without losing the change.
	updated, changed, found, err := s.AddAttendee("pf-1", "42")
	require.True(t, found)
	assert.True(t, changed)
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	assert.Contains(t, updated.Attendees, "42")
}

func TestMirrorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")

	s, err := Open(path, "portal", zerolog.Nop())
	require.NoError(t, err)

	activity := testActivity("rt-1")
	require.NoError(t, s.Add(activity))
	before := s.Snapshot()
	require.NoError(t, s.Close())

	reopened, err := Open(path, "portal", zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	after := reopened.Snapshot()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Title, after[i].Title)
		assert.Equal(t, before[i].Type, after[i].Type)
		assert.Equal(t, before[i].Attendees, after[i].Attendees)
		assert.Equal(t, before[i].Tags, after[i].Tags)
		// Dates must survive the JSON round trip to at least second precision.
		assert.True(t, before[i].Date.Truncate(time.Second).Equal(after[i].Date.Truncate(time.Second)),
			"date mismatch for %s: %v vs %v", before[i].ID, before[i].Date, after[i].Date)
	}
}
