package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/galacticorp/hr-portal/internal/app/models"
	"github.com/galacticorp/hr-portal/internal/pkg/apperrors"
	"github.com/galacticorp/hr-portal/internal/seed"
)

// activitiesKey is the single slot inside the bucket holding the
// JSON-serialized catalog.
var activitiesKey = []byte("activities")

// ActivityStore owns the canonical in-memory activity collection and its
// durable mirror. The mirror is one bucket in a local bbolt file, holding the
// whole catalog as a JSON array; it is rewritten after every mutation.
//
// The in-memory collection is guarded by a RWMutex so there is a single writer
// at any instant. Readers always get deep copies, never aliases into the
// collection.
type ActivityStore struct {
	db     *bolt.DB
	bucket []byte
	logger zerolog.Logger

	mu         sync.RWMutex
	activities []*models.Activity
}

// Open opens (or creates) the durable mirror at path, ensures the bucket
// exists and loads the collection. A missing, empty or unparseable mirror is
// replaced with the default seed catalog.
func Open(path, bucket string, logger zerolog.Logger) (*ActivityStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open activity store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %q: %w", bucket, err)
	}

	s := &ActivityStore{
		db:     db,
		bucket: []byte(bucket),
		logger: logger.With().Str("component", "activity_store").Logger(),
	}

	s.load()
	return s, nil
}

// Close closes the underlying database file.
func (s *ActivityStore) Close() error {
	return s.db.Close()
}

// load materializes the in-memory collection from the mirror. Any failure to
// read or decode falls back to the seed catalog; startup never fails because
// of a corrupt local mirror.
func (s *ActivityStore) load() {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get(activitiesKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read activity mirror, seeding defaults")
		s.resetToSeed()
		return
	}

	if len(raw) == 0 {
		s.logger.Info().Msg("Activity mirror is empty, seeding default catalog")
		s.resetToSeed()
		return
	}

	var activities []*models.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		s.logger.Error().Err(err).Msg("Activity mirror is unparseable, seeding defaults")
		s.resetToSeed()
		return
	}

	if len(activities) == 0 {
		s.logger.Info().Msg("Activity mirror holds no records, seeding default catalog")
		s.resetToSeed()
		return
	}

	s.mu.Lock()
	s.activities = activities
	s.mu.Unlock()
	s.logger.Info().Int("count", len(activities)).Msg("Activity catalog loaded from mirror")
}

// resetToSeed installs the default catalog and persists it. If persisting the
// seed fails the in-memory catalog is kept anyway; first-run availability
// takes precedence over durability.
func (s *ActivityStore) resetToSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = seed.DefaultActivities()
	if err := s.persistLocked(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist seed catalog, continuing in memory")
	}
}

// persistLocked serializes the whole collection into the mirror slot. Callers
// must hold the write lock; keeping it through the bbolt write guarantees
// mirror writes land in mutation order.
func (s *ActivityStore) persistLocked() error {
	raw, err := json.Marshal(s.activities)
	if err != nil {
		return apperrors.NewStorageFailureError(err, "failed to encode activity catalog")
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(activitiesKey, raw)
	})
	if err != nil {
		return apperrors.NewStorageFailureError(err, "failed to write activity catalog")
	}
	return nil
}

// Snapshot returns a deep copy of the full collection in insertion order.
func (s *ActivityStore) Snapshot() []*models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a.Clone())
	}
	return out
}

// Get returns a copy of the activity with the given id.
func (s *ActivityStore) Get(id string) (*models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.activities {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return nil, false
}

// Add appends a new activity and persists the collection. The in-memory
// mutation survives a persist failure; the error is still returned so the
// caller can surface it.
func (s *ActivityStore) Add(activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, activity.Clone())
	return s.persistLocked()
}

// Update replaces the stored activity with the same id. Returns false when no
// such activity exists, in which case nothing is persisted.
func (s *ActivityStore) Update(activity *models.Activity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.ID == activity.ID {
			s.activities[i] = activity.Clone()
			return true, s.persistLocked()
		}
	}
	return false, nil
}

// Delete removes the activity with the given id. Returns false when no such
// activity exists.
func (s *ActivityStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.activities {
		if a.ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return true, s.persistLocked()
		}
	}
	return false, nil
}

// AddAttendee appends the user to the activity's roster and persists, all
// under one lock hold so the membership check and the enrollment cannot be
// split by a concurrent caller. The roster never holds the same user twice: a
// duplicate enrollment reports changed=false, leaves the roster untouched and
// persists nothing.
func (s *ActivityStore) AddAttendee(activityID, userID string) (activity *models.Activity, changed, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.activities {
		if a.ID != activityID {
			continue
		}
		if a.HasAttendee(userID) {
			return a.Clone(), false, true, nil
		}
		a.Attendees = append(a.Attendees, userID)
		return a.Clone(), true, true, s.persistLocked()
	}
	return nil, false, false, nil
}

// RemoveAttendee drops the user from the activity's roster and persists,
// under the same single lock hold as AddAttendee. Removing a user that is not
// enrolled reports changed=false, leaves the roster untouched and persists
// nothing.
func (s *ActivityStore) RemoveAttendee(activityID, userID string) (activity *models.Activity, changed, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.activities {
		if a.ID != activityID {
			continue
		}
		kept := a.Attendees[:0]
		for _, id := range a.Attendees {
			if id == userID {
				changed = true
				continue
			}
			kept = append(kept, id)
		}
		a.Attendees = kept
		if !changed {
			return a.Clone(), false, true, nil
		}
		return a.Clone(), true, true, s.persistLocked()
	}
	return nil, false, false, nil
}

// Count returns the number of activities currently in the catalog.
func (s *ActivityStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
