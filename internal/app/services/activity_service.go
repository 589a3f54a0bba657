package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/galacticorp/hr-portal/internal/app/models"
	"github.com/galacticorp/hr-portal/internal/app/store"
	"github.com/galacticorp/hr-portal/internal/pkg/apperrors"
	"github.com/galacticorp/hr-portal/internal/pkg/identity"
)

// ActivityService defines the interface for activity directory operations
type ActivityService interface {
	ListActivities(ctx context.Context, search, activityType string) ([]*models.Activity, error)
	GetActivity(ctx context.Context, id string) (*models.Activity, error)
	CreateActivity(ctx context.Context, draft *models.Activity) (*models.Activity, error)
	UpdateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	JoinActivity(ctx context.Context, activityID, userID string) (*models.Activity, error)
	LeaveActivity(ctx context.Context, activityID, userID string) (*models.Activity, error)
}

// activityServiceImpl implements ActivityService on top of the activity store
type activityServiceImpl struct {
	store    *store.ActivityStore
	identity identity.Provider
	logger   zerolog.Logger
}

// NewActivityService creates a new ActivityService
func NewActivityService(s *store.ActivityStore, idp identity.Provider, logger zerolog.Logger) ActivityService {
	return &activityServiceImpl{
		store:    s,
		identity: idp,
		logger:   logger.With().Str("service", "activity").Logger(),
	}
}

// MatchesFilter is the listing predicate: an activity is visible when the
// search term is a case-insensitive substring of its title or description AND
// the type filter is empty or equals its type.
func MatchesFilter(a *models.Activity, search, activityType string) bool {
	if search != "" {
		term := strings.ToLower(search)
		title := strings.ToLower(a.Title)
		description := strings.ToLower(a.Description)
		if !strings.Contains(title, term) && !strings.Contains(description, term) {
			return false
		}
	}
	if activityType != "" && string(a.Type) != activityType {
		return false
	}
	return true
}

// ListActivities returns a snapshot of the catalog, filtered by the optional
// search term and type. An empty result is not an error.
func (s *activityServiceImpl) ListActivities(ctx context.Context, search, activityType string) ([]*models.Activity, error) {
	snapshot := s.store.Snapshot()

	if search == "" && activityType == "" {
		return snapshot, nil
	}

	filtered := make([]*models.Activity, 0, len(snapshot))
	for _, a := range snapshot {
		if MatchesFilter(a, search, activityType) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// GetActivity retrieves a single activity by id
func (s *activityServiceImpl) GetActivity(ctx context.Context, id string) (*models.Activity, error) {
	activity, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", id))
	}
	return activity, nil
}

// validateActivity checks the business-level field requirements shared by
// create and update.
func (s *activityServiceImpl) validateActivity(a *models.Activity) error {
	if strings.TrimSpace(a.Title) == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "title cannot be empty")
	}
	if !a.Type.IsValid() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, fmt.Sprintf("unknown activity type %q", a.Type))
	}
	if a.Date.IsZero() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "date is required")
	}
	return nil
}

// CreateActivity assigns an id and host identity to the draft and stores it.
// The new activity always starts with an empty roster.
func (s *activityServiceImpl) CreateActivity(ctx context.Context, draft *models.Activity) (*models.Activity, error) {
	if err := s.validateActivity(draft); err != nil {
		return nil, err
	}

	activity := draft.Clone()
	activity.ID = uuid.NewString()
	activity.Attendees = []string{}
	if activity.HostID == "" {
		user := s.identity.CurrentUser()
		activity.HostID = user.ID
		activity.HostName = user.Name
	}

	if err := s.store.Add(activity); err != nil {
		s.logger.Error().Err(err).Str("activityId", activity.ID).Msg("Failed to persist new activity")
		return activity, err
	}

	s.logger.Info().Str("activityId", activity.ID).Str("title", activity.Title).Msg("Activity created")
	return activity, nil
}

// UpdateActivity replaces the editable fields of an existing activity. The id,
// host identity and roster are immutable through this operation; join and
// leave are the only roster mutations.
func (s *activityServiceImpl) UpdateActivity(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if err := s.validateActivity(activity); err != nil {
		return nil, err
	}

	existing, ok := s.store.Get(activity.ID)
	if !ok {
		return nil, apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", activity.ID))
	}

	updated := activity.Clone()
	updated.HostID = existing.HostID
	updated.HostName = existing.HostName
	updated.Attendees = existing.Attendees

	found, err := s.store.Update(updated)
	if !found {
		return nil, apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", activity.ID))
	}
	if err != nil {
		s.logger.Error().Err(err).Str("activityId", updated.ID).Msg("Failed to persist activity update")
		return updated, err
	}

	s.logger.Info().Str("activityId", updated.ID).Msg("Activity updated")
	return updated, nil
}

// DeleteActivity removes an activity from the catalog
func (s *activityServiceImpl) DeleteActivity(ctx context.Context, id string) error {
	found, err := s.store.Delete(id)
	if !found {
		return apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", id))
	}
	if err != nil {
		s.logger.Error().Err(err).Str("activityId", id).Msg("Failed to persist activity deletion")
		return err
	}

	s.logger.Info().Str("activityId", id).Msg("Activity deleted")
	return nil
}

// JoinActivity enrolls the user in the activity's roster. The membership
// check and the enrollment happen in one store operation, so two concurrent
// joins by the same user cannot both succeed.
func (s *activityServiceImpl) JoinActivity(ctx context.Context, activityID, userID string) (*models.Activity, error) {
	updated, changed, found, err := s.store.AddAttendee(activityID, userID)
	if !found {
		return nil, apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", activityID))
	}
	if !changed {
		return nil, apperrors.NewCustomError(apperrors.ErrAlreadyAttending,
			fmt.Sprintf("User %s is already attending activity %s", userID, activityID))
	}
	if err != nil {
		s.logger.Error().Err(err).Str("activityId", activityID).Str("userId", userID).Msg("Failed to persist roster change")
		return updated, err
	}

	s.logger.Info().Str("activityId", activityID).Str("userId", userID).Msg("User joined activity")
	return updated, nil
}

// LeaveActivity removes the user from the activity's roster, with the same
// single-operation semantics as JoinActivity.
func (s *activityServiceImpl) LeaveActivity(ctx context.Context, activityID, userID string) (*models.Activity, error) {
	updated, changed, found, err := s.store.RemoveAttendee(activityID, userID)
	if !found {
		return nil, apperrors.NewActivityNotFoundError(fmt.Sprintf("Activity %s not found", activityID))
	}
	if !changed {
		return nil, apperrors.NewCustomError(apperrors.ErrNotAttending,
			fmt.Sprintf("User %s is not attending activity %s", userID, activityID))
	}
	if err != nil {
		s.logger.Error().Err(err).Str("activityId", activityID).Str("userId", userID).Msg("Failed to persist roster change")
		return updated, err
	}

	s.logger.Info().Str("activityId", activityID).Str("userId", userID).Msg("User left activity")
	return updated, nil
}
