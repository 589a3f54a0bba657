package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galacticorp/hr-portal/internal/app/models"
	"github.com/galacticorp/hr-portal/internal/app/store"
	"github.com/galacticorp/hr-portal/internal/pkg/apperrors"
	"github.com/galacticorp/hr-portal/internal/pkg/identity"
)

func newTestService(t *testing.T) ActivityService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portal.db")
	s, err := store.Open(path, "portal", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	idp := identity.NewStaticProvider("1", "Current User")
	return NewActivityService(s, idp, zerolog.Nop())
}

func draftActivity(title string, activityType models.ActivityType) *models.Activity {
	return &models.Activity{
		Title:       title,
		Description: "A test activity.",
		Type:        activityType,
		Date:        time.Date(2025, time.May, 1, 10, 0, 0, 0, time.Local),
		Location:    "Recreation Deck",
		Tags:        []string{"test"},
	}
}

func TestCreateThenGetActivity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateActivity(ctx, draftActivity("Nebula Painting", models.ActivityTypeSocial))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Attendees)
	assert.Equal(t, "1", created.HostID)
	assert.Equal(t, "Current User", created.HostName)

	got, err := svc.GetActivity(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateKeepsExplicitHost(t *testing.T) {
	svc := newTestService(t)

	draft := draftActivity("Hosted Elsewhere", models.ActivityTypeEducation)
	draft.HostID = "9"
	draft.HostName = "Professor Pulsar"

	created, err := svc.CreateActivity(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "9", created.HostID)
	assert.Equal(t, "Professor Pulsar", created.HostName)
}

func TestCreateRejectsInvalidDrafts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		draft *models.Activity
	}{
		{
			name:  "empty title",
			draft: draftActivity("   ", models.ActivityTypeSocial),
		},
		{
			name:  "unknown type",
			draft: draftActivity("Fine Title", models.ActivityType("Mystery")),
		},
		{
			name: "zero date",
			draft: &models.Activity{
				Title: "Fine Title",
				Type:  models.ActivityTypeSocial,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateActivity(ctx, tt.draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetActivityNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetActivity(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestUpdateActivityPreservesHostAndRoster(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	original, err := svc.GetActivity(ctx, "1")
	require.NoError(t, err)

	edited := original.Clone()
	edited.Title = "Advanced Quantum Computing"
	edited.HostID = "hijacker"
	edited.HostName = "Hijacker"
	edited.Attendees = []string{}

	updated, err := svc.UpdateActivity(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Quantum Computing", updated.Title)
	assert.Equal(t, original.HostID, updated.HostID)
	assert.Equal(t, original.HostName, updated.HostName)
	assert.Equal(t, original.Attendees, updated.Attendees)
}

func TestUpdateActivityNotFound(t *testing.T) {
	svc := newTestService(t)

	ghost := draftActivity("Ghost", models.ActivityTypeSocial)
	ghost.ID = "no-such-id"

	_, err := svc.UpdateActivity(context.Background(), ghost)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteActivity(ctx, "1"))

	_, err := svc.GetActivity(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)

	err = svc.DeleteActivity(ctx, "1")
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestJoinTwiceFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	updated, err := svc.JoinActivity(ctx, "1", "42")
	require.NoError(t, err)
	assert.Contains(t, updated.Attendees, "42")

	_, err = svc.JoinActivity(ctx, "1", "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAttending)

	got, err := svc.GetActivity(ctx, "1")
	require.NoError(t, err)
	count := 0
	for _, id := range got.Attendees {
		if id == "42" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestLeaveWithoutJoining(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.GetActivity(ctx, "1")
	require.NoError(t, err)

	_, err = svc.LeaveActivity(ctx, "1", "stranger")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotAttending)

	after, err := svc.GetActivity(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, before.Attendees, after.Attendees)
}

func TestRosterOpsOnMissingActivity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.JoinActivity(ctx, "missing", "42")
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)

	_, err = svc.LeaveActivity(ctx, "missing", "42")
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}

func TestMatchesFilter(t *testing.T) {
	quantum := &models.Activity{
		Title:       "Quantum Computing",
		Description: "Learn qubits.",
		Type:        models.ActivityTypeEducation,
	}
	mixer := &models.Activity{
		Title:       "Social Mixer",
		Description: "Meet people.",
		Type:        models.ActivityTypeSocial,
	}

	tests := []struct {
		name     string
		activity *models.Activity
		search   string
		typ      string
		want     bool
	}{
		{"empty filter matches", quantum, "", "", true},
		{"search matches title case-insensitively", quantum, "quantum", "", true},
		{"search matches description", quantum, "QUBITS", "", true},
		{"search misses", mixer, "quantum", "", false},
		{"type matches", mixer, "", "Social", true},
		{"type misses", mixer, "", "Education", false},
		{"conjunction of both", quantum, "quantum", "Social", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFilter(tt.activity, tt.search, tt.typ))
		})
	}
}

func TestListActivitiesFiltering(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListActivities(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	quantum, err := svc.ListActivities(ctx, "quantum", "")
	require.NoError(t, err)
	require.Len(t, quantum, 1)
	assert.Equal(t, "Introduction to Quantum Computing", quantum[0].Title)

	social, err := svc.ListActivities(ctx, "", "Social")
	require.NoError(t, err)
	require.Len(t, social, 1)
	assert.Equal(t, "Space Station Social Mixer", social[0].Title)

	none, err := svc.ListActivities(ctx, "wormhole maintenance", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestActivityLifecycleScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	draft := &models.Activity{
		Title: "Zero-G Yoga",
		Type:  models.ActivityTypeTeamBuilding,
		Date:  time.Date(2025, time.May, 10, 8, 0, 0, 0, time.Local),
	}

	created, err := svc.CreateActivity(ctx, draft)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, []string{}, created.Attendees)

	joined, err := svc.JoinActivity(ctx, created.ID, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, joined.Attendees)

	_, err = svc.JoinActivity(ctx, created.ID, "42")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAttending)

	left, err := svc.LeaveActivity(ctx, created.ID, "42")
	require.NoError(t, err)
	assert.Equal(t, []string{}, left.Attendees)

	require.NoError(t, svc.DeleteActivity(ctx, created.ID))

	_, err = svc.GetActivity(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
}
