package dto

import (
	"strings"
	"time"

	"github.com/galacticorp/hr-portal/internal/app/models"
)

// DefaultActivityImageURL is the presentation fallback used when an activity
// has no image of its own.
const DefaultActivityImageURL = "https://images.pexels.com/photos/2156/sky-earth-space-working.jpg"

// CreateActivityRequest carries the fields of a new activity. The id, host
// identity and roster are assigned server-side.
type CreateActivityRequest struct {
	Title       string    `json:"title" binding:"required" example:"Zero-G Yoga"`
	Description string    `json:"description" example:"Stretching without gravity."`
	Type        string    `json:"type" binding:"required,oneof=Education Social Team-building" example:"Team-building"`
	Date        time.Time `json:"date" binding:"required" example:"2025-05-01T10:00:00Z"`
	Location    string    `json:"location" example:"Recreation Deck"`
	ImageURL    string    `json:"imageUrl" example:"https://example.com/yoga.jpg"`
	Tags        []string  `json:"tags" example:"wellness,fun"`
}

// UpdateActivityRequest carries the full replacement state of an existing
// activity. The id comes from the route, host identity and roster are kept.
type UpdateActivityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" binding:"required,oneof=Education Social Team-building"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
}

// RosterRequest optionally names the user joining or leaving an activity.
// When UserID is empty the configured current user is used.
type RosterRequest struct {
	UserID string `json:"userId" example:"42"`
}

// ActivityFilterRequest holds the listing filters. Both are optional; an
// empty filter matches everything.
type ActivityFilterRequest struct {
	Search string `form:"search"`
	Type   string `form:"type"`
}

// ActivityResponse is the API representation of an activity
type ActivityResponse struct {
	ID          string    `json:"id" example:"b1f8c3e2"`
	Title       string    `json:"title" example:"Introduction to Quantum Computing"`
	Description string    `json:"description"`
	Type        string    `json:"type" example:"Education" enums:"Education,Social,Team-building"`
	Date        time.Time `json:"date" example:"2025-04-15T14:00:00Z"`
	Location    string    `json:"location" example:"Virtual Reality Lab 3"`
	ImageURL    string    `json:"imageUrl"`
	HostID      string    `json:"hostId" example:"1"`
	HostName    string    `json:"hostName" example:"Dr. Quantum"`
	Attendees   []string  `json:"attendees"`
	Tags        []string  `json:"tags"`
}

// ActivityListResponse is the API representation of the activity catalog
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Count      int                `json:"count" example:"3"`
}

// NewActivityResponse maps an activity to its API shape, substituting the
// default image when none is set.
func NewActivityResponse(activity *models.Activity) ActivityResponse {
	imageURL := activity.ImageURL
	if imageURL == "" {
		imageURL = DefaultActivityImageURL
	}

	attendees := activity.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	tags := activity.Tags
	if tags == nil {
		tags = []string{}
	}

	return ActivityResponse{
		ID:          activity.ID,
		Title:       activity.Title,
		Description: activity.Description,
		Type:        string(activity.Type),
		Date:        activity.Date,
		Location:    activity.Location,
		ImageURL:    imageURL,
		HostID:      activity.HostID,
		HostName:    activity.HostName,
		Attendees:   attendees,
		Tags:        tags,
	}
}

// NewActivityListResponse maps a catalog snapshot to its API shape
func NewActivityListResponse(activities []*models.Activity) ActivityListResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, NewActivityResponse(a))
	}
	return ActivityListResponse{
		Activities: responses,
		Count:      len(responses),
	}
}

// NormalizeTags trims every tag and drops empty entries, preserving order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			normalized = append(normalized, t)
		}
	}
	return normalized
}
