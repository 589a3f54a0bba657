package models

import "time"

// ActivityType defines the category of an activity
type ActivityType string

const (
	ActivityTypeEducation    ActivityType = "Education"
	ActivityTypeSocial       ActivityType = "Social"
	ActivityTypeTeamBuilding ActivityType = "Team-building"
)

// IsValid reports whether the type is one of the known categories
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeEducation, ActivityTypeSocial, ActivityTypeTeamBuilding:
		return true
	}
	return false
}

// Activity represents a hostable, joinable event in the portal catalog
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	HostID      string       `json:"hostId"`
	HostName    string       `json:"hostName"`
	Attendees   []string     `json:"attendees"`
	Tags        []string     `json:"tags"`
}

// HasAttendee reports whether the user is currently enrolled
func (a *Activity) HasAttendee(userID string) bool {
	for _, id := range a.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the activity. Attendees and Tags are copied
// so callers can hold the result without observing later mutations.
func (a *Activity) Clone() *Activity {
	cp := *a
	cp.Attendees = append([]string{}, a.Attendees...)
	cp.Tags = append([]string{}, a.Tags...)
	return &cp
}
