package seed

import (
	"time"

	"github.com/galacticorp/hr-portal/internal/app/models"
)

// DefaultActivities returns the sample catalog used when the durable mirror is
// absent, empty or unreadable. The slice is rebuilt on every call so callers
// may mutate the result freely.
func DefaultActivities() []*models.Activity {
	return []*models.Activity{
		{
			ID:          "1",
			Title:       "Introduction to Quantum Computing",
			Description: "Learn the basics of quantum computing and its applications in space exploration.",
			Type:        models.ActivityTypeEducation,
			Date:        time.Date(2025, time.April, 15, 14, 0, 0, 0, time.Local),
			Location:    "Virtual Reality Lab 3",
			ImageURL:    "https://images.pexels.com/photos/2085832/pexels-photo-2085832.jpeg",
			HostID:      "1",
			HostName:    "Dr. Quantum",
			Attendees:   []string{"1", "2", "3"},
			Tags:        []string{"quantum", "technology", "beginner"},
		},
		{
			ID:          "2",
			Title:       "Space Station Social Mixer",
			Description: "Meet your fellow space explorers in a casual setting.",
			Type:        models.ActivityTypeSocial,
			Date:        time.Date(2025, time.April, 20, 18, 0, 0, 0, time.Local),
			Location:    "Observation Deck",
			ImageURL:    "https://images.pexels.com/photos/924824/pexels-photo-924824.jpeg",
			HostID:      "2",
			HostName:    "Social Committee",
			Attendees:   []string{"1", "4", "5"},
			Tags:        []string{"networking", "social", "fun"},
		},
		{
			ID:          "3",
			Title:       "Zero Gravity Team Challenge",
			Description: "Work together through a series of weightless puzzles and obstacle courses.",
			Type:        models.ActivityTypeTeamBuilding,
			Date:        time.Date(2025, time.April, 25, 9, 0, 0, 0, time.Local),
			Location:    "Training Dome",
			ImageURL:    "https://images.pexels.com/photos/586030/pexels-photo-586030.jpeg",
			HostID:      "3",
			HostName:    "Commander Vega",
			Attendees:   []string{"2", "6"},
			Tags:        []string{"teamwork", "fitness", "challenge"},
		},
	}
}
