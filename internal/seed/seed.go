// Package seed holds the fixed registry contents loaded at process start.
//
// The activity roster is hardcoded: activities are never created or deleted
// at runtime, only their participant lists change. Tests load the same seed
// so behavior matches the running service.
package seed

import (
	"github.com/mergington/activities/api/internal/model"
	"github.com/mergington/activities/api/internal/store"
)

// Activities returns the seed roster. Each call returns fresh copies, so
// callers can load them into a store without sharing state.
func Activities() []*model.Activity {
	return []*model.Activity{
		{
			Name:            "Baseball Club",
			Description:     "Practice baseball skills and play friendly games against other schools",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"alex@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop argumentation and public speaking skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design and build robots for regional competitions",
			Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// Load populates s with the seed roster and returns the activity count
func Load(s *store.Store) int {
	activities := Activities()
	for _, a := range activities {
		s.Put(a)
	}
	return len(activities)
}
