package model

// Activity represents an extracurricular activity students can sign up for.
// The name is the registry key and is not serialized inside the record.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// HasParticipant reports whether email is already signed up
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate registry state
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}

// MessageResponse is the confirmation payload for mutating operations
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}
