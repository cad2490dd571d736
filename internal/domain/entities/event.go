package entities

import "time"

// Event visibility modes as exposed by the API.
const (
	EventTypeApplication = "private_application"
	EventTypePublic      = "public"
	EventTypeTicketed    = "ticketed"
)

type Event struct {
	ID               uint                `json:"id"`
	CreatorID        uint                `json:"creatorId"`
	Title            string              `json:"title"`
	Description      string              `json:"description,omitempty"`
	Type             string              `json:"type"`
	ParticipantCount int                 `json:"participantCount"`
	ScheduledAt      time.Time           `json:"scheduledAt"`
	Participants     []ParticipantRecord `json:"participants,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// RequiresApproval reports whether joining goes through creator approval
// instead of being confirmed immediately.
func (e *Event) RequiresApproval() bool {
	return e.Type == EventTypeApplication
}
