package entities

import "time"

// ParticipantRecord represents one user's relation to one event, exactly as
// the server last returned it. At most one record exists per
// (EventID, UserID) pair; removal deletes the record instead of setting a
// terminal status.
type ParticipantRecord struct {
	ID                uint      `json:"id"`
	EventID           uint      `json:"eventId"`
	UserID            uint      `json:"userId"`
	Status            string    `json:"status"`
	ApplicationReason string    `json:"applicationReason,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
