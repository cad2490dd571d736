package entities

import "time"

// Notification categories.
const (
	NotificationTypePending   = "participant_pending"
	NotificationTypeRequest   = "participant_request"
	NotificationTypeApproval  = "approval"
	NotificationTypeRejection = "rejection"
	NotificationTypeSystem    = "system"
)

// Notification is an entry in a user's feed or persisted queue. IDs are
// server-assigned when fetched, or generated locally
// (local-<unix-ms>-<random>) when synthesized at transition time.
type Notification struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	EventID uint      `json:"eventId,omitempty"`
	UserID  uint      `json:"userId"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// NotificationPayload is the raw notification attached to a transition
// response. UserID is the recipient, never the acting user.
type NotificationPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	EventID uint   `json:"eventId,omitempty"`
	UserID  uint   `json:"userId"`
}

// TransitionNotifications carries at most one payload per recipient role.
// Either field may be absent.
type TransitionNotifications struct {
	ForCreator     *NotificationPayload `json:"forCreator,omitempty"`
	ForParticipant *NotificationPayload `json:"forParticipant,omitempty"`
}

// TransitionResponse is the normalized result of a participation mutation.
// Participant is nil when the record was deleted (Deleted true) or when the
// response body could not be parsed.
type TransitionResponse struct {
	Participant  *ParticipantRecord       `json:"participant"`
	Deleted      bool                     `json:"deleted,omitempty"`
	Notification *TransitionNotifications `json:"notification,omitempty"`
}
