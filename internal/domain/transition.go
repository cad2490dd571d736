package domain

import "baco/internal/domain/entities"

// Participation statuses as stored server-side.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusConfirmed = "confirmed"
)

// Action is a participation-state-changing operation.
type Action string

const (
	ActionApply   Action = "apply"
	ActionCancel  Action = "cancel"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRevert  Action = "revert"
	ActionRemove  Action = "remove"
)

// Deleted is the pseudo-status returned by NextStatus when the transition
// destroys the record.
const Deleted = ""

// NextStatus validates a transition against the lifecycle table and returns
// the status the record will hold once the server applies it (Deleted when
// the record is destroyed). record must be nil for ActionApply and non-nil
// for everything else. The check runs client-side before any network call:
// a stale UI or a replayed request must not reach the server with an edge
// the table forbids.
func NextStatus(action Action, actorID uint, event *entities.Event, record *entities.ParticipantRecord) (string, error) {
	if event == nil {
		return "", ErrEventNotFound
	}

	if action == ActionApply {
		if record != nil {
			return "", ErrParticipantExists
		}
		if event.RequiresApproval() {
			return StatusPending, nil
		}
		return StatusConfirmed, nil
	}

	if record == nil {
		return "", ErrParticipantNotFound
	}

	switch action {
	case ActionApprove:
		if actorID != event.CreatorID {
			return "", ErrNotCreator
		}
		if record.Status != StatusPending {
			return "", ErrInvalidTransition
		}
		return StatusApproved, nil
	case ActionReject:
		if actorID != event.CreatorID {
			return "", ErrNotCreator
		}
		if record.Status != StatusPending {
			return "", ErrInvalidTransition
		}
		return StatusRejected, nil
	case ActionRevert:
		if actorID != event.CreatorID {
			return "", ErrNotCreator
		}
		if record.Status != StatusApproved && record.Status != StatusRejected {
			return "", ErrInvalidTransition
		}
		return StatusPending, nil
	case ActionRemove:
		if actorID != event.CreatorID {
			return "", ErrNotCreator
		}
		return Deleted, nil
	case ActionCancel:
		if actorID != record.UserID {
			return "", ErrNotParticipant
		}
		return Deleted, nil
	default:
		return "", ErrInvalidTransition
	}
}
