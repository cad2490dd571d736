package input

import (
	"context"

	"baco/internal/domain/entities"
)

// TransitionUseCase exposes every participation mutation available to the
// signed-in session. Approve/Reject/Revert/Remove require the session user
// to be the event's creator; Apply/Cancel act on the session user's own
// participation.
type TransitionUseCase interface {
	Apply(ctx context.Context, eventID uint, reason string) (*entities.ParticipantRecord, error)
	Cancel(ctx context.Context, participantID uint) error
	Approve(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error)
	Reject(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error)
	Revert(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error)
	Remove(ctx context.Context, participantID uint) error

	// SyncEvent fetches an event's authoritative detail and seeds the local
	// record store with its participants.
	SyncEvent(ctx context.Context, eventID uint) (*entities.Event, error)
}
