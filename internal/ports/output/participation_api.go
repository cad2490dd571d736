package output

import (
	"context"

	"baco/internal/domain"
	"baco/internal/domain/entities"
)

// ParticipationAPI is the contract with the platform's HTTP layer. Mutations
// return the server-authoritative record plus zero, one, or two notification
// payloads. Implementations must normalize unparsable 2xx bodies into an
// empty TransitionResponse and report the parse failure as a
// domain.MalformedResponseError alongside it.
type ParticipationAPI interface {
	// Apply creates a participation record for userID on eventID.
	Apply(ctx context.Context, eventID, userID uint, reason string) (*entities.TransitionResponse, error)
	// Transition applies a creator- or participant-initiated action to an
	// existing record.
	Transition(ctx context.Context, participantID uint, action domain.Action) (*entities.TransitionResponse, error)

	// GetParticipant fetches one record by id, for sessions that act on a
	// participation they have not cached yet.
	GetParticipant(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error)
	GetEvent(ctx context.Context, eventID uint) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
	ListEventsByCreator(ctx context.Context, creatorID uint) ([]entities.Event, error)
	ListEventsByParticipant(ctx context.Context, userID uint) ([]entities.Event, error)
}
