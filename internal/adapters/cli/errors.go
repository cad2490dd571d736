package cli

import (
	"errors"

	"baco/internal/domain"
)

// userMessage maps an error to a user-facing message. Server-provided
// authorization/validation texts are surfaced verbatim; domain errors go
// through the translator so the CLI speaks the session's locale.
func (h *Handler) userMessage(err error) string {
	var authErr *domain.AuthorizationError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}

	key := "cli.error.generic"
	var netErr *domain.NetworkError
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		key = "cli.error.event_not_found"
	case errors.Is(err, domain.ErrParticipantNotFound):
		key = "cli.error.participant_not_found"
	case errors.Is(err, domain.ErrParticipantExists):
		key = "cli.error.participant_exists"
	case errors.Is(err, domain.ErrInvalidTransition):
		key = "cli.error.invalid_transition"
	case errors.Is(err, domain.ErrNotCreator):
		key = "cli.error.not_creator"
	case errors.Is(err, domain.ErrNotParticipant):
		key = "cli.error.not_participant"
	case errors.As(err, &netErr):
		key = "cli.error.network"
	}
	return h.translator.T(h.session.Locale, key, nil)
}
