package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baco/internal/domain/entities"
)

func record(status string) *entities.ParticipantRecord {
	return &entities.ParticipantRecord{ID: 11, EventID: 3, UserID: 7, Status: status}
}

func TestNextStatus(t *testing.T) {
	applicationEvent := &entities.Event{ID: 3, CreatorID: 1, Type: entities.EventTypeApplication}
	publicEvent := &entities.Event{ID: 4, CreatorID: 1, Type: entities.EventTypePublic}
	ticketedEvent := &entities.Event{ID: 5, CreatorID: 1, Type: entities.EventTypeTicketed}

	tests := []struct {
		name    string
		action  Action
		actorID uint
		event   *entities.Event
		record  *entities.ParticipantRecord
		want    string
		wantErr error
	}{
		{"apply to application event is pending", ActionApply, 7, applicationEvent, nil, StatusPending, nil},
		{"apply to public event is confirmed", ActionApply, 7, publicEvent, nil, StatusConfirmed, nil},
		{"apply to ticketed event is confirmed", ActionApply, 7, ticketedEvent, nil, StatusConfirmed, nil},
		{"apply twice is rejected", ActionApply, 7, applicationEvent, record(StatusPending), "", ErrParticipantExists},

		{"approve pending", ActionApprove, 1, applicationEvent, record(StatusPending), StatusApproved, nil},
		{"approve approved is invalid", ActionApprove, 1, applicationEvent, record(StatusApproved), "", ErrInvalidTransition},
		{"approve rejected is invalid", ActionApprove, 1, applicationEvent, record(StatusRejected), "", ErrInvalidTransition},
		{"approve by non-creator", ActionApprove, 7, applicationEvent, record(StatusPending), "", ErrNotCreator},

		{"reject pending", ActionReject, 1, applicationEvent, record(StatusPending), StatusRejected, nil},
		{"reject approved is invalid", ActionReject, 1, applicationEvent, record(StatusApproved), "", ErrInvalidTransition},
		{"reject by non-creator", ActionReject, 7, applicationEvent, record(StatusPending), "", ErrNotCreator},

		{"revert approved", ActionRevert, 1, applicationEvent, record(StatusApproved), StatusPending, nil},
		{"revert rejected", ActionRevert, 1, applicationEvent, record(StatusRejected), StatusPending, nil},
		{"revert pending is invalid", ActionRevert, 1, applicationEvent, record(StatusPending), "", ErrInvalidTransition},
		{"revert confirmed is invalid", ActionRevert, 1, applicationEvent, record(StatusConfirmed), "", ErrInvalidTransition},
		{"revert by non-creator", ActionRevert, 7, applicationEvent, record(StatusApproved), "", ErrNotCreator},

		{"remove pending", ActionRemove, 1, applicationEvent, record(StatusPending), Deleted, nil},
		{"remove confirmed", ActionRemove, 1, publicEvent, record(StatusConfirmed), Deleted, nil},
		{"remove by non-creator", ActionRemove, 7, applicationEvent, record(StatusPending), "", ErrNotCreator},

		{"cancel own pending", ActionCancel, 7, applicationEvent, record(StatusPending), Deleted, nil},
		{"cancel own approved", ActionCancel, 7, applicationEvent, record(StatusApproved), Deleted, nil},
		{"cancel someone else's", ActionCancel, 1, applicationEvent, record(StatusPending), "", ErrNotParticipant},

		{"unknown action", Action("promote"), 1, applicationEvent, record(StatusPending), "", ErrInvalidTransition},
		{"missing record", ActionApprove, 1, applicationEvent, nil, "", ErrParticipantNotFound},
		{"missing event", ActionApprove, 1, nil, record(StatusPending), "", ErrEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.action, tt.actorID, tt.event, tt.record)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
