package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"baco/internal/domain"
	"baco/internal/domain/entities"
	"baco/internal/ports/input"
	"baco/internal/ports/output"
)

var _ input.TransitionUseCase = (*TransitionService)(nil)

// Session identifies the currently authenticated user. Notification routing
// hinges on it: the acting client only ever keeps the payload addressed to
// this user, everything else goes to the recipient's persisted queue.
type Session struct {
	UserID uint
	Locale string
}

// TransitionService drives participation mutations end to end: defensive
// state-machine check, API call, notification routing, record replacement,
// and cache invalidation. The defensive check runs against the client's
// cached view on purpose: it is the last line against stale UIs and replayed
// requests, not a substitute for the server's own validation.
type TransitionService struct {
	api        output.ParticipationAPI
	records    *RecordStore
	notifs     *NotificationService
	feed       output.Feed
	refresher  *Refresher
	translator output.T
	session    Session
	log        *zap.Logger
}

func NewTransitionService(
	api output.ParticipationAPI,
	records *RecordStore,
	notifs *NotificationService,
	feed output.Feed,
	refresher *Refresher,
	translator output.T,
	session Session,
	log *zap.Logger,
) *TransitionService {
	return &TransitionService{
		api:        api,
		records:    records,
		notifs:     notifs,
		feed:       feed,
		refresher:  refresher,
		translator: translator,
		session:    session,
		log:        log,
	}
}

// SyncEvent fetches an event's authoritative detail and seeds the record
// store with its participants. This is the only path that refreshes records
// outside of a transition echo.
func (s *TransitionService) SyncEvent(ctx context.Context, eventID uint) (*entities.Event, error) {
	event, err := s.api.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.records.PutAll(event.Participants)
	return event, nil
}

// Apply creates a participation for the session user: pending on
// application-type events, confirmed on public/ticketed ones.
func (s *TransitionService) Apply(ctx context.Context, eventID uint, reason string) (*entities.ParticipantRecord, error) {
	event, err := s.api.GetEvent(ctx, eventID)
	if err != nil {
		s.log.Error("fetch event before apply", zap.Uint("event_id", eventID), zap.Error(err))
		return nil, err
	}
	existing, _ := s.records.ByEventAndUser(eventID, s.session.UserID)
	if _, err := domain.NextStatus(domain.ActionApply, s.session.UserID, event, existing); err != nil {
		s.log.Error("transition rejected",
			zap.String("action", string(domain.ActionApply)),
			zap.Uint("event_id", eventID),
			zap.Error(err))
		return nil, err
	}
	resp, err := s.api.Apply(ctx, eventID, s.session.UserID, reason)
	return s.finish(ctx, domain.ActionApply, resp, err, event, 0, s.session.UserID)
}

func (s *TransitionService) Approve(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error) {
	return s.transition(ctx, domain.ActionApprove, participantID)
}

func (s *TransitionService) Reject(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error) {
	return s.transition(ctx, domain.ActionReject, participantID)
}

func (s *TransitionService) Revert(ctx context.Context, participantID uint) (*entities.ParticipantRecord, error) {
	return s.transition(ctx, domain.ActionRevert, participantID)
}

func (s *TransitionService) Remove(ctx context.Context, participantID uint) error {
	_, err := s.transition(ctx, domain.ActionRemove, participantID)
	return err
}

func (s *TransitionService) Cancel(ctx context.Context, participantID uint) error {
	_, err := s.transition(ctx, domain.ActionCancel, participantID)
	return err
}

func (s *TransitionService) transition(ctx context.Context, action domain.Action, participantID uint) (*entities.ParticipantRecord, error) {
	record, ok := s.records.Get(participantID)
	if !ok {
		// A fresh session has nothing cached yet; resolve the target from the
		// server so single-shot invocations can act on existing records. The
		// defensive check then runs against this freshly seeded view.
		remote, err := s.api.GetParticipant(ctx, participantID)
		if err != nil {
			s.log.Error("resolve participant",
				zap.String("action", string(action)),
				zap.Uint("participant_id", participantID),
				zap.Error(err))
			return nil, err
		}
		s.records.Put(*remote)
		record = remote
	}
	// The event is fetched for its authoritative creator id; the state check
	// itself runs against the cached record, which is the client's view.
	event, err := s.api.GetEvent(ctx, record.EventID)
	if err != nil {
		s.log.Error("fetch event before transition",
			zap.String("action", string(action)),
			zap.Uint("event_id", record.EventID),
			zap.Error(err))
		return nil, err
	}
	if _, err := domain.NextStatus(action, s.session.UserID, event, record); err != nil {
		s.log.Error("transition rejected",
			zap.String("action", string(action)),
			zap.Uint("participant_id", participantID),
			zap.String("status", record.Status),
			zap.Error(err))
		return nil, err
	}
	resp, err := s.api.Transition(ctx, participantID, action)
	return s.finish(ctx, action, resp, err, event, participantID, record.UserID)
}

// finish reconciles a transition response: classify the error, replace (or
// delete) the cached record with the server's value, route the notification
// payloads, and invalidate every query that could now be stale. Invalidation
// runs on both the success and the malformed-response path, since an
// unparsable echo does not mean the mutation failed server-side.
func (s *TransitionService) finish(
	ctx context.Context,
	action domain.Action,
	resp *entities.TransitionResponse,
	err error,
	event *entities.Event,
	participantID uint,
	participantUserID uint,
) (*entities.ParticipantRecord, error) {
	malformed := false
	if err != nil {
		var parseErr *domain.MalformedResponseError
		if !errors.As(err, &parseErr) {
			s.log.Error("transition failed",
				zap.String("action", string(action)),
				zap.Uint("event_id", event.ID),
				zap.Error(err))
			return nil, err
		}
		malformed = true
		s.log.Warn("transition echo unparsable, assuming applied",
			zap.String("action", string(action)),
			zap.Int("status", parseErr.StatusCode),
			zap.String("url", parseErr.URL),
			zap.String("content_type", parseErr.ContentType),
			zap.Error(parseErr.Err))
	}
	if resp == nil {
		resp = &entities.TransitionResponse{}
	}

	switch {
	case resp.Participant != nil:
		s.records.Put(*resp.Participant)
	case resp.Deleted, !malformed && deletes(action):
		if participantID != 0 {
			s.records.Delete(participantID)
		}
	}

	if resp.Notification != nil {
		s.deliver(ctx, resp.Notification.ForCreator)
		s.deliver(ctx, resp.Notification.ForParticipant)
	}

	s.refresher.AfterTransition(event.ID, event.CreatorID, participantUserID)
	return resp.Participant, nil
}

// deliver routes one payload: into the live feed when it is addressed to the
// session user, otherwise into the recipient's persisted queue. A payload
// without a recipient is dropped; routing failures never fail the
// transition.
func (s *TransitionService) deliver(ctx context.Context, p *entities.NotificationPayload) {
	if p == nil {
		return
	}
	if p.UserID == 0 {
		rerr := &domain.RoutingError{Type: p.Type, EventID: p.EventID}
		s.log.Warn("notification dropped", zap.Error(rerr))
		return
	}
	payload := s.withFallbackText(*p)
	if payload.UserID == s.session.UserID {
		s.feed.Push(s.notifs.materialize(payload))
		return
	}
	if err := s.notifs.Enqueue(ctx, payload.UserID, payload); err != nil {
		s.log.Warn("queue notification",
			zap.Uint("recipient", payload.UserID),
			zap.Error(err))
	}
}

// withFallbackText fills empty title/message from the localized defaults for
// the payload's type, so a terse server echo still renders something
// readable.
func (s *TransitionService) withFallbackText(p entities.NotificationPayload) entities.NotificationPayload {
	if p.Title == "" {
		p.Title = s.translator.T(s.session.Locale, "notification."+p.Type+".title", nil)
	}
	if p.Message == "" {
		p.Message = s.translator.T(s.session.Locale, "notification."+p.Type+".message", nil)
	}
	return p
}

func deletes(action domain.Action) bool {
	return action == domain.ActionCancel || action == domain.ActionRemove
}
