package application

import (
	"context"
	"fmt"
	"sync"

	"baco/internal/domain"
	"baco/internal/domain/entities"
)

// fakeAPI scripts transition responses and serves events and participants
// from maps.
type fakeAPI struct {
	events       map[uint]*entities.Event
	participants map[uint]*entities.ParticipantRecord

	nextResp *entities.TransitionResponse
	nextErr  error

	applyCalls          int
	getParticipantCalls int
	transitionCalls     []string
}

func newFakeAPI(events ...*entities.Event) *fakeAPI {
	m := make(map[uint]*entities.Event)
	for _, e := range events {
		m[e.ID] = e
	}
	return &fakeAPI{events: m, participants: make(map[uint]*entities.ParticipantRecord)}
}

func (f *fakeAPI) Apply(_ context.Context, eventID, userID uint, _ string) (*entities.TransitionResponse, error) {
	f.applyCalls++
	return f.nextResp, f.nextErr
}

func (f *fakeAPI) Transition(_ context.Context, participantID uint, action domain.Action) (*entities.TransitionResponse, error) {
	f.transitionCalls = append(f.transitionCalls, fmt.Sprintf("%s:%d", action, participantID))
	return f.nextResp, f.nextErr
}

func (f *fakeAPI) GetParticipant(_ context.Context, participantID uint) (*entities.ParticipantRecord, error) {
	f.getParticipantCalls++
	p, ok := f.participants[participantID]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeAPI) GetEvent(_ context.Context, eventID uint) (*entities.Event, error) {
	e, ok := f.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeAPI) ListEvents(context.Context) ([]entities.Event, error) { return nil, nil }
func (f *fakeAPI) ListEventsByCreator(context.Context, uint) ([]entities.Event, error) {
	return nil, nil
}
func (f *fakeAPI) ListEventsByParticipant(context.Context, uint) ([]entities.Event, error) {
	return nil, nil
}

// memStore is an in-memory NotificationStore with injectable failures.
type memStore struct {
	mu      sync.Mutex
	queues  map[uint][]entities.Notification
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{queues: make(map[uint][]entities.Notification)}
}

func (s *memStore) Load(_ context.Context, userID uint) ([]entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	list := s.queues[userID]
	out := make([]entities.Notification, len(list))
	copy(out, list)
	return out, nil
}

func (s *memStore) Save(_ context.Context, userID uint, list []entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := make([]entities.Notification, len(list))
	copy(copied, list)
	s.queues[userID] = copied
	return nil
}

// fakeCache records which keys were invalidated.
type fakeCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *fakeCache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, keys...)
}

// fakeFeed collects live-delivered notifications.
type fakeFeed struct {
	mu      sync.Mutex
	entries []entities.Notification
}

func (f *fakeFeed) Push(n entities.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, n)
}

// keyTranslator echoes the message key, so tests can assert on keys.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }
