package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"baco/internal/domain/entities"
	"baco/internal/ports/input"
	"baco/internal/ports/output"
)

var _ input.NotificationUseCase = (*NotificationService)(nil)

// NotificationService maintains, per recipient, a durable queue of
// notifications not yet delivered within a live session. Enqueue is
// idempotent: two payloads with the same (title, message) for the same
// recipient collapse to one entry, which makes network retries safe.
type NotificationService struct {
	store output.NotificationStore
	log   *zap.Logger

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewNotificationService(store output.NotificationStore, log *zap.Logger) *NotificationService {
	return &NotificationService{
		store: store,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.NewString()[:8] },
	}
}

// dedupKey identifies a notification within one recipient's queue. The
// server exposes no transition id, so title+message equality is the
// strongest key available.
func dedupKey(title, message string) string {
	return title + "\x00" + message
}

// localID generates an id for a locally-originated notification.
func (s *NotificationService) localID() string {
	return fmt.Sprintf("local-%d-%s", s.now().UnixMilli(), s.newID())
}

func (s *NotificationService) materialize(p entities.NotificationPayload) entities.Notification {
	return entities.Notification{
		ID:      s.localID(),
		Title:   p.Title,
		Message: p.Message,
		Type:    p.Type,
		EventID: p.EventID,
		UserID:  p.UserID,
		Date:    s.now(),
		Read:    false,
	}
}

// Load returns userID's persisted queue. Fail-open: an unavailable or
// corrupt backend yields an empty queue, never an error to the caller; the
// corrupt content is overwritten by the next mutation.
func (s *NotificationService) Load(ctx context.Context, userID uint) []entities.Notification {
	list, err := s.store.Load(ctx, userID)
	if err != nil {
		s.log.Warn("notification queue unreadable, starting empty",
			zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}
	return list
}

// Enqueue persists a notification for a recipient who is not the active
// session. No-op when an entry with the same (title, message) already
// exists.
func (s *NotificationService) Enqueue(ctx context.Context, userID uint, p entities.NotificationPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.Load(ctx, userID)
	key := dedupKey(p.Title, p.Message)
	for _, n := range list {
		if dedupKey(n.Title, n.Message) == key {
			return nil
		}
	}
	entry := s.materialize(p)
	entry.UserID = userID
	list = append([]entities.Notification{entry}, list...)
	if err := s.store.Save(ctx, userID, list); err != nil {
		return fmt.Errorf("save notification queue: %w", err)
	}
	return nil
}

func (s *NotificationService) Unread(ctx context.Context, userID uint) int {
	count := 0
	for _, n := range s.Load(ctx, userID) {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uint, notificationID string) error {
	return s.mutate(ctx, userID, func(list []entities.Notification) []entities.Notification {
		for i := range list {
			if list[i].ID == notificationID {
				list[i].Read = true
			}
		}
		return list
	})
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.mutate(ctx, userID, func(list []entities.Notification) []entities.Notification {
		for i := range list {
			list[i].Read = true
		}
		return list
	})
}

func (s *NotificationService) Remove(ctx context.Context, userID uint, notificationID string) error {
	return s.mutate(ctx, userID, func(list []entities.Notification) []entities.Notification {
		out := list[:0]
		for _, n := range list {
			if n.ID != notificationID {
				out = append(out, n)
			}
		}
		return out
	})
}

func (s *NotificationService) Clear(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, userID, nil); err != nil {
		return fmt.Errorf("clear notification queue: %w", err)
	}
	return nil
}

// mutate applies fn to the full queue and re-persists it.
func (s *NotificationService) mutate(ctx context.Context, userID uint, fn func([]entities.Notification) []entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := fn(s.Load(ctx, userID))
	if err := s.store.Save(ctx, userID, list); err != nil {
		return fmt.Errorf("save notification queue: %w", err)
	}
	return nil
}
