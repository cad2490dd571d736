package input

import (
	"context"

	"baco/internal/domain/entities"
)

// NotificationUseCase manages a recipient's persisted notification queue.
type NotificationUseCase interface {
	Load(ctx context.Context, userID uint) []entities.Notification
	Unread(ctx context.Context, userID uint) int
	MarkRead(ctx context.Context, userID uint, notificationID string) error
	MarkAllRead(ctx context.Context, userID uint) error
	Remove(ctx context.Context, userID uint, notificationID string) error
	Clear(ctx context.Context, userID uint) error
}
