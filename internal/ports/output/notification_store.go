package output

import (
	"context"

	"baco/internal/domain/entities"
)

// NotificationStore persists the not-yet-delivered notification queue of a
// single recipient. Any backend satisfies the contract as long as Load/Save
// round-trip the list exactly. Load returns (nil, nil) when no queue exists
// yet; a corrupt or unreadable queue is reported as an error and treated as
// empty by the caller.
type NotificationStore interface {
	Load(ctx context.Context, userID uint) ([]entities.Notification, error)
	Save(ctx context.Context, userID uint, list []entities.Notification) error
}
