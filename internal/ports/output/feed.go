package output

import "baco/internal/domain/entities"

// Feed receives notifications addressed to the active session, for immediate
// display.
type Feed interface {
	Push(n entities.Notification)
}
