package application

import (
	"fmt"

	"baco/internal/ports/output"
)

// Query keys shared by the cache, its readers, and the refresher.
func EventDetailKey(eventID uint) string { return fmt.Sprintf("event:%d", eventID) }

func EventListKey() string { return "events" }

func CreatorEventsKey(creatorID uint) string { return fmt.Sprintf("events:creator:%d", creatorID) }

func UserEventsKey(userID uint) string { return fmt.Sprintf("events:user:%d", userID) }

func NotificationsKey(userID uint) string { return fmt.Sprintf("notifications:%d", userID) }

// Refresher marks every query whose result can depend on participation
// state as stale after a transition. Over-inclusive on purpose: invalidating
// too much costs a refetch, missing one leaves stale UI (a creator still
// seeing a pending badge after approving).
type Refresher struct {
	cache output.QueryCache
}

func NewRefresher(cache output.QueryCache) *Refresher {
	return &Refresher{cache: cache}
}

// AfterTransition invalidates the event's detail, the creator's owned-events
// list, the participant's joined-events list, and the general listing
// (participant counts surface there). Runs unconditionally after every
// transition, including malformed-response echoes, since the server state
// may have changed even when the echo did not parse.
func (r *Refresher) AfterTransition(eventID, creatorID, participantUserID uint) {
	r.cache.Invalidate(
		EventDetailKey(eventID),
		CreatorEventsKey(creatorID),
		UserEventsKey(participantUserID),
		EventListKey(),
	)
}
