// Package cli is the terminal adapter: it drives the participation and
// notification use cases for one signed-in user and renders the polled
// query cache.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"baco/internal/application"
	"baco/internal/domain/entities"
	"baco/internal/infrastructure/cache"
	"baco/internal/ports/input"
	"baco/internal/ports/output"
)

type Handler struct {
	transitions input.TransitionUseCase
	notifs      input.NotificationUseCase
	queries     *cache.Cache
	translator  output.T
	session     application.Session
	detailPoll  time.Duration
	out         io.Writer
}

func NewHandler(
	transitions input.TransitionUseCase,
	notifs input.NotificationUseCase,
	queries *cache.Cache,
	translator output.T,
	session application.Session,
	detailPoll time.Duration,
	out io.Writer,
) *Handler {
	return &Handler{
		transitions: transitions,
		notifs:      notifs,
		queries:     queries,
		translator:  translator,
		session:     session,
		detailPoll:  detailPoll,
		out:         out,
	}
}

const usage = `usage: baco <command> [args]

  events                  list all events
  event <id>              show one event with its participants
  mine                    list events you organize
  joined                  list events you joined
  apply <eventId> [note]  apply to / join an event
  cancel <participantId>  cancel your own participation
  approve <participantId> approve a pending application (creator only)
  reject <participantId>  reject a pending application (creator only)
  revert <participantId>  put an approved/rejected application back to pending
  remove <participantId>  remove a participant (creator only)
  notifications           show your notification queue
  read <notificationId>   mark one notification read
  read-all                mark every notification read
  dismiss <notificationId> remove one notification
  clear                   empty the notification queue`

// Run dispatches one command. Errors shown to the user are the actionable
// ones (network, authorization, invalid transition); everything else has
// already been logged by the core.
func (h *Handler) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(h.out, usage)
		return nil
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "events":
		return h.listEvents(ctx, application.EventListKey())
	case "mine":
		return h.listEvents(ctx, application.CreatorEventsKey(h.session.UserID))
	case "joined":
		return h.listEvents(ctx, application.UserEventsKey(h.session.UserID))
	case "event":
		return h.showEvent(ctx, rest)
	case "apply":
		return h.apply(ctx, rest)
	case "cancel":
		return h.participantAction(ctx, rest, func(id uint) error {
			return h.transitions.Cancel(ctx, id)
		})
	case "approve":
		return h.participantAction(ctx, rest, func(id uint) error {
			_, err := h.transitions.Approve(ctx, id)
			return err
		})
	case "reject":
		return h.participantAction(ctx, rest, func(id uint) error {
			_, err := h.transitions.Reject(ctx, id)
			return err
		})
	case "revert":
		return h.participantAction(ctx, rest, func(id uint) error {
			_, err := h.transitions.Revert(ctx, id)
			return err
		})
	case "remove":
		return h.participantAction(ctx, rest, func(id uint) error {
			return h.transitions.Remove(ctx, id)
		})
	case "notifications":
		return h.showNotifications(ctx)
	case "read":
		return h.notificationAction(rest, func(id string) error {
			return h.mutateQueue(func() error { return h.notifs.MarkRead(ctx, h.session.UserID, id) })
		})
	case "read-all":
		return h.mutateQueue(func() error { return h.notifs.MarkAllRead(ctx, h.session.UserID) })
	case "dismiss":
		return h.notificationAction(rest, func(id string) error {
			return h.mutateQueue(func() error { return h.notifs.Remove(ctx, h.session.UserID, id) })
		})
	case "clear":
		return h.mutateQueue(func() error { return h.notifs.Clear(ctx, h.session.UserID) })
	default:
		fmt.Fprintln(h.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (h *Handler) listEvents(ctx context.Context, key string) error {
	events, err := cache.GetAs[[]entities.Event](ctx, h.queries, key)
	if err != nil {
		fmt.Fprintln(h.out, h.userMessage(err))
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(h.out, "(no events)")
		return nil
	}
	for _, e := range events {
		fmt.Fprintln(h.out, formatEventLine(&e))
	}
	return nil
}

// showEvent reads the detail through the polled cache, so a transition's
// invalidation forces the next view to refetch. The fetcher goes through
// SyncEvent, which also reseeds the record store.
func (h *Handler) showEvent(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	key := application.EventDetailKey(id)
	if !h.queries.Has(key) {
		h.queries.Register(key, h.detailPoll, func(ctx context.Context) (any, error) {
			return h.transitions.SyncEvent(ctx, id)
		})
	}
	event, err := cache.GetAs[*entities.Event](ctx, h.queries, key)
	if err != nil {
		fmt.Fprintln(h.out, h.userMessage(err))
		return err
	}
	fmt.Fprint(h.out, formatEventDetail(event))
	return nil
}

func (h *Handler) apply(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	reason := strings.Join(args[1:], " ")
	record, err := h.transitions.Apply(ctx, id, reason)
	if err != nil {
		fmt.Fprintln(h.out, h.userMessage(err))
		return err
	}
	if record != nil {
		fmt.Fprintf(h.out, "participation #%d: %s\n", record.ID, record.Status)
	}
	return nil
}

func (h *Handler) participantAction(ctx context.Context, args []string, fn func(id uint) error) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := fn(id); err != nil {
		fmt.Fprintln(h.out, h.userMessage(err))
		return err
	}
	fmt.Fprintln(h.out, "ok")
	return nil
}

func (h *Handler) notificationAction(args []string, fn func(id string) error) error {
	if len(args) == 0 {
		return fmt.Errorf("notification id required")
	}
	return fn(args[0])
}

func (h *Handler) showNotifications(ctx context.Context) error {
	key := application.NotificationsKey(h.session.UserID)
	var list []entities.Notification
	if h.queries.Has(key) {
		var err error
		if list, err = cache.GetAs[[]entities.Notification](ctx, h.queries, key); err != nil {
			fmt.Fprintln(h.out, h.userMessage(err))
			return err
		}
	} else {
		list = h.notifs.Load(ctx, h.session.UserID)
	}
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	fmt.Fprintf(h.out, "%d notification(s), %d unread\n", len(list), unread)
	for _, n := range list {
		fmt.Fprintln(h.out, formatNotification(&n))
	}
	return nil
}

// mutateQueue runs a queue mutation and marks the cached notification query
// stale so the next listing reflects it.
func (h *Handler) mutateQueue(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	h.queries.Invalidate(application.NotificationsKey(h.session.UserID))
	return nil
}

func parseID(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("id required")
	}
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(v), nil
}
