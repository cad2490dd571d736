package cli

import (
	"fmt"
	"io"
	"sync"

	"baco/internal/domain/entities"
	"baco/internal/ports/output"
)

var _ output.Feed = (*SessionFeed)(nil)

// SessionFeed is the live notification feed of the signed-in session: every
// pushed notification is kept for the session and echoed as a toast line.
type SessionFeed struct {
	translator output.T
	locale     string
	out        io.Writer

	mu      sync.Mutex
	entries []entities.Notification
}

func NewSessionFeed(translator output.T, locale string, out io.Writer) *SessionFeed {
	return &SessionFeed{translator: translator, locale: locale, out: out}
}

func (f *SessionFeed) Push(n entities.Notification) {
	f.mu.Lock()
	f.entries = append([]entities.Notification{n}, f.entries...)
	f.mu.Unlock()
	toast := f.translator.T(f.locale, "cli.feed.toast", map[string]any{"Title": n.Title})
	fmt.Fprintln(f.out, toast)
}

// Entries returns the notifications delivered live during this session,
// newest first.
func (f *SessionFeed) Entries() []entities.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Notification, len(f.entries))
	copy(out, f.entries)
	return out
}
