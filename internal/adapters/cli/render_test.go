package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"baco/internal/domain"
	"baco/internal/domain/entities"
)

func TestFormatEventLine(t *testing.T) {
	e := &entities.Event{
		ID:               3,
		Title:            "Rando au Mont Blanc",
		Type:             entities.EventTypeApplication,
		ParticipantCount: 4,
		ScheduledAt:      time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC),
	}
	line := formatEventLine(e)
	assert.Contains(t, line, "#3")
	assert.Contains(t, line, "Rando au Mont Blanc")
	assert.Contains(t, line, "private_application")
	assert.Contains(t, line, "10:00", "UTC morning renders in Paris summer time")
}

func TestFormatNotificationMarksUnread(t *testing.T) {
	n := &entities.Notification{ID: "srv-1", Title: "t", Message: "m", Date: time.Now()}
	assert.Contains(t, formatNotification(n), "•")
	n.Read = true
	assert.NotContains(t, formatNotification(n), "•")
}

func TestSessionFeedPushesToast(t *testing.T) {
	var buf bytes.Buffer
	feed := NewSessionFeed(testTranslator{}, "en", &buf)

	feed.Push(entities.Notification{ID: "local-1", Title: "Candidature acceptée"})

	assert.Contains(t, buf.String(), "cli.feed.toast")
	assert.Len(t, feed.Entries(), 1)
}

func TestUserMessagePrefersServerText(t *testing.T) {
	h := &Handler{translator: testTranslator{}}

	assert.Equal(t, "accès refusé",
		h.userMessage(&domain.AuthorizationError{Message: "accès refusé"}))
	assert.Equal(t, "cli.error.invalid_transition",
		h.userMessage(domain.ErrInvalidTransition))
	assert.Equal(t, "cli.error.network",
		h.userMessage(&domain.NetworkError{URL: "/x", Err: assert.AnError}))
}

// testTranslator echoes keys so assertions stay locale-independent.
type testTranslator struct{}

func (testTranslator) T(_, key string, _ map[string]any) string { return key }
