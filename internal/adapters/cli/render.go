package cli

import (
	"fmt"
	"strings"

	"baco/internal/domain/entities"
	"baco/pkg/tz"
)

func formatEventLine(e *entities.Event) string {
	when := tz.Format(e.ScheduledAt)
	if when == "" {
		when = "date TBD"
	}
	return fmt.Sprintf("#%d  %s  [%s]  %s  (%d participants)",
		e.ID, when, e.Type, e.Title, e.ParticipantCount)
}

func formatEventDetail(e *entities.Event) string {
	var b strings.Builder
	b.WriteString(formatEventLine(e))
	b.WriteString("\n")
	if e.Description != "" {
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	for _, p := range e.Participants {
		b.WriteString(fmt.Sprintf("  participant #%d  user %d  %s", p.ID, p.UserID, p.Status))
		if p.ApplicationReason != "" {
			b.WriteString("  — " + p.ApplicationReason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatNotification(n *entities.Notification) string {
	marker := "•"
	if n.Read {
		marker = " "
	}
	return fmt.Sprintf("%s [%s] %s — %s (%s)", marker, tz.Format(n.Date), n.Title, n.Message, n.ID)
}
