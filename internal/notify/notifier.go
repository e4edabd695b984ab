package notify

import (
	"context"
	"log/slog"
)

// Notification is one message for the platform display layer. Tag carries
// the bill ID so display layers with tag-based replacement show at most
// one live notification per bill instead of stacking repeats across scans.
type Notification struct {
	Tag   string
	Title string
	Body  string

	// Urgent marks overdue notices so the display layer can escalate
	// (sticky or high-priority presentation).
	Urgent bool
}

// Notifier is the platform notification surface. Implementations wrap
// whatever the host offers: desktop notifications, a TUI status line, or
// the log.
type Notifier interface {
	// RequestPermission asks the platform for permission to notify.
	// Called once when the scheduler starts; false keeps it idle.
	RequestPermission(ctx context.Context) (bool, error)

	// Send delivers one notification.
	Send(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the structured log. It is the
// display layer for headless hosts and always grants permission.
type LogNotifier struct{}

func (LogNotifier) RequestPermission(context.Context) (bool, error) {
	return true, nil
}

func (LogNotifier) Send(_ context.Context, n Notification) error {
	slog.Info("bill notification",
		"tag", n.Tag,
		"title", n.Title,
		"body", n.Body,
		"urgent", n.Urgent,
	)
	return nil
}
