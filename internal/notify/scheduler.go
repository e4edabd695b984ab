// Package notify implements the notification scheduler: a periodic scan
// of the bill document that hands due/overdue notices to a platform
// Notifier. The scheduler is stateless across scans; duplicate
// suppression is the display layer's job via the per-bill tag.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/perrrrrrrrr/prism-bills-app/internal/calculator"
	"github.com/perrrrrrrrr/prism-bills-app/internal/models"
)

// DefaultScanInterval is the cadence between bill scans.
const DefaultScanInterval = time.Hour

// State is the scheduler lifecycle state.
type State int

const (
	// StateIdle means no permission or notifications disabled; all
	// scheduler calls are no-ops.
	StateIdle State = iota
	// StateActive means permission was granted and scans are running.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// DocumentSource yields the current document for scanning. Satisfied by
// *service.Gateway.
type DocumentSource interface {
	Document(ctx context.Context) models.Document
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval overrides the scan cadence.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.interval = d }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithRegisterer registers the scheduler's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Scheduler) { s.metrics = newMetrics(reg) }
}

// Scheduler periodically scans the bill document and notifies on bills
// that are overdue, due today, or due in one of the configured reminder
// offsets. It owns one goroutine and one ticker while active.
type Scheduler struct {
	source   DocumentSource
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	metrics  *metrics

	mu    sync.Mutex
	state State
	stopc chan struct{}
	done  chan struct{}
}

// NewScheduler creates a Scheduler over the given document source and
// notifier. It starts idle; call Start to activate it.
func NewScheduler(source DocumentSource, notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		source:   source,
		notifier: notifier,
		interval: DefaultScanInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = newMetrics(nil)
	}
	return s
}

// Start requests notification permission once and, if granted and
// notifications are enabled in settings, transitions to active: an
// immediate scan followed by one per interval. Denied or unavailable
// permission leaves the scheduler idle; Start never fails hard.
// The returned state is the state after the transition attempt.
func (s *Scheduler) Start(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateActive {
		return StateActive
	}

	granted, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		slog.Warn("notification permission unavailable, scheduler stays idle", "error", err)
		return StateIdle
	}
	if !granted {
		slog.Info("notification permission denied, scheduler stays idle")
		return StateIdle
	}
	if !s.source.Document(ctx).Settings.NotificationsEnabled {
		slog.Info("notifications disabled in settings, scheduler stays idle")
		return StateIdle
	}

	s.state = StateActive
	s.stopc = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(ctx, s.stopc, s.done)
	return StateActive
}

// Stop halts scanning and releases the ticker. Safe to call repeatedly
// and on an idle scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state != StateActive {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	close(s.stopc)
	done := s.done
	s.mu.Unlock()

	<-done
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) run(ctx context.Context, stopc, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.scan(ctx)
	for {
		select {
		case <-ticker.C:
			s.scan(ctx)
		case <-stopc:
			return
		case <-ctx.Done():
			return
		}
	}
}

// scan walks the document once and sends at most one notification per
// unpaid bill. Settings are re-read every scan, so disabling
// notifications takes effect without a restart.
func (s *Scheduler) scan(ctx context.Context) {
	s.metrics.scans.Inc()

	doc := s.source.Document(ctx)
	if !doc.Settings.NotificationsEnabled {
		return
	}

	today := models.DateOf(s.now())
	for _, bill := range doc.Bills {
		if bill.Paid {
			continue
		}
		n, kind, ok := buildNotification(bill, calculator.DaysUntilDue(today, bill.DueDate), doc.Settings.ReminderDays)
		if !ok {
			continue
		}
		if err := s.notifier.Send(ctx, n); err != nil {
			s.metrics.sendErrors.Inc()
			slog.Warn("failed to send notification", "bill_id", bill.ID, "error", err)
			continue
		}
		s.metrics.sent.WithLabelValues(kind).Inc()
	}
}

// buildNotification maps a bill's days-until-due to a notification, or
// reports false when none of the conditions match.
func buildNotification(bill models.Bill, daysUntilDue int, reminderDays []int) (Notification, string, bool) {
	switch {
	case daysUntilDue < 0:
		late := -daysUntilDue
		return Notification{
			Tag:    bill.ID,
			Title:  fmt.Sprintf("Overdue: %s", bill.Name),
			Body:   fmt.Sprintf("%s was due %d %s ago. Amount: $%.2f", bill.Name, late, dayWord(late), bill.Amount),
			Urgent: true,
		}, "overdue", true

	case daysUntilDue == 0:
		return Notification{
			Tag:   bill.ID,
			Title: fmt.Sprintf("Due Today: %s", bill.Name),
			Body:  fmt.Sprintf("Amount: $%.2f", bill.Amount),
		}, "due_today", true

	case slices.Contains(reminderDays, daysUntilDue):
		return Notification{
			Tag:   bill.ID,
			Title: fmt.Sprintf("Upcoming Bill: %s", bill.Name),
			Body:  fmt.Sprintf("Due in %d %s. Amount: $%.2f", daysUntilDue, dayWord(daysUntilDue), bill.Amount),
		}, "upcoming", true
	}
	return Notification{}, "", false
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
