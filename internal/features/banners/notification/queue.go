package notification

import (
	"sync"
	"time"

	"banner-studio/internal/features/banners/domain"

	"github.com/zoobzio/clockz"
)

// DefaultDuration is how long a confirmation stays visible.
const DefaultDuration = 3000 * time.Millisecond

// Queue is a single-slot notification display. A new confirmation replaces the
// visible one and restarts its expiry. While a contrast warning is raised it is
// shown instead of any confirmation; once resolved, an unexpired confirmation
// becomes visible again.
type Queue struct {
	clock    clockz.Clock
	duration time.Duration

	mu           sync.Mutex
	seq          uint64
	confirmation *domain.Notification
	warning      *domain.Notification
}

// NewQueue creates a Queue. A nil clock uses the real clock.
func NewQueue(clock clockz.Clock, duration time.Duration) *Queue {
	if clock == nil {
		clock = clockz.RealClock
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Queue{clock: clock, duration: duration}
}

// Push shows message as the current confirmation.
func (q *Queue) Push(message string) domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	n := domain.Notification{
		Message:    message,
		SequenceID: q.seq,
		Kind:       domain.NotificationConfirmation,
		ExpiresAt:  q.clock.Now().Add(q.duration),
	}
	q.confirmation = &n
	return n
}

// Clear dismisses the current confirmation early. A raised warning stays.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.confirmation = nil
}

// RaiseWarning shows message until ResolveWarning is called. Raising an
// already raised warning keeps its sequence id and reports false.
func (q *Queue) RaiseWarning(message string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.warning != nil && q.warning.Message == message {
		return false
	}
	q.seq++
	q.warning = &domain.Notification{
		Message:    message,
		SequenceID: q.seq,
		Kind:       domain.NotificationWarning,
	}
	return true
}

// ResolveWarning removes the warning and reports whether one was raised.
func (q *Queue) ResolveWarning() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	raised := q.warning != nil
	q.warning = nil
	return raised
}

// Reset drops everything, including the warning.
func (q *Queue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.confirmation = nil
	q.warning = nil
}

// Current returns the visible notification, if any.
func (q *Queue) Current() (domain.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.warning != nil {
		return *q.warning, true
	}
	if q.confirmation == nil {
		return domain.Notification{}, false
	}
	if !q.clock.Now().Before(q.confirmation.ExpiresAt) {
		q.confirmation = nil
		return domain.Notification{}, false
	}
	return *q.confirmation, true
}
