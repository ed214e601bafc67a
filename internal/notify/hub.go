// Package notify is the user-facing notification sink. Delivery is
// fire-and-forget: events are logged, counted, and retained in a bounded
// ring the UI can poll.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketshoes/cart-service/internal/obs"
)

type Severity string

const SeverityError Severity = "error"

// Event is one delivered notification.
type Event struct {
	ID       string    `json:"id"`
	Severity Severity  `json:"severity"`
	Text     string    `json:"text"`
	At       time.Time `json:"at"`
}

const defaultCapacity = 50

// Hub retains the most recent notifications and mirrors them to the log.
type Hub struct {
	log      *slog.Logger
	capacity int

	mu     sync.Mutex
	events []Event
}

func NewHub(log *slog.Logger, capacity int) *Hub {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Hub{log: log, capacity: capacity}
}

// Error records an error-severity notification.
func (h *Hub) Error(text string) {
	ev := Event{
		ID:       uuid.NewString(),
		Severity: SeverityError,
		Text:     text,
		At:       time.Now().UTC(),
	}

	h.log.Error("user notification",
		slog.String("notification_id", ev.ID),
		slog.String("text", ev.Text),
	)
	obs.Notifications.Inc()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	if len(h.events) > h.capacity {
		h.events = h.events[len(h.events)-h.capacity:]
	}
}

// Recent returns retained notifications, oldest first.
func (h *Hub) Recent() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}
