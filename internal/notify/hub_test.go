package notify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestHub(capacity int) *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), capacity)
}

func TestError_RecordsEvent(t *testing.T) {
	h := newTestHub(10)

	h.Error("failed to add product")

	events := h.Recent()
	require.Len(t, events, 1)
	require.Equal(t, SeverityError, events[0].Severity)
	require.Equal(t, "failed to add product", events[0].Text)
	require.False(t, events[0].At.IsZero())

	_, err := uuid.Parse(events[0].ID)
	require.NoError(t, err)
}

func TestRecent_OldestFirstAndBounded(t *testing.T) {
	h := newTestHub(3)

	for _, text := range []string{"one", "two", "three", "four", "five"} {
		h.Error(text)
	}

	events := h.Recent()
	require.Len(t, events, 3)
	require.Equal(t, "three", events[0].Text)
	require.Equal(t, "five", events[2].Text)
}

func TestRecent_ReturnsCopy(t *testing.T) {
	h := newTestHub(10)
	h.Error("original")

	events := h.Recent()
	events[0].Text = "mutated"

	require.Equal(t, "original", h.Recent()[0].Text)
}

func TestNewHub_DefaultCapacity(t *testing.T) {
	h := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	require.Equal(t, defaultCapacity, h.capacity)
}
