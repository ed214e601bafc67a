// Package obs holds process-wide observability instruments.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CartOperations counts cart mutations by operation and outcome.
	CartOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation (add, remove, update) and outcome.",
	}, []string{"op", "outcome"})

	// Notifications counts user-facing notifications emitted.
	Notifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_notifications_total",
		Help: "User-facing notifications emitted by the notification hub.",
	})
)
