package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	MongoPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mongo_pool_connections",
			Help: "MongoDB connections by state",
		},
		[]string{"state"}, // open, in_use
	)

	MongoPoolEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_pool_events_total",
			Help: "MongoDB connection pool events",
		},
		[]string{"type"},
	)
)

// NewPoolMonitor feeds connection pool events into the mongo_pool_* metrics.
func NewPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			MongoPoolEvents.WithLabelValues(e.Type).Inc()

			switch e.Type {
			case event.ConnectionCreated:
				MongoPoolConnections.WithLabelValues("open").Inc()
			case event.ConnectionClosed:
				MongoPoolConnections.WithLabelValues("open").Dec()
			case event.GetSucceeded:
				MongoPoolConnections.WithLabelValues("in_use").Inc()
			case event.ConnectionReturned:
				MongoPoolConnections.WithLabelValues("in_use").Dec()
			}
		},
	}
}
