package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spark_realtime_connections",
		Help: "Number of currently registered websocket connections.",
	})

	metricIdeaRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spark_realtime_idea_rooms",
		Help: "Number of idea rooms with at least one member.",
	})

	metricEventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spark_realtime_events_emitted_total",
		Help: "Events submitted to the emitter, by scope.",
	}, []string{"scope"})

	metricDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spark_realtime_deliveries_total",
		Help: "Event envelopes enqueued to a connection send queue.",
	})

	metricDeliveriesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spark_realtime_deliveries_dropped_total",
		Help: "Event envelopes dropped because a connection was closing or its queue was full.",
	})
)

const (
	emitScopeIdea = "idea"
	emitScopeUser = "user"
	emitScopeAll  = "all"
)
