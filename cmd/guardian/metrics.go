package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("guardian")

var messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_messages_received",
	Help: "Number of chat messages submitted for evaluation",
})

var actionsReturned = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "guardian_actions_returned",
	Help: "Number of moderation actions returned, by kind",
}, []string{"kind"})
