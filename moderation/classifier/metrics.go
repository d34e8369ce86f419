package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var classifierRequestCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_classifier_requests",
	Help: "Number of successful text classification API calls",
})

var classifierFallbackCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_classifier_fallbacks",
	Help: "Number of classifications served by local pattern matching",
})
