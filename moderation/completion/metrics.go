package completion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var completionRequestCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_completion_requests",
	Help: "Number of successful completion API calls",
})

var completionRetryCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_completion_retries",
	Help: "Number of completion API retry attempts",
})

var completionFailureCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_completion_failures",
	Help: "Number of completion requests which exhausted all retries",
})

var completionQuotaDisabled = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "guardian_completion_quota_disabled",
	Help: "Set to 1 once the completion service is disabled for quota exhaustion",
})
