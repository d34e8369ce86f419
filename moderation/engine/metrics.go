package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var messagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_messages_processed_total",
	Help: "Total messages run through the moderation pipeline.",
})

var evaluationPanics = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_evaluation_panics_total",
	Help: "Recovered panics during message evaluation.",
})

var cooldownReminders = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_cooldown_reminders_total",
	Help: "Messages preempted by an active cooldown.",
})

var scoreDecays = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_score_decays_total",
	Help: "Disruption score decay steps applied for clean messages.",
})

var disruptionScore = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "guardian_engine_disruption_score",
	Help:    "Disruption score after each evaluation.",
	Buckets: []float64{0, 1, 2, 3, 5, 8, 10, 12, 15, 20},
})

var interventionsFired = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "guardian_engine_interventions_total",
	Help: "Interventions fired, by level and tone.",
}, []string{"level", "tone"})

var interventionsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_interventions_suppressed_total",
	Help: "Interventions withheld because the other participant re-engaged.",
})

var urgencyOverrides = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_urgency_overrides_total",
	Help: "Interventions forced by flagged content outside normal pacing.",
})

var cooldownsStarted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_cooldowns_started_total",
	Help: "Typing lockouts started.",
})

var reflectionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_reflections_total",
	Help: "Reflection prompts produced.",
})

var suggestionsOffered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_suggestions_offered_total",
	Help: "Suggestion batches returned to clients.",
})

var suggestionsThrottled = promauto.NewCounter(prometheus.CounterOpts{
	Name: "guardian_engine_suggestions_throttled_total",
	Help: "Suggestion requests declined by the throttler.",
})
