package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"sentimate/internal/db"
)

var (
	messageDesc = prometheus.NewDesc(
		"sentimate_chat_messages_total",
		"Total stored chat messages by language and sender",
		[]string{"language", "sender"},
		nil,
	)

	chatResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentimate_chat_responses_total",
			Help: "Chat responses generated since startup, by language and category",
		},
		[]string{"language", "category"},
	)

	remindersDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sentimate_reminders_delivered_total",
			Help: "Medication reminder messages delivered since startup",
		},
	)

	inactivityAlerts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sentimate_inactivity_alerts_total",
			Help: "Inactivity check-ins triggered since startup",
		},
	)
)

// MessageCollector is a custom Prometheus collector that reads chat message
// counts from the database on each scrape.
type MessageCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *MessageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- messageDesc
}

// Collect queries the database for message counts and emits them as counters.
func (c *MessageCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.GetMessageCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect chat message metrics", "error", err)
		return
	}
	for _, mc := range counts {
		ch <- prometheus.MustNewConstMetric(
			messageDesc,
			prometheus.CounterValue,
			float64(mc.Count),
			mc.Language,
			mc.Sender,
		)
	}
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&MessageCollector{db: database},
			chatResponses,
			remindersDelivered,
			inactivityAlerts,
		)
	})
}

// RecordChatResponse counts one generated chat response.
func RecordChatResponse(language, category string) {
	chatResponses.WithLabelValues(language, category).Inc()
}

// RecordReminderDelivered counts one delivered medication reminder.
func RecordReminderDelivered() {
	remindersDelivered.Inc()
}

// RecordInactivityAlert counts one triggered inactivity check-in.
func RecordInactivityAlert() {
	inactivityAlerts.Inc()
}
