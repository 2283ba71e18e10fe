package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	ChatRequestsTotal     metric.Int64Counter
	ChatTurnDuration      metric.Float64Histogram
	BackendFallbacksTotal metric.Int64Counter
	TripExtractionsTotal  metric.Int64Counter
	ParseMissesTotal      metric.Int64Counter
	TripSharesTotal       metric.Int64Counter
	EventsPublishedTotal  metric.Int64Counter
	EventPublishDuration  metric.Float64Histogram
	SSEClientsGauge       metric.Int64Gauge
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("tripmind")
		var err error
		m := &AppMetrics{}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of chat turns handled"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.ChatTurnDuration, err = meter.Float64Histogram(
			"chat_turn_duration_seconds",
			metric.WithDescription("Duration of one chat turn in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_turn_duration_seconds: %v", err)
		}

		m.BackendFallbacksTotal, err = meter.Int64Counter(
			"chat_backend_fallbacks_total",
			metric.WithDescription("Total number of turns answered by the simulator after a backend failure"),
			metric.WithUnit("{fallback}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_backend_fallbacks_total: %v", err)
		}

		m.TripExtractionsTotal, err = meter.Int64Counter(
			"trip_extractions_total",
			metric.WithDescription("Total number of itineraries extracted from assistant replies"),
			metric.WithUnit("{trip}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_extractions_total: %v", err)
		}

		m.ParseMissesTotal, err = meter.Int64Counter(
			"trip_parse_misses_total",
			metric.WithDescription("Total number of backend replies with no extractable itinerary"),
			metric.WithUnit("{reply}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_parse_misses_total: %v", err)
		}

		m.TripSharesTotal, err = meter.Int64Counter(
			"trip_shares_total",
			metric.WithDescription("Total number of share links generated"),
			metric.WithUnit("{share}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_shares_total: %v", err)
		}

		m.EventsPublishedTotal, err = meter.Int64Counter(
			"bus_events_published_total",
			metric.WithDescription("Total number of events published on the in-process bus"),
			metric.WithUnit("{event}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create bus_events_published_total: %v", err)
		}

		m.EventPublishDuration, err = meter.Float64Histogram(
			"bus_event_publish_duration_seconds",
			metric.WithDescription("Time spent delivering one publish to all subscribers"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create bus_event_publish_duration_seconds: %v", err)
		}

		m.SSEClientsGauge, err = meter.Int64Gauge(
			"sse_clients_current",
			metric.WithDescription("Current number of connected event-stream clients"),
			metric.WithUnit("{client}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create sse_clients_current: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, initializing
// against the ambient meter provider on first use. Before a real
// provider is installed the instruments come from the no-op provider, so
// library tests can record freely.
func Get() *AppMetrics {
	if appMetrics == nil {
		InitAppMetrics()
	}
	return appMetrics
}
