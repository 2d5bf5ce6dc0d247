package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultPosthogEndpoint is used when no endpoint is configured.
const DefaultPosthogEndpoint = "https://eu.i.posthog.com"

// Tracker sends product analytics events to PostHog. A Tracker built without an API key
// accepts every call and does nothing.
type Tracker struct {
	client posthog.Client
	logger *slog.Logger
}

// NewTracker builds a Tracker. An empty apiKey yields a disabled tracker.
func NewTracker(apiKey, endpoint string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{logger: logger}
	if apiKey == "" {
		logger.Info("PostHog API key not set, product analytics disabled")
		return t
	}
	if endpoint == "" {
		endpoint = DefaultPosthogEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to create PostHog client, product analytics disabled", slog.String("error", err.Error()))
		return t
	}
	t.client = client
	logger.Info("PostHog product analytics enabled", slog.String("endpoint", endpoint))
	return t
}

func (t *Tracker) Enabled() bool {
	return t != nil && t.client != nil
}

// Capture enqueues an event for the given distinct ID.
func (t *Tracker) Capture(distinctID, event string, properties map[string]any) {
	if !t.Enabled() {
		return
	}
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		t.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (t *Tracker) Close() {
	if !t.Enabled() {
		return
	}
	if err := t.client.Close(); err != nil {
		t.logger.Warn("Failed to close PostHog client", slog.String("error", err.Error()))
	}
}
