package storage

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

var storeCalls = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "snake",
		Subsystem: "store",
		Name:      "call_duration_seconds",
		Help:      "Duration of calls made to the score store.",
	},
	[]string{"method"},
)

func init() {
	prometheus.MustRegister(storeCalls)
}

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

// Instrument wraps kv so every call is timed. The result implements History
// when kv does.
func Instrument(kv KV) KV {
	m := &metrics{kv: kv}
	if h, ok := kv.(History); ok {
		return &historyMetrics{metrics: m, h: h}
	}
	return m
}

type metrics struct{ kv KV }

func (m *metrics) Get(ctx context.Context, key string) (string, bool, error) {
	defer instrument("Get")()
	return m.kv.Get(ctx, key)
}

func (m *metrics) Set(ctx context.Context, key, value string) error {
	defer instrument("Set")()
	return m.kv.Set(ctx, key, value)
}

func (m *metrics) Delete(ctx context.Context, key string) error {
	defer instrument("Delete")()
	return m.kv.Delete(ctx, key)
}

func (m *metrics) Close() error {
	return m.kv.Close()
}

type historyMetrics struct {
	*metrics
	h History
}

func (m *historyMetrics) RecordGame(ctx context.Context, r GameResult) (int64, error) {
	defer instrument("RecordGame")()
	return m.h.RecordGame(ctx, r)
}

func (m *historyMetrics) RecentGames(ctx context.Context, limit int) ([]GameResult, error) {
	defer instrument("RecentGames")()
	return m.h.RecentGames(ctx, limit)
}

func (m *historyMetrics) Stats(ctx context.Context) (*Stats, error) {
	defer instrument("Stats")()
	return m.h.Stats(ctx)
}

// ClearHistory passes through when the wrapped store supports it.
func (m *historyMetrics) ClearHistory(ctx context.Context) error {
	c, ok := m.h.(interface {
		ClearHistory(ctx context.Context) error
	})
	if !ok {
		return nil
	}
	defer instrument("ClearHistory")()
	return c.ClearHistory(ctx)
}
