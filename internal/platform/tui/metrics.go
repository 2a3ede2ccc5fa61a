package tui

import "github.com/prometheus/client_golang/prometheus"

var (
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "ssh",
			Name:      "active_sessions",
			Help:      "SSH sessions currently connected.",
		},
	)
	gamesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "finished_total",
			Help:      "Games that reached the end state, by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(activeSessions, gamesFinished)
}
