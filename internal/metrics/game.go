package metrics

import (
	"roulette_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	playsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_plays_total",
			Help: "Played games by game and drawn outcome",
		},
		[]string{"game", "outcome"},
	)

	wagersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_wagers_total",
			Help: "Resolved wagers by game and result",
		},
		[]string{"game", "result"},
	)

	chipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_chips_total",
			Help: "Chips taken in and paid out",
		},
		[]string{"game", "direction"},
	)

	rejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_rejected_requests_total",
			Help: "Game requests rejected by validation, by reason",
		},
		[]string{"kind"},
	)

	storedRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roulette_stored_records",
			Help: "Number of results held by the record store",
		},
	)
)

// RecordPlay counts a resolved game and its wagers
func RecordPlay(record *model.ResultRecord) {
	game := string(record.Game)
	playsTotal.WithLabelValues(game, record.Result).Inc()
	for _, w := range record.Bets {
		chipsTotal.WithLabelValues(game, "in").Add(float64(w.ChipsIn))
		if w.ChipsOut != nil && *w.ChipsOut > 0 {
			wagersTotal.WithLabelValues(game, "win").Inc()
			chipsTotal.WithLabelValues(game, "out").Add(float64(*w.ChipsOut))
		} else {
			wagersTotal.WithLabelValues(game, "loss").Inc()
		}
	}
}

func RecordRejected(kind string) {
	rejectedTotal.WithLabelValues(kind).Inc()
}

// RecordStored counts one successful insert into the record store
func RecordStored() {
	storedRecords.Inc()
}
