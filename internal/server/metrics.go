package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var formatTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phone_input_format_total",
		Help: "Normalized phone inputs by classification and input kind.",
	},
	[]string{"phone_kind", "input_kind"},
)

func observeFormat(phoneKind, inputKind string) {
	formatTotal.WithLabelValues(phoneKind, inputKind).Inc()
}
