package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Writer records the outcome of a transition in Prometheus text exposition
// format, for the node_exporter textfile collector. The tool exits right
// after each run, so there is no endpoint to scrape.
type Writer struct {
	Path string
}

// Record writes the run's timestamp and outcome for the given transition,
// overwriting any previous run's file.
func (w Writer) Record(transition string, success bool) error {
	registry := prometheus.NewRegistry()

	lastRun := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kbdstate_last_run_timestamp_seconds",
		Help: "Time of the last kbdstate run.",
	}, []string{"transition"})
	lastSuccess := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kbdstate_last_run_success",
		Help: "Whether the last kbdstate run succeeded (1) or failed (0).",
	}, []string{"transition"})
	registry.MustRegister(lastRun, lastSuccess)

	lastRun.WithLabelValues(transition).SetToCurrentTime()
	var value float64
	if success {
		value = 1
	}
	lastSuccess.WithLabelValues(transition).Set(value)

	return prometheus.WriteToTextfile(w.Path, registry)
}
