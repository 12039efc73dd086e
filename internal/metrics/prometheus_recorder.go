package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runs          *prom.CounterVec
	daysProcessed prom.Counter
	tasksArchived prom.Counter
	duration      prom.Histogram
	watermark     prom.Gauge
}

// NewPrometheusRecorder constructs the rollover metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "daykan",
			Name:      "rollover_runs_total",
			Help:      "Catch-up runs by result",
		}, []string{"result"}),
		daysProcessed: prom.NewCounter(prom.CounterOpts{
			Namespace: "daykan",
			Name:      "rollover_days_total",
			Help:      "Calendar days rolled over",
		}),
		tasksArchived: prom.NewCounter(prom.CounterOpts{
			Namespace: "daykan",
			Name:      "tasks_archived_total",
			Help:      "Tasks moved into the archive",
		}),
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "daykan",
			Name:      "rollover_duration_seconds",
			Help:      "Duration of catch-up runs that archived at least one day",
			Buckets:   prom.DefBuckets,
		}),
		watermark: prom.NewGauge(prom.GaugeOpts{
			Namespace: "daykan",
			Name:      "watermark_timestamp_seconds",
			Help:      "Unix time of the last_active_date watermark",
		}),
	}
	reg.MustRegister(pr.runs, pr.daysProcessed, pr.tasksArchived, pr.duration, pr.watermark)
	return pr
}

func (p *PrometheusRecorder) IncRolloverRun(result ResultLabel) {
	p.runs.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddDaysProcessed(n int) {
	p.daysProcessed.Add(float64(n))
}

func (p *PrometheusRecorder) AddTasksArchived(n int) {
	p.tasksArchived.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRolloverDuration(d time.Duration) {
	p.duration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetWatermark(date time.Time) {
	p.watermark.Set(float64(date.Unix()))
}
