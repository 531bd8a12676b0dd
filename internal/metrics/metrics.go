package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorer_evaluations_total",
		Help: "Total evaluation requests, ad hoc and suite runs",
	})

	EvalErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scorer_eval_errors_total",
		Help: "Evaluation failures by kind",
	}, []string{"kind"})

	PairsScored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorer_pairs_scored_total",
		Help: "Reference/hypothesis pairs scored",
	})

	WERLast = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scorer_wer_last",
		Help: "Overall WER of the most recent evaluation",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scorer_run_duration_seconds",
		Help:    "Suite run wall time",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 15.0, 60.0, 300.0},
	})

	WERDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scorer_wer_distribution",
		Help:    "Per-pair WER values",
		Buckets: []float64{0.0, 0.05, 0.1, 0.15, 0.2, 0.3, 0.5, 0.75, 1.0, 1.5},
	})
)
