// SPDX-License-Identifier: MIT
// Package: cognasim/internal/metrics
//
// metrics.go — Prometheus recorder for generation runs.

// Package metrics counts generated features and replicates on a private
// Prometheus registry that batch runs dump to a textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cognasim/simulate"
)

// Replicate outcome labels.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Recorder is safe for concurrent use.
type Recorder struct {
	reg        *prometheus.Registry
	features   *prometheus.CounterVec
	replicates *prometheus.CounterVec
	classes    *prometheus.HistogramVec
	borrowings *prometheus.CounterVec
}

// New registers the cognasim collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		features: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cognasim",
			Name:      "features_generated_total",
			Help:      "Features generated, by model.",
		}, []string{"model"}),
		replicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cognasim",
			Name:      "replicates_total",
			Help:      "Replicates attempted, by model and outcome.",
		}, []string{"model", "status"}),
		classes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cognasim",
			Name:      "classes_per_feature",
			Help:      "Distinct cognate classes per generated feature.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}, []string{"model"}),
		borrowings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cognasim",
			Name:      "borrowing_events_total",
			Help:      "Lateral transfers performed by the tree simulator.",
		}, []string{"model"}),
	}
	r.reg.MustRegister(r.features, r.replicates, r.classes, r.borrowings)
	return r
}

// ObserveFeature records one generated feature. It has the signature of a
// simulate.WithOnFeature hook.
func (r *Recorder) ObserveFeature(fs simulate.FeatureStats) {
	r.features.WithLabelValues(fs.Model).Inc()
	r.classes.WithLabelValues(fs.Model).Observe(float64(fs.Classes))
	if fs.Borrowings > 0 {
		r.borrowings.WithLabelValues(fs.Model).Add(float64(fs.Borrowings))
	}
}

// ObserveReplicate records the outcome of one replicate.
func (r *Recorder) ObserveReplicate(model string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusFailed
	}
	r.replicates.WithLabelValues(model, status).Inc()
}

// Features returns the feature counter for model.
func (r *Recorder) Features(model string) prometheus.Counter {
	return r.features.WithLabelValues(model)
}

// Replicates returns the replicate counter for model and success.
func (r *Recorder) Replicates(model string, ok bool) prometheus.Counter {
	status := StatusFailed
	if ok {
		status = StatusOK
	}
	return r.replicates.WithLabelValues(model, status)
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteFile dumps all metrics in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
