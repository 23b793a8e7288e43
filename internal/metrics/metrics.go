// Package metrics exposes pipeline counters and histograms to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded by RecordDocument.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// Recorder records pipeline events.
type Recorder interface {
	RecordDocument(source, outcome string)
	RecordSummarize(duration time.Duration, sentences int)
	RecordTranslationFailure()
	RecordRecognitionFailure(kind string)
}

// Prometheus implements Recorder with Prometheus collectors.
type Prometheus struct {
	documents           *prometheus.CounterVec
	summarizeDuration   prometheus.Histogram
	summarySentences    prometheus.Histogram
	translationFailures prometheus.Counter
	recognitionFailures *prometheus.CounterVec
}

// NewPrometheus registers the pipeline collectors on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		documents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digest_documents_total",
			Help: "Documents processed by source kind and outcome.",
		}, []string{"source", "outcome"}),
		summarizeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "digest_summarize_duration_seconds",
			Help:    "Time spent building one extractive summary.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		summarySentences: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "digest_summary_sentences",
			Help:    "Number of sentences in produced summaries.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		translationFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "digest_translation_failures_total",
			Help: "Translations that failed and fell back to the original text.",
		}),
		recognitionFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digest_recognition_failures_total",
			Help: "Speech recognition failures by kind.",
		}, []string{"kind"}),
	}
}

func (p *Prometheus) RecordDocument(source, outcome string) {
	p.documents.WithLabelValues(source, outcome).Inc()
}

func (p *Prometheus) RecordSummarize(duration time.Duration, sentences int) {
	p.summarizeDuration.Observe(duration.Seconds())
	p.summarySentences.Observe(float64(sentences))
}

func (p *Prometheus) RecordTranslationFailure() {
	p.translationFailures.Inc()
}

func (p *Prometheus) RecordRecognitionFailure(kind string) {
	p.recognitionFailures.WithLabelValues(kind).Inc()
}

type noopRecorder struct{}

// Noop returns a Recorder that drops everything.
func Noop() Recorder { return noopRecorder{} }

func (noopRecorder) RecordDocument(string, string)      {}
func (noopRecorder) RecordSummarize(time.Duration, int) {}
func (noopRecorder) RecordTranslationFailure()          {}
func (noopRecorder) RecordRecognitionFailure(string)    {}
