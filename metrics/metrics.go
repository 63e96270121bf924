package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SchemaImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schema_imports_total",
	Help: "Number of assessment schema imports by outcome",
}, []string{"outcome"})

var SchemaParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "schema_parse_duration_seconds",
	Help:    "Duration of assessment workbook parsing",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
})

var ScoresUpsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "scores_upserted_total",
	Help: "Number of score rows written by experts",
})

var PublishDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "results_publish_duration_s",
	Help: "Duration of the publish-results steps",
}, []string{"step"})

var PassportsWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "passports_written_total",
	Help: "Number of skill passport snapshots created or updated",
})
