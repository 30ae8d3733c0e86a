// Package observability cung cấp Prometheus metrics cho lookup và record source.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Kết quả của một lần lookup, dùng làm label "outcome"
const (
	OutcomeFound          = "found"
	OutcomeNotFound       = "not_found"
	OutcomeInvalidContact = "invalid_contact"
	OutcomeSourceError    = "source_error"
)

// Metrics gom các metric của service
type Metrics struct {
	LookupsTotal        *prometheus.CounterVec
	LookupDuration      prometheus.Histogram
	SourceFetchDuration *prometheus.HistogramVec
	SourceFetchErrors   *prometheus.CounterVec
	RowsScanned         prometheus.Counter
	RecordsMatched      prometheus.Counter
}

// NewMetrics tạo Metrics và đăng ký vào reg (nil = prometheus.DefaultRegisterer)
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "exchange"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		LookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "requests_total",
			Help:      "Total number of exchange lookups by outcome",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "duration_seconds",
			Help:      "Exchange lookup duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		SourceFetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetch_duration_seconds",
			Help:      "Record source fetch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
		SourceFetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "source",
			Name:      "fetch_errors_total",
			Help:      "Total number of failed record source fetches",
		}, []string{"source"}),
		RowsScanned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "rows_scanned_total",
			Help:      "Total number of rows scanned by lookups",
		}),
		RecordsMatched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "records_matched_total",
			Help:      "Total number of rows matched by lookups",
		}),
	}
}

// Các hàm ghi nhận đều chấp nhận receiver nil để service chạy được khi không bật metrics

// RecordLookup ghi nhận một lần lookup
func (m *Metrics) RecordLookup(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.LookupsTotal.WithLabelValues(outcome).Inc()
	m.LookupDuration.Observe(d.Seconds())
}

// RecordSourceFetch ghi nhận một lần đọc record source
func (m *Metrics) RecordSourceFetch(source string, d time.Duration, rows int, err error) {
	if m == nil {
		return
	}
	m.SourceFetchDuration.WithLabelValues(source).Observe(d.Seconds())
	if err != nil {
		m.SourceFetchErrors.WithLabelValues(source).Inc()
		return
	}
	m.RowsScanned.Add(float64(rows))
}

// RecordMatches ghi nhận số dòng khớp
func (m *Metrics) RecordMatches(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RecordsMatched.Add(float64(n))
}

// HandlerFor trả về handler chỉ xuất metrics của gatherer g
func HandlerFor(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
