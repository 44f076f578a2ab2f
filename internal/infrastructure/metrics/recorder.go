// Package metrics exposes Prometheus counters for the fiscal workflow.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/event"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nfe"

// Recorder owns its registry so tests and multiple instances never collide.
type Recorder struct {
	registry *prometheus.Registry

	emitted       *prometheus.CounterVec
	aborted       *prometheus.CounterVec
	cancelled     prometheus.Counter
	corrections   prometheus.Counter
	invalidations prometheus.Counter
	deferred      prometheus.Counter
	stepDuration  *prometheus.HistogramVec
	fiscalCalls   *prometheus.HistogramVec
	queueDepth    *prometheus.GaugeVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_emitted_total",
			Help:      "Documents accepted by SEFAZ, by model and resulting status.",
		}, []string{"model", "status"}),
		aborted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emissions_aborted_total",
			Help:      "Emission runs halted before finalization, by failing step.",
		}, []string{"step"}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_cancelled_total",
			Help:      "Cancellation events registered.",
		}),
		corrections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "correction_letters_total",
			Help:      "Correction letters registered.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "number_ranges_invalidated_total",
			Help:      "Number ranges invalidated.",
		}),
		deferred: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_deferred_total",
			Help:      "Authorized documents whose local write was handed to reconciliation.",
		}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "emission_step_duration_seconds",
			Help:      "Time spent in each emission step.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"step", "status"}),
		fiscalCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fiscal_backend_call_duration_seconds",
			Help:      "Latency of calls to the fiscal backend.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 90},
		}, []string{"operation", "outcome"}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconciliation_queue_depth",
			Help:      "Reconciliation tasks waiting, by queue.",
		}, []string{"queue"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		r.emitted, r.aborted, r.cancelled, r.corrections, r.invalidations, r.deferred,
		r.stepDuration, r.fiscalCalls, r.queueDepth, r.httpRequests, r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Subscribe wires the recorder to the domain events.
func (r *Recorder) Subscribe(bus *event.InMemoryBus) {
	event.On(bus, func(_ context.Context, e entities.DocumentEmitted) error {
		r.emitted.WithLabelValues(string(e.Model), string(e.Status)).Inc()
		return nil
	})
	event.On(bus, func(_ context.Context, e entities.EmissionAborted) error {
		r.aborted.WithLabelValues(string(e.Step)).Inc()
		return nil
	})
	event.On(bus, func(context.Context, entities.DocumentCancelled) error {
		r.cancelled.Inc()
		return nil
	})
	event.On(bus, func(context.Context, entities.CorrectionLetterRegistered) error {
		r.corrections.Inc()
		return nil
	})
	event.On(bus, func(context.Context, entities.NumberRangeInvalidated) error {
		r.invalidations.Inc()
		return nil
	})
	event.On(bus, func(context.Context, entities.DocumentPersistDeferred) error {
		r.deferred.Inc()
		return nil
	})
	event.On(bus, func(_ context.Context, e entities.EmissionStepFinished) error {
		r.stepDuration.WithLabelValues(string(e.Step), string(e.Status)).Observe(e.Duration.Seconds())
		return nil
	})
}

// ObserveFiscalCall implements the fiscal gateway's call observer.
func (r *Recorder) ObserveFiscalCall(operation, outcome string, took time.Duration) {
	r.fiscalCalls.WithLabelValues(operation, outcome).Observe(took.Seconds())
}

func (r *Recorder) SetQueueDepth(pending, dead int64) {
	r.queueDepth.WithLabelValues("pending").Set(float64(pending))
	r.queueDepth.WithLabelValues("dead").Set(float64(dead))
}

// GinMiddleware counts requests by matched route so path parameters do not explode cardinality.
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
