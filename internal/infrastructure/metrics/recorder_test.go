package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/event"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsDomainEvents(t *testing.T) {
	r := NewRecorder()
	bus := event.NewInMemoryBus(nil)
	r.Subscribe(bus)

	ctx := context.Background()
	bus.Publish(ctx,
		entities.DocumentEmitted{Model: entities.DocumentModelNFCe, Status: entities.DocumentStatusAutorizada},
		entities.DocumentEmitted{Model: entities.DocumentModelNFCe, Status: entities.DocumentStatusAutorizada},
		entities.EmissionAborted{Step: entities.StepSefazSubmission},
		entities.DocumentCancelled{},
		entities.CorrectionLetterRegistered{},
		entities.NumberRangeInvalidated{},
		entities.DocumentPersistDeferred{},
		entities.EmissionStepFinished{Step: entities.StepSefazSubmission, Status: entities.StepStatusSuccess, Duration: 2 * time.Second},
	)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.emitted.WithLabelValues("65", "autorizada")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.aborted.WithLabelValues(string(entities.StepSefazSubmission))))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cancelled))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.corrections))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.invalidations))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.deferred))
	assert.Equal(t, 1, testutil.CollectAndCount(r.stepDuration))
}

func TestRecorder_FiscalCallsAndQueueDepth(t *testing.T) {
	r := NewRecorder()
	r.ObserveFiscalCall("emit", "ok", 300*time.Millisecond)
	r.ObserveFiscalCall("emit", "error", time.Second)
	r.SetQueueDepth(4, 1)

	assert.Equal(t, 2, testutil.CollectAndCount(r.fiscalCalls))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.queueDepth.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.queueDepth.WithLabelValues("dead")))
}

func TestRecorder_GinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	router := gin.New()
	router.Use(r.GinMiddleware())
	router.GET("/v1/documents/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", gin.WrapH(r.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/documents/"+id, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/v1/documents/:id", "204")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "nfe_http_requests_total"))
}
