package middleware

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("生成新ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/", nil)
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("沿用上游ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {"upstream-1"}})
		assert.Equal(t, "upstream-1", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "upstream-1", w.Body.String())
	})
}

func errorEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("error").Parse(`{{.status}}|{{.message}}`)))
	r.Use(ErrorHandler(log))
	return r
}

func TestErrorHandler_RendersStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := errorEngine(zap.New(core))
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(author.ErrAuthorNotFound) })
	r.GET("/stub", func(c *gin.Context) { _ = c.Error(apperrors.NotImplemented("Author update GET")) })
	r.GET("/db", func(c *gin.Context) { _ = c.Error(apperrors.WrapDB(assert.AnError, "查询作者失败")) })

	w := serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404|Author not found", w.Body.String())

	w = serve(r, http.MethodGet, "/stub", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "501|NOT IMPLEMENTED: Author update GET", w.Body.String())
	assert.Zero(t, logs.Len(), "未实现不算故障")

	w = serve(r, http.MethodGet, "/db", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := errorEngine(zap.New(core))
	r.GET("/api", func(c *gin.Context) {
		response.Error(c, apperrors.WrapDB(assert.AnError, "统计失败"))
	})

	w := serve(r, http.MethodGet, "/api", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"code":50001`)
	assert.Equal(t, 1, logs.Len())
}

func TestLogger_WritesAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(r, http.MethodGet, "/ok?x=1", http.Header{RequestIDHeader: {"rid-1"}})
	serve(r, http.MethodGet, "/boom", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "rid-1", ok["request_id"])
	assert.Equal(t, "/ok", ok["path"])
	assert.Equal(t, "x=1", ok["query"])
	assert.EqualValues(t, http.StatusNoContent, ok["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

// value 读取Counter/Gauge的当前值
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.Counter.GetValue()
	}
	return out.Gauge.GetValue()
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/catalog/author/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := func() float64 {
		return value(t, metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/catalog/author/:id", "200"))
	}
	before := counter()

	serve(r, http.MethodGet, "/catalog/author/1", nil)
	serve(r, http.MethodGet, "/catalog/author/2", nil)

	assert.Equal(t, before+2, counter())
	assert.Zero(t, value(t, metrics.HTTPRequestsInProgress))
}

func TestTracing_ServerSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	r := gin.New()
	r.Use(RequestID(), Tracing())
	r.GET("/catalog/book/:id", func(c *gin.Context) {
		_ = c.Error(apperrors.WrapDB(assert.AnError, "查询图书失败"))
		c.Status(http.StatusInternalServerError)
	})

	serve(r, http.MethodGet, "/catalog/book/7", nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /catalog/book/:id", spans[0].Name())
	assert.Len(t, spans[0].Events(), 1, "错误作为事件记录")

	var status int64
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "http.response.status_code" {
			status = kv.Value.AsInt64()
		}
	}
	assert.EqualValues(t, http.StatusInternalServerError, status)
}
