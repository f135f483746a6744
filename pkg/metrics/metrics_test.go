package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 重复初始化不应panic
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, RecordsCreatedTotal)
}

func TestRecordCreated(t *testing.T) {
	InitMetrics()
	before := getCounterValue(t, RecordsCreatedTotal.WithLabelValues("author"))

	RecordCreated("author")
	RecordCreated("author")
	RecordCreated("bookinstance")

	assert.Equal(t, before+2, getCounterValue(t, RecordsCreatedTotal.WithLabelValues("author")))
}

func TestRecordAuthorDelete(t *testing.T) {
	InitMetrics()
	refused := getCounterValue(t, AuthorDeleteRefusedTotal)
	deleted := getCounterValue(t, AuthorDeletedTotal)

	RecordAuthorDeleteRefused()
	RecordAuthorDeleted()
	RecordAuthorDeleted()

	assert.Equal(t, refused+1, getCounterValue(t, AuthorDeleteRefusedTotal))
	assert.Equal(t, deleted+2, getCounterValue(t, AuthorDeletedTotal))
}

func TestHTTPMetrics(t *testing.T) {
	InitMetrics()
	labels := map[string]string{"method": "GET", "path": "/catalog/authors", "status": "200"}
	before := getCounterValue(t, HTTPRequestsTotal.With(labels))

	IncGauge(HTTPRequestsInProgress)
	IncCounterVec(HTTPRequestsTotal, labels)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/catalog/authors"}, 0.05)
	DecGauge(HTTPRequestsInProgress)

	assert.Equal(t, before+1, getCounterValue(t, HTTPRequestsTotal.With(labels)))
	assert.Zero(t, getGaugeValue(t, HTTPRequestsInProgress))

	var metric dto.Metric
	h := HTTPRequestDuration.With(map[string]string{"method": "GET", "path": "/catalog/authors"})
	require.NoError(t, h.(prometheus.Histogram).Write(&metric))
	assert.GreaterOrEqual(t, metric.Histogram.GetSampleCount(), uint64(1))
}

// 辅助函数：获取Counter值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric), "读取Counter值失败")
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, gauge.Write(&metric), "读取Gauge值失败")
	return metric.Gauge.GetValue()
}
