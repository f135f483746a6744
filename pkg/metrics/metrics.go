// Package metrics 基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：由中间件在每个请求结束时记录（请求数、耗时、处理中请求数）
//   - 业务指标：由用例在关键节点记录（新建记录、作者删除被拒绝、表单校验失败）
//
// 命名规范：
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 标签只使用有限取值（method、status、entity），不要用ID作为标签
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.RecordCreated("author")
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 保证指标只注册一次（重复注册会panic）
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/catalog/author/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// RecordsCreatedTotal 新建记录总数
	// 标签：entity（author/bookinstance）
	RecordsCreatedTotal *prometheus.CounterVec

	// AuthorDeleteRefusedTotal 作者仍有图书、删除被拒绝的次数
	AuthorDeleteRefusedTotal prometheus.Counter

	// AuthorDeletedTotal 作者删除成功次数
	AuthorDeletedTotal prometheus.Counter

	// FormValidationFailuresTotal 表单校验失败次数
	// 标签：form（author/bookinstance）
	FormValidationFailuresTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry
// 可重复调用，只有第一次生效
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		RecordsCreatedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_records_created_total",
				Help: "新建记录总数",
			},
			[]string{"entity"},
		)

		AuthorDeleteRefusedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "author_delete_refused_total",
				Help: "作者仍有图书导致删除被拒绝的次数",
			},
		)

		AuthorDeletedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "author_deleted_total",
				Help: "作者删除成功次数",
			},
		)

		FormValidationFailuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "form_validation_failures_total",
				Help: "表单校验失败次数",
			},
			[]string{"form"},
		)
	})
}

// RecordCreated 记录一次新建
func RecordCreated(entity string) {
	InitMetrics()
	RecordsCreatedTotal.WithLabelValues(entity).Inc()
}

// RecordAuthorDeleteRefused 记录一次被拒绝的作者删除
func RecordAuthorDeleteRefused() {
	InitMetrics()
	AuthorDeleteRefusedTotal.Inc()
}

// RecordAuthorDeleted 记录一次成功的作者删除
func RecordAuthorDeleted() {
	InitMetrics()
	AuthorDeletedTotal.Inc()
}

// RecordValidationFailure 记录一次表单校验失败
func RecordValidationFailure(form string) {
	InitMetrics()
	FormValidationFailuresTotal.WithLabelValues(form).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
