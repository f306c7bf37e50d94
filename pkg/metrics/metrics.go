// Package metrics 基于Prometheus的指标收集
//
// 指标分三类：
// 1. HTTP指标：请求总数、耗时分布、并发数（由middleware.Metrics采集）
// 2. 业务指标：图书变更、购物车加书、缓存命中
// 3. 基础设施指标：熔断器状态、消息发布结果
//
// 所有指标注册到prometheus默认Registry，由/metrics端点暴露
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/api/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BookMutationsTotal 图书变更次数
	// 标签：action（created/updated/deleted）
	BookMutationsTotal *prometheus.CounterVec

	// CartBooksAddedTotal 加入购物车的次数
	CartBooksAddedTotal prometheus.Counter

	// CacheRequestsTotal 缓存访问次数
	// 标签：cache（detail/publishers）、result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// MessagesPublishedTotal 消息发布次数
	// 标签：routing_key、result（success/failure/rejected）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标，可重复调用
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookstore_http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookstore_http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BookMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_book_mutations_total",
				Help: "图书变更次数",
			},
			[]string{"action"},
		)

		CartBooksAddedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookstore_cart_books_added_total",
				Help: "加入购物车次数",
			},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_cache_requests_total",
				Help: "缓存访问次数",
			},
			[]string{"cache", "result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bookstore_circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_messages_published_total",
				Help: "消息发布次数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// RecordBookMutation 记录一次图书变更
func RecordBookMutation(action string) {
	InitMetrics()
	BookMutationsTotal.WithLabelValues(action).Inc()
}

// RecordCartBookAdded 记录一次加入购物车
func RecordCartBookAdded() {
	InitMetrics()
	CartBooksAddedTotal.Inc()
}

// RecordCache 记录一次缓存访问
func RecordCache(cache, result string) {
	InitMetrics()
	CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// RecordPublish 记录一次消息发布
func RecordPublish(routingKey, result string) {
	InitMetrics()
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// SetCircuitBreakerState 更新熔断器状态
func SetCircuitBreakerState(name string, state int) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
