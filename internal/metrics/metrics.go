// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層やワーカーから利用する。
type MetricsCollector interface {
	RecordLoginAttempt(result string)
	RecordAssignment(action string)
	RecordScoreComputation()
	RecordScoreLatency(duration time.Duration)
	RecordHTTPStatus(statusCode int)
	RecordSessionsPurged(count int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	loginAttempts  *prometheus.CounterVec
	assignments    *prometheus.CounterVec
	scoreComputed  prometheus.Counter
	scoreLatency   prometheus.Histogram
	httpStatus     *prometheus.CounterVec
	sessionsPurged prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetman_login_attempts_total",
			Help: "ログイン試行の結果別合計数",
		}, []string{"result"}),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetman_assignments_total",
			Help: "貨物割当操作の種別別合計数",
		}, []string{"action"}),
		scoreComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetman_score_computations_total",
			Help: "適合スコア計算の合計数",
		}),
		scoreLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fleetman_score_latency_seconds",
			Help:    "候補ランキング計算のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetman_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		sessionsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetman_sessions_purged_total",
			Help: "クリーンアップで削除された期限切れセッションの合計数",
		}),
	}

	reg.MustRegister(
		c.loginAttempts,
		c.assignments,
		c.scoreComputed,
		c.scoreLatency,
		c.httpStatus,
		c.sessionsPurged,
	)

	return c
}

// RecordLoginAttempt はログイン試行を結果（success / failure）別に記録する。
func (c *Collector) RecordLoginAttempt(result string) {
	c.loginAttempts.WithLabelValues(result).Inc()
}

// RecordAssignment は割当操作を種別（assign / unassign）別に記録する。
func (c *Collector) RecordAssignment(action string) {
	c.assignments.WithLabelValues(action).Inc()
}

// RecordScoreComputation はスコア計算1回を記録する。
func (c *Collector) RecordScoreComputation() {
	c.scoreComputed.Inc()
}

// RecordScoreLatency は候補ランキング計算のレイテンシを記録する。
func (c *Collector) RecordScoreLatency(duration time.Duration) {
	c.scoreLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordSessionsPurged は削除された期限切れセッション数を記録する。
func (c *Collector) RecordSessionsPurged(count int) {
	c.sessionsPurged.Add(float64(count))
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
