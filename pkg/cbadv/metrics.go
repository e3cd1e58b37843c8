package cbadv

import (
	"strconv"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Order Submission Metrics
	orderSubmissionLatencyMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cbadv_order_submission_duration_milliseconds",
			Help:    "Order submission duration from request to response in milliseconds (successful requests only)",
			Buckets: prometheus.LinearBuckets(50, 25, 19), // 50ms to ~500ms
		}, []string{"product_id", "side", "type"},
	)

	orderSubmissionTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_order_submission_total",
			Help: "Total number of order submissions",
		}, []string{"product_id", "side", "type", "success"},
	)

	orderSubmissionErrorCodeMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_order_submission_error_codes_total",
			Help: "Total number of order submission errors by status code",
		}, []string{"product_id", "side", "type", "status_code"},
	)

	// Order Cancel Metrics
	orderCancelLatencyMetrics = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cbadv_order_cancel_latency_milliseconds",
			Help:    "Time from cancel request to cancel confirmation (successful requests only)",
			Buckets: prometheus.LinearBuckets(50, 25, 19), // 50ms to ~500ms
		},
	)

	orderCancelTotalMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_order_cancel_total",
			Help: "Total number of order cancellation attempts",
		}, []string{"success"},
	)

	orderCancelErrorCodeMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_order_cancel_error_codes_total",
			Help: "Total number of order cancellation errors by status code",
		}, []string{"status_code"},
	)

	// Stream Metrics
	streamFramesParsedMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_stream_frames_parsed_total",
			Help: "Total number of stream frames parsed and dispatched, by channel",
		}, []string{"channel"},
	)

	streamFramesDroppedMetrics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cbadv_stream_frames_dropped_total",
			Help: "Total number of stream frames dropped, by reason",
		}, []string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		orderSubmissionLatencyMetrics,
		orderSubmissionTotalMetrics,
		orderSubmissionErrorCodeMetrics,
		orderCancelLatencyMetrics,
		orderCancelTotalMetrics,
		orderCancelErrorCodeMetrics,
		streamFramesParsedMetrics,
		streamFramesDroppedMetrics,
	)
}

// Helper function to record successful order submission metrics
func recordSuccessOrderSubmissionMetrics(params SubmitOrderParams, duration time.Duration) {
	orderSubmissionLatencyMetrics.With(prometheus.Labels{
		"product_id": params.ProductID,
		"side":       string(params.Side),
		"type":       string(params.Type),
	}).Observe(float64(duration.Milliseconds()))

	orderSubmissionTotalMetrics.With(prometheus.Labels{
		"product_id": params.ProductID,
		"side":       string(params.Side),
		"type":       string(params.Type),
		"success":    "true",
	}).Inc()
}

// Helper function to record failed order submission metrics
func recordFailedOrderSubmissionMetrics(params SubmitOrderParams, err error) {
	var errResp *requestgen.ErrResponse
	if errors.As(err, &errResp) {
		orderSubmissionErrorCodeMetrics.With(prometheus.Labels{
			"product_id":  params.ProductID,
			"side":        string(params.Side),
			"type":        string(params.Type),
			"status_code": strconv.Itoa(errResp.StatusCode),
		}).Inc()
	}
	orderSubmissionTotalMetrics.With(prometheus.Labels{
		"product_id": params.ProductID,
		"side":       string(params.Side),
		"type":       string(params.Type),
		"success":    "false",
	}).Inc()
}

// Helper function to record order cancellation metrics
func recordSuccessOrderCancelMetrics(duration time.Duration) {
	orderCancelLatencyMetrics.Observe(float64(duration.Milliseconds()))
	orderCancelTotalMetrics.With(prometheus.Labels{
		"success": "true",
	}).Inc()
}

func recordFailedOrderCancelMetrics(err error) {
	var errResp *requestgen.ErrResponse
	if errors.As(err, &errResp) {
		orderCancelErrorCodeMetrics.With(prometheus.Labels{
			"status_code": strconv.Itoa(errResp.StatusCode),
		}).Inc()
	}
	orderCancelTotalMetrics.With(prometheus.Labels{
		"success": "false",
	}).Inc()
}
