package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP handlers by method and route
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// Total HTTP requests by method, route and status code
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// Total print orders created
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "print_orders_created_total",
		Help: "Total number of print orders created",
	})

	// OTP draws that collided with an active order and were retried
	OTPRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "print_otp_retries_total",
		Help: "Total number of OTP draws retried after a collision",
	})

	// Order creations aborted because no unique OTP was found in time
	OTPExhausted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "print_otp_exhausted_total",
		Help: "Total number of order creations aborted by OTP exhaustion",
	})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		OrdersCreated,
		OTPRetries,
		OTPExhausted,
	)
}
