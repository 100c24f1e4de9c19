package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type ProfileMetrics struct {
	UsersTotal         prometheus.Gauge
	CustomersTotal     prometheus.Gauge
	BankEmployeesTotal prometheus.Gauge
	RegistrationsTotal prometheus.Counter
}

var (
	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maverick_bank_http_requests_total",
				Help: "Total number of HTTP requests received.",
			},
			[]string{"method", "path", "code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "maverick_bank_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "code"},
		),
	}

	Profiles = ProfileMetrics{
		UsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "maverick_bank_users_total",
				Help: "Current number of registered user accounts.",
			},
		),
		CustomersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "maverick_bank_customers_total",
				Help: "Current number of customer profiles.",
			},
		),
		BankEmployeesTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "maverick_bank_bank_employees_total",
				Help: "Current number of bank employee profiles.",
			},
		),
		RegistrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "maverick_bank_user_registrations_total",
				Help: "Total number of successful user registrations.",
			},
		),
	}
)

func RecordHTTPRequest(method, path, code string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func RecordUserRegistered() {
	Profiles.RegistrationsTotal.Inc()
}

func SetProfileCounts(users, customers, employees int64) {
	Profiles.UsersTotal.Set(float64(users))
	Profiles.CustomersTotal.Set(float64(customers))
	Profiles.BankEmployeesTotal.Set(float64(employees))
}
