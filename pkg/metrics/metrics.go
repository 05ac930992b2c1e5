// Package metrics holds the Prometheus collectors for the attendance service.
//
// Usage:
//
//	metrics.RecordClockEvent("clock_in", "LATE")
//	metrics.RecordCommandError("clock_out", "no_open_clock_in")
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClockEventsTotal counts successful attendance commands by event and resulting status.
	ClockEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_clock_events_total",
			Help: "Total number of successful attendance commands",
		},
		[]string{"event", "status"},
	)

	// CommandErrorsTotal counts rejected or failed attendance commands.
	CommandErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_command_errors_total",
			Help: "Total number of rejected or failed attendance commands",
		},
		[]string{"command", "reason"},
	)

	// JobRunsTotal counts calendar job runs by result.
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_job_runs_total",
			Help: "Total number of calendar job runs",
		},
		[]string{"result"},
	)

	// JobRecordsTotal counts records written by the calendar job.
	JobRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_job_records_total",
			Help: "Records written by the calendar job",
		},
		[]string{"kind"},
	)

	// HolidayFeedFetchesTotal counts holiday feed fetches by result.
	HolidayFeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_holiday_feed_fetches_total",
			Help: "Holiday feed fetch attempts",
		},
		[]string{"result"},
	)

	// AuthzDecisionsTotal counts authorization decisions by role and outcome.
	AuthzDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_authz_decisions_total",
			Help: "Total number of authorization decisions",
		},
		[]string{"role", "decision"},
	)

	// ApprovalRequestsTotal counts approval requests by type and outcome.
	ApprovalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attendance_approval_requests_total",
			Help: "Approval requests submitted and resolved",
		},
		[]string{"type", "outcome"},
	)

	// LoginAttemptsTotal counts login attempts by result.
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration tracks request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func RecordClockEvent(event, status string) {
	ClockEventsTotal.WithLabelValues(event, status).Inc()
}

func RecordCommandError(command, reason string) {
	CommandErrorsTotal.WithLabelValues(command, reason).Inc()
}

func RecordJobRun(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	JobRunsTotal.WithLabelValues(result).Inc()
}

func RecordJobRecords(kind string, n int) {
	if n > 0 {
		JobRecordsTotal.WithLabelValues(kind).Add(float64(n))
	}
}

func RecordHolidayFetch(result string) {
	HolidayFeedFetchesTotal.WithLabelValues(result).Inc()
}

func RecordAuthzDecision(role string, allowed bool) {
	decision := "deny"
	if allowed {
		decision = "allow"
	}
	AuthzDecisionsTotal.WithLabelValues(role, decision).Inc()
}

// RecordApproval counts an approval request event. outcome is submitted,
// approved or rejected.
func RecordApproval(kind, outcome string) {
	ApprovalRequestsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
