// Package metrics exposes the portal's Prometheus instrumentation.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RegistrationsTotal counts committed registrations per course.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coursereg_registrations_total",
		Help: "Number of committed course registrations.",
	}, []string{"course_id"})

	// RegistrationFailuresTotal counts submissions the store rejected.
	RegistrationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursereg_registration_failures_total",
		Help: "Number of failed registration submissions.",
	})

	// SessionsOpenedTotal counts workflow sessions opened.
	SessionsOpenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursereg_sessions_opened_total",
		Help: "Number of registration sessions opened.",
	})

	// SessionsActive tracks currently open workflow sessions.
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "coursereg_sessions_active",
		Help: "Number of registration sessions currently open.",
	})

	// FilesRejectedTotal counts attachments refused by the size screen.
	FilesRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursereg_files_rejected_total",
		Help: "Number of uploaded files rejected during ingestion.",
	})
)

// Handler returns the scrape endpoint handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
