package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes attaches all application routes to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/register", handleRegisterPage)
	mux.HandleFunc("/contact", handleContactPage)
	mux.HandleFunc("/structure", handleStructurePage)
	mux.HandleFunc("/schedule/", handleSchedulePage)

	// Admin
	mux.HandleFunc("/admin", handleAdminRedirect)
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.HandleFunc("/admin/logout", handleAdminLogout)
	mux.HandleFunc("/admin/dashboard", requireAdmin(handleAdminDashboard))
	mux.HandleFunc("/admin/update-schedule", requireAdmin(handleUpdateSchedule))
	mux.HandleFunc("/admin/export-students", requireAdmin(handleExportStudents))
	mux.HandleFunc("/admin/get-emails", requireAdmin(handleGetEmails))

	// JSON APIs
	mux.HandleFunc("/api/register", handleAPIRegister)
	mux.HandleFunc("/api/contact", handleAPIContact)
	mux.HandleFunc("/api/schedules", handleAPISchedules)
	mux.HandleFunc("/api/programs", handleAPIPrograms)
	mux.HandleFunc("/api/statistics", handleAPIStatistics)

	// Operational endpoints
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", handleHealthz)
}
