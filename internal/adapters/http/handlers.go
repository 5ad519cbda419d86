package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"zawiya/internal/adapters/http/middleware"
	studentStore "zawiya/internal/adapters/storage/student"
	"zawiya/internal/application/orchestrators"
	"zawiya/internal/application/projections"
	"zawiya/internal/domain/catalog"
	"zawiya/internal/domain/student"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// apiError writes the uniform failure envelope used by every JSON route.
func apiError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	username := ""
	if ok {
		username = sess.Username
	}

	funcMap := template.FuncMap{
		"currentUser": func() string { return username },
		"isLoggedIn":  func() bool { return ok },
		"csrfToken":   func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// redirectWithFlash redirects to target carrying a flash message in the query.
// The page layout reads and displays it.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?flash="+template.URLQueryEscaper(message), http.StatusSeeOther)
}

// handleIndex handles GET / with the programme list and headline statistics.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	stats := catalog.FallbackStatistics()
	renderTemplate(w, r, "index.html", map[string]any{
		"Programs":   catalog.Programs(),
		"Statistics": stats,
		"Flash":      r.URL.Query().Get("flash"),
	})
}

// handleRegisterPage handles GET /register.
func handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "register.html", map[string]any{
		"Programs": catalog.Programs(),
	})
}

// handleContactPage handles GET /contact.
func handleContactPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "contact.html", nil)
}

// handleStructurePage handles GET /structure.
func handleStructurePage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "structure.html", map[string]any{
		"Structure": catalog.Structure(),
	})
}

// handleSchedulePage handles GET /schedule/{studentId}. Unknown IDs go back
// to the home page with a flash message rather than a bare 404.
func handleSchedulePage(w http.ResponseWriter, r *http.Request) {
	studentID := strings.TrimPrefix(r.URL.Path, "/schedule/")
	if studentID == "" || strings.Contains(studentID, "/") {
		http.NotFound(w, r)
		return
	}
	// Malformed IDs never hit the store
	if !student.ValidID(studentID) {
		redirectWithFlash(w, r, "/", "Invalid student ID")
		return
	}

	deps := projections.StudentScheduleDeps{
		StudentStore: stores.StudentStore,
		Schedule:     schedule,
	}
	result, err := projections.QueryStudentSchedule(r.Context(), studentID, deps)
	if err != nil {
		if errors.Is(err, projections.ErrStudentNotFound) {
			redirectWithFlash(w, r, "/", "Invalid student ID")
			return
		}
		slog.Error("schedule_page_failed", "student_id", studentID, "error", err)
		redirectWithFlash(w, r, "/", "Could not load the class schedule")
		return
	}

	renderTemplate(w, r, "schedule.html", map[string]any{
		"Student":   result.Student,
		"Schedules": result.Entries,
		"QRCodes":   result.QRCodes,
		"Programs":  catalog.Programs(),
	})
}

// handleAdminRedirect sends GET /admin to the login page.
func handleAdminRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// handleAdminLogin handles GET (form) and POST (authenticate, JSON) for /admin/login.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		// If already logged in, straight to the dashboard
		if middleware.IsLoggedIn(r.Context()) {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "admin_login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == http.MethodPost {
		var input orchestrators.LoginInput
		if err := strictDecode(r, &input); err != nil {
			apiError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		deps := orchestrators.LoginDeps{Credentials: verifier}
		if err := orchestrators.ExecuteLogin(r.Context(), input, deps); err != nil {
			apiError(w, http.StatusUnauthorized, "incorrect username or password")
			return
		}

		token, err := sessions.Create(input.Username)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdminLogout handles GET /admin/logout.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	redirectWithFlash(w, r, "/admin/login", "Logged out")
}

// requireAdmin gates a handler behind a valid session. HTML page requests are
// redirected to the login form; everything else gets a 401 JSON envelope.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IsLoggedIn(r.Context()) {
			if r.Method == http.MethodGet && isHTMLRequest(r) {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			apiError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next(w, r)
	}
}

// handleAdminDashboard handles GET /admin/dashboard.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	deps := projections.DashboardStatsDeps{StudentStore: stores.StudentStore}
	result, err := projections.QueryDashboardStats(r.Context(), deps)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin_dashboard.html", map[string]any{
		"Students":  result.Students,
		"Total":     result.Total,
		"Active":    result.Active,
		"Programs":  result.Programs,
		"Recent":    result.Recent,
		"Schedules": schedule.List(),
		"CSRFToken": csrf.Token(r),
	})
}

// handleUpdateSchedule handles POST /admin/update-schedule.
func handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		ID       json.Number `json:"id"`
		MeetLink string      `json:"meet_link"`
	}
	if err := strictDecode(r, &body); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, err := body.ID.Int64()
	if err != nil {
		apiError(w, http.StatusBadRequest, "invalid schedule id")
		return
	}

	input := orchestrators.UpdateScheduleLinkInput{ID: int(id), MeetLink: body.MeetLink}
	deps := orchestrators.UpdateScheduleLinkDeps{Schedule: schedule, QR: qrGen}
	filename, err := orchestrators.ExecuteUpdateScheduleLink(r.Context(), input, deps)
	if err != nil {
		var verr *orchestrators.ValidationError
		switch {
		case errors.As(err, &verr):
			apiError(w, http.StatusBadRequest, verr.Error())
		case errors.Is(err, catalog.ErrEntryNotFound):
			apiError(w, http.StatusNotFound, "class not found")
		default:
			internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Link updated and a new QR code generated",
		"qr_code": filename,
	})
}

// handleExportStudents handles GET /admin/export-students. Both backends
// export through the same canonical workbook rendering.
func handleExportStudents(w http.ResponseWriter, r *http.Request) {
	records, err := stores.StudentStore.All(r.Context())
	if err != nil {
		redirectWithFlash(w, r, "/admin/dashboard", "Export failed")
		return
	}
	workbook, err := studentStore.Workbook(records)
	if err != nil {
		redirectWithFlash(w, r, "/admin/dashboard", "Export failed")
		return
	}

	filename := fmt.Sprintf("students_export_%s.xlsx", timeNow().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := workbook.Write(w); err != nil {
		slog.Error("export_write_failed", "error", err)
	}
}

// handleHealthz reports liveness, checking that the storage backend answers.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if _, err := stores.StudentStore.Count(r.Context()); err != nil {
		slog.Error("healthz_student_store", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}
	if _, err := stores.ContactStore.Count(r.Context()); err != nil {
		slog.Error("healthz_contact_store", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleGetEmails handles POST /admin/get-emails.
func handleGetEmails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Program string `json:"program"`
	}
	if err := strictDecode(r, &body); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Program != "" && body.Program != "all" && !catalog.ValidProgramID(body.Program) {
		apiError(w, http.StatusBadRequest, "unknown program")
		return
	}

	input := orchestrators.ExtractEmailsInput{Program: body.Program}
	deps := orchestrators.ExtractEmailsDeps{StudentStore: stores.StudentStore}
	emails, err := orchestrators.ExecuteExtractEmails(r.Context(), input, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"emails":  emails,
		"count":   len(emails),
	})
}
