package web

import (
	"errors"
	"net/http"

	"zawiya/internal/adapters/http/middleware"
	"zawiya/internal/application/orchestrators"
	"zawiya/internal/application/projections"
	"zawiya/internal/domain/catalog"
)

// handleAPIRegister handles POST /api/register.
func handleAPIRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.RegisterStudentInput
	if err := strictDecode(r, &input); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.RegisterStudentDeps{
		StudentStore: stores.StudentStore,
		Schedule:     schedule,
		QR:           qrGen,
	}
	studentID, err := orchestrators.ExecuteRegisterStudent(r.Context(), input, deps)
	if err != nil {
		var verr *orchestrators.ValidationError
		if errors.As(err, &verr) {
			apiError(w, http.StatusBadRequest, verr.Error())
			return
		}
		internalError(w, err)
		return
	}

	middleware.RegistrationsTotal.Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"message":    "Registration completed successfully",
		"student_id": studentID,
	})
}

// handleAPIContact handles POST /api/contact.
func handleAPIContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.SubmitContactInput
	if err := strictDecode(r, &input); err != nil {
		apiError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deps := orchestrators.SubmitContactDeps{
		ContactStore: stores.ContactStore,
		Sender:       emailSender,
		NotifyTo:     notifyAddress,
		From:         emailFromAddress,
	}
	if _, err := orchestrators.ExecuteSubmitContact(r.Context(), input, deps); err != nil {
		var verr *orchestrators.ValidationError
		if errors.As(err, &verr) {
			apiError(w, http.StatusBadRequest, verr.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Your message has been sent. We will get back to you soon",
	})
}

// handleAPISchedules handles GET /api/schedules.
func handleAPISchedules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schedule.List())
}

// handleAPIPrograms handles GET /api/programs.
func handleAPIPrograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Programs())
}

// handleAPIStatistics handles GET /api/statistics. When the live figures
// cannot be computed the static catalog numbers are served instead.
func handleAPIStatistics(w http.ResponseWriter, r *http.Request) {
	deps := projections.PublicStatisticsDeps{StudentStore: stores.StudentStore}
	stats, err := projections.QueryPublicStatistics(r.Context(), deps)
	if err != nil {
		writeJSON(w, http.StatusOK, catalog.FallbackStatistics())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
