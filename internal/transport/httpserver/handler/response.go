package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	catalogdomain "progym-go/internal/domain/catalog"
	plandomain "progym-go/internal/domain/plan"
	profiledomain "progym-go/internal/domain/profile"
	sessiondomain "progym-go/internal/domain/session"
	"progym-go/internal/transport/httpserver/middleware"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid user id")
		return "", false
	}
	return user.ID, true
}

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{profiledomain.ErrInvalidProfile, http.StatusUnprocessableEntity, "invalid_profile"},
	{plandomain.ErrIncompleteProfile, http.StatusUnprocessableEntity, "incomplete_profile"},
	{sessiondomain.ErrDayIndexOutOfRange, http.StatusUnprocessableEntity, "day_index_out_of_range"},
	{sessiondomain.ErrInvalidSetResult, http.StatusUnprocessableEntity, "invalid_set_result"},
	{catalogdomain.ErrRestrictionRuleUnknown, http.StatusUnprocessableEntity, "unknown_restriction_rule"},
	{catalogdomain.ErrMuscleFocusUnknown, http.StatusUnprocessableEntity, "unknown_muscle_focus"},

	{sessiondomain.ErrActiveSessionExists, http.StatusConflict, "active_session_exists"},
	{sessiondomain.ErrSetNotPending, http.StatusConflict, "set_not_pending"},
	{sessiondomain.ErrSessionNotActive, http.StatusConflict, "session_not_active"},
	{sessiondomain.ErrNoActiveSession, http.StatusConflict, "no_active_session"},

	{profiledomain.ErrProfileNotFound, http.StatusNotFound, "profile_not_found"},
	{plandomain.ErrPlanNotFound, http.StatusNotFound, "plan_not_found"},
	{sessiondomain.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
	{sessiondomain.ErrSetNotFound, http.StatusNotFound, "set_not_found"},

	{sessiondomain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// writeServiceError maps a domain error to its status. Unknown errors are logged and hidden.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	requestID := chimw.GetReqID(r.Context())
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.err) {
			h.log.BusinessError(op, err, "request_id", requestID)
			writeError(w, mapping.status, mapping.code, err.Error())
			return
		}
	}

	h.log.InternalError(op, err, "request_id", requestID)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
