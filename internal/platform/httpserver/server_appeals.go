package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	appealerrors "veridex/contexts/identity-verification/appeal-resolver/domain/errors"
	appealhttp "veridex/contexts/identity-verification/appeal-resolver/transport/http"
)

// handleFileAppeal godoc
// @Summary File an appeal against a rejected verification
// @Tags appeals
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Param X-User-Id header string true "Calling subject"
// @Param request body appealhttp.FileAppealRequest true "Reason commitment"
// @Success 200 {object} appealhttp.AppealResponse
// @Failure 403 {object} appealhttp.ErrorResponse
// @Failure 409 {object} appealhttp.ErrorResponse
// @Failure 422 {object} appealhttp.ErrorResponse
// @Router /v1/appeals/{subject_id} [post]
func (s *Server) handleFileAppeal(w http.ResponseWriter, r *http.Request) {
	callerID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if callerID == "" {
		writeAppealError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req appealhttp.FileAppealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppealError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.appeals.Handler.FileHandler(r.Context(), callerID, r.PathValue("subject_id"), req)
	if err != nil {
		writeAppealDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleProcessAppeal godoc
// @Summary Approve or dismiss an open appeal
// @Tags appeals
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Param X-User-Id header string true "Administrator identifier"
// @Param request body appealhttp.ProcessAppealRequest true "Resolution decision"
// @Success 200 {object} appealhttp.AppealResponse
// @Failure 403 {object} appealhttp.ErrorResponse
// @Failure 404 {object} appealhttp.ErrorResponse
// @Failure 409 {object} appealhttp.ErrorResponse
// @Router /v1/appeals/{subject_id}/process [post]
func (s *Server) handleProcessAppeal(w http.ResponseWriter, r *http.Request) {
	actorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if actorID == "" {
		writeAppealError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req appealhttp.ProcessAppealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppealError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.appeals.Handler.ProcessHandler(r.Context(), actorID, r.PathValue("subject_id"), req)
	if err != nil {
		writeAppealDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetAppeal godoc
// @Summary Fetch a subject's appeal
// @Tags appeals
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Success 200 {object} appealhttp.AppealResponse
// @Failure 404 {object} appealhttp.ErrorResponse
// @Router /v1/appeals/{subject_id} [get]
func (s *Server) handleGetAppeal(w http.ResponseWriter, r *http.Request) {
	resp, err := s.appeals.Handler.GetAppealHandler(r.Context(), r.PathValue("subject_id"))
	if err != nil {
		writeAppealDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAppealDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appealerrors.ErrInvalidRequest):
		writeAppealError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, appealerrors.ErrNotSubject):
		writeAppealError(w, http.StatusForbidden, "not_subject", err.Error())
	case errors.Is(err, appealerrors.ErrNotAdmin):
		writeAppealError(w, http.StatusForbidden, "not_admin", err.Error())
	case errors.Is(err, appealerrors.ErrRequestNotFound):
		writeAppealError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, appealerrors.ErrAppealNotFound):
		writeAppealError(w, http.StatusNotFound, "appeal_not_found", err.Error())
	case errors.Is(err, appealerrors.ErrAppealActive):
		writeAppealError(w, http.StatusConflict, "appeal_active", err.Error())
	case errors.Is(err, appealerrors.ErrAppealClosed):
		writeAppealError(w, http.StatusConflict, "appeal_closed", err.Error())
	case errors.Is(err, appealerrors.ErrCannotAppeal):
		writeAppealError(w, http.StatusUnprocessableEntity, "cannot_appeal", err.Error())
	default:
		writeAppealError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAppealError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, appealhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
