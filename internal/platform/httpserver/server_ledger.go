package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	ledgererrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
	ledgerhttp "veridex/contexts/identity-verification/verification-ledger/transport/http"
)

// handleSubmitRequest godoc
// @Summary Submit an identity-data commitment for verification
// @Tags requests
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Param request body ledgerhttp.SubmitRequest true "Commitment hash"
// @Success 200 {object} ledgerhttp.RequestResponse
// @Failure 400 {object} ledgerhttp.ErrorResponse
// @Failure 409 {object} ledgerhttp.ErrorResponse
// @Failure 503 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id} [post]
func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	var req ledgerhttp.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.SubmitHandler(r.Context(), r.PathValue("subject_id"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRenewRequest godoc
// @Summary Restart the verification cycle of an expired request
// @Tags requests
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Success 200 {object} ledgerhttp.RequestResponse
// @Failure 404 {object} ledgerhttp.ErrorResponse
// @Failure 422 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id}/renew [post]
func (s *Server) handleRenewRequest(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.RenewHandler(r.Context(), r.PathValue("subject_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCastVote godoc
// @Summary Cast a verifier's score for a subject
// @Tags requests
// @Accept json
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Param X-Verifier-Id header string true "Voting verifier"
// @Param request body ledgerhttp.VoteRequest true "Score 0-100"
// @Success 200 {object} ledgerhttp.VoteResponse
// @Failure 400 {object} ledgerhttp.ErrorResponse
// @Failure 403 {object} ledgerhttp.ErrorResponse
// @Failure 409 {object} ledgerhttp.ErrorResponse
// @Failure 503 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id}/votes [post]
func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	verifierID := resolveActorID(r)
	if verifierID == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_verifier", "X-Verifier-Id header is required")
		return
	}
	var req ledgerhttp.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.ledger.Handler.VoteHandler(r.Context(), r.PathValue("subject_id"), verifierID, req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleFinalizeRequest godoc
// @Summary Fold accumulated votes into a verification outcome
// @Tags requests
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Success 200 {object} ledgerhttp.FinalizeResponse
// @Failure 404 {object} ledgerhttp.ErrorResponse
// @Failure 409 {object} ledgerhttp.ErrorResponse
// @Failure 422 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id}/finalize [post]
func (s *Server) handleFinalizeRequest(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.FinalizeHandler(r.Context(), r.PathValue("subject_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetRequest godoc
// @Summary Fetch a request with its effective status
// @Tags requests
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Success 200 {object} ledgerhttp.RequestResponse
// @Failure 404 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id} [get]
func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.StatusHandler(r.Context(), r.PathValue("subject_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleListVotes godoc
// @Summary List the votes recorded for a subject
// @Tags requests
// @Produce json
// @Param subject_id path string true "Subject identifier"
// @Success 200 {object} ledgerhttp.VoteListResponse
// @Failure 404 {object} ledgerhttp.ErrorResponse
// @Router /v1/requests/{subject_id}/votes [get]
func (s *Server) handleListVotes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.ledger.Handler.VotesHandler(r.Context(), r.PathValue("subject_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSetHalt godoc
// @Summary Toggle the emergency halt flag
// @Tags admin
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Administrator identifier"
// @Param request body ledgerhttp.HaltRequest true "Desired flag state"
// @Success 204
// @Failure 403 {object} ledgerhttp.ErrorResponse
// @Router /v1/admin/halt [post]
func (s *Server) handleSetHalt(w http.ResponseWriter, r *http.Request) {
	actorID := resolveActorID(r)
	if actorID == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	var req ledgerhttp.HaltRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.ledger.Handler.HaltHandler(r.Context(), actorID, req); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrInvalidRequest):
		writeLedgerError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidScore):
		writeLedgerError(w, http.StatusBadRequest, "invalid_score", err.Error())
	case errors.Is(err, ledgererrors.ErrUnauthorizedVerifier):
		writeLedgerError(w, http.StatusForbidden, "unauthorized_verifier", err.Error())
	case errors.Is(err, ledgererrors.ErrNotAdmin):
		writeLedgerError(w, http.StatusForbidden, "not_admin", err.Error())
	case errors.Is(err, ledgererrors.ErrRequestNotFound):
		writeLedgerError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrActiveRequest):
		writeLedgerError(w, http.StatusConflict, "active_request", err.Error())
	case errors.Is(err, ledgererrors.ErrAlreadyVoted):
		writeLedgerError(w, http.StatusConflict, "already_voted", err.Error())
	case errors.Is(err, ledgererrors.ErrAlreadyFinalized):
		writeLedgerError(w, http.StatusConflict, "already_finalized", err.Error())
	case errors.Is(err, ledgererrors.ErrInsufficientVotes):
		writeLedgerError(w, http.StatusUnprocessableEntity, "insufficient_votes", err.Error())
	case errors.Is(err, ledgererrors.ErrNotExpired):
		writeLedgerError(w, http.StatusUnprocessableEntity, "not_expired", err.Error())
	case errors.Is(err, ledgererrors.ErrEmergencyShutdown):
		writeLedgerError(w, http.StatusServiceUnavailable, "emergency_shutdown", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func resolveActorID(r *http.Request) string {
	if verifier := strings.TrimSpace(r.Header.Get("X-Verifier-Id")); verifier != "" {
		return verifier
	}
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
