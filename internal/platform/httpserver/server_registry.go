package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	registryerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
	registryhttp "veridex/contexts/identity-verification/verifier-registry/transport/http"
)

// handleRegisterVerifier godoc
// @Summary Register or re-register a verifier
// @Tags verifiers
// @Accept json
// @Produce json
// @Param verifier_id path string true "Verifier identifier"
// @Param request body registryhttp.RegisterRequest true "Stake amount"
// @Success 200 {object} registryhttp.VerifierResponse
// @Failure 400 {object} registryhttp.ErrorResponse
// @Failure 422 {object} registryhttp.ErrorResponse
// @Router /v1/verifiers/{verifier_id}/register [post]
func (s *Server) handleRegisterVerifier(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.registry.Handler.RegisterHandler(r.Context(), r.PathValue("verifier_id"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleUnstakeVerifier godoc
// @Summary Withdraw part of a verifier's stake
// @Tags verifiers
// @Accept json
// @Produce json
// @Param verifier_id path string true "Verifier identifier"
// @Param request body registryhttp.UnstakeRequest true "Withdrawal amount"
// @Success 200 {object} registryhttp.VerifierResponse
// @Failure 404 {object} registryhttp.ErrorResponse
// @Failure 422 {object} registryhttp.ErrorResponse
// @Router /v1/verifiers/{verifier_id}/unstake [post]
func (s *Server) handleUnstakeVerifier(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.UnstakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.registry.Handler.UnstakeHandler(r.Context(), r.PathValue("verifier_id"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleClaimOutcome godoc
// @Summary Claim the reputation adjustment for a finalized vote
// @Tags verifiers
// @Accept json
// @Produce json
// @Param verifier_id path string true "Verifier identifier"
// @Param request body registryhttp.ClaimOutcomeRequest true "Subject of the claimed vote"
// @Success 200 {object} registryhttp.ClaimOutcomeResponse
// @Failure 404 {object} registryhttp.ErrorResponse
// @Failure 409 {object} registryhttp.ErrorResponse
// @Failure 422 {object} registryhttp.ErrorResponse
// @Router /v1/verifiers/{verifier_id}/claims [post]
func (s *Server) handleClaimOutcome(w http.ResponseWriter, r *http.Request) {
	var req registryhttp.ClaimOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.registry.Handler.ClaimOutcomeHandler(r.Context(), r.PathValue("verifier_id"), req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetVerifier godoc
// @Summary Fetch a verifier's profile
// @Tags verifiers
// @Produce json
// @Param verifier_id path string true "Verifier identifier"
// @Success 200 {object} registryhttp.VerifierResponse
// @Failure 404 {object} registryhttp.ErrorResponse
// @Router /v1/verifiers/{verifier_id} [get]
func (s *Server) handleGetVerifier(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetVerifierHandler(r.Context(), r.PathValue("verifier_id"))
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrInvalidRequest):
		writeRegistryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, registryerrors.ErrVerifierNotFound):
		writeRegistryError(w, http.StatusNotFound, "verifier_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrVoteNotFound):
		writeRegistryError(w, http.StatusNotFound, "vote_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrRequestNotFound):
		writeRegistryError(w, http.StatusNotFound, "request_not_found", err.Error())
	case errors.Is(err, registryerrors.ErrInsufficientStake):
		writeRegistryError(w, http.StatusUnprocessableEntity, "insufficient_stake", err.Error())
	case errors.Is(err, registryerrors.ErrOutcomeNotFinal):
		writeRegistryError(w, http.StatusUnprocessableEntity, "outcome_not_final", err.Error())
	case errors.Is(err, registryerrors.ErrAlreadyClaimed):
		writeRegistryError(w, http.StatusConflict, "already_claimed", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
