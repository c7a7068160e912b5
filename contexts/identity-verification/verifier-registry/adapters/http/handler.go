package httpadapter

import (
	"context"
	"log/slog"

	"veridex/contexts/identity-verification/verifier-registry/application/commands"
	"veridex/contexts/identity-verification/verifier-registry/application/queries"
	httptransport "veridex/contexts/identity-verification/verifier-registry/transport/http"
)

type Handler struct {
	Registry  commands.RegistryUseCase
	Verifiers queries.VerifierQueries
	Logger    *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, verifierID string, req httptransport.RegisterRequest) (httptransport.VerifierResponse, error) {
	verifier, err := h.Registry.Register(ctx, commands.RegisterCommand{
		VerifierID: verifierID,
		Stake:      req.Stake,
	})
	if err != nil {
		return httptransport.VerifierResponse{}, err
	}
	return httptransport.VerifierResponse{
		VerifierID:   verifier.VerifierID,
		Trusted:      verifier.Trusted,
		Stake:        verifier.Stake,
		Reputation:   verifier.Reputation,
		TotalVotes:   verifier.TotalVotes,
		CorrectVotes: verifier.CorrectVotes,
		Authorized:   true,
	}, nil
}

func (h Handler) UnstakeHandler(ctx context.Context, verifierID string, req httptransport.UnstakeRequest) (httptransport.VerifierResponse, error) {
	verifier, err := h.Registry.Unstake(ctx, commands.UnstakeCommand{
		VerifierID: verifierID,
		Amount:     req.Amount,
	})
	if err != nil {
		return httptransport.VerifierResponse{}, err
	}
	authorized, err := h.Verifiers.IsAuthorized(ctx, verifierID)
	if err != nil {
		return httptransport.VerifierResponse{}, err
	}
	return httptransport.VerifierResponse{
		VerifierID:   verifier.VerifierID,
		Trusted:      verifier.Trusted,
		Stake:        verifier.Stake,
		Reputation:   verifier.Reputation,
		TotalVotes:   verifier.TotalVotes,
		CorrectVotes: verifier.CorrectVotes,
		Authorized:   authorized,
	}, nil
}

func (h Handler) ClaimOutcomeHandler(ctx context.Context, verifierID string, req httptransport.ClaimOutcomeRequest) (httptransport.ClaimOutcomeResponse, error) {
	result, err := h.Registry.ClaimOutcome(ctx, commands.ClaimOutcomeCommand{
		VerifierID: verifierID,
		SubjectID:  req.SubjectID,
	})
	if err != nil {
		return httptransport.ClaimOutcomeResponse{}, err
	}
	return httptransport.ClaimOutcomeResponse{
		SubjectID:  req.SubjectID,
		VerifierID: verifierID,
		Correct:    result.Correct,
		Adjusted:   result.Adjusted,
		Reputation: result.Reputation,
	}, nil
}

func (h Handler) GetVerifierHandler(ctx context.Context, verifierID string) (httptransport.VerifierResponse, error) {
	verifier, err := h.Verifiers.GetVerifier(ctx, verifierID)
	if err != nil {
		return httptransport.VerifierResponse{}, err
	}
	authorized, err := h.Verifiers.IsAuthorized(ctx, verifierID)
	if err != nil {
		return httptransport.VerifierResponse{}, err
	}
	return httptransport.VerifierResponse{
		VerifierID:   verifier.VerifierID,
		Trusted:      verifier.Trusted,
		Stake:        verifier.Stake,
		Reputation:   verifier.Reputation,
		TotalVotes:   verifier.TotalVotes,
		CorrectVotes: verifier.CorrectVotes,
		Authorized:   authorized,
	}, nil
}
