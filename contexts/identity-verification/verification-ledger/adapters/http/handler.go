package httpadapter

import (
	"context"
	"log/slog"

	"veridex/contexts/identity-verification/verification-ledger/application/commands"
	"veridex/contexts/identity-verification/verification-ledger/application/queries"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	httptransport "veridex/contexts/identity-verification/verification-ledger/transport/http"
)

type Handler struct {
	Ledger commands.LedgerUseCase
	Status queries.StatusUseCase
	Logger *slog.Logger
}

func (h Handler) SubmitHandler(ctx context.Context, subjectID string, req httptransport.SubmitRequest) (httptransport.RequestResponse, error) {
	request, err := h.Ledger.Submit(ctx, commands.SubmitCommand{
		SubjectID: subjectID,
		DataHash:  req.DataHash,
	})
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request, request.Status), nil
}

func (h Handler) RenewHandler(ctx context.Context, subjectID string) (httptransport.RequestResponse, error) {
	request, err := h.Ledger.Renew(ctx, commands.RenewCommand{SubjectID: subjectID})
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request, request.Status), nil
}

func (h Handler) VoteHandler(ctx context.Context, subjectID string, verifierID string, req httptransport.VoteRequest) (httptransport.VoteResponse, error) {
	vote, err := h.Ledger.Vote(ctx, commands.VoteCommand{
		SubjectID:  subjectID,
		VerifierID: verifierID,
		Score:      req.Score,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	return httptransport.VoteResponse{
		SubjectID:  vote.SubjectID,
		VerifierID: vote.VerifierID,
		Score:      vote.Score,
		VotedAt:    vote.VotedAt,
	}, nil
}

func (h Handler) FinalizeHandler(ctx context.Context, subjectID string) (httptransport.FinalizeResponse, error) {
	result, err := h.Ledger.Finalize(ctx, commands.FinalizeCommand{SubjectID: subjectID})
	if err != nil {
		return httptransport.FinalizeResponse{}, err
	}
	return httptransport.FinalizeResponse{
		SubjectID:   result.SubjectID,
		Status:      string(result.Status),
		Average:     result.Average,
		ExpiryBlock: result.ExpiryBlock,
	}, nil
}

func (h Handler) StatusHandler(ctx context.Context, subjectID string) (httptransport.RequestResponse, error) {
	view, err := h.Status.Status(ctx, subjectID)
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(view.Request, view.EffectiveStatus), nil
}

func (h Handler) VotesHandler(ctx context.Context, subjectID string) (httptransport.VoteListResponse, error) {
	votes, err := h.Status.Votes(ctx, subjectID)
	if err != nil {
		return httptransport.VoteListResponse{}, err
	}
	items := make([]httptransport.VoteResponse, 0, len(votes))
	for _, vote := range votes {
		items = append(items, httptransport.VoteResponse{
			SubjectID:  vote.SubjectID,
			VerifierID: vote.VerifierID,
			Score:      vote.Score,
			VotedAt:    vote.VotedAt,
		})
	}
	return httptransport.VoteListResponse{SubjectID: subjectID, Items: items}, nil
}

func (h Handler) HaltHandler(ctx context.Context, actorID string, req httptransport.HaltRequest) error {
	return h.Ledger.SetEmergencyHalt(ctx, commands.HaltCommand{
		ActorID: actorID,
		Halted:  req.Halted,
	})
}

func requestResponse(request entities.VerificationRequest, effective entities.RequestStatus) httptransport.RequestResponse {
	return httptransport.RequestResponse{
		SubjectID:       request.SubjectID,
		DataHash:        request.DataHash,
		Status:          string(request.Status),
		EffectiveStatus: string(effective),
		VoteCount:       request.VoteCount,
		ScoreSum:        request.ScoreSum,
		Average:         request.Average(),
		ExpiryBlock:     request.ExpiryBlock,
		LastUpdated:     request.LastUpdated,
	}
}
