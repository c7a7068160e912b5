package httpadapter

import (
	"context"
	"log/slog"

	"veridex/contexts/identity-verification/appeal-resolver/application/commands"
	"veridex/contexts/identity-verification/appeal-resolver/application/queries"
	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	httptransport "veridex/contexts/identity-verification/appeal-resolver/transport/http"
)

type Handler struct {
	Appeals commands.AppealUseCase
	Queries queries.AppealQueries
	Logger  *slog.Logger
}

func (h Handler) FileHandler(ctx context.Context, callerID string, subjectID string, req httptransport.FileAppealRequest) (httptransport.AppealResponse, error) {
	appeal, err := h.Appeals.File(ctx, commands.FileCommand{
		CallerID:   callerID,
		SubjectID:  subjectID,
		ReasonHash: req.ReasonHash,
	})
	if err != nil {
		return httptransport.AppealResponse{}, err
	}
	return appealResponse(appeal), nil
}

func (h Handler) ProcessHandler(ctx context.Context, actorID string, subjectID string, req httptransport.ProcessAppealRequest) (httptransport.AppealResponse, error) {
	appeal, err := h.Appeals.Process(ctx, commands.ProcessCommand{
		ActorID:   actorID,
		SubjectID: subjectID,
		Approve:   req.Approve,
	})
	if err != nil {
		return httptransport.AppealResponse{}, err
	}
	return appealResponse(appeal), nil
}

func (h Handler) GetAppealHandler(ctx context.Context, subjectID string) (httptransport.AppealResponse, error) {
	appeal, err := h.Queries.GetAppeal(ctx, subjectID)
	if err != nil {
		return httptransport.AppealResponse{}, err
	}
	return appealResponse(appeal), nil
}

func appealResponse(appeal entities.Appeal) httptransport.AppealResponse {
	return httptransport.AppealResponse{
		SubjectID:       appeal.SubjectID,
		ReasonHash:      appeal.ReasonHash,
		Status:          string(appeal.Status),
		HandlerID:       appeal.HandlerID,
		FiledAt:         appeal.FiledAt,
		ResolutionBlock: appeal.ResolutionBlock,
	}
}
