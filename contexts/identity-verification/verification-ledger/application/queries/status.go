package queries

import (
	"context"
	"strings"

	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
	"veridex/contexts/identity-verification/verification-ledger/ports"
)

type StatusUseCase struct {
	Requests  ports.RequestRepository
	Sequencer ports.Sequencer
}

// RequestStatusView is the read model for a subject's request, including
// the lazily derived effective status.
type RequestStatusView struct {
	Request         entities.VerificationRequest
	EffectiveStatus entities.RequestStatus
	Average         uint32
	CurrentBlock    uint64
}

func (uc StatusUseCase) Status(ctx context.Context, subjectID string) (RequestStatusView, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return RequestStatusView{}, domainerrors.ErrInvalidRequest
	}
	request, found, err := uc.Requests.GetRequest(ctx, subjectID)
	if err != nil {
		return RequestStatusView{}, err
	}
	if !found {
		return RequestStatusView{}, domainerrors.ErrRequestNotFound
	}
	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return RequestStatusView{}, err
	}
	return RequestStatusView{
		Request:         request,
		EffectiveStatus: request.EffectiveStatus(now),
		Average:         request.Average(),
		CurrentBlock:    now,
	}, nil
}

// Votes lists a subject's recorded ballots, oldest first.
func (uc StatusUseCase) Votes(ctx context.Context, subjectID string) ([]entities.Vote, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, domainerrors.ErrInvalidRequest
	}
	return uc.Requests.ListVotesBySubject(ctx, subjectID)
}
