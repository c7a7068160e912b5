package commands

import (
	"context"
	"strings"

	application "veridex/contexts/identity-verification/verification-ledger/application"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
)

// FinalizeCommand folds a subject's accumulated ballots into an outcome.
type FinalizeCommand struct {
	SubjectID string
}

// FinalizeResult is the status transition a finalize call produced.
type FinalizeResult struct {
	SubjectID   string
	Status      entities.RequestStatus
	Average     uint32
	ExpiryBlock uint64
}

const (
	rejectionReason   = "below absolute minimum threshold"
	escalationContext = "uncertain range, awaiting escalation"
)

// Finalize runs the consensus decision. Checks are strictly ordered: the
// vote-count gate is asserted before the average is ever computed, so the
// quotient can never run against a zero count. Verified and rejected are
// terminal; review re-finalizes over the cumulative average and may promote
// or demote. The status write and the outcome event commit together.
func (uc LedgerUseCase) Finalize(ctx context.Context, cmd FinalizeCommand) (FinalizeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	if subjectID == "" {
		return FinalizeResult{}, domainerrors.ErrInvalidRequest
	}

	request, found, err := uc.Requests.GetRequest(ctx, subjectID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if !found {
		return FinalizeResult{}, domainerrors.ErrRequestNotFound
	}
	if request.VoteCount < uc.resolveThreshold() {
		return FinalizeResult{}, domainerrors.ErrInsufficientVotes
	}
	if request.Status != entities.StatusPending && request.Status != entities.StatusReview {
		return FinalizeResult{}, domainerrors.ErrAlreadyFinalized
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return FinalizeResult{}, err
	}
	average := uint32(request.ScoreSum / uint64(request.VoteCount))

	var event eventPayload
	switch {
	case average >= uc.resolveApprovalScore():
		request.Status = entities.StatusVerified
		request.ExpiryBlock = now + uc.resolveKycDuration()
		event = eventPayload{
			eventType: eventTypeFinalized,
			fields: map[string]any{
				"subject_id": subjectID,
				"status":     string(entities.StatusVerified),
				"score":      average,
				"timestamp":  now,
			},
		}
	case average < uc.resolveRejectionScore():
		request.Status = entities.StatusRejected
		event = eventPayload{
			eventType: eventTypeFinalized,
			fields: map[string]any{
				"subject_id": subjectID,
				"status":     string(entities.StatusRejected),
				"score":      average,
				"reason":     rejectionReason,
			},
		}
	default:
		request.Status = entities.StatusReview
		event = eventPayload{
			eventType: eventTypeEscalated,
			fields: map[string]any{
				"subject_id": subjectID,
				"status":     string(entities.StatusReview),
				"score":      average,
				"context":    escalationContext,
			},
		}
	}
	request.LastUpdated = now

	envelope, err := uc.newEnvelope(ctx, event, subjectID, now)
	if err != nil {
		return FinalizeResult{}, err
	}
	if err := uc.Requests.SaveRequestWithOutbox(ctx, request, envelope); err != nil {
		return FinalizeResult{}, err
	}

	logger.Info("verification finalized",
		"event", "ledger_request_finalized",
		"module", "identity-verification/verification-ledger",
		"layer", "application",
		"subject_id", subjectID,
		"status", string(request.Status),
		"average", average,
		"vote_count", request.VoteCount,
		"block", now,
	)
	return FinalizeResult{
		SubjectID:   subjectID,
		Status:      request.Status,
		Average:     average,
		ExpiryBlock: request.ExpiryBlock,
	}, nil
}
