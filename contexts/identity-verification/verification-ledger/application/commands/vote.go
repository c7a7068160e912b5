package commands

import (
	"context"
	"strings"

	application "veridex/contexts/identity-verification/verification-ledger/application"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
)

// VoteCommand records one verifier's score ballot for a subject.
type VoteCommand struct {
	SubjectID  string
	VerifierID string
	Score      uint32
}

// Vote appends a ballot and folds it into the request's running aggregate
// in one atomic write. There is deliberately no status gate: ballots are
// accepted even on verified/rejected/review requests, and a request in
// review re-finalizes over the full cumulative average. The (subject,
// verifier) pair is spent forever; renewals never reopen it.
func (uc LedgerUseCase) Vote(ctx context.Context, cmd VoteCommand) (entities.Vote, error) {
	logger := application.ResolveLogger(uc.Logger)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	verifierID := strings.TrimSpace(cmd.VerifierID)
	if subjectID == "" || verifierID == "" {
		return entities.Vote{}, domainerrors.ErrInvalidRequest
	}

	halted, err := uc.Control.Halted(ctx)
	if err != nil {
		return entities.Vote{}, err
	}
	if halted {
		return entities.Vote{}, domainerrors.ErrEmergencyShutdown
	}

	authorized, err := uc.Verifiers.IsAuthorized(ctx, verifierID)
	if err != nil {
		return entities.Vote{}, err
	}
	if !authorized {
		logger.Warn("ballot refused for unauthorized verifier",
			"event", "ledger_vote_unauthorized",
			"module", "identity-verification/verification-ledger",
			"layer", "application",
			"subject_id", subjectID,
			"verifier_id", verifierID,
		)
		return entities.Vote{}, domainerrors.ErrUnauthorizedVerifier
	}
	if cmd.Score > entities.MaxScore {
		return entities.Vote{}, domainerrors.ErrInvalidScore
	}

	request, found, err := uc.Requests.GetRequest(ctx, subjectID)
	if err != nil {
		return entities.Vote{}, err
	}
	if !found {
		return entities.Vote{}, domainerrors.ErrRequestNotFound
	}
	if _, exists, err := uc.Requests.GetVote(ctx, subjectID, verifierID); err != nil {
		return entities.Vote{}, err
	} else if exists {
		return entities.Vote{}, domainerrors.ErrAlreadyVoted
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.Vote{}, err
	}
	vote := entities.Vote{
		SubjectID:  subjectID,
		VerifierID: verifierID,
		Score:      cmd.Score,
		VotedAt:    now,
	}
	request.VoteCount++
	request.ScoreSum += uint64(cmd.Score)
	request.LastUpdated = now
	if err := uc.Requests.RecordVote(ctx, vote, request); err != nil {
		return entities.Vote{}, err
	}
	logger.Info("ballot recorded",
		"event", "ledger_vote_recorded",
		"module", "identity-verification/verification-ledger",
		"layer", "application",
		"subject_id", subjectID,
		"verifier_id", verifierID,
		"score", cmd.Score,
		"vote_count", request.VoteCount,
	)
	return vote, nil
}
