package commands

import (
	"context"
	"strings"

	application "veridex/contexts/identity-verification/verifier-registry/application"
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

// Finalization does not touch reputation: the ledger has no primitive to
// enumerate a subject's voters. Settlement is voter-driven instead: each
// verifier claims their own vote against the terminal outcome after seeing
// the finalization event.
const defaultRejectionScore uint32 = 50

// ClaimOutcomeCommand settles one (subject, verifier) vote.
type ClaimOutcomeCommand struct {
	VerifierID string
	SubjectID  string
}

// ClaimOutcomeResult reports how the vote aligned with consensus and the
// verifier's reputation after adjustment.
type ClaimOutcomeResult struct {
	Correct    bool
	Adjusted   bool
	Reputation uint32
}

// ClaimOutcome marks the caller's vote settled and adjusts reputation by
// alignment: a vote counted correct when it sat on the winning side of the
// rejection bound. Claims require a terminal request status and reject
// double settlement via the claimed marker on the vote record. The marker
// and the reputation update land through one repository call so a failed
// settlement leaves the vote claimable.
func (uc RegistryUseCase) ClaimOutcome(ctx context.Context, cmd ClaimOutcomeCommand) (ClaimOutcomeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	verifierID := strings.TrimSpace(cmd.VerifierID)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	if verifierID == "" || subjectID == "" {
		return ClaimOutcomeResult{}, domainerrors.ErrInvalidRequest
	}

	vote, found, err := uc.Outcomes.GetVoteRecord(ctx, subjectID, verifierID)
	if err != nil {
		return ClaimOutcomeResult{}, err
	}
	if !found {
		return ClaimOutcomeResult{}, domainerrors.ErrVoteNotFound
	}
	if vote.RewardClaimed {
		return ClaimOutcomeResult{}, domainerrors.ErrAlreadyClaimed
	}

	request, found, err := uc.Outcomes.GetRequestOutcome(ctx, subjectID)
	if err != nil {
		return ClaimOutcomeResult{}, err
	}
	if !found {
		return ClaimOutcomeResult{}, domainerrors.ErrRequestNotFound
	}
	if request.Status != ports.RequestOutcomeVerified && request.Status != ports.RequestOutcomeRejected {
		return ClaimOutcomeResult{}, domainerrors.ErrOutcomeNotFinal
	}

	bound := uc.RejectionScore
	if bound == 0 {
		bound = defaultRejectionScore
	}
	correct := (request.Status == ports.RequestOutcomeVerified && vote.Score >= bound) ||
		(request.Status == ports.RequestOutcomeRejected && vote.Score < bound)

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return ClaimOutcomeResult{}, err
	}
	verifier, adjusted, err := uc.Verifiers.GetVerifier(ctx, verifierID)
	if err != nil {
		return ClaimOutcomeResult{}, err
	}
	var settled *entities.Verifier
	if adjusted {
		verifier.ApplyOutcome(correct)
		verifier.UpdatedAt = now
		settled = &verifier
	} else {
		logger.Warn("claim settles without reputation for unknown verifier",
			"event", "registry_claim_reputation_skip",
			"module", "identity-verification/verifier-registry",
			"layer", "application",
			"verifier_id", verifierID,
		)
	}
	if err := uc.Outcomes.SettleClaim(ctx, subjectID, verifierID, now, settled); err != nil {
		return ClaimOutcomeResult{}, err
	}

	result := ClaimOutcomeResult{Correct: correct, Adjusted: adjusted}
	if adjusted {
		result.Reputation = verifier.Reputation
	}
	logger.Info("vote outcome claimed",
		"event", "registry_outcome_claimed",
		"module", "identity-verification/verifier-registry",
		"layer", "application",
		"verifier_id", verifierID,
		"subject_id", subjectID,
		"correct", correct,
		"adjusted", adjusted,
	)
	return result, nil
}
