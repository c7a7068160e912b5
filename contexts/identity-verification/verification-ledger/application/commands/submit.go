package commands

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	application "veridex/contexts/identity-verification/verification-ledger/application"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
	"veridex/contexts/identity-verification/verification-ledger/ports"
)

const (
	defaultThreshold         uint32 = 3
	defaultApprovalScore     uint32 = 85
	defaultRejectionScore    uint32 = 50
	defaultKycDurationBlocks uint64 = 52560
)

// SubmitCommand opens (or reopens) a verification cycle for a subject.
type SubmitCommand struct {
	SubjectID string
	DataHash  string
}

// RenewCommand restarts a cycle whose verification has lapsed.
type RenewCommand struct {
	SubjectID string
}

// LedgerUseCase orchestrates request lifecycle, voting, and finalization.
// Every command validates all preconditions before its first write; a call
// either fully commits or leaves the ledgers untouched.
type LedgerUseCase struct {
	Requests  ports.RequestRepository
	Control   ports.ControlRepository
	Verifiers ports.VerifierDirectory
	Sequencer ports.Sequencer
	IDGen     ports.IDGenerator

	Threshold         uint32
	ApprovalScore     uint32
	RejectionScore    uint32
	KycDurationBlocks uint64
	AdminID           string

	Logger *slog.Logger
}

// Submit records the subject's identity-data commitment and opens a pending
// cycle. Resubmission is allowed only over a rejected or (effectively)
// expired prior request; the new record overwrites the old wholesale and
// clears the stale expiry height.
func (uc LedgerUseCase) Submit(ctx context.Context, cmd SubmitCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	dataHash := strings.ToLower(strings.TrimSpace(cmd.DataHash))
	if subjectID == "" || !isCommitmentHash(dataHash) {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidRequest
	}

	halted, err := uc.Control.Halted(ctx)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if halted {
		return entities.VerificationRequest{}, domainerrors.ErrEmergencyShutdown
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if existing, found, err := uc.Requests.GetRequest(ctx, subjectID); err != nil {
		return entities.VerificationRequest{}, err
	} else if found {
		effective := existing.EffectiveStatus(now)
		if effective != entities.StatusRejected && effective != entities.StatusExpired {
			logger.Warn("submission refused while request active",
				"event", "ledger_submit_conflict",
				"module", "identity-verification/verification-ledger",
				"layer", "application",
				"subject_id", subjectID,
				"status", string(effective),
			)
			return entities.VerificationRequest{}, domainerrors.ErrActiveRequest
		}
	}

	request := entities.VerificationRequest{
		SubjectID:   subjectID,
		DataHash:    dataHash,
		Status:      entities.StatusPending,
		VoteCount:   0,
		ScoreSum:    0,
		ExpiryBlock: 0,
		SubmittedAt: now,
		LastUpdated: now,
	}
	if err := uc.Requests.SaveRequest(ctx, request); err != nil {
		return entities.VerificationRequest{}, err
	}
	logger.Info("verification request submitted",
		"event", "ledger_request_submitted",
		"module", "identity-verification/verification-ledger",
		"layer", "application",
		"subject_id", subjectID,
		"block", now,
	)
	return request, nil
}

// Renew restarts the cycle of an expired verification: counters reset,
// status returns to pending, and the stored commitment plus the stale
// expiry height carry over untouched. Old ballots are not purged, so prior
// voters remain spent for this subject.
func (uc LedgerUseCase) Renew(ctx context.Context, cmd RenewCommand) (entities.VerificationRequest, error) {
	logger := application.ResolveLogger(uc.Logger)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	if subjectID == "" {
		return entities.VerificationRequest{}, domainerrors.ErrInvalidRequest
	}

	request, found, err := uc.Requests.GetRequest(ctx, subjectID)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if !found {
		return entities.VerificationRequest{}, domainerrors.ErrRequestNotFound
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.VerificationRequest{}, err
	}
	if request.EffectiveStatus(now) != entities.StatusExpired {
		return entities.VerificationRequest{}, domainerrors.ErrNotExpired
	}

	request.Status = entities.StatusPending
	request.VoteCount = 0
	request.ScoreSum = 0
	request.LastUpdated = now
	if err := uc.Requests.SaveRequest(ctx, request); err != nil {
		return entities.VerificationRequest{}, err
	}
	logger.Info("verification request renewed",
		"event", "ledger_request_renewed",
		"module", "identity-verification/verification-ledger",
		"layer", "application",
		"subject_id", subjectID,
		"block", now,
	)
	return request, nil
}

func (uc LedgerUseCase) resolveThreshold() uint32 {
	if uc.Threshold == 0 {
		return defaultThreshold
	}
	return uc.Threshold
}

func (uc LedgerUseCase) resolveApprovalScore() uint32 {
	if uc.ApprovalScore == 0 {
		return defaultApprovalScore
	}
	return uc.ApprovalScore
}

func (uc LedgerUseCase) resolveRejectionScore() uint32 {
	if uc.RejectionScore == 0 {
		return defaultRejectionScore
	}
	return uc.RejectionScore
}

func (uc LedgerUseCase) resolveKycDuration() uint64 {
	if uc.KycDurationBlocks == 0 {
		return defaultKycDurationBlocks
	}
	return uc.KycDurationBlocks
}

// isCommitmentHash accepts a 32-byte hex commitment. Contents stay opaque;
// only the shape is checked.
func isCommitmentHash(value string) bool {
	if len(value) != 64 {
		return false
	}
	_, err := hex.DecodeString(value)
	return err == nil
}
