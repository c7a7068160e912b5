package commands

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	application "veridex/contexts/identity-verification/appeal-resolver/application"
	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	domainerrors "veridex/contexts/identity-verification/appeal-resolver/domain/errors"
	"veridex/contexts/identity-verification/appeal-resolver/ports"
)

const defaultKycDurationBlocks uint64 = 52560

// FileCommand opens an appeal against a rejected verification.
type FileCommand struct {
	CallerID   string
	SubjectID  string
	ReasonHash string
}

// ProcessCommand resolves an open appeal one way or the other.
type ProcessCommand struct {
	ActorID   string
	SubjectID string
	Approve   bool
}

// AppealUseCase orchestrates appeal filing and administrator resolution.
// Commands validate every precondition before their first write.
type AppealUseCase struct {
	Appeals   ports.AppealRepository
	Requests  ports.RequestGateway
	Sequencer ports.Sequencer

	KycDurationBlocks uint64
	AdminID           string

	Logger *slog.Logger
}

// File opens the subject's one and only appeal. Only the subject may file,
// only over a rejected request, and only if no appeal record exists yet.
// Closed appeals count: a subject never appeals twice.
func (uc AppealUseCase) File(ctx context.Context, cmd FileCommand) (entities.Appeal, error) {
	logger := application.ResolveLogger(uc.Logger)
	callerID := strings.TrimSpace(cmd.CallerID)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	reasonHash := strings.ToLower(strings.TrimSpace(cmd.ReasonHash))
	if subjectID == "" || !isReasonHash(reasonHash) {
		return entities.Appeal{}, domainerrors.ErrInvalidRequest
	}
	if callerID != subjectID {
		return entities.Appeal{}, domainerrors.ErrNotSubject
	}

	request, found, err := uc.Requests.GetRequestRecord(ctx, subjectID)
	if err != nil {
		return entities.Appeal{}, err
	}
	if !found {
		return entities.Appeal{}, domainerrors.ErrRequestNotFound
	}
	if request.Status != ports.RequestStatusRejected {
		return entities.Appeal{}, domainerrors.ErrCannotAppeal
	}
	if _, exists, err := uc.Appeals.GetAppeal(ctx, subjectID); err != nil {
		return entities.Appeal{}, err
	} else if exists {
		return entities.Appeal{}, domainerrors.ErrAppealActive
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.Appeal{}, err
	}
	appeal := entities.Appeal{
		SubjectID:  subjectID,
		ReasonHash: reasonHash,
		Status:     entities.StatusOpen,
		FiledAt:    now,
	}
	if err := uc.Appeals.SaveAppeal(ctx, appeal); err != nil {
		return entities.Appeal{}, err
	}
	logger.Info("appeal filed",
		"event", "appeal_filed",
		"module", "identity-verification/appeal-resolver",
		"layer", "application",
		"subject_id", subjectID,
		"block", now,
	)
	return appeal, nil
}

// Process closes an open appeal. Approval overrides the ledger request to
// verified with a fresh expiry window; dismissal records the decision and
// leaves the request as it stands. The appeal write and any request
// override commit atomically.
func (uc AppealUseCase) Process(ctx context.Context, cmd ProcessCommand) (entities.Appeal, error) {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	subjectID := strings.TrimSpace(cmd.SubjectID)
	if actorID == "" || subjectID == "" {
		return entities.Appeal{}, domainerrors.ErrInvalidRequest
	}
	if actorID != strings.TrimSpace(uc.AdminID) {
		return entities.Appeal{}, domainerrors.ErrNotAdmin
	}

	appeal, found, err := uc.Appeals.GetAppeal(ctx, subjectID)
	if err != nil {
		return entities.Appeal{}, err
	}
	if !found {
		return entities.Appeal{}, domainerrors.ErrAppealNotFound
	}
	if !appeal.Open() {
		return entities.Appeal{}, domainerrors.ErrAppealClosed
	}
	if _, exists, err := uc.Requests.GetRequestRecord(ctx, subjectID); err != nil {
		return entities.Appeal{}, err
	} else if !exists {
		return entities.Appeal{}, domainerrors.ErrRequestNotFound
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.Appeal{}, err
	}
	appeal.HandlerID = actorID
	appeal.ResolutionBlock = now

	var override *ports.RequestOverride
	if cmd.Approve {
		appeal.Status = entities.StatusResolved
		override = &ports.RequestOverride{
			SubjectID:   subjectID,
			Status:      ports.RequestStatusVerified,
			ExpiryBlock: now + uc.resolveKycDuration(),
			LastUpdated: now,
		}
	} else {
		appeal.Status = entities.StatusDismissed
	}
	if err := uc.Appeals.ResolveAppeal(ctx, appeal, override); err != nil {
		return entities.Appeal{}, err
	}
	logger.Info("appeal processed",
		"event", "appeal_processed",
		"module", "identity-verification/appeal-resolver",
		"layer", "application",
		"subject_id", subjectID,
		"handler_id", actorID,
		"approved", cmd.Approve,
		"block", now,
	)
	return appeal, nil
}

func (uc AppealUseCase) resolveKycDuration() uint64 {
	if uc.KycDurationBlocks == 0 {
		return defaultKycDurationBlocks
	}
	return uc.KycDurationBlocks
}

// isReasonHash accepts a 32-byte hex commitment of the appeal grounds.
func isReasonHash(value string) bool {
	if len(value) != 64 {
		return false
	}
	_, err := hex.DecodeString(value)
	return err == nil
}
