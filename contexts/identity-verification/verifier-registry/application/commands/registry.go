package commands

import (
	"context"
	"log/slog"
	"strings"

	application "veridex/contexts/identity-verification/verifier-registry/application"
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

// RegisterCommand stakes a caller into the verifier pool.
type RegisterCommand struct {
	VerifierID string
	Stake      uint64
}

// UnstakeCommand withdraws part of a verifier's stake. No check is made
// against open votes; a verifier can unstake below the bound and simply
// loses authorization for future votes.
type UnstakeCommand struct {
	VerifierID string
	Amount     uint64
}

// RegistryUseCase owns verifier record mutations. Every command validates
// all preconditions before its first write so a failed call leaves no
// partial state.
type RegistryUseCase struct {
	Verifiers ports.VerifierRepository
	Outcomes  ports.OutcomeSource
	Sequencer ports.Sequencer
	MinStake  uint64
	// RejectionScore is the consensus rejection bound used to judge claim
	// alignment; zero falls back to the ledger default.
	RejectionScore uint32
	Logger         *slog.Logger
}

// Register creates or wholesale-overwrites the caller's verifier record.
// Re-registering discards history: reputation returns to neutral and both
// vote tallies reset to zero.
func (uc RegistryUseCase) Register(ctx context.Context, cmd RegisterCommand) (entities.Verifier, error) {
	logger := application.ResolveLogger(uc.Logger)
	verifierID := strings.TrimSpace(cmd.VerifierID)
	if verifierID == "" {
		return entities.Verifier{}, domainerrors.ErrInvalidRequest
	}
	if cmd.Stake < uc.resolveMinStake() {
		logger.Warn("verifier registration below minimum stake",
			"event", "registry_register_insufficient_stake",
			"module", "identity-verification/verifier-registry",
			"layer", "application",
			"verifier_id", verifierID,
			"stake", cmd.Stake,
			"min_stake", uc.resolveMinStake(),
		)
		return entities.Verifier{}, domainerrors.ErrInsufficientStake
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.Verifier{}, err
	}
	verifier := entities.Verifier{
		VerifierID:   verifierID,
		Trusted:      true,
		Stake:        cmd.Stake,
		Reputation:   entities.ReputationNeutral,
		TotalVotes:   0,
		CorrectVotes: 0,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err := uc.Verifiers.SaveVerifier(ctx, verifier); err != nil {
		return entities.Verifier{}, err
	}
	logger.Info("verifier registered",
		"event", "registry_verifier_registered",
		"module", "identity-verification/verifier-registry",
		"layer", "application",
		"verifier_id", verifierID,
		"stake", cmd.Stake,
		"block", now,
	)
	return verifier, nil
}

// Unstake reduces the caller's stake. Stake custody is simulated: only the
// stored balance moves, actual value transfer belongs to an external
// custody collaborator.
func (uc RegistryUseCase) Unstake(ctx context.Context, cmd UnstakeCommand) (entities.Verifier, error) {
	logger := application.ResolveLogger(uc.Logger)
	verifierID := strings.TrimSpace(cmd.VerifierID)
	if verifierID == "" || cmd.Amount == 0 {
		return entities.Verifier{}, domainerrors.ErrInvalidRequest
	}

	verifier, found, err := uc.Verifiers.GetVerifier(ctx, verifierID)
	if err != nil {
		return entities.Verifier{}, err
	}
	if !found {
		return entities.Verifier{}, domainerrors.ErrVerifierNotFound
	}
	if verifier.Stake < cmd.Amount {
		return entities.Verifier{}, domainerrors.ErrInsufficientStake
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return entities.Verifier{}, err
	}
	verifier.Stake -= cmd.Amount
	verifier.UpdatedAt = now
	if err := uc.Verifiers.SaveVerifier(ctx, verifier); err != nil {
		return entities.Verifier{}, err
	}
	logger.Info("verifier unstaked",
		"event", "registry_verifier_unstaked",
		"module", "identity-verification/verifier-registry",
		"layer", "application",
		"verifier_id", verifierID,
		"amount", cmd.Amount,
		"remaining_stake", verifier.Stake,
	)
	return verifier, nil
}

// AdjustReputation settles one vote outcome against a verifier record. A
// missing record is a silent skip, reported through the boolean rather than
// an error, so settlement flows never abort on unregistered voters.
func (uc RegistryUseCase) AdjustReputation(ctx context.Context, verifierID string, correct bool) (bool, error) {
	logger := application.ResolveLogger(uc.Logger)
	verifierID = strings.TrimSpace(verifierID)
	if verifierID == "" {
		return false, domainerrors.ErrInvalidRequest
	}

	verifier, found, err := uc.Verifiers.GetVerifier(ctx, verifierID)
	if err != nil {
		return false, err
	}
	if !found {
		logger.Warn("reputation adjustment skipped for unknown verifier",
			"event", "registry_reputation_skip",
			"module", "identity-verification/verifier-registry",
			"layer", "application",
			"verifier_id", verifierID,
		)
		return false, nil
	}

	now, err := uc.Sequencer.Now(ctx)
	if err != nil {
		return false, err
	}
	verifier.ApplyOutcome(correct)
	verifier.UpdatedAt = now
	if err := uc.Verifiers.SaveVerifier(ctx, verifier); err != nil {
		return false, err
	}
	logger.Info("verifier reputation adjusted",
		"event", "registry_reputation_adjusted",
		"module", "identity-verification/verifier-registry",
		"layer", "application",
		"verifier_id", verifierID,
		"correct", correct,
		"reputation", verifier.Reputation,
	)
	return true, nil
}

func (uc RegistryUseCase) resolveMinStake() uint64 {
	if uc.MinStake == 0 {
		return entities.DefaultMinStake
	}
	return uc.MinStake
}
