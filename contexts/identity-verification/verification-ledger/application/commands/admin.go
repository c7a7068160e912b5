package commands

import (
	"context"
	"strings"

	application "veridex/contexts/identity-verification/verification-ledger/application"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
)

// HaltCommand toggles the emergency shutdown flag.
type HaltCommand struct {
	ActorID string
	Halted  bool
}

// SetEmergencyHalt flips the global pause flag. Only the configured
// administrator identity may toggle it; the flag itself gates submission
// and voting, not finalization or appeals.
func (uc LedgerUseCase) SetEmergencyHalt(ctx context.Context, cmd HaltCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		return domainerrors.ErrInvalidRequest
	}
	if actorID != strings.TrimSpace(uc.AdminID) {
		logger.Warn("halt toggle refused",
			"event", "ledger_halt_refused",
			"module", "identity-verification/verification-ledger",
			"layer", "application",
			"actor_id", actorID,
		)
		return domainerrors.ErrNotAdmin
	}
	if err := uc.Control.SetHalted(ctx, cmd.Halted); err != nil {
		return err
	}
	logger.Info("emergency halt toggled",
		"event", "ledger_halt_toggled",
		"module", "identity-verification/verification-ledger",
		"layer", "application",
		"actor_id", actorID,
		"halted", cmd.Halted,
	)
	return nil
}
