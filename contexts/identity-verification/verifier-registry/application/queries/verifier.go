package queries

import (
	"context"
	"strings"

	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

type VerifierQueries struct {
	Verifiers ports.VerifierRepository
	MinStake  uint64
}

func (q VerifierQueries) GetVerifier(ctx context.Context, verifierID string) (entities.Verifier, error) {
	verifierID = strings.TrimSpace(verifierID)
	if verifierID == "" {
		return entities.Verifier{}, domainerrors.ErrInvalidRequest
	}
	verifier, found, err := q.Verifiers.GetVerifier(ctx, verifierID)
	if err != nil {
		return entities.Verifier{}, err
	}
	if !found {
		return entities.Verifier{}, domainerrors.ErrVerifierNotFound
	}
	return verifier, nil
}

// IsAuthorized is the pure eligibility predicate: record exists, trusted,
// staked at or above the minimum. Missing records report false, not an
// error.
func (q VerifierQueries) IsAuthorized(ctx context.Context, verifierID string) (bool, error) {
	verifier, found, err := q.Verifiers.GetVerifier(ctx, strings.TrimSpace(verifierID))
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	minStake := q.MinStake
	if minStake == 0 {
		minStake = entities.DefaultMinStake
	}
	return verifier.Authorized(minStake), nil
}
