package ports

import (
	"context"

	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
)

type VerifierRepository interface {
	SaveVerifier(ctx context.Context, verifier entities.Verifier) error
	GetVerifier(ctx context.Context, verifierID string) (entities.Verifier, bool, error)
}

// Request outcome labels mirrored from the verification ledger. Only the
// terminal pair is meaningful for claims.
const (
	RequestOutcomeVerified = "verified"
	RequestOutcomeRejected = "rejected"
)

// RequestProjection is the ledger-owned request state visible to claims.
type RequestProjection struct {
	SubjectID string
	Status    string
}

// VoteProjection is the ledger-owned vote record visible to claims.
type VoteProjection struct {
	SubjectID     string
	VerifierID    string
	Score         uint32
	RewardClaimed bool
}

// OutcomeSource reads finalized ledger state for outcome claims and settles
// them. SettleClaim is the single write of the claim flow: the claimed
// marker and the verifier update (nil for unregistered voters) must commit
// together or not at all. Claim validation happens in the application layer
// before it runs.
type OutcomeSource interface {
	GetRequestOutcome(ctx context.Context, subjectID string) (RequestProjection, bool, error)
	GetVoteRecord(ctx context.Context, subjectID string, verifierID string) (VoteProjection, bool, error)
	SettleClaim(ctx context.Context, subjectID string, verifierID string, claimedAt uint64, verifier *entities.Verifier) error
}

// Sequencer supplies the externally ordered, monotonically non-decreasing
// ledger height used as "now" by every operation.
type Sequencer interface {
	Now(ctx context.Context) (uint64, error)
}
