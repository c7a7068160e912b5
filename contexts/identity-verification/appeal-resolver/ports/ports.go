package ports

import (
	"context"

	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
)

// Ledger request statuses the resolver depends on. The resolver reads and
// overrides requests through a narrow gateway instead of importing the
// ledger module.
const (
	RequestStatusRejected = "rejected"
	RequestStatusVerified = "verified"
)

// RequestRecord is the resolver's read-side view of a ledger request.
type RequestRecord struct {
	SubjectID   string
	Status      string
	ExpiryBlock uint64
}

// RequestOverride is the write-set an approval applies to the ledger
// request: the new status plus the refreshed validity window.
type RequestOverride struct {
	SubjectID   string
	Status      string
	ExpiryBlock uint64
	LastUpdated uint64
}

// AppealRepository owns the appeal table. ResolveAppeal persists the appeal
// transition together with the optional request override; both rows commit
// atomically or not at all. A nil override leaves the request untouched.
type AppealRepository interface {
	GetAppeal(ctx context.Context, subjectID string) (entities.Appeal, bool, error)
	SaveAppeal(ctx context.Context, appeal entities.Appeal) error
	ResolveAppeal(ctx context.Context, appeal entities.Appeal, override *RequestOverride) error
}

// RequestGateway reads the ledger request a filing or resolution targets.
type RequestGateway interface {
	GetRequestRecord(ctx context.Context, subjectID string) (RequestRecord, bool, error)
}

// Sequencer supplies the current ledger height.
type Sequencer interface {
	Now(ctx context.Context) (uint64, error)
}
