package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	"veridex/contexts/identity-verification/verifier-registry/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the verifier table. Ledger tables are owned and migrated
// by the verification-ledger adapter.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&verifierModel{})
}

func upsertVerifier(tx *gorm.DB, verifier entities.Verifier) error {
	row := verifierModelFromEntity(verifier)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"trusted":       row.Trusted,
			"stake":         row.Stake,
			"reputation":    row.Reputation,
			"total_votes":   row.TotalVotes,
			"correct_votes": row.CorrectVotes,
			"registered_at": row.RegisteredAt,
			"updated_at":    row.UpdatedAt,
		}),
	}).Create(&row).Error
}

func (r *Repository) SaveVerifier(ctx context.Context, verifier entities.Verifier) error {
	if err := upsertVerifier(r.db.WithContext(ctx), verifier); err != nil {
		return r.logError("registry_repo_save_verifier_failed", err,
			"verifier_id", strings.TrimSpace(verifier.VerifierID),
		)
	}
	return nil
}

func (r *Repository) GetVerifier(ctx context.Context, verifierID string) (entities.Verifier, bool, error) {
	var row verifierModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(verifierID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Verifier{}, false, nil
		}
		return entities.Verifier{}, false, r.logError("registry_repo_get_verifier_failed", err,
			"verifier_id", strings.TrimSpace(verifierID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetRequestOutcome(ctx context.Context, subjectID string) (ports.RequestProjection, bool, error) {
	var row requestOutcomeRow
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RequestProjection{}, false, nil
		}
		return ports.RequestProjection{}, false, r.logError("registry_repo_get_request_outcome_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
		)
	}
	return ports.RequestProjection{SubjectID: row.SubjectID, Status: row.Status}, true, nil
}

func (r *Repository) GetVoteRecord(ctx context.Context, subjectID string, verifierID string) (ports.VoteProjection, bool, error) {
	var row voteRecordRow
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		Where("verifier_id = ?", strings.TrimSpace(verifierID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.VoteProjection{}, false, nil
		}
		return ports.VoteProjection{}, false, r.logError("registry_repo_get_vote_record_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
			"verifier_id", strings.TrimSpace(verifierID),
		)
	}
	return ports.VoteProjection{
		SubjectID:     row.SubjectID,
		VerifierID:    row.VerifierID,
		Score:         row.Score,
		RewardClaimed: row.RewardClaimed,
	}, true, nil
}

// SettleClaim commits the claimed marker and the verifier update in one
// transaction. A nil verifier settles the vote without touching reputation.
func (r *Repository) SettleClaim(ctx context.Context, subjectID string, verifierID string, claimedAt uint64, verifier *entities.Verifier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&voteRecordRow{}).
			Where("subject_id = ?", strings.TrimSpace(subjectID)).
			Where("verifier_id = ?", strings.TrimSpace(verifierID)).
			Updates(map[string]any{
				"reward_claimed": true,
				"claimed_at":     claimedAt,
			}).Error
		if err != nil {
			return err
		}
		if verifier == nil {
			return nil
		}
		return upsertVerifier(tx, *verifier)
	})
	if err != nil {
		return r.logError("registry_repo_settle_claim_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
			"verifier_id", strings.TrimSpace(verifierID),
		)
	}
	return nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "identity-verification/verifier-registry",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("registry repository operation failed", fields...)
	return err
}

// SystemSequencer derives ledger height from wall clock seconds. Deployments
// fronted by a real block sequencer replace this adapter.
type SystemSequencer struct{}

func (SystemSequencer) Now(_ context.Context) (uint64, error) {
	return uint64(time.Now().UTC().Unix()), nil
}
