package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
	"veridex/contexts/identity-verification/verification-ledger/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

// Migrate creates the ledger-owned tables and seeds the halt flag row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&requestModel{}, &voteModel{}, &outboxModel{}, &controlModel{}); err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&controlModel{ID: 1, Halted: false}).Error
}

func (r *Repository) GetRequest(ctx context.Context, subjectID string) (entities.VerificationRequest, bool, error) {
	var row requestModel
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VerificationRequest{}, false, nil
		}
		return entities.VerificationRequest{}, false, r.logError("ledger_repo_get_request_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveRequest(ctx context.Context, request entities.VerificationRequest) error {
	row := requestModelFromEntity(request)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_id"}},
		DoUpdates: clause.Assignments(requestAssignments(row)),
	}).Create(&row).Error
	if err != nil {
		return r.logError("ledger_repo_save_request_failed", err,
			"subject_id", strings.TrimSpace(request.SubjectID),
		)
	}
	return nil
}

func (r *Repository) GetVote(ctx context.Context, subjectID string, verifierID string) (entities.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		Where("verifier_id = ?", strings.TrimSpace(verifierID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, false, nil
		}
		return entities.Vote{}, false, r.logError("ledger_repo_get_vote_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
			"verifier_id", strings.TrimSpace(verifierID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListVotesBySubject(ctx context.Context, subjectID string) ([]entities.Vote, error) {
	var rows []voteModel
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		Order("voted_at ASC, verifier_id ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_list_votes_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
		)
	}
	items := make([]entities.Vote, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// RecordVote inserts the ballot and updates the request aggregate in one
// transaction. A concurrent duplicate insert surfaces as ErrAlreadyVoted
// through the primary-key violation.
func (r *Repository) RecordVote(ctx context.Context, vote entities.Vote, request entities.VerificationRequest) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		voteRow := voteModelFromEntity(vote)
		if err := tx.Create(&voteRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrAlreadyVoted
			}
			return err
		}
		requestRow := requestModelFromEntity(request)
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}},
			DoUpdates: clause.Assignments(requestAssignments(requestRow)),
		}).Create(&requestRow).Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyVoted) {
			return err
		}
		return r.logError("ledger_repo_record_vote_failed", err,
			"subject_id", strings.TrimSpace(vote.SubjectID),
			"verifier_id", strings.TrimSpace(vote.VerifierID),
		)
	}
	return nil
}

// SaveRequestWithOutbox atomically persists the status transition and its
// outcome event.
func (r *Repository) SaveRequestWithOutbox(ctx context.Context, request entities.VerificationRequest, event ports.EventEnvelope) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := requestModelFromEntity(request)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}},
			DoUpdates: clause.Assignments(requestAssignments(row)),
		}).Create(&row).Error; err != nil {
			return err
		}
		return tx.Create(&outboxModel{
			ID:        event.EventID,
			EventType: event.EventType,
			Payload:   payload,
			Status:    outboxStatusPending,
			CreatedAt: event.OccurredAt,
		}).Error
	})
	if err != nil {
		return r.logError("ledger_repo_save_request_outbox_failed", err,
			"subject_id", strings.TrimSpace(request.SubjectID),
			"event_id", event.EventID,
		)
	}
	return nil
}

func (r *Repository) Halted(ctx context.Context) (bool, error) {
	var row controlModel
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, r.logError("ledger_repo_get_halted_failed", err)
	}
	return row.Halted, nil
}

func (r *Repository) SetHalted(ctx context.Context, halted bool) error {
	row := controlModel{ID: 1, Halted: halted}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{"halted": halted}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("ledger_repo_set_halted_failed", err, "halted", halted)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("ledger_repo_list_outbox_failed", err)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.ID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&outboxModel{}).
		Where("id = ?", outboxID).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt,
		}).Error
	if err != nil {
		return r.logError("ledger_repo_mark_outbox_failed", err, "outbox_id", outboxID)
	}
	return nil
}

func requestAssignments(row requestModel) map[string]any {
	return map[string]any{
		"data_hash":    row.DataHash,
		"status":       row.Status,
		"vote_count":   row.VoteCount,
		"score_sum":    row.ScoreSum,
		"expiry_block": row.ExpiryBlock,
		"submitted_at": row.SubmittedAt,
		"last_updated": row.LastUpdated,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "identity-verification/verification-ledger",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("ledger repository operation failed", fields...)
	return err
}

// SystemSequencer derives ledger height from wall clock seconds.
// Deployments fronted by a real block sequencer replace this adapter.
type SystemSequencer struct{}

func (SystemSequencer) Now(_ context.Context) (uint64, error) {
	return uint64(time.Now().UTC().Unix()), nil
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
