package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	"veridex/contexts/identity-verification/appeal-resolver/ports"

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

// Migrate creates the appeal table. The requests table belongs to the
// ledger module and is migrated there.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&appealModel{})
}

func (r *Repository) GetAppeal(ctx context.Context, subjectID string) (entities.Appeal, bool, error) {
	var row appealModel
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Appeal{}, false, nil
		}
		return entities.Appeal{}, false, r.logError("appeal_repo_get_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) SaveAppeal(ctx context.Context, appeal entities.Appeal) error {
	row := appealModelFromEntity(appeal)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_id"}},
		DoUpdates: clause.Assignments(appealAssignments(row)),
	}).Create(&row).Error
	if err != nil {
		return r.logError("appeal_repo_save_failed", err,
			"subject_id", strings.TrimSpace(appeal.SubjectID),
		)
	}
	return nil
}

// ResolveAppeal persists the appeal transition and, on approval, the
// request override in one transaction.
func (r *Repository) ResolveAppeal(ctx context.Context, appeal entities.Appeal, override *ports.RequestOverride) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := appealModelFromEntity(appeal)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subject_id"}},
			DoUpdates: clause.Assignments(appealAssignments(row)),
		}).Create(&row).Error; err != nil {
			return err
		}
		if override == nil {
			return nil
		}
		return tx.Model(&requestRecordRow{}).
			Where("subject_id = ?", strings.TrimSpace(override.SubjectID)).
			Updates(map[string]any{
				"status":       override.Status,
				"expiry_block": override.ExpiryBlock,
				"last_updated": override.LastUpdated,
			}).Error
	})
	if err != nil {
		return r.logError("appeal_repo_resolve_failed", err,
			"subject_id", strings.TrimSpace(appeal.SubjectID),
		)
	}
	return nil
}

func (r *Repository) GetRequestRecord(ctx context.Context, subjectID string) (ports.RequestRecord, bool, error) {
	var row requestRecordRow
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", strings.TrimSpace(subjectID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RequestRecord{}, false, nil
		}
		return ports.RequestRecord{}, false, r.logError("appeal_repo_get_request_failed", err,
			"subject_id", strings.TrimSpace(subjectID),
		)
	}
	return ports.RequestRecord{
		SubjectID:   row.SubjectID,
		Status:      row.Status,
		ExpiryBlock: row.ExpiryBlock,
	}, true, nil
}

func appealAssignments(row appealModel) map[string]any {
	return map[string]any{
		"reason_hash":      row.ReasonHash,
		"status":           row.Status,
		"handler_id":       row.HandlerID,
		"filed_at":         row.FiledAt,
		"resolution_block": row.ResolutionBlock,
	}
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "identity-verification/appeal-resolver",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("appeal repository operation failed", fields...)
	return err
}

// SystemSequencer derives ledger height from wall clock seconds.
type SystemSequencer struct{}

func (SystemSequencer) Now(_ context.Context) (uint64, error) {
	return uint64(time.Now().UTC().Unix()), nil
}
