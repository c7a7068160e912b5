package postgresadapter

import "veridex/contexts/identity-verification/appeal-resolver/domain/entities"

type appealModel struct {
	SubjectID       string `gorm:"column:subject_id;primaryKey;size:128"`
	ReasonHash      string `gorm:"column:reason_hash;size:64"`
	Status          string `gorm:"column:status;size:16;index"`
	HandlerID       string `gorm:"column:handler_id;size:128"`
	FiledAt         uint64 `gorm:"column:filed_at"`
	ResolutionBlock uint64 `gorm:"column:resolution_block"`
}

func (appealModel) TableName() string { return "verification_appeals" }

func appealModelFromEntity(appeal entities.Appeal) appealModel {
	return appealModel{
		SubjectID:       appeal.SubjectID,
		ReasonHash:      appeal.ReasonHash,
		Status:          string(appeal.Status),
		HandlerID:       appeal.HandlerID,
		FiledAt:         appeal.FiledAt,
		ResolutionBlock: appeal.ResolutionBlock,
	}
}

func (m appealModel) toEntity() entities.Appeal {
	return entities.Appeal{
		SubjectID:       m.SubjectID,
		ReasonHash:      m.ReasonHash,
		Status:          entities.AppealStatus(m.Status),
		HandlerID:       m.HandlerID,
		FiledAt:         m.FiledAt,
		ResolutionBlock: m.ResolutionBlock,
	}
}

// requestRecordRow is a read/override projection of the ledger-owned
// requests table. The resolver never migrates it.
type requestRecordRow struct {
	SubjectID   string `gorm:"column:subject_id"`
	Status      string `gorm:"column:status"`
	ExpiryBlock uint64 `gorm:"column:expiry_block"`
	LastUpdated uint64 `gorm:"column:last_updated"`
}

func (requestRecordRow) TableName() string { return "verification_requests" }
