package postgresadapter

import (
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
)

type verifierModel struct {
	ID           string `gorm:"column:id;primaryKey;size:128"`
	Trusted      bool   `gorm:"column:trusted"`
	Stake        uint64 `gorm:"column:stake"`
	Reputation   uint32 `gorm:"column:reputation"`
	TotalVotes   uint64 `gorm:"column:total_votes"`
	CorrectVotes uint64 `gorm:"column:correct_votes"`
	RegisteredAt uint64 `gorm:"column:registered_at"`
	UpdatedAt    uint64 `gorm:"column:updated_at"`
}

func (verifierModel) TableName() string { return "verifiers" }

func verifierModelFromEntity(verifier entities.Verifier) verifierModel {
	return verifierModel{
		ID:           verifier.VerifierID,
		Trusted:      verifier.Trusted,
		Stake:        verifier.Stake,
		Reputation:   verifier.Reputation,
		TotalVotes:   verifier.TotalVotes,
		CorrectVotes: verifier.CorrectVotes,
		RegisteredAt: verifier.RegisteredAt,
		UpdatedAt:    verifier.UpdatedAt,
	}
}

func (m verifierModel) toEntity() entities.Verifier {
	return entities.Verifier{
		VerifierID:   m.ID,
		Trusted:      m.Trusted,
		Stake:        m.Stake,
		Reputation:   m.Reputation,
		TotalVotes:   m.TotalVotes,
		CorrectVotes: m.CorrectVotes,
		RegisteredAt: m.RegisteredAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Claim settlement reads the ledger-owned tables directly; columns mirror
// the verification-ledger adapter's models.
type requestOutcomeRow struct {
	SubjectID string `gorm:"column:subject_id;primaryKey;size:128"`
	Status    string `gorm:"column:status;size:16"`
}

func (requestOutcomeRow) TableName() string { return "verification_requests" }

type voteRecordRow struct {
	SubjectID     string `gorm:"column:subject_id;primaryKey;size:128"`
	VerifierID    string `gorm:"column:verifier_id;primaryKey;size:128"`
	Score         uint32 `gorm:"column:score"`
	RewardClaimed bool   `gorm:"column:reward_claimed"`
	ClaimedAt     uint64 `gorm:"column:claimed_at"`
}

func (voteRecordRow) TableName() string { return "verification_votes" }
