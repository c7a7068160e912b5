package postgresadapter

import (
	"encoding/json"
	"time"

	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
)

type requestModel struct {
	SubjectID   string `gorm:"column:subject_id;primaryKey;size:128"`
	DataHash    string `gorm:"column:data_hash;size:64"`
	Status      string `gorm:"column:status;size:16;index"`
	VoteCount   uint32 `gorm:"column:vote_count"`
	ScoreSum    uint64 `gorm:"column:score_sum"`
	ExpiryBlock uint64 `gorm:"column:expiry_block"`
	SubmittedAt uint64 `gorm:"column:submitted_at"`
	LastUpdated uint64 `gorm:"column:last_updated"`
}

func (requestModel) TableName() string { return "verification_requests" }

func requestModelFromEntity(request entities.VerificationRequest) requestModel {
	return requestModel{
		SubjectID:   request.SubjectID,
		DataHash:    request.DataHash,
		Status:      string(request.Status),
		VoteCount:   request.VoteCount,
		ScoreSum:    request.ScoreSum,
		ExpiryBlock: request.ExpiryBlock,
		SubmittedAt: request.SubmittedAt,
		LastUpdated: request.LastUpdated,
	}
}

func (m requestModel) toEntity() entities.VerificationRequest {
	return entities.VerificationRequest{
		SubjectID:   m.SubjectID,
		DataHash:    m.DataHash,
		Status:      entities.RequestStatus(m.Status),
		VoteCount:   m.VoteCount,
		ScoreSum:    m.ScoreSum,
		ExpiryBlock: m.ExpiryBlock,
		SubmittedAt: m.SubmittedAt,
		LastUpdated: m.LastUpdated,
	}
}

type voteModel struct {
	SubjectID     string `gorm:"column:subject_id;primaryKey;size:128"`
	VerifierID    string `gorm:"column:verifier_id;primaryKey;size:128"`
	Score         uint32 `gorm:"column:score"`
	VotedAt       uint64 `gorm:"column:voted_at"`
	RewardClaimed bool   `gorm:"column:reward_claimed"`
	ClaimedAt     uint64 `gorm:"column:claimed_at"`
}

func (voteModel) TableName() string { return "verification_votes" }

func voteModelFromEntity(vote entities.Vote) voteModel {
	return voteModel{
		SubjectID:     vote.SubjectID,
		VerifierID:    vote.VerifierID,
		Score:         vote.Score,
		VotedAt:       vote.VotedAt,
		RewardClaimed: vote.RewardClaimed,
		ClaimedAt:     vote.ClaimedAt,
	}
}

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		SubjectID:     m.SubjectID,
		VerifierID:    m.VerifierID,
		Score:         m.Score,
		VotedAt:       m.VotedAt,
		RewardClaimed: m.RewardClaimed,
		ClaimedAt:     m.ClaimedAt,
	}
}

type outboxModel struct {
	ID          string          `gorm:"column:id;primaryKey;size:64"`
	EventType   string          `gorm:"column:event_type;size:64;index"`
	Payload     json.RawMessage `gorm:"column:payload;type:jsonb"`
	Status      string          `gorm:"column:status;size:16;index"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	PublishedAt *time.Time      `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "ledger_outbox" }

// controlModel is the single-row emergency-halt flag.
type controlModel struct {
	ID     uint8 `gorm:"column:id;primaryKey"`
	Halted bool  `gorm:"column:halted"`
}

func (controlModel) TableName() string { return "ledger_control" }
