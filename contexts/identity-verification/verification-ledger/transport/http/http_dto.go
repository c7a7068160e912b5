package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitRequest struct {
	DataHash string `json:"data_hash"`
}

type VoteRequest struct {
	Score uint32 `json:"score"`
}

type HaltRequest struct {
	Halted bool `json:"halted"`
}

type RequestResponse struct {
	SubjectID       string `json:"subject_id"`
	DataHash        string `json:"data_hash"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status,omitempty"`
	VoteCount       uint32 `json:"vote_count"`
	ScoreSum        uint64 `json:"score_sum"`
	Average         uint32 `json:"average"`
	ExpiryBlock     uint64 `json:"expiry_block"`
	LastUpdated     uint64 `json:"last_updated"`
}

type VoteResponse struct {
	SubjectID  string `json:"subject_id"`
	VerifierID string `json:"verifier_id"`
	Score      uint32 `json:"score"`
	VotedAt    uint64 `json:"voted_at"`
}

type VoteListResponse struct {
	SubjectID string         `json:"subject_id"`
	Items     []VoteResponse `json:"items"`
}

type FinalizeResponse struct {
	SubjectID   string `json:"subject_id"`
	Status      string `json:"status"`
	Average     uint32 `json:"average"`
	ExpiryBlock uint64 `json:"expiry_block,omitempty"`
}
