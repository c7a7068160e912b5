package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Stake uint64 `json:"stake"`
}

type UnstakeRequest struct {
	Amount uint64 `json:"amount"`
}

type ClaimOutcomeRequest struct {
	SubjectID string `json:"subject_id"`
}

type VerifierResponse struct {
	VerifierID   string `json:"verifier_id"`
	Trusted      bool   `json:"trusted"`
	Stake        uint64 `json:"stake"`
	Reputation   uint32 `json:"reputation"`
	TotalVotes   uint64 `json:"total_votes"`
	CorrectVotes uint64 `json:"correct_votes"`
	Authorized   bool   `json:"authorized"`
}

type ClaimOutcomeResponse struct {
	SubjectID  string `json:"subject_id"`
	VerifierID string `json:"verifier_id"`
	Correct    bool   `json:"correct"`
	Adjusted   bool   `json:"adjusted"`
	Reputation uint32 `json:"reputation"`
}
