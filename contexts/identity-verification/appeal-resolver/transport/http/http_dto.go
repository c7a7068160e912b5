package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FileAppealRequest struct {
	ReasonHash string `json:"reason_hash"`
}

type ProcessAppealRequest struct {
	Approve bool `json:"approve"`
}

type AppealResponse struct {
	SubjectID       string `json:"subject_id"`
	ReasonHash      string `json:"reason_hash"`
	Status          string `json:"status"`
	HandlerID       string `json:"handler_id,omitempty"`
	FiledAt         uint64 `json:"filed_at"`
	ResolutionBlock uint64 `json:"resolution_block,omitempty"`
}
