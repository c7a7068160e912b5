package errors

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid ledger input")
	ErrEmergencyShutdown    = errors.New("ledger is halted")
	ErrRequestNotFound      = errors.New("verification request not found")
	ErrActiveRequest        = errors.New("request already active for subject")
	ErrNotExpired           = errors.New("request is not expired")
	ErrUnauthorizedVerifier = errors.New("verifier is not authorized")
	ErrInvalidScore         = errors.New("score exceeds maximum")
	ErrAlreadyVoted         = errors.New("verifier already voted for subject")
	ErrInsufficientVotes    = errors.New("not enough votes to finalize")
	ErrAlreadyFinalized     = errors.New("request status is terminal")
	ErrNotAdmin             = errors.New("caller is not the administrator")

	// ErrVerificationExpired is reserved: it belongs to the declared failure
	// taxonomy but no operation raises it today.
	ErrVerificationExpired = errors.New("verification expired")
)
