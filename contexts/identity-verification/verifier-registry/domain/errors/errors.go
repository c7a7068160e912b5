package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid registry input")
	ErrInsufficientStake = errors.New("stake below required bound")
	ErrVerifierNotFound  = errors.New("verifier not found")
	ErrVoteNotFound      = errors.New("vote not found")
	ErrRequestNotFound   = errors.New("verification request not found")
	ErrOutcomeNotFinal   = errors.New("verification outcome is not final")
	ErrAlreadyClaimed    = errors.New("vote outcome already claimed")
)
