package entities

import "testing"

func TestEffectiveStatusExpiresLazily(t *testing.T) {
	request := VerificationRequest{
		SubjectID:   "sub_1",
		Status:      StatusVerified,
		ExpiryBlock: 100,
	}
	if got := request.EffectiveStatus(100); got != StatusVerified {
		t.Fatalf("at the expiry height the request is still valid, got %s", got)
	}
	if got := request.EffectiveStatus(101); got != StatusExpired {
		t.Fatalf("past the expiry height the request reads expired, got %s", got)
	}
	if request.Status != StatusVerified {
		t.Fatalf("expiry is derived, stored status must stay %s", StatusVerified)
	}
}

func TestEffectiveStatusIgnoresZeroExpiry(t *testing.T) {
	request := VerificationRequest{Status: StatusVerified}
	if got := request.EffectiveStatus(1 << 40); got != StatusVerified {
		t.Fatalf("zero expiry never lapses, got %s", got)
	}
}

func TestEffectiveStatusOnlyAppliesToVerified(t *testing.T) {
	request := VerificationRequest{Status: StatusRejected, ExpiryBlock: 10}
	if got := request.EffectiveStatus(100); got != StatusRejected {
		t.Fatalf("non-verified statuses never expire, got %s", got)
	}
}

func TestAverageGuardsZeroCount(t *testing.T) {
	request := VerificationRequest{}
	if got := request.Average(); got != 0 {
		t.Fatalf("zero-vote average must be 0, got %d", got)
	}
	request = VerificationRequest{VoteCount: 3, ScoreSum: 254}
	if got := request.Average(); got != 84 {
		t.Fatalf("expected floor average 84, got %d", got)
	}
}
