package queries

import (
	"context"
	"errors"
	"testing"

	"veridex/contexts/identity-verification/verifier-registry/adapters/memory"
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
)

func TestIsAuthorizedRequiresTrustAndStake(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{
		{VerifierID: "ver_staked", Trusted: true, Stake: 1000},
		{VerifierID: "ver_poor", Trusted: true, Stake: 999},
		{VerifierID: "ver_untrusted", Trusted: false, Stake: 5000},
	})
	q := VerifierQueries{Verifiers: store}

	cases := []struct {
		verifierID string
		want       bool
	}{
		{"ver_staked", true},
		{"ver_poor", false},
		{"ver_untrusted", false},
		{"ver_missing", false},
	}
	for _, tc := range cases {
		got, err := q.IsAuthorized(context.Background(), tc.verifierID)
		if err != nil {
			t.Fatalf("%s: expected success, got error: %v", tc.verifierID, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected authorized=%v, got %v", tc.verifierID, tc.want, got)
		}
	}
}

func TestGetVerifierMissingRecord(t *testing.T) {
	store := memory.NewStore(nil)
	q := VerifierQueries{Verifiers: store}

	_, err := q.GetVerifier(context.Background(), "ver_missing")
	if !errors.Is(err, domainerrors.ErrVerifierNotFound) {
		t.Fatalf("expected verifier not found, got %v", err)
	}
}
