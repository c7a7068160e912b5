package commands

import (
	"context"
	"errors"
	"testing"

	"veridex/contexts/identity-verification/verifier-registry/adapters/memory"
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verifier-registry/domain/errors"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

func newRegistry(store *memory.Store) RegistryUseCase {
	return RegistryUseCase{
		Verifiers: store,
		Outcomes:  store,
		Sequencer: store,
	}
}

func TestRegisterCreatesNeutralVerifier(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newRegistry(store)

	verifier, err := uc.Register(context.Background(), RegisterCommand{
		VerifierID: "ver_1",
		Stake:      1500,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if verifier.Reputation != entities.ReputationNeutral {
		t.Fatalf("expected neutral reputation %d, got %d", entities.ReputationNeutral, verifier.Reputation)
	}
	if !verifier.Trusted {
		t.Fatalf("expected registered verifier to be trusted")
	}
	if verifier.TotalVotes != 0 || verifier.CorrectVotes != 0 {
		t.Fatalf("expected zero tallies, got %d/%d", verifier.CorrectVotes, verifier.TotalVotes)
	}
}

func TestRegisterRejectsStakeBelowMinimum(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newRegistry(store)

	_, err := uc.Register(context.Background(), RegisterCommand{
		VerifierID: "ver_1",
		Stake:      999,
	})
	if !errors.Is(err, domainerrors.ErrInsufficientStake) {
		t.Fatalf("expected insufficient stake, got %v", err)
	}
	if _, found, _ := store.GetVerifier(context.Background(), "ver_1"); found {
		t.Fatalf("failed registration must not persist a record")
	}
}

func TestRegisterAcceptsExactMinimum(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newRegistry(store)

	verifier, err := uc.Register(context.Background(), RegisterCommand{
		VerifierID: "ver_1",
		Stake:      entities.DefaultMinStake,
	})
	if err != nil {
		t.Fatalf("expected success at exact minimum, got %v", err)
	}
	if verifier.Stake != entities.DefaultMinStake {
		t.Fatalf("expected stake %d, got %d", entities.DefaultMinStake, verifier.Stake)
	}
}

func TestReRegisterDiscardsHistory(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID:   "ver_1",
		Trusted:      true,
		Stake:        5000,
		Reputation:   730,
		TotalVotes:   42,
		CorrectVotes: 30,
	}})
	uc := newRegistry(store)

	verifier, err := uc.Register(context.Background(), RegisterCommand{
		VerifierID: "ver_1",
		Stake:      2000,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if verifier.Reputation != entities.ReputationNeutral {
		t.Fatalf("re-registration must reset reputation, got %d", verifier.Reputation)
	}
	if verifier.TotalVotes != 0 || verifier.CorrectVotes != 0 {
		t.Fatalf("re-registration must reset tallies, got %d/%d", verifier.CorrectVotes, verifier.TotalVotes)
	}
	if verifier.Stake != 2000 {
		t.Fatalf("expected replaced stake 2000, got %d", verifier.Stake)
	}
}

func TestUnstakeReducesBalance(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      3000,
		Reputation: entities.ReputationNeutral,
	}})
	uc := newRegistry(store)

	verifier, err := uc.Unstake(context.Background(), UnstakeCommand{
		VerifierID: "ver_1",
		Amount:     2500,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if verifier.Stake != 500 {
		t.Fatalf("expected remaining stake 500, got %d", verifier.Stake)
	}
}

func TestUnstakeRejectsOverdraw(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      1000,
	}})
	uc := newRegistry(store)

	_, err := uc.Unstake(context.Background(), UnstakeCommand{
		VerifierID: "ver_1",
		Amount:     1001,
	})
	if !errors.Is(err, domainerrors.ErrInsufficientStake) {
		t.Fatalf("expected insufficient stake, got %v", err)
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Stake != 1000 {
		t.Fatalf("failed unstake must not move balance, got %d", verifier.Stake)
	}
}

func TestUnstakeUnknownVerifier(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newRegistry(store)

	_, err := uc.Unstake(context.Background(), UnstakeCommand{
		VerifierID: "ver_missing",
		Amount:     100,
	})
	if !errors.Is(err, domainerrors.ErrVerifierNotFound) {
		t.Fatalf("expected verifier not found, got %v", err)
	}
}

func TestAdjustReputationClampsAtCeiling(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: 995,
	}})
	uc := newRegistry(store)

	adjusted, err := uc.AdjustReputation(context.Background(), "ver_1", true)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !adjusted {
		t.Fatalf("expected adjustment to apply")
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Reputation != entities.ReputationCeiling {
		t.Fatalf("expected clamp at %d, got %d", entities.ReputationCeiling, verifier.Reputation)
	}
}

func TestAdjustReputationClampsAtFloor(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: 4,
	}})
	uc := newRegistry(store)

	if _, err := uc.AdjustReputation(context.Background(), "ver_1", false); err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Reputation != 0 {
		t.Fatalf("expected clamp at 0, got %d", verifier.Reputation)
	}
}

func TestAdjustReputationSkipsUnknownVerifier(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newRegistry(store)

	adjusted, err := uc.AdjustReputation(context.Background(), "ver_missing", true)
	if err != nil {
		t.Fatalf("missing verifier must not be an error, got %v", err)
	}
	if adjusted {
		t.Fatalf("missing verifier must report skipped adjustment")
	}
}

func TestClaimOutcomeCorrectVote(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: entities.ReputationNeutral,
	}})
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: ports.RequestOutcomeVerified})
	store.SetVoteRecord(ports.VoteProjection{SubjectID: "sub_1", VerifierID: "ver_1", Score: 90})
	uc := newRegistry(store)

	result, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{
		VerifierID: "ver_1",
		SubjectID:  "sub_1",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !result.Correct || !result.Adjusted {
		t.Fatalf("expected correct adjusted claim, got %+v", result)
	}
	if result.Reputation != entities.ReputationNeutral+10 {
		t.Fatalf("expected reputation %d, got %d", entities.ReputationNeutral+10, result.Reputation)
	}
}

func TestClaimOutcomeIncorrectVoteOnRejection(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: entities.ReputationNeutral,
	}})
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: ports.RequestOutcomeRejected})
	store.SetVoteRecord(ports.VoteProjection{SubjectID: "sub_1", VerifierID: "ver_1", Score: 50})
	uc := newRegistry(store)

	result, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{
		VerifierID: "ver_1",
		SubjectID:  "sub_1",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if result.Correct {
		t.Fatalf("score at the rejection bound must count incorrect on a rejected outcome")
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Reputation != entities.ReputationNeutral-10 {
		t.Fatalf("expected reputation %d, got %d", entities.ReputationNeutral-10, verifier.Reputation)
	}
}

func TestClaimOutcomeRejectsDoubleClaim(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: entities.ReputationNeutral,
	}})
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: ports.RequestOutcomeVerified})
	store.SetVoteRecord(ports.VoteProjection{SubjectID: "sub_1", VerifierID: "ver_1", Score: 90})
	uc := newRegistry(store)

	if _, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"}); err != nil {
		t.Fatalf("first claim must succeed, got %v", err)
	}
	_, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrAlreadyClaimed) {
		t.Fatalf("expected already claimed, got %v", err)
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Reputation != entities.ReputationNeutral+10 {
		t.Fatalf("second claim must not move reputation again, got %d", verifier.Reputation)
	}
}

type failingSettleStore struct {
	*memory.Store
	failures int
}

func (s *failingSettleStore) SettleClaim(ctx context.Context, subjectID string, verifierID string, claimedAt uint64, verifier *entities.Verifier) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("settlement write failed")
	}
	return s.Store.SettleClaim(ctx, subjectID, verifierID, claimedAt, verifier)
}

func TestClaimOutcomeFailedSettlementLeavesVoteClaimable(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
		Reputation: entities.ReputationNeutral,
	}})
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: ports.RequestOutcomeVerified})
	store.SetVoteRecord(ports.VoteProjection{SubjectID: "sub_1", VerifierID: "ver_1", Score: 90})
	uc := RegistryUseCase{
		Verifiers: store,
		Outcomes:  &failingSettleStore{Store: store, failures: 1},
		Sequencer: store,
	}

	if _, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"}); err == nil {
		t.Fatalf("expected the failed settlement write to surface")
	}
	vote, _, _ := store.GetVoteRecord(context.Background(), "sub_1", "ver_1")
	if vote.RewardClaimed {
		t.Fatalf("failed settlement must not mark the vote claimed")
	}
	verifier, _, _ := store.GetVerifier(context.Background(), "ver_1")
	if verifier.Reputation != entities.ReputationNeutral {
		t.Fatalf("failed settlement must not move reputation, got %d", verifier.Reputation)
	}

	result, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"})
	if err != nil {
		t.Fatalf("retry after failed settlement must succeed, got %v", err)
	}
	if result.Reputation != entities.ReputationNeutral+10 {
		t.Fatalf("expected reputation %d after retry, got %d", entities.ReputationNeutral+10, result.Reputation)
	}
	vote, _, _ = store.GetVoteRecord(context.Background(), "sub_1", "ver_1")
	if !vote.RewardClaimed {
		t.Fatalf("successful retry must mark the vote claimed")
	}
}

func TestClaimOutcomeRequiresTerminalStatus(t *testing.T) {
	store := memory.NewStore([]entities.Verifier{{
		VerifierID: "ver_1",
		Trusted:    true,
		Stake:      2000,
	}})
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: "review"})
	store.SetVoteRecord(ports.VoteProjection{SubjectID: "sub_1", VerifierID: "ver_1", Score: 70})
	uc := newRegistry(store)

	_, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrOutcomeNotFinal) {
		t.Fatalf("expected outcome not final, got %v", err)
	}
}

func TestClaimOutcomeMissingVote(t *testing.T) {
	store := memory.NewStore(nil)
	store.SetRequestOutcome(ports.RequestProjection{SubjectID: "sub_1", Status: ports.RequestOutcomeVerified})
	uc := newRegistry(store)

	_, err := uc.ClaimOutcome(context.Background(), ClaimOutcomeCommand{VerifierID: "ver_1", SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrVoteNotFound) {
		t.Fatalf("expected vote not found, got %v", err)
	}
}
