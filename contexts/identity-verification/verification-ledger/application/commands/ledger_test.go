package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"veridex/contexts/identity-verification/verification-ledger/adapters/memory"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	domainerrors "veridex/contexts/identity-verification/verification-ledger/domain/errors"
)

type directoryStub map[string]bool

func (d directoryStub) IsAuthorized(_ context.Context, verifierID string) (bool, error) {
	return d[verifierID], nil
}

const adminID = "admin_1"

func testHash() string {
	return strings.Repeat("ab", 32)
}

func newLedger(store *memory.Store, directory directoryStub) LedgerUseCase {
	return LedgerUseCase{
		Requests:  store,
		Control:   store,
		Verifiers: directory,
		Sequencer: store,
		IDGen:     store,
		AdminID:   adminID,
	}
}

func submitPending(t *testing.T, uc LedgerUseCase, subjectID string) entities.VerificationRequest {
	t.Helper()
	request, err := uc.Submit(context.Background(), SubmitCommand{
		SubjectID: subjectID,
		DataHash:  testHash(),
	})
	if err != nil {
		t.Fatalf("submit %s: %v", subjectID, err)
	}
	return request
}

func castVote(t *testing.T, uc LedgerUseCase, subjectID string, verifierID string, score uint32) {
	t.Helper()
	if _, err := uc.Vote(context.Background(), VoteCommand{
		SubjectID:  subjectID,
		VerifierID: verifierID,
		Score:      score,
	}); err != nil {
		t.Fatalf("vote %s/%s: %v", subjectID, verifierID, err)
	}
}

func TestSubmitOpensPendingRequest(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{})

	request := submitPending(t, uc, "sub_1")
	if request.Status != entities.StatusPending {
		t.Fatalf("expected pending, got %s", request.Status)
	}
	if request.VoteCount != 0 || request.ScoreSum != 0 {
		t.Fatalf("expected zeroed aggregates, got %d/%d", request.VoteCount, request.ScoreSum)
	}
	if request.ExpiryBlock != 0 {
		t.Fatalf("expected no expiry on fresh submission, got %d", request.ExpiryBlock)
	}
}

func TestSubmitRejectsMalformedCommitment(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{})

	for _, hash := range []string{"", "abc", strings.Repeat("g", 64), strings.Repeat("ab", 33)} {
		_, err := uc.Submit(context.Background(), SubmitCommand{SubjectID: "sub_1", DataHash: hash})
		if !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("hash %q: expected invalid request, got %v", hash, err)
		}
	}
}

func TestSubmitConflictsWithActiveRequest(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{})

	submitPending(t, uc, "sub_1")
	_, err := uc.Submit(context.Background(), SubmitCommand{SubjectID: "sub_1", DataHash: testHash()})
	if !errors.Is(err, domainerrors.ErrActiveRequest) {
		t.Fatalf("expected active request conflict, got %v", err)
	}
}

func TestSubmitAllowedOverRejectedRequest(t *testing.T) {
	store := memory.NewStore([]entities.VerificationRequest{{
		SubjectID: "sub_1",
		DataHash:  testHash(),
		Status:    entities.StatusRejected,
		VoteCount: 3,
		ScoreSum:  90,
	}})
	uc := newLedger(store, directoryStub{})

	request := submitPending(t, uc, "sub_1")
	if request.Status != entities.StatusPending {
		t.Fatalf("expected pending after resubmission, got %s", request.Status)
	}
	if request.VoteCount != 0 || request.ScoreSum != 0 {
		t.Fatalf("resubmission must zero aggregates, got %d/%d", request.VoteCount, request.ScoreSum)
	}
}

func TestSubmitAllowedOverEffectivelyExpiredRequest(t *testing.T) {
	store := memory.NewStore([]entities.VerificationRequest{{
		SubjectID:   "sub_1",
		DataHash:    testHash(),
		Status:      entities.StatusVerified,
		ExpiryBlock: 50,
	}})
	store.SetBlock(100)
	uc := newLedger(store, directoryStub{})

	request := submitPending(t, uc, "sub_1")
	if request.ExpiryBlock != 0 {
		t.Fatalf("resubmission must clear the stale expiry, got %d", request.ExpiryBlock)
	}
}

func TestSubmitBlockedByEmergencyHalt(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{})

	if err := uc.SetEmergencyHalt(context.Background(), HaltCommand{ActorID: adminID, Halted: true}); err != nil {
		t.Fatalf("halt toggle: %v", err)
	}
	_, err := uc.Submit(context.Background(), SubmitCommand{SubjectID: "sub_1", DataHash: testHash()})
	if !errors.Is(err, domainerrors.ErrEmergencyShutdown) {
		t.Fatalf("expected emergency shutdown, got %v", err)
	}
}

func TestRenewRequiresExpiredStatus(t *testing.T) {
	store := memory.NewStore([]entities.VerificationRequest{{
		SubjectID:   "sub_1",
		DataHash:    testHash(),
		Status:      entities.StatusVerified,
		ExpiryBlock: 500,
	}})
	store.SetBlock(100)
	uc := newLedger(store, directoryStub{})

	_, err := uc.Renew(context.Background(), RenewCommand{SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrNotExpired) {
		t.Fatalf("expected not expired, got %v", err)
	}
	_, err = uc.Renew(context.Background(), RenewCommand{SubjectID: "sub_missing"})
	if !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}
}

func TestRenewResetsCycleAndKeepsCommitment(t *testing.T) {
	store := memory.NewStore([]entities.VerificationRequest{{
		SubjectID:   "sub_1",
		DataHash:    testHash(),
		Status:      entities.StatusVerified,
		VoteCount:   3,
		ScoreSum:    270,
		ExpiryBlock: 50,
	}})
	store.SetBlock(100)
	uc := newLedger(store, directoryStub{})

	request, err := uc.Renew(context.Background(), RenewCommand{SubjectID: "sub_1"})
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	if request.Status != entities.StatusPending {
		t.Fatalf("expected pending after renewal, got %s", request.Status)
	}
	if request.VoteCount != 0 || request.ScoreSum != 0 {
		t.Fatalf("renewal must reset aggregates, got %d/%d", request.VoteCount, request.ScoreSum)
	}
	if request.DataHash != testHash() {
		t.Fatalf("renewal must keep the stored commitment")
	}
}

func TestVoterStaysSpentAcrossRenewal(t *testing.T) {
	store := memory.NewStore(nil)
	directory := directoryStub{"ver_1": true}
	uc := newLedger(store, directory)

	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 90)

	// Force the request into an expired verification, then renew.
	request, _, _ := store.GetRequest(context.Background(), "sub_1")
	request.Status = entities.StatusVerified
	request.ExpiryBlock = 10
	if err := store.SaveRequest(context.Background(), request); err != nil {
		t.Fatalf("seed expired request: %v", err)
	}
	store.SetBlock(100)
	if _, err := uc.Renew(context.Background(), RenewCommand{SubjectID: "sub_1"}); err != nil {
		t.Fatalf("renew: %v", err)
	}

	_, err := uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_1", VerifierID: "ver_1", Score: 80})
	if !errors.Is(err, domainerrors.ErrAlreadyVoted) {
		t.Fatalf("expected spent voter after renewal, got %v", err)
	}
}

func TestVoteLandsOnTerminalRequest(t *testing.T) {
	cases := []struct {
		name   string
		scores []uint32
		want   entities.RequestStatus
	}{
		{"verified request still takes ballots", []uint32{90, 90, 90}, entities.StatusVerified},
		{"rejected request still takes ballots", []uint32{40, 40, 40}, entities.StatusRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore(nil)
			directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true, "ver_4": true}
			uc := newLedger(store, directory)
			submitPending(t, uc, "sub_1")
			for i, score := range tc.scores {
				castVote(t, uc, "sub_1", fmt.Sprintf("ver_%d", i+1), score)
			}
			result, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
			if err != nil {
				t.Fatalf("finalize: %v", err)
			}
			if result.Status != tc.want {
				t.Fatalf("expected %s before the late ballot, got %s", tc.want, result.Status)
			}

			castVote(t, uc, "sub_1", "ver_4", 60)

			request, _, _ := store.GetRequest(context.Background(), "sub_1")
			if request.Status != tc.want {
				t.Fatalf("late ballot must not move the status, got %s", request.Status)
			}
			if request.VoteCount != 4 {
				t.Fatalf("expected the late ballot counted, got %d votes", request.VoteCount)
			}
			wantSum := uint64(60)
			for _, score := range tc.scores {
				wantSum += uint64(score)
			}
			if request.ScoreSum != wantSum {
				t.Fatalf("expected score sum %d, got %d", wantSum, request.ScoreSum)
			}
		})
	}
}

func TestVotePreconditionOrder(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{"ver_ok": true})
	submitPending(t, uc, "sub_1")

	// Unauthorized verifier is refused before the score is inspected.
	_, err := uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_1", VerifierID: "ver_bad", Score: 101})
	if !errors.Is(err, domainerrors.ErrUnauthorizedVerifier) {
		t.Fatalf("expected unauthorized verifier, got %v", err)
	}

	_, err = uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_1", VerifierID: "ver_ok", Score: 101})
	if !errors.Is(err, domainerrors.ErrInvalidScore) {
		t.Fatalf("expected invalid score, got %v", err)
	}

	_, err = uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_missing", VerifierID: "ver_ok", Score: 50})
	if !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}
}

func TestVoteBlockedByEmergencyHalt(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{"ver_1": true})
	submitPending(t, uc, "sub_1")

	if err := uc.SetEmergencyHalt(context.Background(), HaltCommand{ActorID: adminID, Halted: true}); err != nil {
		t.Fatalf("halt toggle: %v", err)
	}
	_, err := uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_1", VerifierID: "ver_1", Score: 50})
	if !errors.Is(err, domainerrors.ErrEmergencyShutdown) {
		t.Fatalf("expected emergency shutdown, got %v", err)
	}

	if err := uc.SetEmergencyHalt(context.Background(), HaltCommand{ActorID: adminID, Halted: false}); err != nil {
		t.Fatalf("halt untoggle: %v", err)
	}
	castVote(t, uc, "sub_1", "ver_1", 50)
}

func TestVoteRejectsDuplicateBallot(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{"ver_1": true})
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 70)

	_, err := uc.Vote(context.Background(), VoteCommand{SubjectID: "sub_1", VerifierID: "ver_1", Score: 90})
	if !errors.Is(err, domainerrors.ErrAlreadyVoted) {
		t.Fatalf("expected already voted, got %v", err)
	}
	request, _, _ := store.GetRequest(context.Background(), "sub_1")
	if request.VoteCount != 1 || request.ScoreSum != 70 {
		t.Fatalf("duplicate ballot must not touch aggregates, got %d/%d", request.VoteCount, request.ScoreSum)
	}
}

func TestVoteFoldsIntoAggregates(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{"ver_1": true, "ver_2": true})
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 80)
	castVote(t, uc, "sub_1", "ver_2", 90)

	request, _, _ := store.GetRequest(context.Background(), "sub_1")
	if request.VoteCount != 2 {
		t.Fatalf("expected 2 votes, got %d", request.VoteCount)
	}
	if request.ScoreSum != 170 {
		t.Fatalf("expected score sum 170, got %d", request.ScoreSum)
	}
}

func TestFinalizeRequiresThresholdBeforeDivision(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{"ver_1": true, "ver_2": true})
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 90)
	castVote(t, uc, "sub_1", "ver_2", 90)

	_, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrInsufficientVotes) {
		t.Fatalf("expected insufficient votes, got %v", err)
	}
}

func TestFinalizeVerifiedSetsExpiry(t *testing.T) {
	store := memory.NewStore(nil)
	directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true}
	uc := newLedger(store, directory)
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 85)
	castVote(t, uc, "sub_1", "ver_2", 85)
	castVote(t, uc, "sub_1", "ver_3", 85)
	store.SetBlock(40)

	result, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.Status != entities.StatusVerified {
		t.Fatalf("expected verified at average 85, got %s", result.Status)
	}
	if result.ExpiryBlock != 40+52560 {
		t.Fatalf("expected expiry %d, got %d", 40+52560, result.ExpiryBlock)
	}
}

func TestFinalizeFloorAverageBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		scores []uint32
		want   entities.RequestStatus
	}{
		{"floor below approval stays review", []uint32{85, 85, 84}, entities.StatusReview},
		{"average at rejection bound escalates", []uint32{50, 50, 50}, entities.StatusReview},
		{"average below rejection bound rejects", []uint32{49, 49, 49}, entities.StatusRejected},
		{"floor keeps just-under-fifty rejected", []uint32{50, 50, 49}, entities.StatusRejected},
		{"average at approval bound verifies", []uint32{85, 85, 85}, entities.StatusVerified},
	}
	verifiers := []string{"ver_1", "ver_2", "ver_3"}
	directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewStore(nil)
			uc := newLedger(store, directory)
			submitPending(t, uc, "sub_1")
			for i, score := range tc.scores {
				castVote(t, uc, "sub_1", verifiers[i], score)
			}
			result, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
			if err != nil {
				t.Fatalf("finalize: %v", err)
			}
			if result.Status != tc.want {
				t.Fatalf("scores %v: expected %s, got %s (average %d)", tc.scores, tc.want, result.Status, result.Average)
			}
		})
	}
}

func TestFinalizeTerminalStatusRejectsRerun(t *testing.T) {
	store := memory.NewStore(nil)
	directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true}
	uc := newLedger(store, directory)
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 90)
	castVote(t, uc, "sub_1", "ver_2", 90)
	castVote(t, uc, "sub_1", "ver_3", 90)

	if _, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"}); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	_, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
	if !errors.Is(err, domainerrors.ErrAlreadyFinalized) {
		t.Fatalf("expected already finalized, got %v", err)
	}
}

func TestFinalizeReviewPromotesOnLaterVotes(t *testing.T) {
	store := memory.NewStore(nil)
	directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true, "ver_4": true, "ver_5": true}
	uc := newLedger(store, directory)
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 80)
	castVote(t, uc, "sub_1", "ver_2", 80)
	castVote(t, uc, "sub_1", "ver_3", 80)

	result, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
	if err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if result.Status != entities.StatusReview {
		t.Fatalf("expected review at average 80, got %s", result.Status)
	}

	// Review requests keep accepting ballots and re-finalize cumulatively.
	castVote(t, uc, "sub_1", "ver_4", 100)
	castVote(t, uc, "sub_1", "ver_5", 100)
	result, err = uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"})
	if err != nil {
		t.Fatalf("second finalize: %v", err)
	}
	if result.Status != entities.StatusVerified {
		t.Fatalf("expected promotion to verified, got %s (average %d)", result.Status, result.Average)
	}
}

func TestFinalizeWritesOutcomeEvent(t *testing.T) {
	store := memory.NewStore(nil)
	directory := directoryStub{"ver_1": true, "ver_2": true, "ver_3": true}
	uc := newLedger(store, directory)
	submitPending(t, uc, "sub_1")
	castVote(t, uc, "sub_1", "ver_1", 40)
	castVote(t, uc, "sub_1", "ver_2", 40)
	castVote(t, uc, "sub_1", "ver_3", 40)

	if _, err := uc.Finalize(context.Background(), FinalizeCommand{SubjectID: "sub_1"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}
	if pending[0].EventType != "verification.finalized" {
		t.Fatalf("expected finalized event, got %s", pending[0].EventType)
	}
}

func TestSetEmergencyHaltRequiresAdmin(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newLedger(store, directoryStub{})

	err := uc.SetEmergencyHalt(context.Background(), HaltCommand{ActorID: "intruder", Halted: true})
	if !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}
	halted, _ := store.Halted(context.Background())
	if halted {
		t.Fatalf("refused toggle must not change the flag")
	}
}
