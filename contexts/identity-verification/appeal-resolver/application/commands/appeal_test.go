package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"veridex/contexts/identity-verification/appeal-resolver/adapters/memory"
	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	domainerrors "veridex/contexts/identity-verification/appeal-resolver/domain/errors"
	"veridex/contexts/identity-verification/appeal-resolver/ports"
)

const adminID = "admin_1"

func reasonHash() string {
	return strings.Repeat("cd", 32)
}

func newResolver(store *memory.Store) AppealUseCase {
	return AppealUseCase{
		Appeals:   store,
		Requests:  store,
		Sequencer: store,
		AdminID:   adminID,
	}
}

func seedRejected(store *memory.Store, subjectID string) {
	store.SetRequestRecord(ports.RequestRecord{
		SubjectID: subjectID,
		Status:    ports.RequestStatusRejected,
	})
}

func fileAppeal(t *testing.T, uc AppealUseCase, subjectID string) entities.Appeal {
	t.Helper()
	appeal, err := uc.File(context.Background(), FileCommand{
		CallerID:   subjectID,
		SubjectID:  subjectID,
		ReasonHash: reasonHash(),
	})
	if err != nil {
		t.Fatalf("file appeal %s: %v", subjectID, err)
	}
	return appeal
}

func TestFileOpensAppealForRejectedSubject(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)

	appeal := fileAppeal(t, uc, "sub_1")
	if appeal.Status != entities.StatusOpen {
		t.Fatalf("expected open appeal, got %s", appeal.Status)
	}
	if appeal.HandlerID != "" || appeal.ResolutionBlock != 0 {
		t.Fatalf("fresh appeal must carry no resolution data, got %+v", appeal)
	}
}

func TestFileRequiresCallerToBeSubject(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)

	_, err := uc.File(context.Background(), FileCommand{
		CallerID:   "someone_else",
		SubjectID:  "sub_1",
		ReasonHash: reasonHash(),
	})
	if !errors.Is(err, domainerrors.ErrNotSubject) {
		t.Fatalf("expected not subject, got %v", err)
	}
}

func TestFileRequiresRejectedRequest(t *testing.T) {
	store := memory.NewStore(nil)
	store.SetRequestRecord(ports.RequestRecord{SubjectID: "sub_1", Status: "review"})
	uc := newResolver(store)

	_, err := uc.File(context.Background(), FileCommand{
		CallerID:   "sub_1",
		SubjectID:  "sub_1",
		ReasonHash: reasonHash(),
	})
	if !errors.Is(err, domainerrors.ErrCannotAppeal) {
		t.Fatalf("expected cannot appeal, got %v", err)
	}

	_, err = uc.File(context.Background(), FileCommand{
		CallerID:   "sub_missing",
		SubjectID:  "sub_missing",
		ReasonHash: reasonHash(),
	})
	if !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}
}

func TestFileIsSingleShotForever(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)
	fileAppeal(t, uc, "sub_1")

	// Dismiss, reject the subject again, then try to appeal once more.
	if _, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   false,
	}); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	seedRejected(store, "sub_1")

	_, err := uc.File(context.Background(), FileCommand{
		CallerID:   "sub_1",
		SubjectID:  "sub_1",
		ReasonHash: reasonHash(),
	})
	if !errors.Is(err, domainerrors.ErrAppealActive) {
		t.Fatalf("closed appeals still block refiling, got %v", err)
	}
}

func TestProcessRequiresAdmin(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)
	fileAppeal(t, uc, "sub_1")

	_, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   "sub_1",
		SubjectID: "sub_1",
		Approve:   true,
	})
	if !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected not admin, got %v", err)
	}
}

func TestProcessApproveOverridesRequest(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	store.SetBlock(200)
	uc := newResolver(store)
	fileAppeal(t, uc, "sub_1")

	appeal, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   true,
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if appeal.Status != entities.StatusResolved {
		t.Fatalf("expected resolved appeal, got %s", appeal.Status)
	}
	if appeal.HandlerID != adminID || appeal.ResolutionBlock != 200 {
		t.Fatalf("expected resolution by %s at 200, got %+v", adminID, appeal)
	}

	record, found, _ := store.GetRequestRecord(context.Background(), "sub_1")
	if !found {
		t.Fatalf("request record missing after override")
	}
	if record.Status != ports.RequestStatusVerified {
		t.Fatalf("approval must override the request to verified, got %s", record.Status)
	}
	if record.ExpiryBlock != 200+52560 {
		t.Fatalf("expected refreshed expiry %d, got %d", 200+52560, record.ExpiryBlock)
	}
}

func TestProcessDismissLeavesRequestUntouched(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)
	fileAppeal(t, uc, "sub_1")

	appeal, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   false,
	})
	if err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if appeal.Status != entities.StatusDismissed {
		t.Fatalf("expected dismissed appeal, got %s", appeal.Status)
	}
	record, _, _ := store.GetRequestRecord(context.Background(), "sub_1")
	if record.Status != ports.RequestStatusRejected {
		t.Fatalf("dismissal must not move the request, got %s", record.Status)
	}
}

func TestProcessRejectsClosedAppeal(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)
	fileAppeal(t, uc, "sub_1")

	if _, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   false,
	}); err != nil {
		t.Fatalf("first resolution: %v", err)
	}
	_, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   true,
	})
	if !errors.Is(err, domainerrors.ErrAppealClosed) {
		t.Fatalf("expected appeal closed, got %v", err)
	}
}

func TestProcessMissingAppeal(t *testing.T) {
	store := memory.NewStore(nil)
	seedRejected(store, "sub_1")
	uc := newResolver(store)

	_, err := uc.Process(context.Background(), ProcessCommand{
		ActorID:   adminID,
		SubjectID: "sub_1",
		Approve:   true,
	})
	if !errors.Is(err, domainerrors.ErrAppealNotFound) {
		t.Fatalf("expected appeal not found, got %v", err)
	}
}
