package verificationledger

import (
	"log/slog"

	httpadapter "veridex/contexts/identity-verification/verification-ledger/adapters/http"
	"veridex/contexts/identity-verification/verification-ledger/adapters/memory"
	"veridex/contexts/identity-verification/verification-ledger/application/commands"
	"veridex/contexts/identity-verification/verification-ledger/application/queries"
	"veridex/contexts/identity-verification/verification-ledger/application/workers"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	"veridex/contexts/identity-verification/verification-ledger/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Ledger  commands.LedgerUseCase
	Status  queries.StatusUseCase
	Relay   workers.OutboxRelay
	Store   *memory.Store
}

type Dependencies struct {
	Requests  ports.RequestRepository
	Control   ports.ControlRepository
	Verifiers ports.VerifierDirectory
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Sequencer ports.Sequencer
	IDGen     ports.IDGenerator

	Threshold         uint32
	ApprovalScore     uint32
	RejectionScore    uint32
	KycDurationBlocks uint64
	AdminID           string

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	ledgerUseCase := commands.LedgerUseCase{
		Requests:          deps.Requests,
		Control:           deps.Control,
		Verifiers:         deps.Verifiers,
		Sequencer:         deps.Sequencer,
		IDGen:             deps.IDGen,
		Threshold:         deps.Threshold,
		ApprovalScore:     deps.ApprovalScore,
		RejectionScore:    deps.RejectionScore,
		KycDurationBlocks: deps.KycDurationBlocks,
		AdminID:           deps.AdminID,
		Logger:            deps.Logger,
	}
	statusUseCase := queries.StatusUseCase{
		Requests:  deps.Requests,
		Sequencer: deps.Sequencer,
	}
	return Module{
		Handler: httpadapter.Handler{
			Ledger: ledgerUseCase,
			Status: statusUseCase,
			Logger: deps.Logger,
		},
		Ledger: ledgerUseCase,
		Status: statusUseCase,
		Relay: workers.OutboxRelay{
			Outbox:    deps.Outbox,
			Publisher: deps.Publisher,
			Logger:    deps.Logger,
		},
	}
}

// NewInMemoryModule wires the module against the in-memory store, for tests
// and local runs. The caller supplies the verifier directory so the registry
// module stays the authority on who may vote.
func NewInMemoryModule(seed []entities.VerificationRequest, verifiers ports.VerifierDirectory, publisher ports.EventPublisher, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Requests:  store,
		Control:   store,
		Verifiers: verifiers,
		Outbox:    store,
		Publisher: publisher,
		Sequencer: store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
