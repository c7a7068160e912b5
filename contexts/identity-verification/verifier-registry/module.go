package verifierregistry

import (
	"log/slog"

	httpadapter "veridex/contexts/identity-verification/verifier-registry/adapters/http"
	"veridex/contexts/identity-verification/verifier-registry/adapters/memory"
	"veridex/contexts/identity-verification/verifier-registry/application/commands"
	"veridex/contexts/identity-verification/verifier-registry/application/queries"
	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Registry commands.RegistryUseCase
	Queries  queries.VerifierQueries
	Store    *memory.Store
}

type Dependencies struct {
	Verifiers      ports.VerifierRepository
	Outcomes       ports.OutcomeSource
	Sequencer      ports.Sequencer
	MinStake       uint64
	RejectionScore uint32
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	registryUseCase := commands.RegistryUseCase{
		Verifiers:      deps.Verifiers,
		Outcomes:       deps.Outcomes,
		Sequencer:      deps.Sequencer,
		MinStake:       deps.MinStake,
		RejectionScore: deps.RejectionScore,
		Logger:         deps.Logger,
	}
	verifierQueries := queries.VerifierQueries{
		Verifiers: deps.Verifiers,
		MinStake:  deps.MinStake,
	}
	return Module{
		Handler: httpadapter.Handler{
			Registry:  registryUseCase,
			Verifiers: verifierQueries,
			Logger:    deps.Logger,
		},
		Registry: registryUseCase,
		Queries:  verifierQueries,
	}
}

func NewInMemoryModule(seed []entities.Verifier, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Verifiers: store,
		Outcomes:  store,
		Sequencer: store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
