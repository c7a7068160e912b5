package appealresolver

import (
	"log/slog"

	httpadapter "veridex/contexts/identity-verification/appeal-resolver/adapters/http"
	"veridex/contexts/identity-verification/appeal-resolver/adapters/memory"
	"veridex/contexts/identity-verification/appeal-resolver/application/commands"
	"veridex/contexts/identity-verification/appeal-resolver/application/queries"
	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	"veridex/contexts/identity-verification/appeal-resolver/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Appeals commands.AppealUseCase
	Queries queries.AppealQueries
	Store   *memory.Store
}

type Dependencies struct {
	Appeals   ports.AppealRepository
	Requests  ports.RequestGateway
	Sequencer ports.Sequencer

	KycDurationBlocks uint64
	AdminID           string

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	appealUseCase := commands.AppealUseCase{
		Appeals:           deps.Appeals,
		Requests:          deps.Requests,
		Sequencer:         deps.Sequencer,
		KycDurationBlocks: deps.KycDurationBlocks,
		AdminID:           deps.AdminID,
		Logger:            deps.Logger,
	}
	appealQueries := queries.AppealQueries{
		Appeals: deps.Appeals,
	}
	return Module{
		Handler: httpadapter.Handler{
			Appeals: appealUseCase,
			Queries: appealQueries,
			Logger:  deps.Logger,
		},
		Appeals: appealUseCase,
		Queries: appealQueries,
	}
}

func NewInMemoryModule(seed []entities.Appeal, adminID string, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Appeals:   store,
		Requests:  store,
		Sequencer: store,
		AdminID:   adminID,
		Logger:    logger,
	})
	module.Store = store
	return module
}
