package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	appealresolver "veridex/contexts/identity-verification/appeal-resolver"
	verificationledger "veridex/contexts/identity-verification/verification-ledger"
	verifierregistry "veridex/contexts/identity-verification/verifier-registry"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "veridex/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	registry verifierregistry.Module
	ledger   verificationledger.Module
	appeals  appealresolver.Module
}

func New(
	registry verifierregistry.Module,
	ledger verificationledger.Module,
	appeals appealresolver.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		registry: registry,
		ledger:   ledger,
		appeals:  appeals,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/verifiers/{verifier_id}/register", s.handleRegisterVerifier)
	s.mux.HandleFunc("POST /v1/verifiers/{verifier_id}/unstake", s.handleUnstakeVerifier)
	s.mux.HandleFunc("POST /v1/verifiers/{verifier_id}/claims", s.handleClaimOutcome)
	s.mux.HandleFunc("GET /v1/verifiers/{verifier_id}", s.handleGetVerifier)

	s.mux.HandleFunc("POST /v1/requests/{subject_id}", s.handleSubmitRequest)
	s.mux.HandleFunc("POST /v1/requests/{subject_id}/renew", s.handleRenewRequest)
	s.mux.HandleFunc("POST /v1/requests/{subject_id}/votes", s.handleCastVote)
	s.mux.HandleFunc("POST /v1/requests/{subject_id}/finalize", s.handleFinalizeRequest)
	s.mux.HandleFunc("GET /v1/requests/{subject_id}", s.handleGetRequest)
	s.mux.HandleFunc("GET /v1/requests/{subject_id}/votes", s.handleListVotes)
	s.mux.HandleFunc("POST /v1/admin/halt", s.handleSetHalt)

	s.mux.HandleFunc("POST /v1/appeals/{subject_id}", s.handleFileAppeal)
	s.mux.HandleFunc("POST /v1/appeals/{subject_id}/process", s.handleProcessAppeal)
	s.mux.HandleFunc("GET /v1/appeals/{subject_id}", s.handleGetAppeal)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
