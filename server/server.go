// Package server exposes the analysis pipeline as an HTTP/JSON API.
// Two parser instances are kept per server, one per table mode. The
// build, table-data and parse endpoints each address one of them;
// load_grammar and clear_cache address both.
package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ajisai/lrkit/analyzer"
	"github.com/ajisai/lrkit/grammar"
)

// instance pairs an analyzer with the lock that serializes access to
// it. The analyzer itself makes no thread-safety guarantees.
type instance struct {
	mu sync.Mutex
	an *analyzer.Analyzer
}

type Server struct {
	lr0  *instance
	slr1 *instance

	// Origin is the value of the Access-Control-Allow-Origin header.
	Origin string
}

func New() *Server {
	return &Server{
		lr0:    &instance{an: analyzer.New(grammar.ModeLR0)},
		slr1:   &instance{an: analyzer.New(grammar.ModeSLR1)},
		Origin: "*",
	}
}

// Router builds the chi router with the request log, panic recovery,
// request tagging, and CORS middleware in front of the API endpoints.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(tagRequest)
	r.Use(s.allowCORS)

	r.Route("/api", func(r chi.Router) {
		r.Post("/load_grammar", s.handleLoadGrammar)
		r.Get("/build_table", s.handleBuildTable(s.slr1))
		r.Get("/build_lr0_table", s.handleBuildTable(s.lr0))
		r.Post("/clear_cache", s.handleClearCache)
		r.Get("/get_table_data", s.handleTableData(s.slr1))
		r.Get("/get_lr0_table_data", s.handleTableData(s.lr0))
		r.Post("/parse_input", s.handleParse(s.slr1))
		r.Post("/parse_input_lr0", s.handleParse(s.lr0))
		r.Get("/hello", handleHello)
	})

	return r
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("INFO  listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

// tagRequest stamps each response with a fresh request id so log lines
// and responses can be correlated.
func tagRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, req)
	})
}

// allowCORS answers preflight requests and marks every response with
// the configured origin.
func (s *Server) allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.Origin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, req)
	})
}
