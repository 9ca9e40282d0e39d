package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type loadGrammarRequest struct {
	Grammar []string `json:"grammar"`
}

type parseRequest struct {
	Input *string `json:"input"`
}

func (s *Server) handleLoadGrammar(w http.ResponseWriter, req *http.Request) {
	var body loadGrammarRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	var loadErr error
	for _, inst := range []*instance{s.lr0, s.slr1} {
		inst.mu.Lock()
		err := inst.an.LoadGrammar(body.Grammar)
		inst.mu.Unlock()
		if err != nil && loadErr == nil {
			loadErr = err
		}
	}
	if loadErr != nil {
		http.Error(w, fmt.Sprintf("Error loading grammar: %v", loadErr), http.StatusInternalServerError)
		return
	}

	writeText(w, "Grammar loaded successfully")
}

func (s *Server) handleBuildTable(inst *instance) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		inst.mu.Lock()
		mode := inst.an.Mode()
		err := inst.an.BuildTable()
		inst.mu.Unlock()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error building %v parse table: %v", mode, err), http.StatusInternalServerError)
			return
		}
		writeText(w, fmt.Sprintf("%v Parse table built successfully", mode))
	}
}

func (s *Server) handleClearCache(w http.ResponseWriter, req *http.Request) {
	for _, inst := range []*instance{s.lr0, s.slr1} {
		inst.mu.Lock()
		inst.an.ClearCache()
		inst.mu.Unlock()
	}
	writeText(w, "Cache cleared successfully")
}

func (s *Server) handleTableData(inst *instance) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		inst.mu.Lock()
		rep := inst.an.Export()
		inst.mu.Unlock()
		writeJSON(w, rep)
	}
}

func (s *Server) handleParse(inst *instance) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body parseRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Input == nil {
			http.Error(w, "Invalid JSON or missing 'input' field", http.StatusBadRequest)
			return
		}

		inst.mu.Lock()
		mode := inst.an.Mode()
		_, err := inst.an.Parse(*body.Input)
		if err != nil {
			inst.mu.Unlock()
			http.Error(w, fmt.Sprintf("Error parsing input with %v: %v", mode, err), http.StatusInternalServerError)
			return
		}
		rep := inst.an.Export()
		inst.mu.Unlock()
		writeJSON(w, rep)
	}
}

func handleHello(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, map[string]string{
		"message": "Hello from lrkit backend!",
		"status":  "success",
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "An internal server error occurred", http.StatusInternalServerError)
	}
}

func writeText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, msg)
}
