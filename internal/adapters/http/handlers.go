package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"svw.info/mutant/internal/domain"
	"svw.info/mutant/internal/usecase"
)

type Handler struct {
	UC     *usecase.Service
	Logger *zap.Logger
}

func New(uc *usecase.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{UC: uc, Logger: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/mutant", h.handleMutant)
	mux.HandleFunc("/mutant/", h.handleMutant)
	mux.HandleFunc("/stats", h.handleStats)
	mux.HandleFunc("/healthz", h.handleHealth)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Mutant ----

type mutantReq struct {
	DNA []string `json:"dna"`
}

type mutantResp struct {
	Mutant bool   `json:"mutant"`
	Error  string `json:"error,omitempty"`
}

// handleMutant answers 200 for mutant DNA and 403 for human DNA.
func (h *Handler) handleMutant(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req mutantReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, mutantResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, err := h.UC.Analyze(r.Context(), domain.DNA(req.DNA))
	switch {
	case errors.Is(err, domain.ErrInvalidGridShape), errors.Is(err, domain.ErrInvalidBase):
		writeJSON(w, http.StatusBadRequest, mutantResp{Error: err.Error()})
		return
	case err != nil:
		h.Logger.Error("analyze failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, mutantResp{Error: err.Error()})
		return
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusForbidden
	}
	writeJSON(w, status, mutantResp{Mutant: ok})
}

// ---- Stats ----

type statsResp struct {
	domain.Stats
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	st, err := h.UC.Stats(r.Context())
	if err != nil {
		h.Logger.Error("stats failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, statsResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, statsResp{Stats: st})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
