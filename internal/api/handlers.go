package api

import (
	"encoding/json"
	"net/http"

	"transcript-scorer/internal/db"
	"transcript-scorer/internal/service"
)

// Store is the database surface the API serves from. *db.DB satisfies it.
type Store interface {
	service.Store
	StatsCached() (map[string]interface{}, error)
	ListRuns(page, limit int, suite, status string) (*db.RunListResult, error)
	GetRun(id string) (*db.Run, error)
	GetRunPairs(runID string) ([]db.PairRow, error)
	DeleteRun(id string) error
}

type Handlers struct {
	store    Store
	eval     *service.Evaluator
	suiteDir string
}

func NewHandlers(store Store, eval *service.Evaluator, suiteDir string) *Handlers {
	return &Handlers{
		store:    store,
		eval:     eval,
		suiteDir: suiteDir,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handlers) json(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) success(w http.ResponseWriter, data interface{}) {
	h.json(w, http.StatusOK, Response{Success: true, Data: data})
}

func (h *Handlers) error(w http.ResponseWriter, status int, msg string) {
	h.json(w, status, Response{Success: false, Error: msg})
}

// === Health handler ===

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.success(w, map[string]interface{}{
		"status":  "ok",
		"running": h.eval.Status().Running,
	})
}

// === Stats handler ===

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.StatsCached()
	if err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, stats)
}
