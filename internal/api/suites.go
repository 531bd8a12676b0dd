package api

import (
	"net/http"
	"strconv"

	"transcript-scorer/internal/suite"
)

// === Suite handlers ===

func (h *Handlers) SuitesList(w http.ResponseWriter, r *http.Request) {
	infos, err := suite.Discover(h.suiteDir)
	if err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, map[string]interface{}{
		"dir":    h.suiteDir,
		"suites": infos,
	})
}

func (h *Handlers) SuiteRun(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.error(w, http.StatusBadRequest, "name parameter required")
		return
	}

	workers, _ := strconv.Atoi(r.URL.Query().Get("workers"))

	s, err := suite.Find(h.suiteDir, name)
	if err != nil {
		h.error(w, http.StatusNotFound, err.Error())
		return
	}

	runID, err := h.eval.Start(s, workers)
	if err != nil {
		h.error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.success(w, map[string]interface{}{
		"message": "Evaluation started",
		"run_id":  runID,
		"suite":   s.Name,
		"pairs":   len(s.Pairs),
		"workers": workers,
	})
}

func (h *Handlers) SuiteStatus(w http.ResponseWriter, r *http.Request) {
	h.success(w, h.eval.Status())
}

func (h *Handlers) SuiteStop(w http.ResponseWriter, r *http.Request) {
	h.eval.Stop()
	h.success(w, "Evaluation stop requested")
}
