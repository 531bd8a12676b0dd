package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// === Run handlers ===

func (h *Handlers) RunsList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	suiteName := r.URL.Query().Get("suite")
	status := r.URL.Query().Get("status")

	result, err := h.store.ListRuns(page, limit, suiteName, status)
	if err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, result)
}

func (h *Handlers) RunsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.store.GetRun(id)
	if err != nil {
		h.error(w, http.StatusNotFound, "run not found")
		return
	}

	pairs, err := h.store.GetRunPairs(id)
	if err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, map[string]interface{}{
		"run":   run,
		"pairs": pairs,
	})
}

func (h *Handlers) RunsDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.store.GetRun(id); err != nil {
		h.error(w, http.StatusNotFound, "run not found")
		return
	}

	if err := h.store.DeleteRun(id); err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.success(w, map[string]interface{}{
		"id":      id,
		"deleted": true,
	})
}
