package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"transcript-scorer/internal/db"
	"transcript-scorer/internal/metrics"
	"transcript-scorer/wer"
)

// === Ad-hoc evaluation handler ===

// Eval scores reference/hypothesis texts from the request body and
// persists the result as a run with source "api".
func (h *Handlers) Eval(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reference  interface{}  `json:"reference"`
		Hypothesis interface{}  `json:"hypothesis"`
		Normalize  bool         `json:"normalize"`
		Weights    *wer.Weights `json:"weights"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.error(w, http.StatusBadRequest, "invalid json")
		return
	}

	texts, err := wer.PairTexts(req.Reference, req.Hypothesis)
	if err != nil {
		metrics.EvalErrors.WithLabelValues(wer.ErrKind(err)).Inc()
		h.error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if req.Normalize {
		for i := range texts {
			texts[i].Reference = wer.Normalize(texts[i].Reference)
			texts[i].Hypothesis = wer.Normalize(texts[i].Hypothesis)
		}
	}

	pairs := make([]wer.Pair, len(texts))
	for i, t := range texts {
		pairs[i] = wer.Pair{
			Reference:  wer.Tokenize(t.Reference),
			Hypothesis: wer.Tokenize(t.Hypothesis),
		}
	}

	batch := wer.ScoreAll(pairs)
	overall := batch.Overall()

	var weightedWER *float64
	if req.Weights != nil {
		wd := wer.OverallWeighted(pairs, *req.Weights)
		weightedWER = &wd
	}

	runID := uuid.NewString()
	run := &db.Run{ID: runID, Source: "api", Pairs: len(batch)}
	if err := h.store.InsertRun(run); err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	rows := make([]db.PairRow, len(batch))
	for i, res := range batch {
		rows[i] = db.PairRow{
			Idx:           i,
			Reference:     texts[i].Reference,
			Hypothesis:    texts[i].Hypothesis,
			WER:           res.WER,
			Edits:         res.Edits,
			RefWords:      res.RefWords,
			Substitutions: res.Substitutions,
			Insertions:    res.Insertions,
			Deletions:     res.Deletions,
		}
	}

	if err := h.store.InsertPairResults(runID, rows); err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.store.FinishRun(runID, len(batch), batch.TotalEdits(), batch.TotalRefWords(), overall, weightedWER); err != nil {
		h.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.EvaluationsTotal.Inc()
	metrics.WERLast.Set(overall)
	for _, res := range batch {
		metrics.PairsScored.Inc()
		metrics.WERDistribution.Observe(res.WER)
	}

	data := map[string]interface{}{
		"run_id":          runID,
		"wer":             overall,
		"pairs":           len(batch),
		"total_edits":     batch.TotalEdits(),
		"total_ref_words": batch.TotalRefWords(),
		"results":         batch,
	}
	if weightedWER != nil {
		data["weighted_wer"] = *weightedWER
	}

	h.success(w, data)
}
