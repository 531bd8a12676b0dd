package wer

// Pair is one tokenized reference/hypothesis pair.
type Pair struct {
	Reference  []string
	Hypothesis []string
}

// PairResult is the scored outcome for a single pair.
type PairResult struct {
	WER           float64 `json:"wer"`
	Edits         int     `json:"edits"`
	RefWords      int     `json:"ref_words"`
	Substitutions int     `json:"substitutions"`
	Insertions    int     `json:"insertions"`
	Deletions     int     `json:"deletions"`
}

// BatchResult holds per-pair results in input order.
type BatchResult []PairResult

// Score aligns one pair and computes its error rate.
func Score(ref, hyp []string) PairResult {
	ops := Classify(ref, hyp)
	edits := ops.Total()
	return PairResult{
		WER:           ratio(float64(edits), len(ref)),
		Edits:         edits,
		RefWords:      len(ref),
		Substitutions: ops.Substitutions,
		Insertions:    ops.Insertions,
		Deletions:     ops.Deletions,
	}
}

// ScoreAll scores every pair, preserving input order.
func ScoreAll(pairs []Pair) BatchResult {
	results := make(BatchResult, len(pairs))
	for i, p := range pairs {
		results[i] = Score(p.Reference, p.Hypothesis)
	}
	return results
}

// TotalEdits sums the edit counts across the batch.
func (b BatchResult) TotalEdits() int {
	var n int
	for _, r := range b {
		n += r.Edits
	}
	return n
}

// TotalRefWords sums the reference lengths across the batch.
func (b BatchResult) TotalRefWords() int {
	var n int
	for _, r := range b {
		n += r.RefWords
	}
	return n
}

// Overall returns the corpus error rate: total edits over total
// reference words, so pairs with long references carry proportionally
// more weight than short ones. It is not the mean of per-pair rates.
// For a single pair this reduces to that pair's own rate; an empty
// batch scores zero.
func (b BatchResult) Overall() float64 {
	return ratio(float64(b.TotalEdits()), b.TotalRefWords())
}

// ratio divides edits by a reference word count, flooring the
// denominator at one so an empty reference cannot divide by zero.
func ratio(edits float64, refWords int) float64 {
	return edits / float64(max(refWords, 1))
}
