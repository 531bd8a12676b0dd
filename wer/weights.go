package wer

// Weights prices each edit kind for weighted scoring.
type Weights struct {
	Insertion    float64 `json:"insertion" yaml:"insertion"`
	Deletion     float64 `json:"deletion" yaml:"deletion"`
	Substitution float64 `json:"substitution" yaml:"substitution"`
}

// UnitWeights returns the weights under which weighted and unweighted
// scoring agree.
func UnitWeights() Weights {
	return Weights{Insertion: 1, Deletion: 1, Substitution: 1}
}

// WeightedDistance is Distance with per-kind edit prices. It is not
// symmetric unless insertions and deletions cost the same.
func WeightedDistance(ref, hyp []string, w Weights) float64 {
	if len(ref) == 0 {
		return float64(len(hyp)) * w.Insertion
	}
	if len(hyp) == 0 {
		return float64(len(ref)) * w.Deletion
	}

	prev := make([]float64, len(hyp)+1)
	curr := make([]float64, len(hyp)+1)

	for j := range prev {
		prev[j] = float64(j) * w.Insertion
	}

	for i := 1; i <= len(ref); i++ {
		curr[0] = float64(i) * w.Deletion
		for j := 1; j <= len(hyp); j++ {
			cost := w.Substitution
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+w.Deletion,
				curr[j-1]+w.Insertion,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(hyp)]
}

// ScoreWeighted returns the weighted error rate for one pair: priced
// edits over the reference length, floored at one.
func ScoreWeighted(ref, hyp []string, w Weights) float64 {
	return ratio(WeightedDistance(ref, hyp, w), len(ref))
}

// OverallWeighted pools priced edit totals across pairs the same way
// Overall pools unit-cost ones.
func OverallWeighted(pairs []Pair, w Weights) float64 {
	var edits float64
	var words int
	for _, p := range pairs {
		edits += WeightedDistance(p.Reference, p.Hypothesis, w)
		words += len(p.Reference)
	}
	return ratio(edits, words)
}
