package wer

import (
	"github.com/rs/zerolog/log"
)

// ComputeResults validates the raw inputs, tokenizes each text and
// scores every pair, returning per-pair results in input order.
func ComputeResults(reference, hypothesis any) (BatchResult, error) {
	pairs, err := parsePairs(reference, hypothesis)
	if err != nil {
		return nil, err
	}
	return ScoreAll(pairs), nil
}

// Compute returns the word error rate for a single string pair, or the
// corpus rate across paired collections. Invalid input never panics:
// it logs a diagnostic and reports ok=false instead.
func Compute(reference, hypothesis any) (rate float64, ok bool) {
	results, err := ComputeResults(reference, hypothesis)
	if err != nil {
		log.Error().Str("kind", ErrKind(err)).Msg(err.Error())
		return 0, false
	}
	return results.Overall(), true
}

// ComputeWeighted is Compute with per-kind edit prices.
func ComputeWeighted(reference, hypothesis any, w Weights) (rate float64, ok bool) {
	pairs, err := parsePairs(reference, hypothesis)
	if err != nil {
		log.Error().Str("kind", ErrKind(err)).Msg(err.Error())
		return 0, false
	}
	return OverallWeighted(pairs, w), true
}

func parsePairs(reference, hypothesis any) ([]Pair, error) {
	texts, err := PairTexts(reference, hypothesis)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, len(texts))
	for i, t := range texts {
		pairs[i] = Pair{
			Reference:  Tokenize(t.Reference),
			Hypothesis: Tokenize(t.Hypothesis),
		}
	}
	return pairs, nil
}
