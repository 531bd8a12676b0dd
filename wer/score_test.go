package wer

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		ref, hyp  []string
		wantWER   float64
		wantEdits int
		wantRef   int
	}{
		{
			name:      "one_deletion_in_four",
			ref:       words("i", "love", "cold", "pizza"),
			hyp:       words("i", "love", "pizza"),
			wantWER:   0.25,
			wantEdits: 1,
			wantRef:   4,
		},
		{
			name:    "identical",
			ref:     words("the", "cat", "sat"),
			hyp:     words("the", "cat", "sat"),
			wantRef: 3,
		},
		{
			name:      "empty_ref_rate_floors_denominator",
			ref:       nil,
			hyp:       words("a", "b", "c"),
			wantWER:   3,
			wantEdits: 3,
		},
		{
			name:      "empty_hyp",
			ref:       words("some", "words"),
			hyp:       nil,
			wantWER:   1,
			wantEdits: 2,
			wantRef:   2,
		},
		{
			name:    "both_empty",
			ref:     nil,
			hyp:     nil,
			wantWER: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.ref, tt.hyp)
			if got.WER != tt.wantWER {
				t.Errorf("WER = %v, want %v", got.WER, tt.wantWER)
			}
			if got.Edits != tt.wantEdits {
				t.Errorf("Edits = %d, want %d", got.Edits, tt.wantEdits)
			}
			if got.RefWords != tt.wantRef {
				t.Errorf("RefWords = %d, want %d", got.RefWords, tt.wantRef)
			}
			if sum := got.Substitutions + got.Insertions + got.Deletions; sum != got.Edits {
				t.Errorf("ops sum = %d, want Edits = %d", sum, got.Edits)
			}
		})
	}
}

func TestScoreAllPreservesOrder(t *testing.T) {
	pairs := []Pair{
		{Reference: words("i", "love", "cold", "pizza"), Hypothesis: words("i", "love", "pizza")},
		{Reference: words("the", "cat", "sat"), Hypothesis: words("the", "cat", "sat")},
		{Reference: words("x"), Hypothesis: words("y")},
	}

	got := ScoreAll(pairs)
	if len(got) != len(pairs) {
		t.Fatalf("len = %d, want %d", len(got), len(pairs))
	}

	wantWER := []float64{0.25, 0, 1}
	for i, w := range wantWER {
		if got[i].WER != w {
			t.Errorf("pair %d: WER = %v, want %v", i, got[i].WER, w)
		}
	}
}

func TestOverallCorpusWeighted(t *testing.T) {
	// 1 deletion over 4 reference words plus 1 substitution over 6:
	// 2 edits over 10 words, not the mean of 0.25 and 1/6.
	batch := ScoreAll([]Pair{
		{
			Reference:  words("i", "love", "cold", "pizza"),
			Hypothesis: words("i", "love", "pizza"),
		},
		{
			Reference:  words("the", "sugar", "bear", "character", "was", "popular"),
			Hypothesis: words("the", "sugar", "bare", "character", "was", "popular"),
		},
	})

	if got := batch.TotalEdits(); got != 2 {
		t.Errorf("TotalEdits() = %d, want 2", got)
	}
	if got := batch.TotalRefWords(); got != 10 {
		t.Errorf("TotalRefWords() = %d, want 10", got)
	}
	if got := batch.Overall(); got != 0.2 {
		t.Errorf("Overall() = %v, want 0.2", got)
	}
}

func TestOverallIsNotMeanOfRates(t *testing.T) {
	// One perfect long reference and one fully wrong one-word pair.
	// Pooling gives 1 edit over 11 words; a mean of rates would give 0.5
	// and let the short pair dominate.
	batch := ScoreAll([]Pair{
		{
			Reference:  words("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"),
			Hypothesis: words("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"),
		},
		{Reference: words("x"), Hypothesis: words("y")},
	})

	want := 1.0 / 11.0
	got := batch.Overall()
	if got != want {
		t.Errorf("Overall() = %v, want %v", got, want)
	}

	mean := (batch[0].WER + batch[1].WER) / 2
	if got == mean {
		t.Errorf("Overall() = %v, must differ from mean of rates %v", got, mean)
	}
}

func TestOverallSinglePair(t *testing.T) {
	batch := ScoreAll([]Pair{
		{Reference: words("i", "love", "cold", "pizza"), Hypothesis: words("i", "love", "pizza")},
	})
	if got := batch.Overall(); got != batch[0].WER {
		t.Errorf("Overall() = %v, want the pair's own rate %v", got, batch[0].WER)
	}
}

func TestOverallEmptyBatch(t *testing.T) {
	if got := (BatchResult{}).Overall(); got != 0 {
		t.Errorf("Overall() = %v, want 0", got)
	}
}
