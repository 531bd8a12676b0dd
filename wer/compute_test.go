package wer

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		ref, hyp any
		want     float64
		wantOK   bool
	}{
		{
			name:   "single_pair",
			ref:    "i love cold pizza",
			hyp:    "i love pizza",
			want:   0.25,
			wantOK: true,
		},
		{
			name:   "corpus_of_two",
			ref:    []string{"i love cold pizza", "the sugar bear character was popular"},
			hyp:    []string{"i love pizza", "the sugar bare character was popular"},
			want:   0.2,
			wantOK: true,
		},
		{
			name:   "both_empty_strings",
			ref:    "",
			hyp:    "",
			want:   0,
			wantOK: true,
		},
		{
			name:   "string_paired_with_one_element_list",
			ref:    "i love cold pizza",
			hyp:    []string{"i love pizza"},
			want:   0.25,
			wantOK: true,
		},
		{
			name:   "length_mismatch_yields_no_result",
			ref:    []string{"a", "b"},
			hyp:    []string{"a", "b", "c"},
			wantOK: false,
		},
		{
			name:   "unsupported_reference_type",
			ref:    12,
			hyp:    "twelve",
			wantOK: false,
		},
		{
			name:   "heterogeneous_list",
			ref:    []any{"a", 1},
			hyp:    []any{"a", "b"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compute(tt.ref, tt.hyp)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeResults(t *testing.T) {
	results, err := ComputeResults(
		[]string{"i love cold pizza", "the sugar bear character was popular"},
		[]string{"i love pizza", "the sugar bare character was popular"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}

	if results[0].WER != 0.25 || results[0].Deletions != 1 {
		t.Errorf("pair 0 = %+v, want WER 0.25 with one deletion", results[0])
	}
	if results[1].Edits != 1 || results[1].Substitutions != 1 {
		t.Errorf("pair 1 = %+v, want one substitution", results[1])
	}
	if got := results.Overall(); got != 0.2 {
		t.Errorf("Overall() = %v, want 0.2", got)
	}
}

func TestComputeResultsValidationError(t *testing.T) {
	results, err := ComputeResults([]string{"a", "b"}, []string{"a"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestComputeWeighted(t *testing.T) {
	rate, ok := ComputeWeighted("i love cold pizza", "i love pizza", UnitWeights())
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if rate != 0.25 {
		t.Errorf("ComputeWeighted() = %v, want 0.25", rate)
	}

	// Halving the deletion price halves this pair's rate.
	rate, ok = ComputeWeighted("i love cold pizza", "i love pizza",
		Weights{Insertion: 1, Deletion: 0.5, Substitution: 1})
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if rate != 0.125 {
		t.Errorf("ComputeWeighted() = %v, want 0.125", rate)
	}

	if _, ok := ComputeWeighted([]string{"a", "b"}, "a", UnitWeights()); ok {
		t.Error("ok = true for mismatched inputs, want false")
	}
}
