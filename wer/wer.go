// Package wer scores speech-to-text hypotheses against reference
// transcripts using word-level edit distance.
//
// The package works on whitespace-tokenized word sequences and applies
// no normalization of its own; callers that want case folding or
// punctuation stripping run Normalize first.
package wer

import "strings"

// Tokenize splits text into words on Unicode whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Ops is the breakdown of an alignment into edit operations, counted
// from the hypothesis side: a deletion is a reference word the
// hypothesis dropped, an insertion is an extra hypothesis word.
type Ops struct {
	Substitutions int `json:"substitutions"`
	Insertions    int `json:"insertions"`
	Deletions     int `json:"deletions"`
}

// Total returns the combined edit count.
func (o Ops) Total() int {
	return o.Substitutions + o.Insertions + o.Deletions
}

// Distance returns the minimum number of single-word insertions,
// deletions and substitutions that transform hyp into ref. Each
// operation costs one edit.
func Distance(ref, hyp []string) int {
	if len(ref) == 0 {
		return len(hyp)
	}
	if len(hyp) == 0 {
		return len(ref)
	}

	// Unit-cost distance is symmetric, so keep the row buffers on the
	// shorter sequence.
	if len(hyp) > len(ref) {
		ref, hyp = hyp, ref
	}

	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ref); i++ {
		curr[0] = i
		for j := 1; j <= len(hyp); j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(hyp)]
}

// Classify aligns hyp against ref and breaks the edits down by kind.
// It keeps the full table so the alignment can be walked back;
// Classify(ref, hyp).Total() always equals Distance(ref, hyp).
func Classify(ref, hyp []string) Ops {
	n, m := len(ref), len(hyp)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if ref[i-1] == hyp[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			d[i][j] = min(
				d[i-1][j]+1,   // deletion
				d[i][j-1]+1,   // insertion
				d[i-1][j-1]+1, // substitution
			)
		}
	}

	var ops Ops
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1]:
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			ops.Substitutions++
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			ops.Deletions++
			i--
		default:
			ops.Insertions++
			j--
		}
	}

	return ops
}
