package wer

import (
	"errors"
	"fmt"
)

var (
	// ErrCardinalityMismatch reports reference and hypothesis
	// collections of different lengths.
	ErrCardinalityMismatch = errors.New("reference and hypothesis counts differ")

	// ErrUnsupportedType reports an input that is neither a string nor
	// a collection of strings.
	ErrUnsupportedType = errors.New("unsupported input type")
)

// Input is one validated side of a computation: a single text or a
// batch of texts, resolved before any scoring happens.
type Input struct {
	Texts []string
}

// Single reports whether the input carries exactly one text.
func (in Input) Single() bool {
	return len(in.Texts) == 1
}

// ParseInput validates one raw input. Accepted shapes are string,
// []string, and []any whose elements are all strings (the shape a
// decoded JSON array arrives in).
func ParseInput(v any) (Input, error) {
	switch t := v.(type) {
	case string:
		return Input{Texts: []string{t}}, nil
	case []string:
		return Input{Texts: t}, nil
	case []any:
		texts := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return Input{}, fmt.Errorf("%w: element %d is %T, want string", ErrUnsupportedType, i, e)
			}
			texts[i] = s
		}
		return Input{Texts: texts}, nil
	default:
		return Input{}, fmt.Errorf("%w: %T, want string or list of strings", ErrUnsupportedType, v)
	}
}

// TextPair is one untokenized reference/hypothesis pair.
type TextPair struct {
	Reference  string
	Hypothesis string
}

// PairTexts validates both sides and zips them into pairs by position.
// A plain string pairs with a one-element collection.
func PairTexts(reference, hypothesis any) ([]TextPair, error) {
	ref, err := ParseInput(reference)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	hyp, err := ParseInput(hypothesis)
	if err != nil {
		return nil, fmt.Errorf("hypothesis: %w", err)
	}
	if len(ref.Texts) != len(hyp.Texts) {
		return nil, fmt.Errorf("%w: %d reference vs %d hypothesis",
			ErrCardinalityMismatch, len(ref.Texts), len(hyp.Texts))
	}
	pairs := make([]TextPair, len(ref.Texts))
	for i := range ref.Texts {
		pairs[i] = TextPair{Reference: ref.Texts[i], Hypothesis: hyp.Texts[i]}
	}
	return pairs, nil
}

// ErrKind maps a validation error to a stable diagnostic label.
func ErrKind(err error) string {
	switch {
	case errors.Is(err, ErrCardinalityMismatch):
		return "cardinality_mismatch"
	case errors.Is(err, ErrUnsupportedType):
		return "unsupported_type"
	default:
		return "error"
	}
}
