package suite

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"transcript-scorer/wer"
)

// Suite is a named set of reference/hypothesis pairs loaded from a
// YAML manifest. Pairs are either inline or come from two line-paired
// transcript files resolved relative to the manifest.
type Suite struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Normalize   bool         `yaml:"normalize"`
	Weights     *wer.Weights `yaml:"weights"`
	Pairs       []Pair       `yaml:"pairs"`

	ReferenceFile  string `yaml:"reference_file"`
	HypothesisFile string `yaml:"hypothesis_file"`

	Path string `yaml:"-"`
}

type Pair struct {
	Reference  string `yaml:"reference"`
	Hypothesis string `yaml:"hypothesis"`
}

// Load reads and resolves one manifest: file-backed pairs are pulled
// in and normalization, when requested, is applied to every text so
// downstream consumers see exactly what will be scored.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.Path = path

	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if len(s.Pairs) == 0 && s.ReferenceFile != "" && s.HypothesisFile != "" {
		dir := filepath.Dir(path)
		refs, err := readLines(filepath.Join(dir, s.ReferenceFile))
		if err != nil {
			return nil, err
		}
		hyps, err := readLines(filepath.Join(dir, s.HypothesisFile))
		if err != nil {
			return nil, err
		}
		if len(refs) != len(hyps) {
			return nil, fmt.Errorf("suite %q: %w: %d reference lines vs %d hypothesis lines",
				s.Name, wer.ErrCardinalityMismatch, len(refs), len(hyps))
		}
		s.Pairs = make([]Pair, len(refs))
		for i := range refs {
			s.Pairs[i] = Pair{Reference: refs[i], Hypothesis: hyps[i]}
		}
	}

	if len(s.Pairs) == 0 {
		return nil, fmt.Errorf("suite %q has no pairs", s.Name)
	}

	if s.Normalize {
		for i := range s.Pairs {
			s.Pairs[i].Reference = wer.Normalize(s.Pairs[i].Reference)
			s.Pairs[i].Hypothesis = wer.Normalize(s.Pairs[i].Hypothesis)
		}
	}

	return &s, nil
}

// readLines reads a transcript file, one text per line. Trailing blank
// lines are dropped so a final newline does not desync the pairing;
// interior blanks stay, an empty transcript is legal.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
