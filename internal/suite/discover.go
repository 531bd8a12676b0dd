package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Info summarizes one discovered manifest without keeping its pairs
// in memory.
type Info struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Pairs      int    `json:"pairs"`
	Normalize  bool   `json:"normalize"`
	HasWeights bool   `json:"has_weights"`
	Error      string `json:"error,omitempty"`
}

// Discover walks dir for .yaml/.yml manifests. Manifests that fail to
// load are reported with their error rather than dropped.
func Discover(dir string) ([]Info, error) {
	var infos []Info

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		s, err := Load(path)
		if err != nil {
			infos = append(infos, Info{Path: path, Error: err.Error()})
			return nil
		}
		infos = append(infos, Info{
			Name:       s.Name,
			Path:       path,
			Pairs:      len(s.Pairs),
			Normalize:  s.Normalize,
			HasWeights: s.Weights != nil,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return infos, nil
}

// Find loads the suite with the given name from dir.
func Find(dir, name string) (*Suite, error) {
	infos, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if info.Error == "" && info.Name == name {
			return Load(info.Path)
		}
	}
	return nil, fmt.Errorf("suite %q not found in %s", name, dir)
}
