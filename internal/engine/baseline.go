package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/xab-mack/solscan/internal/model"
)

// LoadBaseline reads a baseline file: a JSON array of finding fingerprints
// accepted as known issues.
func LoadBaseline(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	var fps []string
	if err := json.Unmarshal(data, &fps); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	m := make(map[string]bool, len(fps))
	for _, fp := range fps {
		m[fp] = true
	}
	return m, nil
}

// FilterByBaseline drops findings whose fingerprint is already baselined.
func FilterByBaseline(findings []model.Finding, baseline map[string]bool) []model.Finding {
	if len(baseline) == 0 {
		return findings
	}
	var out []model.Finding
	for _, f := range findings {
		if f.Fingerprint != "" && baseline[f.Fingerprint] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// WriteBaseline records the fingerprints of the given findings.
func WriteBaseline(path string, findings []model.Finding) error {
	seen := map[string]struct{}{}
	var fps []string
	for _, f := range findings {
		if f.Fingerprint == "" {
			continue
		}
		if _, dup := seen[f.Fingerprint]; dup {
			continue
		}
		seen[f.Fingerprint] = struct{}{}
		fps = append(fps, f.Fingerprint)
	}
	sort.Strings(fps)
	data, err := json.MarshalIndent(fps, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
