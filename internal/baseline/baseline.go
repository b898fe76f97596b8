package baseline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ppiankov/i18nspectre/internal/report"
)

// Finding is a flattened, identity-comparable issue from a scan.
type Finding struct {
	Kind  string `json:"kind"`
	File  string `json:"file"`
	Line  int    `json:"line"`
	Value string `json:"value"`
}

func (f Finding) key() string {
	return fmt.Sprintf("%s|%s|%d|%s", f.Kind, f.File, f.Line, f.Value)
}

// DiffResult holds the outcome of comparing current findings against a baseline.
type DiffResult struct {
	New       []Finding
	Resolved  []Finding
	Unchanged []Finding
}

// Flatten converts a scan report into a flat finding list.
func Flatten(data report.Data) []Finding {
	findings := make([]Finding, 0, len(data.Findings))
	for _, f := range data.Findings {
		findings = append(findings, Finding{
			Kind:  string(f.Kind),
			File:  f.File,
			Line:  f.Location.StartLine,
			Value: f.Value,
		})
	}
	return findings
}

// Load reads a previous scan JSON report and extracts findings.
func Load(path string) ([]Finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	var data report.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	return Flatten(data), nil
}

// Diff compares current findings against a baseline. A finding that moved to
// a different line counts as new, matching how report identity behaves for
// line-anchored tools.
func Diff(current, baseline []Finding) DiffResult {
	baseMap := make(map[string]struct{}, len(baseline))
	for _, f := range baseline {
		baseMap[f.key()] = struct{}{}
	}
	curMap := make(map[string]struct{}, len(current))
	for _, f := range current {
		curMap[f.key()] = struct{}{}
	}

	var result DiffResult
	for _, f := range current {
		if _, exists := baseMap[f.key()]; exists {
			result.Unchanged = append(result.Unchanged, f)
		} else {
			result.New = append(result.New, f)
		}
	}
	for _, f := range baseline {
		if _, exists := curMap[f.key()]; !exists {
			result.Resolved = append(result.Resolved, f)
		}
	}
	return result
}
