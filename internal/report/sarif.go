package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/ppiankov/i18nspectre/internal/analyzer"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"

	sarifRuleHardcodedText      = "i18nspectre/HARDCODED_TEXT"
	sarifRuleHardcodedAttribute = "i18nspectre/HARDCODED_ATTRIBUTE"
	sarifRuleStringLiteral      = "i18nspectre/STRING_LITERAL"
	sarifRuleTemplateLiteral    = "i18nspectre/TEMPLATE_LITERAL"
)

type SARIFReporter struct {
	writer io.Writer
}

func NewSARIFReporter(w io.Writer) *SARIFReporter {
	return &SARIFReporter{writer: w}
}

type sarifLog struct {
	Schema  string     `json:"$schema,omitempty"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name,omitempty"`
	ShortDescription sarifMessage `json:"shortDescription,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level,omitempty"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation *sarifPhysicalLocation `json:"physicalLocation,omitempty"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

type sarifRuleMeta struct {
	Name        string
	Description string
	Level       string
}

var sarifRules = map[string]sarifRuleMeta{
	sarifRuleHardcodedText: {
		Name:        "HardcodedText",
		Description: "JSX text node bypasses the translation layer",
		Level:       "warning",
	},
	sarifRuleHardcodedAttribute: {
		Name:        "HardcodedAttribute",
		Description: "Literal attribute value bypasses the translation layer",
		Level:       "warning",
	},
	sarifRuleStringLiteral: {
		Name:        "StringLiteral",
		Description: "Plain string literal flagged for translation review",
		Level:       "note",
	},
	sarifRuleTemplateLiteral: {
		Name:        "TemplateLiteral",
		Description: "Template literal flagged for translation review",
		Level:       "note",
	},
}

func ruleForKind(kind analyzer.Kind) string {
	switch kind {
	case analyzer.KindAttribute:
		return sarifRuleHardcodedAttribute
	case analyzer.KindLiteral:
		return sarifRuleStringLiteral
	case analyzer.KindTemplate:
		return sarifRuleTemplateLiteral
	default:
		return sarifRuleHardcodedText
	}
}

func (r *SARIFReporter) Generate(data Data) error {
	var results []sarifResult
	usedRules := make(map[string]sarifRule)

	for _, finding := range data.Findings {
		ruleID := ruleForKind(finding.Kind)
		loc := finding.Location
		results = appendResult(results, usedRules, ruleID,
			fmt.Sprintf("Hardcoded string %q", finding.Value),
			[]sarifLocation{{
				PhysicalLocation: &sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: finding.File},
					Region: &sarifRegion{
						StartLine:   loc.StartLine,
						StartColumn: loc.StartCol + 1,
						EndLine:     loc.EndLine,
						EndColumn:   loc.EndCol + 1,
					},
				},
			}})
	}

	return r.writeSARIF(data.Tool, data.Version, results, usedRules)
}

func (r *SARIFReporter) writeSARIF(toolName, toolVersion string, results []sarifResult, usedRules map[string]sarifRule) error {
	ruleIDs := make([]string, 0, len(usedRules))
	for id := range usedRules {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	rules := make([]sarifRule, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		rules = append(rules, usedRules[id])
	}

	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:    toolName,
					Version: toolVersion,
					Rules:   rules,
				},
			},
			Results: results,
		}},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}

func appendResult(results []sarifResult, usedRules map[string]sarifRule, ruleID, message string, locations []sarifLocation) []sarifResult {
	rule := sarifRule{ID: ruleID}
	level := "warning"
	if meta, ok := sarifRules[ruleID]; ok {
		rule.Name = meta.Name
		rule.ShortDescription = sarifMessage{Text: meta.Description}
		level = meta.Level
	}
	if message == "" {
		message = rule.ShortDescription.Text
	}
	if _, exists := usedRules[ruleID]; !exists {
		usedRules[ruleID] = rule
	}

	results = append(results, sarifResult{
		RuleID:    ruleID,
		Level:     level,
		Message:   sarifMessage{Text: message},
		Locations: locations,
	})

	return results
}
