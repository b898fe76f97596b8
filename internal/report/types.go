package report

import (
	"time"

	"github.com/ppiankov/i18nspectre/internal/analyzer"
)

// Reporter interface for different report formats
type Reporter interface {
	Generate(data Data) error
}

// Data contains all report data for one run
type Data struct {
	Tool      string             `json:"tool"`
	Version   string             `json:"version"`
	Timestamp time.Time          `json:"timestamp"`
	Config    Config             `json:"config"`
	Findings  []analyzer.Finding `json:"findings"`
	Total     int                `json:"total"`
}

// Config echoes the scan configuration into the report
type Config struct {
	RootPath        string   `json:"root_path"`
	MinLength       int      `json:"min_length"`
	SkipText        bool     `json:"skip_text,omitempty"`
	SkipAttributes  string   `json:"skip_attributes,omitempty"`
	SkipPatterns    []string `json:"skip_patterns,omitempty"`
	SkipFiles       []string `json:"skip_files,omitempty"`
	IncludeLiteral  bool     `json:"include_literal,omitempty"`
	IncludeTemplate bool     `json:"include_template,omitempty"`
}
