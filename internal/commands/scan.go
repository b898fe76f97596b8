package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ppiankov/i18nspectre/internal/analyzer"
	"github.com/ppiankov/i18nspectre/internal/baseline"
	"github.com/ppiankov/i18nspectre/internal/report"
	"github.com/ppiankov/i18nspectre/internal/scanner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var scanFlags struct {
	skipAttributes  string
	skipText        bool
	skipPatterns    []string
	skipFiles       []string
	minLength       int
	includeLiteral  bool
	includeTemplate bool
	outputFormat    string
	outputFile      string
	baselinePath    string
	updateBaseline  bool
	failOnFindings  bool
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Scan a source tree for hardcoded strings",
	Long: `Scans JSX and TSX files under the given directory (default ".") for
literal display text and literal attribute values that are not routed
through a translation layer, and prints each as a highlighted code frame.

A completed scan exits 0 regardless of how many strings were found; use
--fail-on-findings to turn findings into a non-zero exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlags.skipAttributes, "skip-attributes", "", "Skip all attributes, or a comma-separated attribute name list")
	scanCmd.Flags().Lookup("skip-attributes").NoOptDefVal = "all"
	scanCmd.Flags().BoolVar(&scanFlags.skipText, "skip-text", false, "Exclude text-node findings")
	scanCmd.Flags().StringSliceVar(&scanFlags.skipPatterns, "skip-pattern", nil, "Veto findings whose excerpt contains a substring (comma-separated)")
	scanCmd.Flags().StringSliceVar(&scanFlags.skipFiles, "skip-files", nil, "Skip files whose name contains a substring (comma-separated)")
	scanCmd.Flags().IntVar(&scanFlags.minLength, "min", 1, "Minimum trimmed-content length to report")
	scanCmd.Flags().BoolVar(&scanFlags.includeLiteral, "include-literal", false, "Also report plain string literals")
	scanCmd.Flags().BoolVar(&scanFlags.includeTemplate, "include-template", false, "Also report template literals")
	scanCmd.Flags().StringVarP(&scanFlags.outputFormat, "format", "f", "text", "Output format: text, json, or sarif")
	scanCmd.Flags().StringVarP(&scanFlags.outputFile, "output", "o", "", "Output file (default: stdout)")
	scanCmd.Flags().StringVar(&scanFlags.baselinePath, "baseline", "", "Path to previous JSON report for diff comparison")
	scanCmd.Flags().BoolVar(&scanFlags.updateBaseline, "update-baseline", false, "Write current results as the new baseline")
	scanCmd.Flags().BoolVar(&scanFlags.failOnFindings, "fail-on-findings", false, "Exit with error if any hardcoded strings found")
}

func runScan(cmd *cobra.Command, args []string) error {
	// Apply config file defaults for flags not explicitly set
	applyConfigToScanFlags(cmd)

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	ctx := context.Background()
	start := time.Now()

	printStatus("Scanning directory: %s", dir)
	repoScanner := scanner.NewRepoScanner(dir, opts)
	findings, err := repoScanner.Scan(ctx)
	if err != nil {
		return enhanceError("scan", err)
	}

	// Determine output writer; color only makes sense on a terminal.
	writer := os.Stdout
	if scanFlags.outputFile != "" {
		f, err := os.Create(scanFlags.outputFile)
		if err != nil {
			return enhanceError("output file creation", err)
		}
		defer func() { _ = f.Close() }()
		writer = f
		color.NoColor = true
	} else if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	reportData := report.Data{
		Tool:      "i18nspectre",
		Version:   GetVersion(),
		Timestamp: time.Now(),
		Config: report.Config{
			RootPath:        dir,
			MinLength:       opts.MinLength,
			SkipText:        opts.SkipText,
			SkipAttributes:  scanFlags.skipAttributes,
			SkipPatterns:    opts.SkipPatterns,
			SkipFiles:       opts.SkipFiles,
			IncludeLiteral:  opts.IncludeLiteral,
			IncludeTemplate: opts.IncludeTemplate,
		},
		Findings: findings,
		Total:    len(findings),
	}

	reporter, err := selectReporter(scanFlags.outputFormat, writer)
	if err != nil {
		return err
	}
	if err := reporter.Generate(reportData); err != nil {
		return enhanceError("report generation", err)
	}

	// Baseline comparison
	if scanFlags.baselinePath != "" && !scanFlags.updateBaseline {
		currentFindings := baseline.Flatten(reportData)
		baselineFindings, err := baseline.Load(scanFlags.baselinePath)
		if err != nil {
			return enhanceError("baseline load", err)
		}
		diff := baseline.Diff(currentFindings, baselineFindings)
		slog.Info("Baseline comparison",
			slog.Int("new", len(diff.New)),
			slog.Int("resolved", len(diff.Resolved)),
			slog.Int("unchanged", len(diff.Unchanged)),
		)
	}

	// Write updated baseline if requested
	if scanFlags.updateBaseline && scanFlags.baselinePath != "" {
		baselineData, err := json.MarshalIndent(reportData, "", "  ")
		if err != nil {
			return enhanceError("baseline write", err)
		}
		if err := os.WriteFile(scanFlags.baselinePath, baselineData, 0644); err != nil {
			return enhanceError("baseline write", err)
		}
		slog.Info("Updated baseline", slog.String("path", scanFlags.baselinePath))
	}

	slog.Info("Scan complete",
		slog.Int("finding_count", len(findings)),
		slog.Duration("duration", time.Since(start)),
	)

	if scanFlags.failOnFindings && len(findings) > 0 {
		return fmt.Errorf("found %d hardcoded strings", len(findings))
	}

	return nil
}

// buildOptions validates flag input and freezes the run's options snapshot.
func buildOptions() (analyzer.Options, error) {
	if scanFlags.minLength < 0 {
		return analyzer.Options{}, fmt.Errorf("invalid --min value %d: must be zero or positive", scanFlags.minLength)
	}

	opts := analyzer.DefaultOptions()
	opts.MinLength = scanFlags.minLength
	opts.SkipText = scanFlags.skipText
	opts.SkipPatterns = scanFlags.skipPatterns
	opts.SkipFiles = scanFlags.skipFiles
	opts.IncludeLiteral = scanFlags.includeLiteral
	opts.IncludeTemplate = scanFlags.includeTemplate

	switch scanFlags.skipAttributes {
	case "":
		opts.Attributes = analyzer.SkipNoAttributes
	case "all", "true":
		opts.Attributes = analyzer.SkipAllAttributes
	default:
		names := strings.Split(scanFlags.skipAttributes, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		opts.Attributes = analyzer.SkipNamedAttributes
		opts.AttributeNames = analyzer.AttributeSet(names)
	}

	return opts, nil
}

func applyConfigToScanFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("min").Changed && cfg.MinLength > 0 {
		scanFlags.minLength = cfg.MinLength
	}
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		scanFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("skip-text").Changed && cfg.SkipText {
		scanFlags.skipText = true
	}
	if !cmd.Flags().Lookup("skip-attributes").Changed && cfg.SkipAttributes != "" {
		scanFlags.skipAttributes = cfg.SkipAttributes
	}
	if !cmd.Flags().Lookup("skip-pattern").Changed && len(cfg.SkipPatterns) > 0 {
		scanFlags.skipPatterns = cfg.SkipPatterns
	}
	if !cmd.Flags().Lookup("skip-files").Changed && len(cfg.SkipFiles) > 0 {
		scanFlags.skipFiles = cfg.SkipFiles
	}
}
