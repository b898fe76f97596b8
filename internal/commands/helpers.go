package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ppiankov/i18nspectre/internal/report"
)

func printStatus(format string, args ...interface{}) {
	slog.Info(fmt.Sprintf(format, args...))
}

// enhanceError enhances an error with additional context and helpful suggestions
func enhanceError(operation string, err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		return fmt.Errorf("%s failed: Path not found.\n"+
			"Solutions:\n"+
			"  - Check the scan directory argument is correct\n"+
			"  - Ensure the directory exists and is readable\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "permission denied") {
		return fmt.Errorf("%s failed: Permission denied.\n"+
			"Solutions:\n"+
			"  - Check read permissions on the scan directory\n"+
			"  - Exclude unreadable paths with --skip-files\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "syntax error") {
		return fmt.Errorf("%s failed: A file could not be parsed.\n"+
			"Solutions:\n"+
			"  - Fix the syntax error in the file named above\n"+
			"  - Exclude the file with --skip-files\n"+
			"Original error: %w", operation, err)
	}

	// Default error with context
	return fmt.Errorf("%s failed: %w", operation, err)
}

func selectReporter(format string, writer io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return report.NewJSONReporter(writer), nil
	case "sarif":
		return report.NewSARIFReporter(writer), nil
	case "text":
		return report.NewTextReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: text, json, sarif)", format)
	}
}
