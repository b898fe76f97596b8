package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/i18nspectre/internal/report"
)

func TestSelectReporter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"text", "json", "sarif"} {
		r, err := selectReporter(format, &buf)
		if err != nil {
			t.Fatalf("selectReporter(%q) failed: %v", format, err)
		}
		if r == nil {
			t.Fatalf("selectReporter(%q) returned nil", format)
		}
	}

	if _, err := selectReporter("xml", &buf); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestSelectReporterTypes(t *testing.T) {
	var buf bytes.Buffer

	r, _ := selectReporter("text", &buf)
	if _, ok := r.(*report.TextReporter); !ok {
		t.Fatalf("expected TextReporter, got %T", r)
	}
	r, _ = selectReporter("json", &buf)
	if _, ok := r.(*report.JSONReporter); !ok {
		t.Fatalf("expected JSONReporter, got %T", r)
	}
}

func TestEnhanceErrorNil(t *testing.T) {
	if err := enhanceError("scan", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestEnhanceErrorPathNotFound(t *testing.T) {
	base := errors.New("open /missing: no such file or directory")
	err := enhanceError("scan", base)
	if err == nil {
		t.Fatal("expected enhanced error")
	}
	if !strings.Contains(err.Error(), "Path not found") {
		t.Fatalf("expected path suggestion, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped original error")
	}
}

func TestEnhanceErrorSyntax(t *testing.T) {
	base := errors.New("parse broken.tsx: syntax error")
	err := enhanceError("scan", base)
	if !strings.Contains(err.Error(), "--skip-files") {
		t.Fatalf("expected skip-files suggestion, got %v", err)
	}
}

func TestEnhanceErrorDefault(t *testing.T) {
	base := errors.New("boom")
	err := enhanceError("report generation", base)
	if err.Error() != "report generation failed: boom" {
		t.Fatalf("unexpected message: %v", err)
	}
}
