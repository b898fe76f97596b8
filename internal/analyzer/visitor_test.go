package analyzer

import (
	"context"
	"reflect"
	"testing"

	"github.com/ppiankov/i18nspectre/internal/parser"
)

const fixture = `<div><h1>Hi</h1><p>Start editing</p><img alt="Some alt text" other={true} data-test /></div>`

func analyze(t *testing.T, src string, opts Options) []Finding {
	t.Helper()
	tree, err := parser.New().Parse(context.Background(), "test.tsx", []byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	defer tree.Close()

	findings, err := New(opts).File("test.tsx", []byte(src), tree.RootNode())
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	return findings
}

func TestDefaultsReportTextAndAttributes(t *testing.T) {
	findings := analyze(t, fixture, DefaultOptions())

	if len(findings) != 3 {
		t.Fatalf("expected 3 findings, got %d: %+v", len(findings), findings)
	}

	// Document order.
	if findings[0].Kind != KindText || findings[0].Value != "Hi" {
		t.Fatalf("unexpected first finding: %+v", findings[0])
	}
	if findings[1].Kind != KindText || findings[1].Value != "Start editing" {
		t.Fatalf("unexpected second finding: %+v", findings[1])
	}
	if findings[2].Kind != KindAttribute || findings[2].Value != "Some alt text" {
		t.Fatalf("unexpected third finding: %+v", findings[2])
	}

	// The attribute highlight covers the value, not the quotes.
	if findings[2].Location.Text != "Some alt text" {
		t.Fatalf("unexpected attribute highlight: %q", findings[2].Location.Text)
	}
}

func TestSkipTextAndSkipAttributesYieldNothing(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipText = true
	opts.Attributes = SkipAllAttributes

	if findings := analyze(t, fixture, opts); len(findings) != 0 {
		t.Fatalf("expected zero findings, got %+v", findings)
	}
}

func TestSkipNamedAttribute(t *testing.T) {
	opts := DefaultOptions()
	opts.Attributes = SkipNamedAttributes
	opts.AttributeNames = AttributeSet([]string{"alt"})

	findings := analyze(t, fixture, opts)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %+v", findings)
	}
	for _, f := range findings {
		if f.Kind != KindText {
			t.Fatalf("expected only text findings, got %+v", f)
		}
	}
}

func TestSkipPatternVetoesResolvedExcerpt(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipPatterns = []string{"editing"}

	findings := analyze(t, fixture, opts)
	// The whole fixture is one line, so the pattern appears in every
	// finding's excerpt: the veto matches rendered line content, not the
	// node value.
	if len(findings) != 0 {
		t.Fatalf("expected all findings vetoed on a one-line fixture, got %+v", findings)
	}

	multiline := "<div>\n<h1>Hi</h1>\n<p>Start editing</p>\n<img alt=\"Some alt text\" />\n</div>\n"
	findings = analyze(t, multiline, opts)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings after veto, got %+v", findings)
	}
	for _, f := range findings {
		if f.Value == "Start editing" {
			t.Fatalf("expected the editing line vetoed, got %+v", f)
		}
	}
}

func TestMinLength(t *testing.T) {
	opts := DefaultOptions()
	opts.MinLength = 5

	findings := analyze(t, fixture, opts)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings at min 5, got %+v", findings)
	}
	if findings[0].Value != "Start editing" || findings[1].Value != "Some alt text" {
		t.Fatalf("unexpected findings: %+v", findings)
	}
}

func TestExpressionAndBooleanAttributesIgnored(t *testing.T) {
	src := `<input other={true} checked value={count} />`
	if findings := analyze(t, src, DefaultOptions()); len(findings) != 0 {
		t.Fatalf("expected no findings, got %+v", findings)
	}
}

func TestPlainLiteralsOptIn(t *testing.T) {
	src := "const label = \"Submit form\";\nconst n = 42;\n"

	if findings := analyze(t, src, DefaultOptions()); len(findings) != 0 {
		t.Fatalf("expected literals excluded by default, got %+v", findings)
	}

	opts := DefaultOptions()
	opts.IncludeLiteral = true
	findings := analyze(t, src, opts)
	if len(findings) != 1 || findings[0].Kind != KindLiteral || findings[0].Value != "Submit form" {
		t.Fatalf("unexpected findings: %+v", findings)
	}
	if findings[0].Location.Text != "Submit form" {
		t.Fatalf("literal highlight must exclude quotes, got %q", findings[0].Location.Text)
	}
}

func TestTemplateLiteralsOptIn(t *testing.T) {
	src := "const msg = `Hello there`;\n"

	if findings := analyze(t, src, DefaultOptions()); len(findings) != 0 {
		t.Fatalf("expected templates excluded by default, got %+v", findings)
	}

	opts := DefaultOptions()
	opts.IncludeTemplate = true
	findings := analyze(t, src, opts)
	if len(findings) != 1 || findings[0].Kind != KindTemplate {
		t.Fatalf("unexpected findings: %+v", findings)
	}
}

func TestImportSpecifiersNeverReported(t *testing.T) {
	src := "import React from \"react\";\nexport { x } from \"./mod\";\n"

	opts := DefaultOptions()
	opts.IncludeLiteral = true
	if findings := analyze(t, src, opts); len(findings) != 0 {
		t.Fatalf("expected module specifiers excluded, got %+v", findings)
	}
}

func TestTypePositionsNeverReported(t *testing.T) {
	src := "type Size = \"small\" | \"large\";\n" +
		"interface Props { kind: \"primary\" }\n" +
		"const s: \"small\" = \"small\";\n"

	opts := DefaultOptions()
	opts.IncludeLiteral = true
	findings := analyze(t, src, opts)
	if len(findings) != 1 {
		t.Fatalf("expected only the value literal, got %+v", findings)
	}
	if findings[0].Location.StartLine != 3 {
		t.Fatalf("expected the line 3 value literal, got %+v", findings[0])
	}
}

func TestNestedElementsWalked(t *testing.T) {
	src := "<ul>\n  <li><a href=\"/about\">About us</a></li>\n</ul>\n"

	findings := analyze(t, src, DefaultOptions())
	if len(findings) != 2 {
		t.Fatalf("expected href and text findings, got %+v", findings)
	}
	if findings[0].Kind != KindAttribute || findings[0].Value != "/about" {
		t.Fatalf("unexpected first finding: %+v", findings[0])
	}
	if findings[1].Kind != KindText || findings[1].Value != "About us" {
		t.Fatalf("unexpected second finding: %+v", findings[1])
	}
}

func TestMultiByteSourceResolvesCorrectLine(t *testing.T) {
	src := "const greeting = \"こんにちは\";\n<p>Translate me</p>;\n"

	findings := analyze(t, src, DefaultOptions())
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %+v", findings)
	}
	f := findings[0]
	if f.Value != "Translate me" || f.Location.StartLine != 2 {
		t.Fatalf("unexpected finding: %+v", f)
	}
	if f.Location.StartCol != 3 {
		t.Fatalf("expected rune column 3, got %d", f.Location.StartCol)
	}
}

func TestDeterministicAcrossRuns(t *testing.T) {
	first := analyze(t, fixture, DefaultOptions())
	second := analyze(t, fixture, DefaultOptions())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("findings differ between runs:\n%+v\n%+v", first, second)
	}
}
