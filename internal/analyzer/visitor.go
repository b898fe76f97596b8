package analyzer

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/ppiankov/i18nspectre/internal/textspan"
)

// Analyzer classifies syntax-tree nodes into findings.
type Analyzer struct {
	opts Options
}

// New creates an analyzer for one run's options.
func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// File walks the parsed tree depth-first in document order and returns the
// findings for one source file, in emission order. Node spans are normalized
// against the root node's base offset before resolution, since parser spans
// may be relative to the compilation unit rather than absolute zero.
func (a *Analyzer) File(path string, src []byte, root *sitter.Node) ([]Finding, error) {
	w := &fileWalk{
		opts: a.opts,
		path: path,
		src:  src,
		text: string(src),
		base: int(root.StartByte()),
	}
	if err := w.visit(root); err != nil {
		return nil, err
	}
	return w.findings, nil
}

// fileWalk holds the per-file traversal state. Discarded once the file's
// findings are returned.
type fileWalk struct {
	opts     Options
	path     string
	src      []byte
	text     string
	base     int
	findings []Finding
}

func (w *fileWalk) visit(n *sitter.Node) error {
	switch n.Type() {
	case "import_statement", "type_annotation", "type_arguments",
		"type_alias_declaration", "interface_declaration", "type_parameters":
		// Module specifiers and type-only positions are never findings, even
		// when the subtree syntactically contains string-shaped nodes.
		return nil
	case "jsx_text":
		if w.opts.KeepText(n.Content(w.src)) {
			return w.emit(KindText, n.Content(w.src), n.StartByte(), n.EndByte())
		}
		return nil
	case "jsx_attribute":
		return w.visitAttribute(n)
	case "string":
		if p := n.Parent(); p != nil && p.Type() == "export_statement" {
			// export ... from "mod" — a module specifier, like imports.
			return nil
		}
		if value := stringValue(n, w.src); w.opts.KeepLiteral(value) {
			start, end := innerSpan(n)
			return w.emit(KindLiteral, value, start, end)
		}
		return nil
	case "template_string":
		if w.opts.KeepTemplate() {
			return w.emit(KindTemplate, n.Content(w.src), n.StartByte(), n.EndByte())
		}
		// Not reported as a whole; substitutions hold ordinary expressions,
		// so fall through and keep walking.
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if err := w.visit(n.NamedChild(i)); err != nil {
			return err
		}
	}
	return nil
}

// visitAttribute narrows a jsx_attribute to its value span. The first named
// child is the attribute name (property_identifier, or jsx_namespace_name
// whose content is already namespace:name). A missing value is a boolean
// attribute and never a finding; an expression container value is walked
// like any other expression.
func (w *fileWalk) visitAttribute(n *sitter.Node) error {
	if n.NamedChildCount() == 0 {
		return nil
	}
	name := n.NamedChild(0).Content(w.src)
	for i := 1; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "string" {
			if err := w.visit(child); err != nil {
				return err
			}
			continue
		}
		value := stringValue(child, w.src)
		if !w.opts.KeepAttribute(name, value) {
			return nil
		}
		start, end := innerSpan(child)
		return w.emit(KindAttribute, value, start, end)
	}
	return nil
}

func (w *fileWalk) emit(kind Kind, value string, start, end uint32) error {
	loc, err := textspan.Resolve(w.text, int(start)-w.base, int(end)-w.base)
	if err != nil {
		return fmt.Errorf("%s: %w", w.path, err)
	}
	if w.opts.Vetoed(loc.Excerpt()) {
		return nil
	}
	w.findings = append(w.findings, Finding{File: w.path, Kind: kind, Value: value, Location: loc})
	return nil
}

// innerSpan strips the quote delimiters from a string node so the highlight
// marks the value, not the quotes. An empty string yields a zero-width span.
func innerSpan(n *sitter.Node) (uint32, uint32) {
	start, end := n.StartByte(), n.EndByte()
	if end-start >= 2 {
		start++
		end--
	}
	return start, end
}

func stringValue(n *sitter.Node, src []byte) string {
	start, end := innerSpan(n)
	return string(src[start:end])
}
