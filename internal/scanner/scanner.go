// Package scanner walks a source tree and feeds component-markup files
// through the parse/classify pipeline.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/i18nspectre/internal/analyzer"
	"github.com/ppiankov/i18nspectre/internal/parser"
)

// RepoScanner scans a directory tree for hardcoded strings in JSX/TSX files.
type RepoScanner struct {
	rootPath string
	opts     analyzer.Options
}

// NewRepoScanner creates a scanner rooted at rootPath.
func NewRepoScanner(rootPath string, opts analyzer.Options) *RepoScanner {
	return &RepoScanner{
		rootPath: rootPath,
		opts:     opts,
	}
}

// Scan walks the tree in lexical entry order and returns every finding, file
// by file, preserving document order within each file. Re-running over
// unchanged input reproduces identical output. Unreadable files and parse
// failures abort the scan; there is no continue-on-error path.
func (s *RepoScanner) Scan(ctx context.Context) ([]analyzer.Finding, error) {
	root, err := filepath.Abs(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	p := parser.New()
	a := analyzer.New(s.opts)
	var findings []analyzer.Finding

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// Hidden directories hold tooling state, not components.
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(d.Name())
		if ext != ".jsx" && ext != ".tsx" {
			return nil
		}
		if s.opts.SkipFile(d.Name()) {
			slog.Debug("Skipping file", slog.String("path", path))
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		tree, err := p.Parse(ctx, path, src)
		if err != nil {
			return err
		}
		defer tree.Close()

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		fileFindings, err := a.File(rel, src, tree.RootNode())
		if err != nil {
			return err
		}
		findings = append(findings, fileFindings...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}
