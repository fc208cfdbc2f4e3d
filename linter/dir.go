package linter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/shouldlint/lint"
)

// LintFile reads the file at URL and lints it
func (l *Linter) LintFile(ctx context.Context, URL string) ([]*lint.Finding, error) {
	src, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
	}
	return l.LintSource(ctx, localPath(URL), src)
}

// LintDir walks root and lints every file matched by the configuration
func (l *Linter) LintDir(ctx context.Context, root string) ([]*lint.Finding, error) {
	var files []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		relative := path.Join(parent, info.Name())
		if info.IsDir() {
			if l.config.Excluded(relative) {
				l.logger.Debug("skipping directory", "path", relative)
				return false, nil
			}
			return true, nil
		}
		if l.config.Matches(relative) {
			files = append(files, relative)
		}
		return true, nil
	}
	if err := l.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(files)

	var findings []*lint.Finding
	for _, relative := range files {
		URL := url.Join(root, relative)
		src, err := l.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", URL, err)
		}
		fileFindings, err := l.LintSource(ctx, displayPath(root, relative), src)
		if errors.Is(err, lint.ErrUnsupportedLanguage) {
			l.logger.Warn("skipping unsupported file", "path", relative)
			continue
		}
		if err != nil {
			return nil, err
		}
		findings = append(findings, fileFindings...)
	}
	return findings, nil
}

// Lint lints each target, linting directories recursively
func (l *Linter) Lint(ctx context.Context, targets ...string) ([]*lint.Finding, error) {
	var findings []*lint.Finding
	for _, target := range targets {
		object, err := l.fs.Object(ctx, target)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", target, err)
		}
		var targetFindings []*lint.Finding
		if object.IsDir() {
			targetFindings, err = l.LintDir(ctx, target)
		} else {
			targetFindings, err = l.LintFile(ctx, target)
		}
		if err != nil {
			return nil, err
		}
		findings = append(findings, targetFindings...)
	}
	return findings, nil
}

// localPath strips the file scheme so findings of local files carry plain paths
func localPath(URL string) string {
	if strings.HasPrefix(URL, "file://") {
		return strings.TrimPrefix(URL, "file://")
	}
	return URL
}

func displayPath(root, relative string) string {
	return path.Join(localPath(root), relative)
}
