package linter

import (
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/shouldlint/config"
	"github.com/viant/shouldlint/lint"
)

type Option func(*Linter)

// WithFS sets the file system used to read sources
func WithFS(fs afs.Service) Option {
	return func(l *Linter) {
		l.fs = fs
	}
}

// WithConfig sets the configuration; rules missing from it stay disabled
func WithConfig(cfg *config.Config) Option {
	return func(l *Linter) {
		l.config = cfg
	}
}

// WithRegistry sets the rules available to the configuration
func WithRegistry(registry *lint.Registry) Option {
	return func(l *Linter) {
		l.registry = registry
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Linter) {
		l.logger = logger
	}
}
