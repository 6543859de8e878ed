// Package index maintains the in-memory set of known files and derives
// per-file metadata on demand.
package index

import (
	"os"
	"path/filepath"
	"time"

	"vaultfind/internal/config"
	"vaultfind/internal/scan"
)

// Store holds the current set of indexed absolute paths plus the time
// they were enumerated. It is rebuilt wholesale by Refresh, never
// incrementally maintained; entries may vanish from disk between build
// and use, which callers tolerate via Stat's ok result or Prune.
type Store struct {
	cfg     config.Config
	paths   []string
	builtAt time.Time
	built   bool
}

// Stats reports the outcome of a refresh.
type Stats struct {
	Files    int
	Strategy scan.Strategy
}

// NewStore creates an empty store for the given configuration.
func NewStore(cfg config.Config) *Store {
	return &Store{cfg: cfg}
}

// Refresh re-enumerates every configured root and replaces the entry
// set and timestamp unconditionally.
func (s *Store) Refresh() Stats {
	roots := make([]string, len(s.cfg.Sources))
	for i, src := range s.cfg.Sources {
		roots[i] = src.Root
	}

	paths, strategy := scan.Run(roots, scan.Options{
		Extensions: s.cfg.Extensions,
		UseFd:      s.cfg.Fd.Enabled,
		FdArgs:     s.cfg.Fd.Args,
	})

	normalized := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		normalized = append(normalized, p)
	}

	s.paths = normalized
	s.builtAt = time.Now()
	s.built = true
	return Stats{Files: len(normalized), Strategy: strategy}
}

// Ensure builds the index on first use; once built it is a no-op.
func (s *Store) Ensure() {
	if !s.built {
		s.Refresh()
	}
}

// Prune re-stats every entry and drops the ones that fail. It never
// discovers new files and leaves the build timestamp untouched.
// Returns the number of entries removed.
func (s *Store) Prune() int {
	kept := s.paths[:0]
	for _, p := range s.paths {
		if _, err := os.Stat(p); err == nil {
			kept = append(kept, p)
		}
	}
	removed := len(s.paths) - len(kept)
	s.paths = kept
	return removed
}

// Paths returns the indexed absolute paths in enumeration order.
func (s *Store) Paths() []string { return s.paths }

// BuiltAt returns when the index was last rebuilt.
func (s *Store) BuiltAt() time.Time { return s.builtAt }

// Sources returns the configured sources the store resolves against.
func (s *Store) Sources() []config.Source { return s.cfg.Sources }

// Config returns the configuration the store was created with.
func (s *Store) Config() config.Config { return s.cfg }
