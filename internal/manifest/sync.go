package manifest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ctxkit/ctxkit/internal/defs"
	"github.com/ctxkit/ctxkit/internal/frontmatter"
)

// Report records the per-directory outcome of a sync pass.
type Report struct {
	Synced   []string // skill names that contributed a record
	Skipped  []string // directories without a definition file
	Warnings []string // non-fatal degradations, e.g. a malformed prior manifest
}

// Synchronizer rebuilds the skill manifest from what exists on disk.
type Synchronizer struct {
	skillsRoot string
	logger     *slog.Logger
}

// NewSynchronizer creates a Synchronizer for the given skills root.
func NewSynchronizer(skillsRoot string, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Synchronizer{skillsRoot: skillsRoot, logger: logger}
}

// Sync enumerates the immediate subdirectories of the skills root, builds
// a record for each one holding a definition file, and persists the
// resulting manifest, replacing the previous skills mapping entirely.
// The source field of a pre-existing record with the same name is the
// only value carried forward.
//
// Running Sync twice with no filesystem change in between produces
// byte-identical manifest output.
func (s *Synchronizer) Sync() (*Manifest, *Report, error) {
	entries, err := os.ReadDir(s.skillsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrSkillsRootMissing, s.skillsRoot)
		}
		return nil, nil, fmt.Errorf("read skills root %s: %w", s.skillsRoot, err)
	}

	report := &Report{}

	manifestPath := PathIn(s.skillsRoot)
	prev, err := Load(manifestPath)
	if err != nil {
		// Degrade, don't crash: a broken manifest must not block
		// reconciliation. prev is the empty baseline in this case.
		s.logger.Warn("existing manifest unreadable, rebuilding from scratch", "error", err)
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("existing manifest unreadable (%v), rebuilding from scratch", err))
	}

	next := New()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		defPath := filepath.Join(s.skillsRoot, name, defs.SkillFileMD)
		raw, err := os.ReadFile(defPath)
		if err != nil {
			if os.IsNotExist(err) {
				report.Skipped = append(report.Skipped, name)
				s.logger.Info("skill directory has no definition file, skipping", "skill", name)
				continue
			}
			return nil, nil, fmt.Errorf("read %s: %w", defPath, err)
		}

		next.Skills[name] = buildRecord(name, string(raw), prev)
		report.Synced = append(report.Synced, name)
	}

	if err := Save(manifestPath, next); err != nil {
		return nil, nil, err
	}

	s.logger.Info("manifest synchronized",
		"skills", len(report.Synced),
		"skipped", len(report.Skipped),
	)
	return next, report, nil
}

// buildRecord derives one skill record from the definition file text,
// preserving the source of the previous record with the same name.
func buildRecord(name, text string, prev *Manifest) SkillRecord {
	meta := frontmatter.Parse(text)

	rec := SkillRecord{
		Version:     DefaultSkillVersion,
		Source:      SourceLocal,
		Description: DefaultDescription,
	}
	if v := meta["version"]; v != "" {
		rec.Version = v
	}
	if d := meta["description"]; d != "" {
		rec.Description = d
	}
	if old, ok := prev.Skills[name]; ok && old.Source != "" {
		rec.Source = old.Source
	}
	return rec
}
