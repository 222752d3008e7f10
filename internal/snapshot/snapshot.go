// Package snapshot compares the rendered HTML of every story with golden
// files kept in the repository.
package snapshot

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/designsystem/internal/logger"
	"github.com/alexisbeaulieu97/designsystem/internal/stories"
	"github.com/alexisbeaulieu97/designsystem/pkg/diff"
	"github.com/alexisbeaulieu97/designsystem/pkg/dom"
)

// Ext is the file extension of snapshot files.
const Ext = ".snap.html"

// ErrMismatch is wrapped by Check when at least one story differs from its
// snapshot.
var ErrMismatch = stderrors.New("snapshot mismatch")

// Status is the outcome for one story.
type Status string

const (
	StatusMatched  Status = "matched"
	StatusWritten  Status = "written"
	StatusUpdated  Status = "updated"
	StatusMismatch Status = "mismatch"
	StatusMissing  Status = "missing"
	StatusObsolete Status = "obsolete"
)

// Options configures Check.
type Options struct {
	Dir      string
	Registry *stories.Registry
	// Update rewrites differing snapshots and creates missing ones.
	Update bool
	Logger *logger.Logger
}

// Outcome records what happened to one snapshot file.
type Outcome struct {
	ID     string
	File   string
	Status Status
	Diff   string
}

// Report lists outcomes in story ID order followed by obsolete files.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that fail a check.
func (r *Report) Failed() []Outcome {
	if r == nil {
		return nil
	}
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusMismatch || o.Status == StatusMissing {
			failed = append(failed, o)
		}
	}
	return failed
}

// Check renders every story and compares it with Dir/<id>.snap.html. Without
// Update a missing or differing snapshot fails the check; obsolete files are
// reported but never fail it.
func Check(ctx context.Context, opts Options) (*Report, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, fmt.Errorf("snapshot directory is required")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("story registry is required")
	}
	if opts.Update {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	log := opts.Logger.With("dir", opts.Dir)

	report := &Report{}
	seen := make(map[string]bool)
	for _, entry := range opts.Registry.List() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := filepath.Join(opts.Dir, entry.ID+Ext)
		seen[filepath.Base(file)] = true

		html, err := dom.RenderString(entry.Node())
		if err != nil {
			return nil, fmt.Errorf("render story %s: %w", entry.ID, err)
		}
		outcome, err := compare(file, entry.ID, []byte(html+"\n"), opts.Update)
		if err != nil {
			return nil, err
		}
		log.With("story", entry.ID).With("status", outcome.Status).Debug("snapshot compared")
		report.Outcomes = append(report.Outcomes, outcome)
	}

	obsolete, err := obsoleteFiles(opts.Dir, seen)
	if err != nil {
		return nil, err
	}
	report.Outcomes = append(report.Outcomes, obsolete...)

	if failed := report.Failed(); len(failed) > 0 {
		ids := make([]string, len(failed))
		for i, o := range failed {
			ids[i] = o.ID
		}
		return report, fmt.Errorf("%w: %s", ErrMismatch, strings.Join(ids, ", "))
	}
	return report, nil
}

func compare(file, id string, rendered []byte, update bool) (Outcome, error) {
	outcome := Outcome{ID: id, File: file}

	existing, err := os.ReadFile(file)
	switch {
	case stderrors.Is(err, os.ErrNotExist):
		if !update {
			outcome.Status = StatusMissing
			return outcome, nil
		}
		if err := os.WriteFile(file, rendered, 0o644); err != nil {
			return outcome, fmt.Errorf("failed to write snapshot %s: %w", file, err)
		}
		outcome.Status = StatusWritten
		return outcome, nil
	case err != nil:
		return outcome, fmt.Errorf("failed to read snapshot %s: %w", file, err)
	}

	d := diff.Unified(existing, rendered, filepath.Base(file), "rendered")
	if d == "" {
		outcome.Status = StatusMatched
		return outcome, nil
	}
	if !update {
		outcome.Status = StatusMismatch
		outcome.Diff = d
		return outcome, nil
	}
	if err := os.WriteFile(file, rendered, 0o644); err != nil {
		return outcome, fmt.Errorf("failed to write snapshot %s: %w", file, err)
	}
	outcome.Status = StatusUpdated
	outcome.Diff = d
	return outcome, nil
}

func obsoleteFiles(dir string, seen map[string]bool) ([]Outcome, error) {
	entries, err := os.ReadDir(dir)
	if stderrors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var out []Outcome
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Ext) || seen[name] {
			continue
		}
		out = append(out, Outcome{
			ID:     strings.TrimSuffix(name, Ext),
			File:   filepath.Join(dir, name),
			Status: StatusObsolete,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
