// Package coverage enforces minimum coverage percentages on a Go cover
// profile, restricted to the source files selected by include and exclude
// globs.
package coverage

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/cover"

	"github.com/alexisbeaulieu97/designsystem/internal/config"
	"github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

// Metric names a coverage dimension.
type Metric string

const (
	MetricStatements Metric = "statements"
	MetricLines      Metric = "lines"
	MetricFunctions  Metric = "functions"
	MetricBranches   Metric = "branches"
)

// ErrNoFiles is returned when the profile has entries but none of them is
// selected by the include and exclude patterns.
var ErrNoFiles = stderrors.New("no profile entries matched the coverage patterns")

// Options configures Check.
type Options struct {
	// ModulePath is stripped from profile file names before matching. When
	// empty it is read from ModuleRoot/go.mod, or else inferred from the
	// profile as the prefix that makes entries match Include.
	ModulePath string
	// ModuleRoot locates source files. Function coverage is only computed
	// when it is set.
	ModuleRoot string
	Include    []string
	Exclude    []string
	Thresholds config.Thresholds
}

// MetricResult is the outcome for a single metric.
type MetricResult struct {
	Metric    Metric
	Covered   int
	Total     int
	Percent   float64
	Threshold float64
	Supported bool
	Passed    bool
}

// Result is the outcome of a coverage check.
type Result struct {
	Files   []string
	Metrics []MetricResult
}

// Failed lists the metrics below their threshold.
func (r *Result) Failed() []string {
	if r == nil {
		return nil
	}
	var failed []string
	for _, m := range r.Metrics {
		if !m.Passed {
			failed = append(failed, string(m.Metric))
		}
	}
	return failed
}

// Metric returns the result for m.
func (r *Result) Metric(m Metric) (MetricResult, bool) {
	if r == nil {
		return MetricResult{}, false
	}
	for _, res := range r.Metrics {
		if res.Metric == m {
			return res, true
		}
	}
	return MetricResult{}, false
}

// Check parses the profile at profilePath and compares the selected files
// against opts.Thresholds. The result is returned even when a threshold is
// missed; the error is then a *errors.CoverageError.
func Check(profilePath string, opts Options) (*Result, error) {
	profiles, err := cover.ParseProfiles(profilePath)
	if err != nil {
		return nil, errors.NewParseError(profilePath, 0, err)
	}

	modulePath := opts.ModulePath
	if modulePath == "" && opts.ModuleRoot != "" {
		modulePath, err = readModulePath(opts.ModuleRoot)
		if err != nil {
			return nil, err
		}
	}
	if modulePath == "" {
		modulePath = inferModulePath(profiles, opts.Include)
	}

	selected := make([]*cover.Profile, 0, len(profiles))
	files := make([]string, 0, len(profiles))
	for _, p := range profiles {
		rel := relativeName(p.FileName, modulePath)
		ok, err := matches(rel, opts.Include, opts.Exclude)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		selected = append(selected, p)
		files = append(files, rel)
	}
	sort.Strings(files)
	if len(selected) == 0 && hasStatements(profiles) {
		return nil, fmt.Errorf("%w: include %v, exclude %v, module path %q",
			ErrNoFiles, opts.Include, opts.Exclude, modulePath)
	}

	result := &Result{Files: files}

	stmts, lines := countBlocks(selected)
	result.Metrics = append(result.Metrics,
		evaluate(MetricStatements, stmts, opts.Thresholds.Statements),
		evaluate(MetricLines, lines, opts.Thresholds.Lines),
	)

	if opts.ModuleRoot != "" {
		funcs, err := countFunctions(opts.ModuleRoot, modulePath, selected)
		if err != nil {
			return nil, err
		}
		result.Metrics = append(result.Metrics, evaluate(MetricFunctions, funcs, opts.Thresholds.Functions))
	} else {
		result.Metrics = append(result.Metrics, unsupported(MetricFunctions, opts.Thresholds.Functions))
	}
	result.Metrics = append(result.Metrics, unsupported(MetricBranches, opts.Thresholds.Branches))

	if failed := result.Failed(); len(failed) > 0 {
		return result, errors.NewCoverageError(failed)
	}
	return result, nil
}

type tally struct {
	covered int
	total   int
}

func evaluate(m Metric, t tally, threshold float64) MetricResult {
	pct := 100.0
	if t.total > 0 {
		pct = float64(t.covered) * 100 / float64(t.total)
	}
	return MetricResult{
		Metric:    m,
		Covered:   t.covered,
		Total:     t.total,
		Percent:   pct,
		Threshold: threshold,
		Supported: true,
		Passed:    pct >= threshold,
	}
}

func unsupported(m Metric, threshold float64) MetricResult {
	return MetricResult{Metric: m, Threshold: threshold, Passed: true}
}

func countBlocks(profiles []*cover.Profile) (stmts, lines tally) {
	for _, p := range profiles {
		lineHit := make(map[int]bool)
		for _, b := range p.Blocks {
			if b.NumStmt == 0 {
				continue
			}
			stmts.total += b.NumStmt
			if b.Count > 0 {
				stmts.covered += b.NumStmt
			}
			for l := b.StartLine; l <= b.EndLine; l++ {
				lineHit[l] = lineHit[l] || b.Count > 0
			}
		}
		for _, hit := range lineHit {
			lines.total++
			if hit {
				lines.covered++
			}
		}
	}
	return stmts, lines
}

func matches(rel string, include, exclude []string) (bool, error) {
	included := len(include) == 0
	for _, pattern := range include {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if ok {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}
	for _, pattern := range exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

func relativeName(fileName, modulePath string) string {
	name := filepath.ToSlash(fileName)
	if modulePath != "" {
		name = strings.TrimPrefix(name, strings.TrimSuffix(modulePath, "/")+"/")
	}
	return name
}

// inferModulePath finds the leading path segments that, once removed from a
// profile entry, let it match one of the include patterns.
func inferModulePath(profiles []*cover.Profile, include []string) string {
	if len(include) == 0 {
		return ""
	}
	for _, p := range profiles {
		segments := strings.Split(filepath.ToSlash(p.FileName), "/")
		for i := 1; i < len(segments); i++ {
			rel := strings.Join(segments[i:], "/")
			for _, pattern := range include {
				if ok, _ := doublestar.Match(pattern, rel); ok {
					return strings.Join(segments[:i], "/")
				}
			}
		}
	}
	return ""
}

func hasStatements(profiles []*cover.Profile) bool {
	for _, p := range profiles {
		for _, b := range p.Blocks {
			if b.NumStmt > 0 {
				return true
			}
		}
	}
	return false
}

func readModulePath(root string) (string, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", errors.NewParseError(path, 0, fmt.Errorf("module directive not found"))
	}
	return modulePath, nil
}
