// Package deps extracts declared dependencies from package-manager manifest
// files found in a repository.
//
// Each supported manifest format has its own parser in a subpackage
// (javascript, python, java, ruby, php, golang). Parsers are pure functions
// over raw file content: they either return name→version pairs or report
// that the content does not correspond to their format. Extraction is best
// effort by design — the goal is a useful dependency inventory, not grammar
// compliance for every format.
//
// The Analyzer probes a repository for each well-known manifest filename
// through a FileFetcher and merges whatever the parsers recognize.
package deps

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// probeWorkers bounds concurrent manifest probes per analysis.
const probeWorkers = 4

// Result holds the dependencies extracted from a single manifest file.
// DevDependencies is nil for formats that have no dev section.
type Result struct {
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// Parser extracts name→version pairs from one manifest format.
type Parser interface {
	// Filename returns the well-known manifest filename this parser handles.
	Filename() string
	// Parse extracts dependencies from content. ok is false when the content
	// does not correspond to this parser's format; that is not an error, the
	// caller simply skips the manifest.
	Parse(content string) (result *Result, ok bool)
}

// FileFetcher retrieves a file from a repository. ok is false when the file
// is absent or could not be fetched.
type FileFetcher interface {
	FileContent(ctx context.Context, owner, repo, path string) (content string, ok bool)
}

// Report is the aggregated view of all manifests found in a repository.
// PackageManagers preserves probe order. TotalDependencies counts runtime
// dependencies only, dev dependencies are excluded.
type Report struct {
	PackageManagers   []string                     `json:"package_managers"`
	TotalDependencies int                          `json:"total_dependencies"`
	Dependencies      map[string]map[string]string `json:"dependencies"`
	DevDependencies   map[string]map[string]string `json:"dev_dependencies"`
}

// Analyzer probes a repository for known manifest files and merges the
// results of whichever parsers succeed.
type Analyzer struct {
	fetcher FileFetcher
	parsers []Parser
}

// NewAnalyzer creates an Analyzer probing for the given parsers in order.
// The parser order determines the order of Report.PackageManagers.
func NewAnalyzer(fetcher FileFetcher, parsers ...Parser) *Analyzer {
	return &Analyzer{fetcher: fetcher, parsers: parsers}
}

// Analyze probes each known manifest filename and builds the merged report.
// Probes are independent read-only fetches and run concurrently; results are
// merged in probe order so the report stays deterministic. An absent file
// never invokes its parser, and a parser that rejects the content is skipped
// silently.
func (a *Analyzer) Analyze(ctx context.Context, owner, repo string) *Report {
	results := make([]*Result, len(a.parsers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeWorkers)
	for i, p := range a.parsers {
		i, p := i, p
		g.Go(func() error {
			content, ok := a.fetcher.FileContent(ctx, owner, repo, p.Filename())
			if !ok {
				return nil
			}
			if r, ok := p.Parse(content); ok {
				results[i] = r
			}
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{
		PackageManagers: []string{},
		Dependencies:    make(map[string]map[string]string),
		DevDependencies: make(map[string]map[string]string),
	}
	for i, r := range results {
		if r == nil {
			continue
		}
		name := a.parsers[i].Filename()
		report.PackageManagers = append(report.PackageManagers, name)
		report.Dependencies[name] = r.Dependencies
		if r.DevDependencies != nil {
			report.DevDependencies[name] = r.DevDependencies
		}
		report.TotalDependencies += len(r.Dependencies)
	}
	return report
}
