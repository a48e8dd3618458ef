package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	glob "github.com/Sriram-PR/go-glob"
)

// patternHit is one covering pattern in a report.
type patternHit struct {
	Index    int    `yaml:"index"`
	Pattern  string `yaml:"pattern"`
	Negative bool   `yaml:"negative,omitempty"`
}

// pathReport lists the patterns covering one input path.
type pathReport struct {
	Path    string       `yaml:"path"`
	Dir     bool         `yaml:"dir,omitempty"`
	Matches []patternHit `yaml:"matches"`
}

// run evaluates every path against the configured patterns and writes the
// reports to out in input order.
func run(ctx context.Context, cfg Config, paths []string, out io.Writer, logger *slog.Logger) error {
	opts := glob.ListOptions{}
	if cfg.IgnoreCase {
		opts.Case = glob.CaseFold
	}
	list, warnings := glob.NewList(cfg.BasePath, cfg.Patterns, opts)
	for _, w := range warnings {
		logger.Warn("Skipping pattern", slog.Int("index", w.Index), slog.String("pattern", w.Pattern), slog.String("reason", w.Message))
	}
	logger.Debug("Patterns compiled",
		slog.Int("count", list.Len()),
		slog.String("base", list.BasePath()),
		slog.String("case", opts.Case.String()))

	reports, err := evaluate(ctx, list, paths, cfg.Concurrency)
	if err != nil {
		return err
	}

	matched := 0
	for _, r := range reports {
		if len(r.Matches) > 0 {
			matched++
		}
	}
	logger.Debug("Paths evaluated", slog.Int("paths", len(reports)), slog.Int("matched", matched))

	if !cfg.ShowAll {
		kept := reports[:0]
		for _, r := range reports {
			if len(r.Matches) > 0 {
				kept = append(kept, r)
			}
		}
		reports = kept
	}
	return writeReports(out, cfg.Format, reports)
}

// evaluate matches paths in parallel using at most concurrency workers
// (GOMAXPROCS when zero). A trailing slash marks a directory.
func evaluate(ctx context.Context, list *glob.List, paths []string, concurrency int) ([]pathReport, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	reports := make([]pathReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, raw := range paths {
		i, raw := i, raw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			isDir := strings.HasSuffix(raw, "/")
			report := pathReport{Path: raw, Dir: isDir, Matches: []patternHit{}}
			for _, m := range list.Matching(raw, isDir) {
				report.Matches = append(report.Matches, patternHit{
					Index:    m.Index,
					Pattern:  m.Source,
					Negative: m.Negative,
				})
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluating paths: %w", err)
	}
	return reports, nil
}

func writeReports(out io.Writer, format string, reports []pathReport) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding reports: %w", err)
		}
		return enc.Close()
	}

	w := bufio.NewWriter(out)
	for _, r := range reports {
		if len(r.Matches) == 0 {
			fmt.Fprintf(w, "%s\t-\n", r.Path)
			continue
		}
		hits := make([]string, len(r.Matches))
		for i, m := range r.Matches {
			hits[i] = fmt.Sprintf("%d:%s", m.Index, m.Pattern)
		}
		fmt.Fprintf(w, "%s\t%s\n", r.Path, strings.Join(hits, " "))
	}
	return w.Flush()
}

// readPaths returns one path per non-empty line of r.
func readPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading paths: %w", err)
	}
	return paths, nil
}
