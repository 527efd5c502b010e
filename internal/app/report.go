package app

import (
	"fmt"
	"io"

	"go.trai.ch/hdlc/internal/core/domain"
	"go.trai.ch/hdlc/internal/engine/library"
)

type summary struct {
	sources  int
	errors   int
	warnings int
}

// renderReports prints the diagnostics of every source that has any,
// followed by one summary line for the library.
func renderReports(w io.Writer, lib string, reports []library.Report) summary {
	var s summary
	for _, r := range reports {
		s.sources++
		s.errors += len(r.Errors)
		s.warnings += len(r.Warnings)

		if len(r.Errors) == 0 && len(r.Warnings) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s:\n", r.Source.Path())
		for _, e := range r.Errors {
			_, _ = fmt.Fprintf(w, "  error: %s\n", e)
		}
		for _, warn := range r.Warnings {
			_, _ = fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}

	_, _ = fmt.Fprintf(w, "library %s: %s, %s, %s\n", lib,
		plural(s.sources, "source"), plural(s.errors, "error"), plural(s.warnings, "warning"))
	return s
}

func renderStats(w io.Writer, stats domain.BuildStats) {
	_, _ = fmt.Fprintf(w, "%d compiled, %d reused, %d with errors\n", stats.Built, stats.Cached, stats.Failed)
}

func renderDependencies(w io.Writer, libs []LibraryDependencies) {
	for _, lib := range libs {
		_, _ = fmt.Fprintf(w, "library %s:\n", lib.Library)
		for _, src := range lib.Sources {
			_, _ = fmt.Fprintf(w, "  %s:\n", src.Source.Path())
			for _, dep := range src.Dependencies {
				_, _ = fmt.Fprintf(w, "    %s\n", dep)
			}
		}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
