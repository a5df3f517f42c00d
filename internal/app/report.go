package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/linkgridgo/internal/buildgraph"
)

// writeReport renders the assembled target configurations to the output
// writer in the configured format.
func (a *App) writeReport(configs []buildgraph.TargetConfig) error {
	if a.config.ReportFormat == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(configs)
	}

	for _, cfg := range configs {
		if _, err := fmt.Fprintf(a.outW, "target %s\n", cfg.Name); err != nil {
			return err
		}
		for _, link := range cfg.OpaqueLinks {
			writeLine(a.outW, "link", scopeLabel(link.Scope), link.Handle)
		}
		for _, e := range cfg.IncludeDirectories {
			kind := "includes"
			if e.System {
				kind = "system includes"
			}
			writeLine(a.outW, kind, scopeLabel(e.Scope), strings.Join(e.Values, " "))
		}
		for _, e := range cfg.LinkLibraries {
			writeLine(a.outW, "libraries", scopeLabel(e.Scope), strings.Join(e.Values, " "))
		}
		for _, e := range cfg.LinkDirectories {
			writeLine(a.outW, "library dirs", scopeLabel(e.Scope), strings.Join(e.Values, " "))
		}
		for _, e := range cfg.CompileDefinitions {
			writeLine(a.outW, "definitions", scopeLabel(e.Scope), strings.Join(e.Values, " "))
		}
	}
	return nil
}

func writeLine(w io.Writer, kind, scope, values string) {
	fmt.Fprintf(w, "  %-15s %-9s %s\n", kind, scope, values)
}

// scopeLabel renders an unset scope visibly instead of as an empty column.
func scopeLabel(s buildgraph.Scope) string {
	if s == buildgraph.ScopeUnset {
		return "(unset)"
	}
	return string(s)
}
