package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/linkgridgo/internal/attach"
	"github.com/vk/linkgridgo/internal/buildgraph"
	"github.com/vk/linkgridgo/internal/ctxlog"
	"github.com/vk/linkgridgo/internal/pkgindex"
)

// Run executes the configuration phase: define targets, index packages,
// apply every attach directive in description order, then render the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	targets := buildgraph.New()
	for _, t := range a.model.Targets {
		if err := targets.Define(t.Name); err != nil {
			return fmt.Errorf("failed to define target: %w", err)
		}
	}
	a.logger.Debug("Targets defined.", "count", len(a.model.Targets))

	packages := pkgindex.New()
	names := make([]string, 0, len(a.model.Packages))
	for name := range a.model.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := a.model.Packages[name]
		err := packages.Add(pkgindex.Descriptor{
			Name:   p.Name,
			Handle: p.Handle,
			Meta: pkgindex.Metadata{
				IncludeDirs: p.IncludeDirs,
				Libraries:   p.Libraries,
				LibraryDirs: p.LibraryDirs,
				Definitions: p.Definitions,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to index package: %w", err)
		}
	}
	a.logger.Debug("Package descriptors indexed.", "count", len(names))

	for _, att := range a.model.Attachments {
		opts := attach.Options{
			Scope:          buildgraph.Scope(att.Scope),
			SystemIncludes: att.SystemIncludes,
		}
		if err := attach.Dependencies(ctx, targets, packages, att.Target, opts, att.Packages); err != nil {
			return fmt.Errorf("failed to attach dependencies to target %s: %w", att.Target, err)
		}
		a.logger.Info("Dependencies attached.", "target", att.Target, "packages", att.Packages)
	}

	if err := a.writeReport(targets.Snapshot()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
