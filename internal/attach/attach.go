package attach

import (
	"context"
	"fmt"

	"github.com/vk/linkgridgo/internal/buildgraph"
	"github.com/vk/linkgridgo/internal/ctxlog"
	"github.com/vk/linkgridgo/internal/pkgindex"
)

// Options carries the caller-supplied knobs for one attach step.
type Options struct {
	// Scope controls how the attached configuration propagates to the
	// target's consumers. It may be left unset: library linkage then keeps
	// the unset scope literally (the engine gives that a special meaning),
	// while the other mutations fall back to PUBLIC.
	Scope buildgraph.Scope
	// SystemIncludes marks legacy include directories as system includes,
	// suppressing compiler warnings from the package's headers. It has no
	// effect on packages attached through a modern handle.
	SystemIncludes bool
}

// Dependencies attaches the metadata of every named package to the target,
// in the order given. Packages with a modern handle are linked as one opaque
// unit under the literal caller scope; legacy packages have each non-empty
// metadata list resolved and applied individually.
//
// The step fails fast: an invalid scope or a missing target aborts before
// any package is touched, and an unresolved package aborts before it and any
// later package are applied. Mutations already applied to the target are
// never rolled back.
func Dependencies(ctx context.Context, targets *buildgraph.Registry, packages *pkgindex.Index, targetName string, opts Options, packageNames []string) error {
	logger := ctxlog.FromContext(ctx)

	if !opts.Scope.Valid() {
		allowed := make([]string, len(buildgraph.ExplicitScopes))
		for i, s := range buildgraph.ExplicitScopes {
			allowed[i] = string(s)
		}
		return &InvalidArgumentError{Argument: "scope", Value: string(opts.Scope), Allowed: allowed}
	}
	if !targets.Exists(targetName) {
		return &PreconditionError{Target: targetName}
	}

	// Literal scope for library linkage, defaulted for everything else.
	effective := opts.Scope.OrDefault()

	for _, name := range packageNames {
		if !packages.WasResolved(name) {
			return &PreconditionError{Package: name}
		}

		if handle, ok := packages.ModernHandle(name); ok {
			// The handle already encodes correct, de-duplicated, ordered
			// metadata; link it and move on.
			if err := targets.LinkOpaqueDependency(targetName, opts.Scope, handle); err != nil {
				return fmt.Errorf("linking package %s to target %s: %w", name, targetName, err)
			}
			logger.Debug("Linked opaque dependency handle.", "target", targetName, "package", name, "handle", handle)
			continue
		}

		if err := applyLegacy(targets, targetName, name, opts, effective, packages.LegacyMetadata(name)); err != nil {
			return err
		}
		logger.Debug("Applied legacy package metadata.", "target", targetName, "package", name)
	}
	return nil
}

// applyLegacy applies the four legacy metadata lists of one package. Each
// list is applied only if it is non-empty after its resolution pass.
func applyLegacy(targets *buildgraph.Registry, targetName, pkgName string, opts Options, effective buildgraph.Scope, meta pkgindex.Metadata) error {
	if dirs := OrderIncludes(meta.IncludeDirs); len(dirs) > 0 {
		if err := targets.AddIncludeDirectories(targetName, effective, dirs, opts.SystemIncludes); err != nil {
			return fmt.Errorf("applying include directories of package %s: %w", pkgName, err)
		}
	}
	if libs := DedupeLibraries(meta.Libraries); len(libs) > 0 {
		if err := targets.AddLinkLibraries(targetName, opts.Scope, libs); err != nil {
			return fmt.Errorf("applying link libraries of package %s: %w", pkgName, err)
		}
	}
	if dirs := dedupe(meta.LibraryDirs); len(dirs) > 0 {
		if err := targets.AddLinkDirectories(targetName, effective, dirs); err != nil {
			return fmt.Errorf("applying link directories of package %s: %w", pkgName, err)
		}
	}
	if defs := dedupe(meta.Definitions); len(defs) > 0 {
		if err := targets.AddCompileDefinitions(targetName, effective, defs); err != nil {
			return fmt.Errorf("applying compile definitions of package %s: %w", pkgName, err)
		}
	}
	return nil
}
