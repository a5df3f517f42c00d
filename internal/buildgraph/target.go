package buildgraph

// OpaqueLink records a single opaque-handle linkage. The handle bundles a
// package's full transitive requirements, so nothing else is stored for it.
type OpaqueLink struct {
	Scope  Scope  `json:"scope,omitempty"`
	Handle string `json:"handle"`
}

// Entry records one mutation call carrying a list of values under a scope.
// One call produces exactly one entry; the engine never folds repeated calls
// together, which keeps duplicate applications observable.
type Entry struct {
	Scope  Scope    `json:"scope,omitempty"`
	Values []string `json:"values"`
	// System marks include directories whose headers should not produce
	// compiler warnings. It is meaningless for the other entry kinds.
	System bool `json:"system,omitempty"`
}

// target is un-exported to enforce interaction through the Registry API
// (using target names), not by direct struct manipulation.
type target struct {
	name string

	opaqueLinks        []OpaqueLink
	includeDirectories []Entry
	linkLibraries      []Entry
	linkDirectories    []Entry
	compileDefinitions []Entry
}

// TargetConfig is an immutable view of one target's accumulated
// configuration. Entry slices are in mutation-call order.
type TargetConfig struct {
	Name               string       `json:"name"`
	OpaqueLinks        []OpaqueLink `json:"opaque_links,omitempty"`
	IncludeDirectories []Entry      `json:"include_directories,omitempty"`
	LinkLibraries      []Entry      `json:"link_libraries,omitempty"`
	LinkDirectories    []Entry      `json:"link_directories,omitempty"`
	CompileDefinitions []Entry      `json:"compile_definitions,omitempty"`
}

// MutationCount returns the total number of mutation calls recorded against
// the target.
func (c TargetConfig) MutationCount() int {
	return len(c.OpaqueLinks) +
		len(c.IncludeDirectories) +
		len(c.LinkLibraries) +
		len(c.LinkDirectories) +
		len(c.CompileDefinitions)
}

// snapshot copies the target's state into an exported view.
func (t *target) snapshot() TargetConfig {
	return TargetConfig{
		Name:               t.name,
		OpaqueLinks:        append([]OpaqueLink(nil), t.opaqueLinks...),
		IncludeDirectories: copyEntries(t.includeDirectories),
		LinkLibraries:      copyEntries(t.linkLibraries),
		LinkDirectories:    copyEntries(t.linkDirectories),
		CompileDefinitions: copyEntries(t.compileDefinitions),
	}
}

func copyEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{
			Scope:  e.Scope,
			Values: append([]string(nil), e.Values...),
			System: e.System,
		}
	}
	return out
}
