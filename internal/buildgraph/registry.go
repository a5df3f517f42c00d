package buildgraph

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds all targets known to the configuration phase. All
// operations on the registry are concurrency-safe; the target is the unit
// of isolation, so independent targets may be configured from separate
// goroutines.
type Registry struct {
	// mutex protects the targets map during concurrent access.
	mutex sync.RWMutex
	// targets stores all targets, keyed by their unique name.
	targets map[string]*target
}

// New creates and returns an initialized, empty Registry.
func New() *Registry {
	return &Registry{
		targets: make(map[string]*target),
	}
}

// Define adds a new target with the given name. An error is returned if a
// target with the same name has already been defined.
func (r *Registry) Define(name string) error {
	if name == "" {
		return fmt.Errorf("target name must not be empty")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.targets[name]; ok {
		return fmt.Errorf("target already defined: %s", name)
	}
	r.targets[name] = &target{name: name}
	return nil
}

// Exists reports whether a target with the given name has been defined.
func (r *Registry) Exists(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, ok := r.targets[name]
	return ok
}

// LinkOpaqueDependency attaches an opaque dependency handle to the target.
// The scope is stored literally; an unset scope is legal here because the
// engine treats unset linkage specially.
func (r *Registry) LinkOpaqueDependency(name string, scope Scope, handle string) error {
	if handle == "" {
		return fmt.Errorf("opaque dependency handle must not be empty")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.targets[name]
	if !ok {
		return fmt.Errorf("target not found: %s", name)
	}
	t.opaqueLinks = append(t.opaqueLinks, OpaqueLink{Scope: scope, Handle: handle})
	return nil
}

// AddIncludeDirectories records one include-directory mutation. Include
// attachment requires an explicit scope.
func (r *Registry) AddIncludeDirectories(name string, scope Scope, dirs []string, system bool) error {
	if err := requireExplicit(scope, "include directories", name); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.targets[name]
	if !ok {
		return fmt.Errorf("target not found: %s", name)
	}
	t.includeDirectories = append(t.includeDirectories, Entry{
		Scope:  scope,
		Values: append([]string(nil), dirs...),
		System: system,
	})
	return nil
}

// AddLinkLibraries records one link-library mutation. The scope is stored
// literally and may be unset.
func (r *Registry) AddLinkLibraries(name string, scope Scope, libs []string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.targets[name]
	if !ok {
		return fmt.Errorf("target not found: %s", name)
	}
	t.linkLibraries = append(t.linkLibraries, Entry{
		Scope:  scope,
		Values: append([]string(nil), libs...),
	})
	return nil
}

// AddLinkDirectories records one link-directory mutation. Requires an
// explicit scope.
func (r *Registry) AddLinkDirectories(name string, scope Scope, dirs []string) error {
	if err := requireExplicit(scope, "link directories", name); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.targets[name]
	if !ok {
		return fmt.Errorf("target not found: %s", name)
	}
	t.linkDirectories = append(t.linkDirectories, Entry{
		Scope:  scope,
		Values: append([]string(nil), dirs...),
	})
	return nil
}

// AddCompileDefinitions records one compile-definition mutation. Requires an
// explicit scope.
func (r *Registry) AddCompileDefinitions(name string, scope Scope, defs []string) error {
	if err := requireExplicit(scope, "compile definitions", name); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	t, ok := r.targets[name]
	if !ok {
		return fmt.Errorf("target not found: %s", name)
	}
	t.compileDefinitions = append(t.compileDefinitions, Entry{
		Scope:  scope,
		Values: append([]string(nil), defs...),
	})
	return nil
}

// requireExplicit rejects an unset or unknown scope for the mutations that
// cannot store one.
func requireExplicit(scope Scope, kind, name string) error {
	if scope == ScopeUnset {
		return fmt.Errorf("%s for target %s require an explicit scope", kind, name)
	}
	if !scope.Valid() {
		return fmt.Errorf("invalid scope for target %s: %s", name, scope)
	}
	return nil
}

// Config returns the current configuration of a single target.
func (r *Registry) Config(name string) (TargetConfig, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.targets[name]
	if !ok {
		return TargetConfig{}, fmt.Errorf("target not found: %s", name)
	}
	return t.snapshot(), nil
}

// Snapshot returns the configuration of every defined target, sorted by
// target name so output is deterministic.
func (r *Registry) Snapshot() []TargetConfig {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	configs := make([]TargetConfig, 0, len(r.targets))
	for _, t := range r.targets {
		configs = append(configs, t.snapshot())
	}
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})
	return configs
}
