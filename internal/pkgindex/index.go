// Package pkgindex holds the descriptors of externally-resolved packages.
// Package discovery itself happens elsewhere; by the time the attach phase
// runs, every package it will be asked about must already be indexed here.
// The index is read-only from the attach phase's perspective.
package pkgindex

import (
	"fmt"
	"sync"
)

// Metadata is a package's build requirements in the legacy form: four
// independent, ordered, possibly-empty lists.
type Metadata struct {
	IncludeDirs []string
	Libraries   []string
	LibraryDirs []string
	Definitions []string
}

// Empty reports whether all four metadata lists are empty.
func (m Metadata) Empty() bool {
	return len(m.IncludeDirs) == 0 &&
		len(m.Libraries) == 0 &&
		len(m.LibraryDirs) == 0 &&
		len(m.Definitions) == 0
}

// Descriptor is the resolved form of one external package. A descriptor may
// carry a modern opaque handle, legacy metadata, both, or neither; even an
// empty descriptor counts as "resolved".
type Descriptor struct {
	Name string
	// Handle is the modern opaque dependency handle, empty when the package
	// only provides legacy metadata.
	Handle string
	Meta   Metadata
}

// Index stores descriptors keyed by package name.
type Index struct {
	mutex sync.RWMutex
	pkgs  map[string]*Descriptor
}

// New creates and returns an initialized, empty Index.
func New() *Index {
	return &Index{
		pkgs: make(map[string]*Descriptor),
	}
}

// Add indexes a descriptor. An error is returned for an unnamed descriptor
// or a duplicate package name.
func (i *Index) Add(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("package name must not be empty")
	}

	i.mutex.Lock()
	defer i.mutex.Unlock()

	if _, ok := i.pkgs[d.Name]; ok {
		return fmt.Errorf("package already indexed: %s", d.Name)
	}
	i.pkgs[d.Name] = &d
	return nil
}

// WasResolved reports whether the named package has a descriptor, even an
// empty one.
func (i *Index) WasResolved(name string) bool {
	i.mutex.RLock()
	defer i.mutex.RUnlock()

	_, ok := i.pkgs[name]
	return ok
}

// ModernHandle returns the package's opaque handle and whether one exists.
func (i *Index) ModernHandle(name string) (string, bool) {
	i.mutex.RLock()
	defer i.mutex.RUnlock()

	d, ok := i.pkgs[name]
	if !ok || d.Handle == "" {
		return "", false
	}
	return d.Handle, true
}

// LegacyMetadata returns a copy of the package's legacy metadata. An unknown
// package yields empty metadata; callers gate on WasResolved first.
func (i *Index) LegacyMetadata(name string) Metadata {
	i.mutex.RLock()
	defer i.mutex.RUnlock()

	d, ok := i.pkgs[name]
	if !ok {
		return Metadata{}
	}
	return Metadata{
		IncludeDirs: append([]string(nil), d.Meta.IncludeDirs...),
		Libraries:   append([]string(nil), d.Meta.Libraries...),
		LibraryDirs: append([]string(nil), d.Meta.LibraryDirs...),
		Definitions: append([]string(nil), d.Meta.Definitions...),
	}
}
