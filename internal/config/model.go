package config

// Model is the unified, format-agnostic representation of a complete link
// description.
type Model struct {
	Targets     []*Target
	Packages    map[string]*Package
	Attachments []*Attachment
}

// Target declares a build target by name. The target's contents (sources,
// outputs) belong to the build-graph engine and are none of our business.
type Target struct {
	Name string
}

// Package is the resolved descriptor of one external package: an optional
// modern opaque handle plus the four legacy metadata lists.
type Package struct {
	Name        string
	Handle      string
	IncludeDirs []string
	Libraries   []string
	LibraryDirs []string
	Definitions []string
}

// Attachment is one attach directive: propagate the named packages'
// metadata onto the named target.
type Attachment struct {
	Target         string
	Packages       []string
	Scope          string
	SystemIncludes bool
}
