// Package schema defines the HCL block structures of a link description
// file. These structs are the decoding targets for gohcl; the hcl package
// translates them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Locals represents a `locals` block. Its attributes become values
// referenceable as `local.<name>` in package metadata expressions.
type Locals struct {
	Body hcl.Body `hcl:",remain"`
}

// Target represents a `target` block, declaring one build target by name.
type Target struct {
	Name string `hcl:"name,label"`
}

// Package represents a `package` block: the resolved descriptor of one
// external package. The metadata lists stay as expressions so they can
// reference locals; they are evaluated during translation.
type Package struct {
	Name        string         `hcl:"name,label"`
	Handle      string         `hcl:"handle,optional"`
	IncludeDirs hcl.Expression `hcl:"include_dirs,optional"`
	Libraries   hcl.Expression `hcl:"libraries,optional"`
	LibraryDirs hcl.Expression `hcl:"library_dirs,optional"`
	Definitions hcl.Expression `hcl:"definitions,optional"`
}

// Attach represents an `attach` block: propagate the named packages onto
// the labelled target.
type Attach struct {
	Target         string   `hcl:"target,label"`
	Packages       []string `hcl:"packages"`
	Scope          string   `hcl:"scope,optional"`
	SystemIncludes bool     `hcl:"system_includes,optional"`
}

// DescriptionFile represents the top-level structure of one link
// description file.
type DescriptionFile struct {
	Locals      []*Locals  `hcl:"locals,block"`
	Targets     []*Target  `hcl:"target,block"`
	Packages    []*Package `hcl:"package,block"`
	Attachments []*Attach  `hcl:"attach,block"`
}
