package attach

import (
	"fmt"
	"strings"
)

// PreconditionError reports that the world was not in the state this step
// requires: the target does not exist, or a named package was never
// resolved. It aborts the step immediately; mutations applied before the
// failure point are not rolled back.
type PreconditionError struct {
	// Target is set when the build target itself is missing.
	Target string
	// Package is set when a package has no descriptor.
	Package string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("package %q has not been resolved; resolve it before attaching its dependencies", e.Package)
	}
	return fmt.Sprintf("target %q does not exist", e.Target)
}

// InvalidArgumentError reports a malformed argument, such as a scope outside
// the allowed set. It aborts the step before any package is processed.
type InvalidArgumentError struct {
	Argument string
	Value    string
	Allowed  []string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s: %q", e.Argument, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Argument, e.Value, strings.Join(e.Allowed, ", "))
}
