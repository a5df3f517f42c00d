// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for description-file discovery, HCL parsing,
// `locals` evaluation, and translation into the format-agnostic model.
//
// Locals are evaluated before anything else and exposed to package metadata
// expressions as `local.<name>`. A local must be a literal value; locals
// referencing other locals are not supported.
package hcl
