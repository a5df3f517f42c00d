// Package config defines the format-agnostic model of a link description,
// along with the Loader interface for producing one from files on disk.
//
// The config.Model is the single source of truth for the app: it carries the
// declared targets, the already-resolved package descriptors, and the attach
// directives that drive the propagation step. Concrete loaders, such as for
// HCL or YAML, live in separate packages.
package config
