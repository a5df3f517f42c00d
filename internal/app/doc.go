// Package app wires the application together: it configures the logger,
// loads the link description through a config.Loader, populates the target
// and package registries, runs the attach phase for every directive, and
// renders the resulting target configurations as a report.
package app
