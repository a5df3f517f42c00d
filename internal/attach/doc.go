// Package attach implements the dependency-propagation step of the
// configuration phase: it merges the compile and link metadata of
// previously-resolved external packages onto a build target.
//
// Packages that expose a modern opaque handle are linked as a single unit;
// packages that only expose the four legacy metadata lists have each
// non-empty list resolved (include ordering, library deduplication) and
// applied individually. The whole step is deterministic: given the same
// target, options, and package list, it issues the same mutation calls in
// the same order.
package attach
