// Package buildgraph is the mutation surface of the configuration phase. It
// owns the set of known build targets and records every piece of compile and
// link configuration attached to them: opaque dependency handles, include
// directories, link libraries, link directories, and compile definitions.
//
// The package deliberately knows nothing about where configuration comes
// from or how it was merged; it only stores what it is told, in call order,
// and can produce a deterministic snapshot for reporting.
package buildgraph
