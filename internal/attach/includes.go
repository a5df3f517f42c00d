package attach

import "strings"

// OrderIncludes reorders a package's include directories so that directory
// precedence stays sensible when one package overrides another: a directory
// that is a path-wise ancestor of another entry in the list carries no
// distinguishing sub-path segment, so the compiler would resolve a header
// from it before the more specific directory ever gets a chance. Such
// ancestor directories are pushed after every entry that does have a
// distinguishing segment; within each group the input order is preserved.
//
// The result is always a permutation of the input: nothing is deduplicated
// or dropped here, relative ordering is this function's whole job. When no
// ancestor relationship exists the output equals the input. Applying the
// function to its own output changes nothing.
func OrderIncludes(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	specific := make([]string, 0, len(paths))
	var ancestors []string
	for _, p := range paths {
		if isAncestorOfAny(p, paths) {
			ancestors = append(ancestors, p)
		} else {
			specific = append(specific, p)
		}
	}
	return append(specific, ancestors...)
}

// isAncestorOfAny reports whether dir is a strict path prefix of any other
// entry. Comparison is textual: no normalization, no symlink resolution.
func isAncestorOfAny(dir string, paths []string) bool {
	prefix := strings.TrimRight(dir, "/") + "/"
	for _, other := range paths {
		if other == dir {
			continue
		}
		if strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}
