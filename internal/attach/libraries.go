package attach

// DedupeLibraries removes exact-duplicate library references, keeping the
// first occurrence and preserving the relative order of the rest. A package
// may legitimately hand us the same library twice (two of its internal
// components contributing it independently); linking it twice is at best
// wasted work and at worst a link-order bug.
//
// Entries are compared by exact string equality. No path normalization, no
// symlink resolution, no case folding.
func DedupeLibraries(libs []string) []string {
	return dedupe(libs)
}

// dedupe is the shared first-occurrence duplicate filter. Library
// directories and compile definitions get their own distinct pass through
// it; they share the mechanism, not the call.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
