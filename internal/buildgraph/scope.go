package buildgraph

// Scope classifies how configuration attached to a target propagates to the
// target's downstream consumers.
type Scope string

const (
	// ScopeUnset is the zero value. The engine gives an unset scope a special
	// meaning for library linkage, so it is stored literally rather than
	// being rejected.
	ScopeUnset Scope = ""
	// ScopePublic propagates to both the target and its consumers.
	ScopePublic Scope = "PUBLIC"
	// ScopePrivate applies to the target only.
	ScopePrivate Scope = "PRIVATE"
	// ScopeInterface applies to consumers only.
	ScopeInterface Scope = "INTERFACE"
)

// ExplicitScopes lists every scope a caller may name explicitly.
var ExplicitScopes = []Scope{ScopePublic, ScopePrivate, ScopeInterface}

// Valid reports whether s is the unset scope or one of the explicit scopes.
func (s Scope) Valid() bool {
	switch s {
	case ScopeUnset, ScopePublic, ScopePrivate, ScopeInterface:
		return true
	}
	return false
}

// OrDefault returns s, substituting PUBLIC when s is unset. Mutations that
// require an explicit scope use this defaulted value; library linkage does
// not.
func (s Scope) OrDefault() Scope {
	if s == ScopeUnset {
		return ScopePublic
	}
	return s
}
