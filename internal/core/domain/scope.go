package domain

// OwnerScope restricts a read relative to the requesting user. It is an
// explicit configuration rather than a predicate baked into queries, so a
// deployment can flip a resource listing between "mine" and "everyone
// else's" without touching repository code.
type OwnerScope int

const (
	// OwnerScopeAny applies no ownership restriction.
	OwnerScopeAny OwnerScope = iota
	// OwnerScopeOwned matches records owned by the requesting user.
	OwnerScopeOwned
	// OwnerScopeNotOwned matches records owned by anyone else.
	OwnerScopeNotOwned
)

func (s OwnerScope) String() string {
	switch s {
	case OwnerScopeOwned:
		return "owned"
	case OwnerScopeNotOwned:
		return "not-owned"
	default:
		return "any"
	}
}
