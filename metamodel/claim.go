package metamodel

// Claim is an attribution record: a scholarly or practical source justifying
// one or more decomposition methods or technique choices. Its attribute set
// is deliberately minimal; see Registry.AttributesOf for the Claim branch.
type Claim struct {
	// Name is the declaration-site identifier, e.g. "ClaimSecurityCIA".
	Name string

	// Type is the ClaimSoftgoalType leaf identifying the cited source.
	Type *TypeNode

	// Topic says what the claim is about.
	Topic string

	// Argument is the justification text, typically the citation carried
	// by the claim type.
	Argument string

	// Methods lists the decomposition method names this claim justifies.
	// The association is declared explicitly and indexed at build time.
	Methods []string
}
