package metamodel

// Kind identifies which of the three ontology levels an entity belongs to.
type Kind int

const (
	// KindMetaType is a level-1 entity: it governs which attributes the
	// types beneath it may carry.
	KindMetaType Kind = iota + 1

	// KindType is a level-2 entity: a named category such as
	// PerformanceType or SecuritySoftgoal.
	KindType

	// KindInstance is a level-3 entity: a concrete occurrence of a type
	// in a specific project context.
	KindInstance
)

// String returns the level name.
func (k Kind) String() string {
	switch k {
	case KindMetaType:
		return "metatype"
	case KindType:
		return "type"
	case KindInstance:
		return "instance"
	}
	return "unknown"
}

// ContributionType labels a directed contribution edge between a technique
// and a quality attribute.
type ContributionType string

const (
	Make      ContributionType = "MAKE"
	Help      ContributionType = "HELP"
	SomePlus  ContributionType = "SOME+"
	SomeMinus ContributionType = "SOME-"
	Hurt      ContributionType = "HURT"
	Break     ContributionType = "BREAK"
	Unknown   ContributionType = "UNKNOWN"
)

// IsPositive reports whether the edge counts as a positive contribution
// when searching for techniques that achieve a quality attribute.
func (c ContributionType) IsPositive() bool {
	switch c {
	case Make, Help, SomePlus:
		return true
	}
	return false
}

// Priority is the proposition priority level.
type Priority int

const (
	PriorityCritical Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return "unknown"
}

// Label records the satisfaction status of a proposition.
type Label string

const (
	LabelSatisficed      Label = "satisficed"
	LabelDenied          Label = "denied"
	LabelWeaklySatisficed Label = "weakly_satisficed"
	LabelWeaklyDenied    Label = "weakly_denied"
	LabelConflict        Label = "conflict"
	LabelUnknown         Label = "unknown"
)

// MethodKind distinguishes the three decomposition method families.
type MethodKind string

const (
	NFRDecomposition               MethodKind = "nfr"
	OperationalizationDecomposition MethodKind = "operationalization"
	ClaimDecomposition             MethodKind = "claim"
)
