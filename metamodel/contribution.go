package metamodel

// Contribution asserts that a technique contributes, positively or
// negatively, to satisfying a quality attribute. Source and Target are
// free-form names matched case-insensitively against type names at query
// time; nothing validates them at declaration time, so an edge may
// deliberately reference a name the registry does not define.
type Contribution struct {
	Name   string
	Source string
	Target string
	Type   ContributionType
}
