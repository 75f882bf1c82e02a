package metamodel

// TypeNode is one entry in the ontology table. A node is a metatype, a type,
// or a ground instance depending on Kind; the optional fields only apply to
// the levels that use them.
type TypeNode struct {
	// Name is the unique identifier, e.g. "PerformanceType".
	Name string

	// Kind is the ontology level of this node.
	Kind Kind

	// Parent is the single-inheritance parent, nil for roots.
	Parent *TypeNode

	// MetaType is the governing metatype for KindType nodes.
	MetaType *TypeNode

	// Declared lists the attribute names this node adds to whatever its
	// ancestors already declare. The Claim branch ignores this entirely
	// (see Registry.AttributesOf).
	Declared []string

	// Description is the human-readable definition used in classifier
	// prompts and explanations.
	Description string

	// TypeRef points at the type-label leaf a softgoal role class or
	// ground instance is classified under. The instance-role hierarchy
	// and the type-label hierarchy vary independently.
	TypeRef *TypeNode

	// Topic, Priority and Label are populated on ground instances only.
	Topic    string
	Priority Priority
	Label    Label

	children []*TypeNode
}

// Children returns the immediate subclasses of this node, in declaration
// order. It never returns the full subtree.
func (n *TypeNode) Children() []*TypeNode {
	out := make([]*TypeNode, len(n.children))
	copy(out, n.children)
	return out
}

// Ancestors returns the inheritance chain above this node, nearest first.
func (n *TypeNode) Ancestors() []*TypeNode {
	var out []*TypeNode
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// HasAncestor reports whether target appears anywhere above this node.
func (n *TypeNode) HasAncestor(target *TypeNode) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == target {
			return true
		}
	}
	return false
}

// SubtreeNames returns the names of this node and every descendant,
// in depth-first declaration order.
func (n *TypeNode) SubtreeNames() []string {
	names := []string{n.Name}
	for _, c := range n.children {
		names = append(names, c.SubtreeNames()...)
	}
	return names
}

// Subtree returns this node and every descendant in depth-first order.
func (n *TypeNode) Subtree() []*TypeNode {
	nodes := []*TypeNode{n}
	for _, c := range n.children {
		nodes = append(nodes, c.Subtree()...)
	}
	return nodes
}
