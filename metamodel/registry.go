// Package metamodel defines the fixed ontology of the NFR framework: a
// three-level type system (metatypes, types, ground instances) plus the
// decomposition methods, contribution edges and claims declared over it.
//
// The registry is built once by BuildRegistry and is immutable afterwards;
// concurrent readers need no locking.
package metamodel

import (
	"log/slog"
	"sort"
	"strings"
)

// Registry holds the complete ontology and the lookup indices built over it.
type Registry struct {
	nodes   map[string]*TypeNode // lower-cased name → node
	ordered []*TypeNode          // declaration order

	methods       []*DecompositionMethod
	contributions []*Contribution
	claims        []*Claim

	bySource       map[string][]*Contribution
	byTarget       map[string][]*Contribution
	claimsByMethod map[string][]*Claim

	// Well-known roots, wired by the ontology builder.
	Proposition                  *TypeNode
	Softgoal                     *TypeNode
	NFRSoftgoal                  *TypeNode
	OperationalizingSoftgoal     *TypeNode
	ClaimSoftgoal                *TypeNode
	SoftgoalType                 *TypeNode
	NFRSoftgoalType              *TypeNode
	OperationalizingSoftgoalType *TypeNode
	ClaimSoftgoalType            *TypeNode

	claimMeta *TypeNode
}

// Option configures registry construction.
type Option func(*builder)

// WithLogger injects a logger for build progress. Without it the build is
// silent.
func WithLogger(logger *slog.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// BuildRegistry constructs the full ontology and its indices. It is the only
// way to obtain a Registry; there is no mutation API.
func BuildRegistry(opts ...Option) *Registry {
	r := &Registry{
		nodes:          make(map[string]*TypeNode),
		bySource:       make(map[string][]*Contribution),
		byTarget:       make(map[string][]*Contribution),
		claimsByMethod: make(map[string][]*Claim),
	}
	b := &builder{r: r}
	for _, opt := range opts {
		opt(b)
	}

	buildOntology(b)

	if b.logger != nil {
		b.logger.Info("metamodel built",
			"types", len(r.ordered),
			"decompositions", len(r.methods),
			"contributions", len(r.contributions),
			"claims", len(r.claims))
	}
	return r
}

// Lookup resolves a name to a node, case-insensitively. It is an exact-name
// lookup only; fuzzy resolution lives in the query layer.
func (r *Registry) Lookup(name string) (*TypeNode, bool) {
	n, ok := r.nodes[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}

// Nodes returns every declared node in declaration order.
func (r *Registry) Nodes() []*TypeNode {
	out := make([]*TypeNode, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Methods returns every declared decomposition method.
func (r *Registry) Methods() []*DecompositionMethod {
	out := make([]*DecompositionMethod, len(r.methods))
	copy(out, r.methods)
	return out
}

// MethodsFor returns the decomposition methods whose parent is exactly the
// given node (reference identity, not name match).
func (r *Registry) MethodsFor(parent *TypeNode) []*DecompositionMethod {
	var out []*DecompositionMethod
	for _, m := range r.methods {
		if m.Parent == parent {
			out = append(out, m)
		}
	}
	return out
}

// Contributions returns every declared contribution edge.
func (r *Registry) Contributions() []*Contribution {
	out := make([]*Contribution, len(r.contributions))
	copy(out, r.contributions)
	return out
}

// ContributionsFrom returns the edges whose source matches the given name,
// case-insensitively. Dangling names simply return nothing.
func (r *Registry) ContributionsFrom(source string) []*Contribution {
	return r.bySource[strings.ToLower(source)]
}

// ContributionsTo returns the edges whose target matches the given name,
// case-insensitively.
func (r *Registry) ContributionsTo(target string) []*Contribution {
	return r.byTarget[strings.ToLower(target)]
}

// Claims returns every declared claim.
func (r *Registry) Claims() []*Claim {
	out := make([]*Claim, len(r.claims))
	copy(out, r.claims)
	return out
}

// ClaimsFor returns the claims justifying the named decomposition method.
// The association table is populated at build time from each claim's
// declared method list.
func (r *Registry) ClaimsFor(methodName string) []*Claim {
	return r.claimsByMethod[methodName]
}

// AttributesOf returns the full attribute set of a node: the union of its
// own declared attributes, its ancestors' attributes, and the attributes
// declared by the governing metatype chain at each level. Claim-kind nodes
// are the closed special case: their set is exactly {"argument"} regardless
// of ancestry.
func (r *Registry) AttributesOf(n *TypeNode) []string {
	if n == nil {
		return nil
	}
	if r.isClaimKind(n) {
		return []string{"argument"}
	}

	set := make(map[string]struct{})
	for c := n; c != nil; c = c.Parent {
		for _, a := range c.Declared {
			set[a] = struct{}{}
		}
		for m := c.MetaType; m != nil; m = m.Parent {
			for _, a := range m.Declared {
				set[a] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// isClaimKind reports whether the node sits in the ClaimSoftgoal branch,
// either by ancestry or by governing metatype.
func (r *Registry) isClaimKind(n *TypeNode) bool {
	if n == r.ClaimSoftgoal || (r.ClaimSoftgoal != nil && n.HasAncestor(r.ClaimSoftgoal)) {
		return true
	}
	if n == r.ClaimSoftgoalType || (r.ClaimSoftgoalType != nil && n.HasAncestor(r.ClaimSoftgoalType)) {
		return true
	}
	for m := n.MetaType; m != nil; m = m.Parent {
		if m == r.claimMeta {
			return true
		}
	}
	return false
}

// builder accumulates declarations while the ontology is constructed.
// It is discarded once BuildRegistry returns.
type builder struct {
	r      *Registry
	logger *slog.Logger
}

func (b *builder) register(n *TypeNode) *TypeNode {
	key := strings.ToLower(n.Name)
	if _, exists := b.r.nodes[key]; exists && b.logger != nil {
		b.logger.Warn("duplicate ontology name", "name", n.Name)
	}
	b.r.nodes[key] = n
	b.r.ordered = append(b.r.ordered, n)
	if n.Parent != nil {
		n.Parent.children = append(n.Parent.children, n)
	}
	return n
}

// metaType declares a level-1 node. The declared attributes govern every
// type beneath it.
func (b *builder) metaType(name string, parent *TypeNode, declared ...string) *TypeNode {
	return b.register(&TypeNode{
		Name:     name,
		Kind:     KindMetaType,
		Parent:   parent,
		Declared: declared,
	})
}

// typeNode declares a level-2 node governed by the given metatype.
func (b *builder) typeNode(name string, parent, meta *TypeNode, description string) *TypeNode {
	return b.register(&TypeNode{
		Name:        name,
		Kind:        KindType,
		Parent:      parent,
		MetaType:    meta,
		Description: description,
	})
}

// roleType declares a softgoal role class: a level-2 node in the instance
// hierarchy that carries a type-label reference.
func (b *builder) roleType(name string, parent, meta, typeRef *TypeNode) *TypeNode {
	return b.register(&TypeNode{
		Name:     name,
		Kind:     KindType,
		Parent:   parent,
		MetaType: meta,
		TypeRef:  typeRef,
	})
}

// instance declares a level-3 ground occurrence of a role class.
func (b *builder) instance(name string, parent *TypeNode, topic string, priority Priority, label Label, description string) *TypeNode {
	typeRef := parent.TypeRef
	return b.register(&TypeNode{
		Name:        name,
		Kind:        KindInstance,
		Parent:      parent,
		MetaType:    parent.MetaType,
		TypeRef:     typeRef,
		Topic:       topic,
		Priority:    priority,
		Label:       label,
		Description: description,
	})
}

func (b *builder) method(name string, kind MethodKind, parent *TypeNode, offspring []*TypeNode, description string) *DecompositionMethod {
	m := &DecompositionMethod{
		Name:        name,
		Kind:        kind,
		Parent:      parent,
		Offspring:   offspring,
		Description: description,
	}
	b.r.methods = append(b.r.methods, m)
	return m
}

// contribution records an edge. Source and target are taken as written;
// nothing checks that they name declared types.
func (b *builder) contribution(name, source, target string, ct ContributionType) *Contribution {
	c := &Contribution{Name: name, Source: source, Target: target, Type: ct}
	b.r.contributions = append(b.r.contributions, c)
	b.r.bySource[strings.ToLower(source)] = append(b.r.bySource[strings.ToLower(source)], c)
	b.r.byTarget[strings.ToLower(target)] = append(b.r.byTarget[strings.ToLower(target)], c)
	return c
}

// claim records an attribution and indexes it under each method it justifies.
func (b *builder) claim(name string, claimType *TypeNode, topic string, methods ...string) *Claim {
	c := &Claim{
		Name:     name,
		Type:     claimType,
		Topic:    topic,
		Argument: claimType.Description,
		Methods:  methods,
	}
	b.r.claims = append(b.r.claims, c)
	for _, m := range methods {
		b.r.claimsByMethod[m] = append(b.r.claimsByMethod[m], c)
	}
	return c
}
