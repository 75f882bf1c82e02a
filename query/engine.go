// Package query provides the reflective read API over the NFR ontology:
// name resolution with alias and suffix handling, hierarchy and attribute
// queries, contribution analysis, and the operationalization search used to
// answer "how do I achieve X".
package query

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/nfrframework/nfrassist/metamodel"
)

// Category selects a branch of the type-label hierarchy.
type Category string

const (
	// CategoryNFR covers quality attribute types (NFRSoftgoalType subtree).
	CategoryNFR Category = "NFR"
	// CategoryFR covers operationalizing technique types, which is how
	// functional requirements are classified.
	CategoryFR Category = "FR"
)

// TypeInfo pairs a display-ready type name with its description.
type TypeInfo struct {
	Name        string
	Description string
}

// SourceContributions groups the contribution edges of one source technique.
type SourceContributions struct {
	Source string
	Edges  []*metamodel.Contribution
}

// Engine answers ontology queries. All methods are read-only and safe for
// concurrent use; lookups that find nothing return empty results, never
// errors.
type Engine struct {
	reg    *metamodel.Registry
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine wraps a built registry.
func NewEngine(reg *metamodel.Registry, opts ...Option) *Engine {
	e := &Engine{reg: reg, logger: slog.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Registry exposes the underlying registry for callers that need raw access.
func (e *Engine) Registry() *metamodel.Registry { return e.reg }

// termMap translates common requirements-engineering vocabulary to canonical
// entity names before any other resolution step runs.
var termMap = map[string]string{
	"proposition":               "Proposition",
	"softgoal":                  "Softgoal",
	"nfr softgoal":              "NFRSoftgoal",
	"nfrsoftgoal":               "NFRSoftgoal",
	"operationalizing softgoal": "OperationalizingSoftgoal",
	"operationalizingsoftgoal":  "OperationalizingSoftgoal",
	"claim softgoal":            "ClaimSoftgoal",
	"claimsoftgoal":             "ClaimSoftgoal",
	"softgoal type":             "SoftgoalType",
	"softgoaltype":              "SoftgoalType",

	"functional requirement":      "OperationalizingSoftgoal",
	"functional requirements":     "OperationalizingSoftgoal",
	"non-functional requirement":  "NFRSoftgoal",
	"non-functional requirements": "NFRSoftgoal",
	"nonfunctional requirement":   "NFRSoftgoal",
	"nonfunctional requirements":  "NFRSoftgoal",
	"nfr":                         "NFRSoftgoal",
	"nfrs":                        "NFRSoftgoal",
	"quality attribute":           "NFRSoftgoal",
	"quality attributes":          "NFRSoftgoal",
	"solution":                    "OperationalizingSoftgoal",
	"solutions":                   "OperationalizingSoftgoal",
	"technique":                   "OperationalizingSoftgoal",
	"techniques":                  "OperationalizingSoftgoal",
	"implementation":              "OperationalizingSoftgoal",
	"implementations":             "OperationalizingSoftgoal",
}

// ResolveName maps free text to an ontology node. Resolution tiers, in order:
// alias table, exact case-insensitive match, suffix variants ("performance"
// tries PerformanceType then PerformanceSoftgoal, spaces stripped), then
// prefix match of at least three characters. On a multi-way prefix match,
// Type-suffixed names win over Softgoal-suffixed names, which win over the
// rest; ties fall to declaration order. Resolution is deterministic: the same
// input always yields the same node.
func (e *Engine) ResolveName(text string) (*metamodel.TypeNode, bool) {
	name := strings.ToLower(strings.TrimSpace(text))
	if name == "" {
		return nil, false
	}

	if canonical, ok := termMap[name]; ok {
		name = strings.ToLower(canonical)
	}

	if n, ok := e.reg.Lookup(name); ok {
		return n, true
	}

	stripped := strings.ReplaceAll(name, " ", "")
	variants := []string{
		name + "type",
		name + "softgoal",
		stripped,
		stripped + "type",
		stripped + "softgoal",
	}
	for _, v := range variants {
		if n, ok := e.reg.Lookup(v); ok {
			return n, true
		}
	}

	if len(name) < 3 {
		return nil, false
	}

	var matches []*metamodel.TypeNode
	for _, n := range e.reg.Nodes() {
		if strings.HasPrefix(strings.ToLower(n.Name), name) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return matches[0], true
	}

	for _, suffix := range []string{"type", "softgoal", ""} {
		for _, n := range matches {
			if strings.HasSuffix(strings.ToLower(n.Name), suffix) {
				e.logger.Debug("ambiguous prefix resolved",
					"input", text, "chosen", n.Name, "candidates", len(matches))
				return n, true
			}
		}
	}
	return matches[0], true
}

// AttributesOf returns the inherited attribute set of a node.
func (e *Engine) AttributesOf(n *metamodel.TypeNode) []string {
	return e.reg.AttributesOf(n)
}

// ChildrenOf returns direct children only.
func (e *Engine) ChildrenOf(n *metamodel.TypeNode) []*metamodel.TypeNode {
	if n == nil {
		return nil
	}
	return n.Children()
}

// AncestorsOf returns the parent chain, nearest first.
func (e *Engine) AncestorsOf(n *metamodel.TypeNode) []*metamodel.TypeNode {
	if n == nil {
		return nil
	}
	return n.Ancestors()
}

// MetaTypeOf returns the metatype governing a node, or nil for roots.
func (e *Engine) MetaTypeOf(n *metamodel.TypeNode) *metamodel.TypeNode {
	if n == nil {
		return nil
	}
	return n.MetaType
}

// DecompositionsFor returns every decomposition method whose parent is the
// given node. Competing methods for the same parent all come back.
func (e *Engine) DecompositionsFor(n *metamodel.TypeNode) []*metamodel.DecompositionMethod {
	if n == nil {
		return nil
	}
	return e.reg.MethodsFor(n)
}

// ContributionsFrom returns the edges originating at the named technique.
// Suffixes are stripped before the lookup so "CachingType", "CachingSoftgoal"
// and "Caching" all hit the same edges.
func (e *Engine) ContributionsFrom(name string) []*metamodel.Contribution {
	return e.reg.ContributionsFrom(SearchName(name))
}

// ContributionsTo returns the edges arriving at the named quality.
func (e *Engine) ContributionsTo(name string) []*metamodel.Contribution {
	return e.reg.ContributionsTo(SearchName(name))
}

// ClaimsFor returns the claims justifying a decomposition method.
func (e *Engine) ClaimsFor(m *metamodel.DecompositionMethod) []*metamodel.Claim {
	if m == nil {
		return nil
	}
	return e.reg.ClaimsFor(m.Name)
}

// Achieve finds the techniques that help satisfy a quality. The search set is
// the resolved target plus its direct children plus the offspring of every
// decomposition method for it. A technique qualifies when at least one of its
// edges into the set is positive (MAKE, HELP, SOME+); a qualifying technique
// then reports ALL of its edges, negative ones and edges outside the set
// included, so the full trade-off context is visible once a technique is
// deemed relevant. Results are grouped by source and sorted alphabetically.
func (e *Engine) Achieve(target string) []SourceContributions {
	searchSet := e.achieveSearchSet(target)
	if len(searchSet) == 0 {
		return nil
	}

	var sources []string
	seen := make(map[string]bool)
	for _, c := range e.reg.Contributions() {
		if _, ok := searchSet[strings.ToLower(c.Target)]; !ok {
			continue
		}
		if c.Type.IsPositive() && !seen[c.Source] {
			seen[c.Source] = true
			sources = append(sources, c.Source)
		}
	}
	sort.Strings(sources)

	out := make([]SourceContributions, 0, len(sources))
	for _, s := range sources {
		out = append(out, SourceContributions{
			Source: s,
			Edges:  e.reg.ContributionsFrom(s),
		})
	}
	return out
}

// achieveSearchSet builds the lowered name set Achieve scans against.
func (e *Engine) achieveSearchSet(target string) map[string]struct{} {
	set := make(map[string]struct{})
	add := func(name string) {
		if s := strings.ToLower(SearchName(name)); s != "" {
			set[s] = struct{}{}
		}
	}

	n, ok := e.ResolveName(target)
	if !ok {
		add(target)
		return set
	}
	add(n.Name)
	for _, c := range n.Children() {
		add(c.Name)
	}
	for _, m := range e.reg.MethodsFor(n) {
		for _, o := range m.Offspring {
			add(o.Name)
		}
	}
	return set
}

// IsNFR reports whether a node is a quality attribute: anything in the
// NFRSoftgoal role branch or the NFRSoftgoalType label branch. Techniques
// are not NFRs.
func (e *Engine) IsNFR(n *metamodel.TypeNode) bool {
	if n == nil {
		return false
	}
	if n == e.reg.NFRSoftgoal || n.HasAncestor(e.reg.NFRSoftgoal) {
		return true
	}
	return n.HasAncestor(e.reg.NFRSoftgoalType)
}

// AllNFRTypeNames returns every quality attribute type name, "Type" suffix
// stripped, sorted. The classifier enumerates these in its prompts.
func (e *Engine) AllNFRTypeNames() []string {
	return e.typeNames(e.reg.NFRSoftgoalType)
}

// AllOperationalizingTypeNames returns every technique type name, suffix
// stripped, sorted.
func (e *Engine) AllOperationalizingTypeNames() []string {
	return e.typeNames(e.reg.OperationalizingSoftgoalType)
}

func (e *Engine) typeNames(root *metamodel.TypeNode) []string {
	if root == nil {
		return nil
	}
	var names []string
	for _, n := range root.Subtree() {
		if n == root {
			continue
		}
		names = append(names, strings.TrimSuffix(n.Name, "Type"))
	}
	sort.Strings(names)
	return names
}

// TypeDescriptions returns name/description pairs for a category, sorted by
// name. Prompt builders rely on the ordering being stable.
func (e *Engine) TypeDescriptions(c Category) []TypeInfo {
	root := e.reg.NFRSoftgoalType
	if c == CategoryFR {
		root = e.reg.OperationalizingSoftgoalType
	}
	if root == nil {
		return nil
	}
	var out []TypeInfo
	for _, n := range root.Subtree() {
		if n == root {
			continue
		}
		out = append(out, TypeInfo{
			Name:        strings.TrimSuffix(n.Name, "Type"),
			Description: n.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// DisplayName renders an entity name for humans: the "Type" suffix goes and
// camel-case words get spaces ("TimePerformanceType" becomes
// "Time Performance").
func DisplayName(name string) string {
	name = strings.TrimSuffix(name, "Type")
	return camelBoundary.ReplaceAllString(name, "$1 $2")
}

// SearchName strips the role and label suffixes so a name can be compared
// against contribution endpoints, which use the bare form.
func SearchName(name string) string {
	name = strings.TrimSuffix(name, "Type")
	return strings.TrimSuffix(name, "Softgoal")
}
