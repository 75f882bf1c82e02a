package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nfrframework/nfrassist/metamodel"
	"github.com/nfrframework/nfrassist/query"
)

// The context builders render ontology data into the plain-text blocks the
// prompt templates embed. Formats are stable; tests and the raw-data
// fallback both depend on them.

// classification names the branch of the ontology a node belongs to.
func classification(e *query.Engine, n *metamodel.TypeNode) string {
	reg := e.Registry()
	in := func(root *metamodel.TypeNode) bool {
		return root != nil && (n == root || n.HasAncestor(root))
	}
	switch {
	case in(reg.NFRSoftgoalType) || in(reg.NFRSoftgoal):
		return "NFR (Non-Functional Requirement)"
	case in(reg.OperationalizingSoftgoalType) || in(reg.OperationalizingSoftgoal):
		return "Operationalizing Softgoal"
	case in(reg.ClaimSoftgoalType) || in(reg.ClaimSoftgoal):
		return "Claim Softgoal"
	case in(reg.SoftgoalType) || in(reg.Softgoal):
		return "Softgoal"
	}
	return "Unknown"
}

// entityContext summarizes one node: its branch, description and declared
// attributes. Ground instances additionally show their attribute values.
func entityContext(e *query.Engine, n *metamodel.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", classification(e, n))
	if n.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s\n", n.Description)
	}

	attrs := e.AttributesOf(n)
	if len(attrs) > 0 {
		fmt.Fprintf(&b, "\nAttributes: %d\n", len(attrs))
		for _, a := range attrs {
			if n.Kind == metamodel.KindInstance {
				if v, ok := instanceAttr(n, a); ok {
					fmt.Fprintf(&b, "  • %s = %s\n", a, v)
					continue
				}
			}
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}
	return b.String()
}

// instanceAttr reads a ground instance's attribute value by name.
func instanceAttr(n *metamodel.TypeNode, attr string) (string, bool) {
	switch attr {
	case "topic":
		return n.Topic, n.Topic != ""
	case "priority":
		return n.Priority.String(), n.Priority != 0
	case "label":
		return string(n.Label), n.Label != ""
	case "type":
		if n.TypeRef != nil {
			return n.TypeRef.Name, true
		}
	}
	return "", false
}

// nfrTypeContext renders what the define_nfr template needs: description,
// parent and direct children.
func nfrTypeContext(e *query.Engine, n *metamodel.TypeNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", query.DisplayName(n.Name))
	if n.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", n.Description)
	}
	if n.Parent != nil {
		fmt.Fprintf(&b, "Parent: %s\n", query.DisplayName(n.Parent.Name))
	}
	if children := e.ChildrenOf(n); len(children) > 0 {
		names := make([]string, len(children))
		for i, c := range children {
			names[i] = query.DisplayName(c.Name)
		}
		fmt.Fprintf(&b, "Children: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

// decomposeContext lists a node's decomposition methods with their offspring.
func decomposeContext(name string, decomps []*metamodel.DecompositionMethod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d decomposition method(s):\n\n", query.DisplayName(name), len(decomps))
	for i, d := range decomps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.Name)
		if len(d.Offspring) > 0 {
			names := make([]string, len(d.Offspring))
			for j, o := range d.Offspring {
				names[j] = query.DisplayName(o.Name)
			}
			fmt.Fprintf(&b, "   Offspring: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// achieveContext renders Achieve results grouped by source technique. Every
// edge of a qualifying technique appears, negative ones included, so the
// explanation covers trade-offs and not just benefits.
func achieveContext(name string, results []query.SourceContributions) string {
	total := 0
	for _, r := range results {
		total += len(r.Edges)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s can be achieved by %d operationalization(s):\n\n", query.DisplayName(name), total)
	for _, r := range results {
		fmt.Fprintf(&b, "• %s helps achieve:\n", query.DisplayName(r.Source))
		for _, edge := range r.Edges {
			fmt.Fprintf(&b, "  - %s (%s)\n", query.DisplayName(edge.Target), edge.Type)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sideEffectsContext renders a technique's outgoing contributions grouped by
// effect type, sorted for deterministic output.
func sideEffectsContext(name string, contribs []*metamodel.Contribution) string {
	byType := make(map[string][]string)
	for _, c := range contribs {
		t := string(c.Type)
		byType[t] = append(byType[t], query.DisplayName(c.Target))
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d contribution(s):\n\n", query.DisplayName(name), len(contribs))
	for _, t := range types {
		fmt.Fprintf(&b, "%s:\n", t)
		for _, target := range byType[t] {
			fmt.Fprintf(&b, "  • %s\n", target)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// claimsText renders claims structurally. This output goes straight to the
// user: scholarly citations must not pass through a generative model.
func claimsText(e *query.Engine, name string, decomps []*metamodel.DecompositionMethod) string {
	type entry struct {
		decomposition string
		argument      string
		topic         string
	}
	var all []entry
	for _, d := range decomps {
		for _, c := range e.ClaimsFor(d) {
			all = append(all, entry{decomposition: d.Name, argument: c.Argument, topic: c.Topic})
		}
	}
	display := query.DisplayName(name)
	if len(all) == 0 {
		return fmt.Sprintf("No claims found for decompositions of '%s'.", display)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Claims/Justifications for %s\n\n", display)
	fmt.Fprintf(&b, "Found %d claim(s) supporting its decompositions:\n\n", len(all))
	for i, c := range all {
		fmt.Fprintf(&b, "%d. Decomposition: %s\n", i+1, c.decomposition)
		fmt.Fprintf(&b, "   Argument: %s\n", c.argument)
		if c.topic != "" {
			fmt.Fprintf(&b, "   Topic: %s\n", c.topic)
		}
		b.WriteString("\n")
	}
	b.WriteString("These are scholarly sources supporting the decomposition methods.")
	return b.String()
}

// browseContext combines decompositions and correlation rules for one node,
// the evidence the browse_entity template asks about.
func browseContext(e *query.Engine, n *metamodel.TypeNode) string {
	var b strings.Builder
	if decomps := e.DecompositionsFor(n); len(decomps) > 0 {
		b.WriteString(decomposeContext(n.Name, decomps))
	} else {
		fmt.Fprintf(&b, "%s has no decomposition methods defined.\n\n", query.DisplayName(n.Name))
	}

	from := e.ContributionsFrom(n.Name)
	to := e.ContributionsTo(n.Name)
	if len(from) == 0 && len(to) == 0 {
		b.WriteString("No correlation rules involve this entity.\n")
		return b.String()
	}
	b.WriteString("Correlation rules:\n")
	for _, c := range from {
		fmt.Fprintf(&b, "  • %s → %s (%s)\n", query.DisplayName(c.Source), query.DisplayName(c.Target), c.Type)
	}
	for _, c := range to {
		fmt.Fprintf(&b, "  • %s → %s (%s)\n", query.DisplayName(c.Source), query.DisplayName(c.Target), c.Type)
	}
	return b.String()
}

// verifyContext gathers evidence for every entity mentioned in a statement.
// Each whitespace-separated token is resolved against the ontology; matches
// contribute their decompositions and contribution edges.
func verifyContext(e *query.Engine, statement string) string {
	seen := make(map[string]bool)
	var nodes []*metamodel.TypeNode
	for _, tok := range strings.FieldsFunc(statement, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
	}) {
		if len(tok) < 3 {
			continue
		}
		n, ok := e.ResolveName(tok)
		if !ok || seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return "No metamodel entities were recognized in the statement."
	}

	var b strings.Builder
	for _, n := range nodes {
		fmt.Fprintf(&b, "Entity: %s (%s)\n", query.DisplayName(n.Name), classification(e, n))
		for _, d := range e.DecompositionsFor(n) {
			fmt.Fprintf(&b, "  Decomposition %s\n", d)
		}
		for _, c := range e.ContributionsFrom(n.Name) {
			fmt.Fprintf(&b, "  Contributes: %s → %s (%s)\n", query.DisplayName(c.Source), query.DisplayName(c.Target), c.Type)
		}
		for _, c := range e.ContributionsTo(n.Name) {
			fmt.Fprintf(&b, "  Receives: %s → %s (%s)\n", query.DisplayName(c.Source), query.DisplayName(c.Target), c.Type)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// overviewContext is the default-action context: a compact inventory of the
// ontology so free-form questions still get grounded answers.
func overviewContext(e *query.Engine) string {
	nfrs := e.AllNFRTypeNames()
	ops := e.AllOperationalizingTypeNames()

	var b strings.Builder
	fmt.Fprintf(&b, "NFR types (%d): %s\n\n", len(nfrs), strings.Join(nfrs, ", "))
	fmt.Fprintf(&b, "Operationalization types (%d): %s\n", len(ops), strings.Join(ops, ", "))
	return b.String()
}
