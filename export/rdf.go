// Package export serializes the NFR Framework ontology to RDF so it can be
// loaded into graph stores and inspected with standard tooling. The type
// hierarchies map to SKOS concepts, decomposition methods and contribution
// edges are reified under the nfr: namespace.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nfrframework/nfrassist/metamodel"
)

// Namespace is the predicate/class namespace for NFR Framework terms.
const Namespace = "https://nfrframework.dev/ontology#"

// EntityNamespace is the IRI prefix for individual ontology entities.
const EntityNamespace = "https://nfrframework.dev/entity/"

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// Triple is one statement about an entity. Object strings that are full IRIs
// serialize as references, everything else as literals.
type Triple struct {
	Predicate string // full predicate IRI
	Object    any
}

// entity is one exportable subject with its statements.
type entity struct {
	iri     string
	types   []string // rdf:type IRIs
	triples []Triple
}

// Exporter walks a registry and serializes it. Build once, export in any
// format; the registry is immutable so the triple set never changes.
type Exporter struct {
	prefixes map[string]string
	entities []entity
}

// Well-known predicate IRIs.
const (
	rdfType       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfsLabel     = "http://www.w3.org/2000/01/rdf-schema#label"
	dcDescription = "http://purl.org/dc/terms/description"
	skosConcept   = "http://www.w3.org/2004/02/skos/core#Concept"
	skosBroader   = "http://www.w3.org/2004/02/skos/core#broader"
)

// NewExporter builds the triple set for a registry.
func NewExporter(reg *metamodel.Registry) *Exporter {
	e := &Exporter{
		prefixes: map[string]string{
			"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
			"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
			"dc":     "http://purl.org/dc/terms/",
			"skos":   "http://www.w3.org/2004/02/skos/core#",
			"nfr":    Namespace,
			"entity": EntityNamespace,
		},
	}
	e.addNodes(reg)
	e.addMethods(reg)
	e.addContributions(reg)
	e.addClaims(reg)
	return e
}

func (e *Exporter) addNodes(reg *metamodel.Registry) {
	for _, n := range reg.Nodes() {
		ent := entity{
			iri:   nodeIRI(n.Name),
			types: []string{skosConcept, Namespace + kindClass(n.Kind)},
			triples: []Triple{
				{Predicate: rdfsLabel, Object: n.Name},
			},
		}
		if n.Description != "" {
			ent.triples = append(ent.triples, Triple{Predicate: dcDescription, Object: n.Description})
		}
		if n.Parent != nil {
			ent.triples = append(ent.triples, Triple{Predicate: skosBroader, Object: nodeIRI(n.Parent.Name)})
		}
		if n.TypeRef != nil {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "classifiedAs", Object: nodeIRI(n.TypeRef.Name)})
		}
		for _, attr := range n.Declared {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "declaresAttribute", Object: attr})
		}
		e.entities = append(e.entities, ent)
	}
}

func (e *Exporter) addMethods(reg *metamodel.Registry) {
	for _, m := range reg.Methods() {
		ent := entity{
			iri:   methodIRI(m.Name),
			types: []string{Namespace + "DecompositionMethod"},
			triples: []Triple{
				{Predicate: rdfsLabel, Object: m.Name},
				{Predicate: Namespace + "methodKind", Object: string(m.Kind)},
				{Predicate: Namespace + "decomposes", Object: nodeIRI(m.Parent.Name)},
			},
		}
		for _, o := range m.Offspring {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "offspring", Object: nodeIRI(o.Name)})
		}
		if m.Description != "" {
			ent.triples = append(ent.triples, Triple{Predicate: dcDescription, Object: m.Description})
		}
		e.entities = append(e.entities, ent)
	}
}

func (e *Exporter) addContributions(reg *metamodel.Registry) {
	for _, c := range reg.Contributions() {
		e.entities = append(e.entities, entity{
			iri:   EntityNamespace + "contribution/" + pathSegment(c.Name),
			types: []string{Namespace + "Contribution"},
			triples: []Triple{
				{Predicate: Namespace + "source", Object: c.Source},
				{Predicate: Namespace + "target", Object: c.Target},
				{Predicate: Namespace + "effect", Object: string(c.Type)},
			},
		})
	}
}

func (e *Exporter) addClaims(reg *metamodel.Registry) {
	for _, c := range reg.Claims() {
		ent := entity{
			iri:   EntityNamespace + "claim/" + pathSegment(c.Name),
			types: []string{Namespace + "Claim"},
			triples: []Triple{
				{Predicate: rdfsLabel, Object: c.Name},
				{Predicate: Namespace + "argument", Object: c.Argument},
			},
		}
		if c.Type != nil {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "claimType", Object: nodeIRI(c.Type.Name)})
		}
		if c.Topic != "" {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "topic", Object: c.Topic})
		}
		for _, m := range c.Methods {
			ent.triples = append(ent.triples, Triple{Predicate: Namespace + "justifies", Object: methodIRI(m)})
		}
		e.entities = append(e.entities, ent)
	}
}

// Export serializes all entities to the specified format.
func (e *Exporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle() string {
	var sb strings.Builder

	prefixKeys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		prefixKeys = append(prefixKeys, k)
	}
	sort.Strings(prefixKeys)
	for _, prefix := range prefixKeys {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, e.prefixes[prefix]))
	}
	sb.WriteString("\n")

	for _, ent := range e.entities {
		writeEntityTurtle(&sb, ent)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeEntityTurtle writes a single entity in Turtle format.
func writeEntityTurtle(sb *strings.Builder, ent entity) {
	sb.WriteString(fmt.Sprintf("<%s>\n", ent.iri))

	for i, typeIRI := range ent.types {
		sb.WriteString(fmt.Sprintf("    a <%s>", typeIRI))
		if i < len(ent.types)-1 || len(ent.triples) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, triple := range ent.triples {
		sb.WriteString(fmt.Sprintf("    <%s> %s", triple.Predicate, formatObject(triple.Object)))
		if i < len(ent.triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples() string {
	var sb strings.Builder

	for _, ent := range e.entities {
		for _, typeIRI := range ent.types {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", ent.iri, rdfType, typeIRI))
		}
		for _, triple := range ent.triples {
			sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", ent.iri, triple.Predicate, formatObject(triple.Object)))
		}
	}

	return sb.String()
}

// nodeIRI converts an ontology node name to an IRI.
// Example: "PerformanceType" -> "https://nfrframework.dev/entity/type/PerformanceType"
func nodeIRI(name string) string {
	return EntityNamespace + "type/" + pathSegment(name)
}

// methodIRI converts a decomposition method name to an IRI.
func methodIRI(name string) string {
	return EntityNamespace + "method/" + pathSegment(name)
}

// pathSegment makes a name safe as an IRI path segment.
func pathSegment(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

// kindClass names the nfr: class for an ontology level.
func kindClass(k metamodel.Kind) string {
	switch k {
	case metamodel.KindMetaType:
		return "MetaType"
	case metamodel.KindInstance:
		return "Instance"
	}
	return "Type"
}

// formatObject formats an object value for Turtle and N-Triples output.
// Full IRIs become references, everything else a typed literal.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return fmt.Sprintf("<%s>", v)
		}
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case int, int32, int64:
		return fmt.Sprintf("\"%d\"^^<http://www.w3.org/2001/XMLSchema#integer>", v)
	case float32, float64:
		return fmt.Sprintf("\"%f\"^^<http://www.w3.org/2001/XMLSchema#decimal>", v)
	case bool:
		return fmt.Sprintf("\"%t\"^^<http://www.w3.org/2001/XMLSchema#boolean>", v)
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
