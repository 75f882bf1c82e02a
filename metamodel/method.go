package metamodel

import (
	"fmt"
	"strings"
)

// DecompositionMethod is a named, directed refinement: one parent type is
// decomposed into an ordered list of offspring types. Several methods may
// target the same parent; each represents one theory of how to refine it,
// and attribution lives in Claims, never on the method itself.
type DecompositionMethod struct {
	Name        string
	Kind        MethodKind
	Parent      *TypeNode
	Offspring   []*TypeNode
	Description string
}

// String renders the method as "name: Parent → [A B C]".
func (m *DecompositionMethod) String() string {
	names := make([]string, len(m.Offspring))
	for i, o := range m.Offspring {
		names[i] = o.Name
	}
	return fmt.Sprintf("%s: %s → [%s]", m.Name, m.Parent.Name, strings.Join(names, " "))
}
