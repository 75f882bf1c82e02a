package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrframework/nfrassist/metamodel"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	return NewExporter(metamodel.BuildRegistry())
}

func TestExportTurtle(t *testing.T) {
	out, err := newTestExporter(t).Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix nfr: <https://nfrframework.dev/ontology#> .")
	assert.Contains(t, out, "@prefix skos: <http://www.w3.org/2004/02/skos/core#> .")

	// Hierarchy: SecurityType sits under NFRSoftgoalType.
	assert.Contains(t, out, "<https://nfrframework.dev/entity/type/SecurityType>")
	assert.Contains(t, out, "<http://www.w3.org/2004/02/skos/core#broader> <https://nfrframework.dev/entity/type/NFRSoftgoalType>")

	// Contribution edges are reified with source, target and effect.
	assert.Contains(t, out, "<https://nfrframework.dev/entity/contribution/EncryptionToSecurity>")
	assert.Contains(t, out, `<https://nfrframework.dev/ontology#effect> "HELP"`)
	assert.Contains(t, out, `<https://nfrframework.dev/ontology#effect> "HURT"`)

	// Decomposition methods carry their offspring.
	assert.Contains(t, out, "<https://nfrframework.dev/entity/method/Security-Type-Decomposition-1>")
	assert.Contains(t, out, "<https://nfrframework.dev/ontology#offspring> <https://nfrframework.dev/entity/type/ConfidentialityType>")

	// Claims point back at the methods they justify.
	assert.Contains(t, out, "<https://nfrframework.dev/entity/claim/ClaimSecurityCIA>")
	assert.Contains(t, out, "<https://nfrframework.dev/ontology#justifies> <https://nfrframework.dev/entity/method/Security-Type-Decomposition-1>")
}

func TestExportNTriples(t *testing.T) {
	out, err := newTestExporter(t).Export(FormatNTriples)
	require.NoError(t, err)

	// Every line is a complete <s> <p> o . statement.
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasPrefix(line, "<"), "line %q", line)
		assert.True(t, strings.HasSuffix(line, " ."), "line %q", line)
	}

	assert.Contains(t, out, "<https://nfrframework.dev/entity/type/SecurityType> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2004/02/skos/core#Concept> .")
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := newTestExporter(t).Export(Format("jsonld"))
	assert.Error(t, err)
}

func TestEscapeString(t *testing.T) {
	got := escapeString("a \"quoted\"\nline\twith\\slash")
	assert.Equal(t, `a \"quoted\"\nline\twith\\slash`, got)
}
