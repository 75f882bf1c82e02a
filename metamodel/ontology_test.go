package metamodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOntologyRoots(t *testing.T) {
	r := BuildRegistry()

	require.NotNil(t, r.Proposition)
	require.NotNil(t, r.Softgoal)
	require.NotNil(t, r.NFRSoftgoal)
	require.NotNil(t, r.OperationalizingSoftgoal)
	require.NotNil(t, r.ClaimSoftgoal)
	require.NotNil(t, r.SoftgoalType)
	require.NotNil(t, r.NFRSoftgoalType)
	require.NotNil(t, r.OperationalizingSoftgoalType)
	require.NotNil(t, r.ClaimSoftgoalType)

	assert.Equal(t, r.Proposition, r.Softgoal.Parent)
	assert.Equal(t, r.Softgoal, r.NFRSoftgoal.Parent)
	assert.Equal(t, r.Softgoal, r.OperationalizingSoftgoal.Parent)
	assert.Equal(t, r.Softgoal, r.ClaimSoftgoal.Parent)
	assert.Equal(t, r.SoftgoalType, r.NFRSoftgoalType.Parent)
	assert.Equal(t, r.SoftgoalType, r.OperationalizingSoftgoalType.Parent)
	assert.Equal(t, r.SoftgoalType, r.ClaimSoftgoalType.Parent)
}

func TestOntologyCoverage(t *testing.T) {
	r := BuildRegistry()

	nfrTypes := r.NFRSoftgoalType.Children()
	assert.GreaterOrEqual(t, len(nfrTypes), 50, "NFR type catalog")

	opTypes := r.OperationalizingSoftgoalType.Children()
	assert.GreaterOrEqual(t, len(opTypes), 30, "operationalizing type catalog")

	claimTypes := r.ClaimSoftgoalType.Children()
	assert.GreaterOrEqual(t, len(claimTypes), 15, "claim type catalog")

	assert.GreaterOrEqual(t, len(r.Methods()), 6)
	assert.GreaterOrEqual(t, len(r.Contributions()), 30)
	assert.GreaterOrEqual(t, len(r.Claims()), 14)

	// Every label type carries a description; the ontology is also the
	// assistant's glossary.
	for _, n := range nfrTypes {
		assert.NotEmpty(t, n.Description, n.Name)
	}
	for _, n := range opTypes {
		assert.NotEmpty(t, n.Description, n.Name)
	}
}

func TestEncryptionSubtypeNesting(t *testing.T) {
	r := BuildRegistry()

	enc, ok := r.Lookup("EncryptionType")
	require.True(t, ok)

	var subNames []string
	for _, c := range enc.Children() {
		subNames = append(subNames, c.Name)
	}
	assert.ElementsMatch(t, []string{"SymmetricKeyEncryptionType", "PublicKeyEncryptionType"}, subNames)

	rsa, ok := r.Lookup("RSAEncryptionType")
	require.True(t, ok)
	assert.Equal(t, "PublicKeyEncryptionType", rsa.Parent.Name)

	// The role-class hierarchy mirrors the nesting.
	rsaRole, ok := r.Lookup("RSAEncryptionSoftgoal")
	require.True(t, ok)
	assert.Equal(t, "PublicKeyEncryptionSoftgoal", rsaRole.Parent.Name)
	encRole, ok := r.Lookup("EncryptionSoftgoal")
	require.True(t, ok)
	assert.True(t, rsaRole.HasAncestor(encRole))
}

func TestRoleClassesMirrorLabels(t *testing.T) {
	r := BuildRegistry()

	// Every NFR label has a matching role class pointing back at it.
	for _, label := range r.NFRSoftgoalType.Children() {
		roleName := label.Name[:len(label.Name)-len("Type")] + "Softgoal"
		role, ok := r.Lookup(roleName)
		require.True(t, ok, roleName)
		assert.Equal(t, KindType, role.Kind)
		assert.Equal(t, label, role.TypeRef, roleName)
		assert.True(t, role.HasAncestor(r.NFRSoftgoal), roleName)
	}
}

func TestFlatNFRHierarchy(t *testing.T) {
	r := BuildRegistry()

	// Performance sub-qualities sit directly under the NFR root, not under
	// PerformanceType. Decomposition methods, not the type tree, carry the
	// parent/offspring structure.
	for _, name := range []string{"TimePerformanceType", "SpacePerformanceType", "CPUUtilizationType", "GPUUtilizationType"} {
		n, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, r.NFRSoftgoalType, n.Parent, name)
	}
}

func TestDecompositionOffspringOrder(t *testing.T) {
	r := BuildRegistry()

	byName := make(map[string]*DecompositionMethod)
	for _, m := range r.Methods() {
		byName[m.Name] = m
	}

	tests := []struct {
		method    string
		kind      MethodKind
		parent    string
		offspring []string
	}{
		{"Performance Type Decomposition 1", NFRDecomposition, "PerformanceType",
			[]string{"TimePerformanceType", "SpacePerformanceType"}},
		{"Performance Type Decomposition 2", NFRDecomposition, "PerformanceType",
			[]string{"TimePerformanceType", "SpacePerformanceType", "ResponsivenessPerformanceType"}},
		{"Performance Type Decomposition 3", NFRDecomposition, "PerformanceType",
			[]string{"CPUUtilizationType", "MemoryUsageType", "DiskTimeType", "NetworkThroughputType", "GPUUtilizationType"}},
		{"Security Type Decomposition 1", NFRDecomposition, "SecurityType",
			[]string{"ConfidentialityType", "IntegrityType", "AvailabilityType"}},
		{"Authorization Type Decomposition 1", OperationalizationDecomposition, "AuthorizationType",
			[]string{"IdentificationType", "AuthenticationType", "AccessRuleValidationType"}},
		{"ISO 25010 Usability Decomposition", NFRDecomposition, "UsabilityType",
			[]string{"LearnabilityType", "EfficiencyType", "MemorabilityType", "ErrorPreventionType", "SatisfactionType"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			m, ok := byName[tt.method]
			require.True(t, ok)
			assert.Equal(t, tt.kind, m.Kind)
			assert.Equal(t, tt.parent, m.Parent.Name)
			var got []string
			for _, o := range m.Offspring {
				got = append(got, o.Name)
			}
			assert.Equal(t, tt.offspring, got)
		})
	}
}
