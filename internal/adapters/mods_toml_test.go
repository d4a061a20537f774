package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depextract/internal/types"
)

func TestModsTomlAdapter_ParseDescriptor(t *testing.T) {
	data := `
modLoader = "javafml"
loaderVersion = "[4,)"

[[mods]]
modId = "alpha"
displayName = "Alpha"
version = "${file.jarVersion}"

[[mods]]
modId = "alpha_addon"

[[dependencies.alpha]]
modId = "beta"
type = "required"
versionRange = "[1.0,2.0)"
ordering = "AFTER"
side = "BOTH"

[[dependencies.alpha]]
modId = "gamma"
mandatory = false

[[dependencies.alpha_addon]]
modId = "alpha"
type = 3
`
	descriptor, err := NewModsTomlAdapter().ParseDescriptor([]byte(data))
	require.NoError(t, err)

	wantMods := []types.DescriptorMod{
		{ModID: "alpha", DisplayName: "Alpha", Version: "${file.jarVersion}", HasVersion: true},
		{ModID: "alpha_addon"},
	}
	if diff := cmp.Diff(wantMods, descriptor.Mods); diff != "" {
		t.Fatalf("mods mismatch (-want +got):\n%s", diff)
	}

	optional := false
	wantDeps := map[string][]types.DescriptorDependency{
		"alpha": {
			{ModID: "beta", Type: "required", HasType: true, VersionRange: "[1.0,2.0)", Ordering: "AFTER", Side: "BOTH"},
			{ModID: "gamma", Mandatory: &optional},
		},
		"alpha_addon": {
			{ModID: "alpha", Type: "3", HasType: true},
		},
	}
	if diff := cmp.Diff(wantDeps, descriptor.Dependencies); diff != "" {
		t.Fatalf("dependencies mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, descriptor.DependenciesKind)
}

func TestModsTomlAdapter_NonTableDependencies(t *testing.T) {
	data := `
dependencies = ["beta"]

[[mods]]
modId = "alpha"
`
	descriptor, err := NewModsTomlAdapter().ParseDescriptor([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "array", descriptor.DependenciesKind)
	assert.Nil(t, descriptor.Dependencies)
	require.Len(t, descriptor.Mods, 1)
}

func TestModsTomlAdapter_InvalidDocument(t *testing.T) {
	_, err := NewModsTomlAdapter().ParseDescriptor([]byte("[[mods]\nmodId = "))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
