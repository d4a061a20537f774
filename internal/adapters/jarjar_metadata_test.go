package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depextract/internal/types"
	"depextract/tests/testutil"
)

func TestJarJarMetadataAdapter_ParseEmbeddedMetadata(t *testing.T) {
	data := testutil.JarJarMetadata(
		testutil.EmbeddedEntry{
			Group:    "org.example",
			Artifact: "mixinextras",
			Range:    "[0.3.0,)",
			Version:  "0.3.5",
			Path:     "/META-INF/jarjar/mixinextras-0.3.5.jar",
		},
		testutil.EmbeddedEntry{
			Group:      "org.example",
			Artifact:   "shaded",
			Version:    "1.0",
			Path:       "META-INF/jarjar/shaded.jar",
			Obfuscated: true,
		},
	)

	entries, err := NewJarJarMetadataAdapter().ParseEmbeddedMetadata(data)
	require.NoError(t, err)

	want := []types.EmbeddingMetadata{
		{Group: "org.example", Artifact: "mixinextras", RangeSpec: "[0.3.0,)", Version: "0.3.5", Path: "META-INF/jarjar/mixinextras-0.3.5.jar"},
		{Group: "org.example", Artifact: "shaded", Version: "1.0", Path: "META-INF/jarjar/shaded.jar", Obfuscated: true},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestJarJarMetadataAdapter_Malformed(t *testing.T) {
	_, err := NewJarJarMetadataAdapter().ParseEmbeddedMetadata([]byte(`{"jars": [`))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
