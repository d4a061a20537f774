package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// Jar describes the entries of a synthetic archive. Keys are entry names.
type Jar map[string][]byte

// JarBytes encodes entries as a zip archive in a stable order.
func JarBytes(t *testing.T, entries Jar) []byte {
	t.Helper()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := writer.Create(name)
		require.NoError(t, err)
		_, err = w.Write(entries[name])
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

// WriteJar writes a synthetic archive into dir and returns its path.
func WriteJar(t *testing.T, dir string, name string, entries Jar) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, JarBytes(t, entries), 0644))
	return path
}

// Manifest renders main manifest attributes in a stable order.
func Manifest(attrs map[string]string) []byte {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("Manifest-Version: 1.0\r\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s\r\n", key, attrs[key])
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}

// EmbeddedEntry is one jarjar metadata record.
type EmbeddedEntry struct {
	Group      string
	Artifact   string
	Range      string
	Version    string
	Path       string
	Obfuscated bool
}

// JarJarMetadata renders a jarjar metadata document.
func JarJarMetadata(entries ...EmbeddedEntry) []byte {
	var parts []string
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf(
			`{"identifier":{"group":%q,"artifact":%q},"version":{"range":%q,"artifactVersion":%q},"path":%q,"isObfuscated":%t}`,
			e.Group, e.Artifact, e.Range, e.Version, e.Path, e.Obfuscated,
		))
	}
	return []byte(`{"jars":[` + strings.Join(parts, ",") + `]}`)
}
