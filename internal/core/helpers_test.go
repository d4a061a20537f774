package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"depextract/internal/adapters"
	"depextract/internal/ports"
	"depextract/internal/types"
	"depextract/internal/version"
	"depextract/tests/testutil"
)

func newTestResolver() IdentityResolver {
	return NewIdentityResolver(adapters.NewModsTomlAdapter(), adapters.NewManifestAdapter(), adapters.NewClassFileAdapter())
}

// descriptor renders a single-mod descriptor. Each dep is "id|type|range";
// empty fields are omitted.
func descriptor(id string, ver string, deps ...string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "[[mods]]\nmodId = %q\ndisplayName = %q\nversion = %q\n", id, strings.ToUpper(id[:1])+id[1:], ver)
	for _, dep := range deps {
		parts := append(strings.Split(dep, "|"), "", "")
		fmt.Fprintf(&b, "\n[[dependencies.%s]]\nmodId = %q\n", id, parts[0])
		if parts[1] != "" {
			fmt.Fprintf(&b, "type = %q\n", parts[1])
		}
		if parts[2] != "" {
			fmt.Fprintf(&b, "versionRange = %q\n", parts[2])
		}
	}
	return []byte(b.String())
}

func modJar(t *testing.T, dir string, file string, id string, ver string, deps ...string) string {
	t.Helper()
	return testutil.WriteJar(t, dir, file, testutil.Jar{
		types.ManifestPath:   testutil.Manifest(map[string]string{"Implementation-Version": ver}),
		types.DescriptorPath: descriptor(id, ver, deps...),
	})
}

func openArchive(t *testing.T, path string) ports.ArchiveHandle {
	t.Helper()
	archive, err := adapters.NewZipArchiveAdapter().Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func identity(id string, ver string, deps ...types.Dependency) types.ModIdentity {
	return types.ModIdentity{
		FileName:     id + ".jar",
		ID:           id,
		DisplayName:  id,
		Version:      version.Parse(ver),
		Dependencies: deps,
		Kind:         types.ModKindMod,
		SourcePath:   "/mods/" + id + ".jar",
	}
}

func dependency(t *testing.T, target string, severity types.Severity, spec string) types.Dependency {
	t.Helper()
	rng, err := version.ParseRange(spec)
	require.NoError(t, err)
	return types.Dependency{TargetID: target, RangeSpec: spec, Range: rng, Severity: severity}
}

var testPlatform = types.PlatformVersions{Minecraft: "1.21.1", NeoForge: "21.1.77"}

// rowSummary projects validator output into comparable strings.
func rowSummary(results []types.SatisfactionResult) []string {
	var out []string
	for _, result := range results {
		if result.Placeholder {
			out = append(out, "placeholder")
			continue
		}
		out = append(out, fmt.Sprintf("%s %s installed=%t inRange=%t satisfied=%t version=%s",
			result.Dependency.TargetID, result.Dependency.Severity, result.Installed, result.InRange, result.Satisfied, result.InstalledVersion))
	}
	return out
}
