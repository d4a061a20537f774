package testutil

import (
	"path/filepath"
	"testing"
)

// Modpack versions used by WriteModpack.
const (
	ModpackMinecraft = "1.21.1"
	ModpackNeoForge  = "21.1.77"
)

const (
	alphaDescriptor = `
[[mods]]
modId = "alpha"
displayName = "Alpha"
version = "${file.jarVersion}"

[[dependencies.alpha]]
modId = "minecraft"
type = "required"
versionRange = "[1.21,1.22)"

[[dependencies.alpha]]
modId = "neoforge"
type = "required"
versionRange = "[21.1,)"

[[dependencies.alpha]]
modId = "beta"
type = "required"
versionRange = "[1.0,2.0)"

[[dependencies.alpha]]
modId = "gamma"
type = "optional"
versionRange = "[3.0,)"

[[dependencies.alpha]]
modId = "badmod"
type = "incompatible"
`
	betaDescriptor = `
[[mods]]
modId = "beta"
displayName = "Beta"
version = "1.5.0"

[[dependencies.beta]]
modId = "kotlinforforge"
type = "required"
versionRange = "[5,)"

[[dependencies.beta]]
modId = "delta"
type = "optional"
versionRange = "[1.0,)"
`
	deltaDescriptor = `
[[mods]]
modId = "delta"
displayName = "Delta"
version = "${file.jarVersion}"

[[dependencies.delta]]
modId = "alpha"
type = "required"
versionRange = "[1.0,)"
`
)

// WriteModpack lays out a small game instance under dir and returns the
// instance root. Its mods folder holds:
//
//   - alpha 1.2.0 requiring minecraft, neoforge and beta, with an optional
//     dependency on the absent gamma and an incompatible, absent badmod
//   - beta 1.5.0 embedded in a library bundle, requiring kotlinforforge and
//     optionally depending on delta
//   - a kotlinforforge language provider named through its loader class
//   - delta whose version placeholder cannot be substituted
//   - a second copy of alpha, making alpha a duplicate
func WriteModpack(t *testing.T, dir string) string {
	t.Helper()
	mods := filepath.Join(dir, "mods")

	WriteJar(t, mods, "alpha-1.2.0.jar", Jar{
		"META-INF/MANIFEST.MF":        Manifest(map[string]string{"Implementation-Version": "1.2.0"}),
		"META-INF/neoforge.mods.toml": []byte(alphaDescriptor),
	})
	WriteJar(t, mods, "alpha-1.2.0-copy.jar", Jar{
		"META-INF/MANIFEST.MF":        Manifest(map[string]string{"Implementation-Version": "1.2.0"}),
		"META-INF/neoforge.mods.toml": []byte(alphaDescriptor),
	})

	beta := JarBytes(t, Jar{
		"META-INF/neoforge.mods.toml": []byte(betaDescriptor),
	})
	WriteJar(t, mods, "bundle-2.0.jar", Jar{
		"META-INF/MANIFEST.MF": Manifest(map[string]string{
			"FMLModType":             "GAMELIBRARY",
			"Implementation-Title":   "Bundle",
			"Implementation-Version": "2.0",
		}),
		"META-INF/jarjar/metadata.json": JarJarMetadata(EmbeddedEntry{
			Group: "org.example", Artifact: "beta", Range: "[1.5,)", Version: "1.5.0", Path: "META-INF/jarjar/beta-1.5.0.jar",
		}),
		"META-INF/jarjar/beta-1.5.0.jar": beta,
	})

	WriteJar(t, mods, "kotlinforforge-5.3.0.jar", Jar{
		"META-INF/MANIFEST.MF": Manifest(map[string]string{
			"FMLModType":             "LANGPROVIDER",
			"Implementation-Title":   "Kotlin for Forge",
			"Implementation-Version": "5.3.0",
		}),
		"META-INF/services/net.neoforged.neoforgespi.language.IModLanguageLoader": []byte("thedarkcolour.kotlinforforge.KotlinLanguageLoader\n"),
		"thedarkcolour/kotlinforforge/KotlinLanguageLoader.class": ClassFile(
			"thedarkcolour/kotlinforforge/KotlinLanguageLoader", "name", "()Ljava/lang/String;", "kotlinforforge"),
	})

	WriteJar(t, mods, "delta.jar", Jar{
		"META-INF/neoforge.mods.toml": []byte(deltaDescriptor),
	})
	return dir
}
