package types

// Well-known entries inside a mod archive.
const (
	ManifestPath = "META-INF/MANIFEST.MF"
	// DescriptorPath is the NeoForge mod descriptor.
	DescriptorPath = "META-INF/neoforge.mods.toml"
	// LegacyDescriptorPath is the descriptor name used by older loaders.
	LegacyDescriptorPath = "META-INF/mods.toml"
	// EmbeddedMetadataPath lists the archives embedded in a parent archive.
	EmbeddedMetadataPath = "META-INF/jarjar/metadata.json"
)
