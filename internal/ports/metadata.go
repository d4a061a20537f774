package ports

import "depextract/internal/types"

// DescriptorPort decodes a mods.toml descriptor into its raw structure.
type DescriptorPort interface {
	ParseDescriptor(data []byte) (types.ModsDescriptor, error)
}

// ManifestPort decodes the main section of a JAR manifest.
type ManifestPort interface {
	ParseManifest(data []byte) (types.Manifest, error)
}

// EmbeddedMetadataPort decodes a jarjar metadata document. Range parsing is
// left to the caller; only RangeSpec is populated.
type EmbeddedMetadataPort interface {
	ParseEmbeddedMetadata(data []byte) ([]types.EmbeddingMetadata, error)
}

// ClassFilePort inspects compiled class files.
type ClassFilePort interface {
	// ReturnedStringConstant returns the first string constant loaded by the
	// named method.
	ReturnedStringConstant(code []byte, method string, descriptor string) (string, error)
}
