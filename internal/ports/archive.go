package ports

import "depextract/internal/types"

// ArchiveHandle is an open, read-only view over one archive's file tree.
// Handles are scoped to a single scan pass and must be closed by the opener.
type ArchiveHandle interface {
	Name() string
	// SourcePath is the archive on disk that directly holds this one: its own
	// path for top-level archives, the parent's path for embedded ones.
	SourcePath() string
	Exists(name string) bool
	ReadFile(name string) ([]byte, error)
	Close() error
}

type ArchivePort interface {
	Open(path string) (ArchiveHandle, error)
	OpenEmbedded(parent ArchiveHandle, meta types.EmbeddingMetadata) (ArchiveHandle, error)
}

// ArchiveDiscoveryPort enumerates candidate archives under a root directory.
type ArchiveDiscoveryPort interface {
	FindArchives(root string, recursive bool) ([]string, error)
}
