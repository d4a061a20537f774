package ports

import (
	"context"

	"depextract/internal/types"
)

// ExtractorPort is implemented by every content extractor driven by the
// archive scanner. AcceptArchive is called once per top-level and embedded
// archive; an error there is logged and does not stop the scan.
type ExtractorPort interface {
	Name() string
	AcceptArchive(ctx context.Context, archive ArchiveHandle, nested bool, embedding *types.EmbeddingMetadata, sourcePath string) error
	PostProcess(ctx context.Context) error
	EmitResults(ctx context.Context, modCount int) error
}

// ModCounterPort reports the number of mods found, excluding the platform
// identities.
type ModCounterPort interface {
	ModCount() int
}
