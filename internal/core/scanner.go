package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"depextract/internal/ports"
	"depextract/internal/types"
	"depextract/internal/version"
)

// Scanner walks the archive roots and feeds every archive, and the archives
// embedded one level below it, to the registered extractors.
type Scanner struct {
	Discovery  ports.ArchiveDiscoveryPort
	Archives   ports.ArchivePort
	Embedded   ports.EmbeddedMetadataPort
	Extractors []ports.ExtractorPort
	Counter    ports.ModCounterPort
}

type ScanSummary struct {
	Archives         int
	EmbeddedArchives int
	Skipped          int
}

func NewScanner(discovery ports.ArchiveDiscoveryPort, archives ports.ArchivePort, embedded ports.EmbeddedMetadataPort, counter ports.ModCounterPort, extractors ...ports.ExtractorPort) Scanner {
	return Scanner{
		Discovery:  discovery,
		Archives:   archives,
		Embedded:   embedded,
		Extractors: extractors,
		Counter:    counter,
	}
}

func (s Scanner) Run(ctx context.Context, roots []string, recursive bool) (ScanSummary, error) {
	summary := ScanSummary{}
	var paths []string
	seen := make(map[string]struct{})
	for _, root := range roots {
		found, err := s.Discovery.FindArchives(root, recursive)
		if err != nil {
			return summary, err
		}
		for _, path := range found {
			key := archiveKey(path)
			if _, dup := seen[key]; dup {
				log.Ctx(ctx).Debug().Str("archive", path).Msg("archive reached from more than one root, scanning once")
				continue
			}
			seen[key] = struct{}{}
			paths = append(paths, path)
		}
	}
	log.Ctx(ctx).Info().Int("archives", len(paths)).Msg("found mod archives")

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		embedded, ok := s.scanArchive(ctx, path)
		if !ok {
			summary.Skipped++
			continue
		}
		summary.Archives++
		summary.EmbeddedArchives += embedded
	}

	for _, extractor := range s.Extractors {
		if err := extractor.PostProcess(ctx); err != nil {
			return summary, err
		}
	}
	modCount := 0
	if s.Counter != nil {
		modCount = s.Counter.ModCount()
	}
	for _, extractor := range s.Extractors {
		if err := extractor.EmitResults(ctx, modCount); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// archiveKey identifies an archive on disk independent of how its root was spelled.
func archiveKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// scanArchive dispatches one top-level archive and its embedded archives.
// It returns the number of embedded archives dispatched.
func (s Scanner) scanArchive(ctx context.Context, path string) (int, bool) {
	archive, err := s.Archives.Open(path)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("archive", path).Msg("failed to open mod archive, skipping")
		return 0, false
	}
	defer archive.Close()

	s.dispatch(ctx, archive, false, nil, archive.SourcePath())
	return s.scanEmbedded(ctx, archive), true
}

func (s Scanner) scanEmbedded(ctx context.Context, parent ports.ArchiveHandle) int {
	if !parent.Exists(types.EmbeddedMetadataPath) {
		return 0
	}
	logger := log.Ctx(ctx).With().Str("archive", parent.Name()).Logger()

	data, err := parent.ReadFile(types.EmbeddedMetadataPath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read embedded archive metadata")
		return 0
	}
	entries, err := s.Embedded.ParseEmbeddedMetadata(data)
	if err != nil {
		logger.Error().Err(err).Msg("failed to parse embedded archive metadata")
		return 0
	}

	count := 0
	for _, meta := range entries {
		if strings.TrimSpace(meta.Path) == "" {
			logger.Warn().Str("artifact", meta.Artifact).Msg("embedded archive entry has no path, skipping")
			continue
		}
		rng, err := version.ParseRange(meta.RangeSpec)
		if err != nil {
			logger.Error().Err(err).Str("range", meta.RangeSpec).Str("artifact", meta.Artifact).Msg("embedded archive has an invalid version range")
			rng = nil
		}
		meta.Range = rng
		if s.dispatchEmbedded(ctx, parent, meta) {
			count++
		}
	}
	return count
}

func (s Scanner) dispatchEmbedded(ctx context.Context, parent ports.ArchiveHandle, meta types.EmbeddingMetadata) bool {
	nested, err := s.Archives.OpenEmbedded(parent, meta)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("archive", parent.Name()).Str("embedded", meta.Path).Msg("failed to open embedded archive, skipping")
		return false
	}
	defer nested.Close()

	s.dispatch(ctx, nested, true, &meta, parent.SourcePath())
	return true
}

func (s Scanner) dispatch(ctx context.Context, archive ports.ArchiveHandle, nested bool, embedding *types.EmbeddingMetadata, sourcePath string) {
	for _, extractor := range s.Extractors {
		if err := extractor.AcceptArchive(ctx, archive, nested, embedding, sourcePath); err != nil {
			log.Ctx(ctx).Error().
				Err(err).
				Str("extractor", extractor.Name()).
				Str("archive", archive.Name()).
				Msg("extractor failed on archive")
		}
	}
}
