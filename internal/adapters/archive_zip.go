package adapters

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/klauspost/compress/zip"

	"depextract/internal/ports"
	"depextract/internal/types"
)

type ZipArchiveAdapter struct{}

func NewZipArchiveAdapter() ZipArchiveAdapter {
	return ZipArchiveAdapter{}
}

// zipArchive indexes the central directory once so lookups by entry name are
// constant time.
type zipArchive struct {
	name       string
	sourcePath string
	entries    map[string]*zip.File
	closer     io.Closer
}

func (a ZipArchiveAdapter) Open(archivePath string) (ports.ArchiveHandle, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open archive: " + archivePath).
			WithCause(err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat archive: " + archivePath).
			WithCause(err)
	}
	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		_ = file.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("not a readable archive: " + archivePath).
			WithCause(err)
	}
	absolute, err := filepath.Abs(archivePath)
	if err != nil {
		absolute = archivePath
	}
	return &zipArchive{
		name:       filepath.Base(archivePath),
		sourcePath: absolute,
		entries:    indexEntries(reader),
		closer:     file,
	}, nil
}

// OpenEmbedded reads the nested archive fully into memory; nested archives
// are small and the parent stays open for the duration.
func (a ZipArchiveAdapter) OpenEmbedded(parent ports.ArchiveHandle, meta types.EmbeddingMetadata) (ports.ArchiveHandle, error) {
	data, err := parent.ReadFile(meta.Path)
	if err != nil {
		return nil, err
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("embedded archive %s in %s is not readable", meta.Path, parent.Name())).
			WithCause(err)
	}
	return &zipArchive{
		name:       path.Base(meta.Path),
		sourcePath: parent.SourcePath(),
		entries:    indexEntries(reader),
	}, nil
}

func indexEntries(reader *zip.Reader) map[string]*zip.File {
	entries := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		if strings.HasSuffix(file.Name, "/") {
			continue
		}
		entries[normalizeEntryName(file.Name)] = file
	}
	return entries
}

func normalizeEntryName(name string) string {
	return strings.TrimPrefix(strings.ReplaceAll(name, "\\", "/"), "/")
}

func (z *zipArchive) Name() string {
	return z.name
}

func (z *zipArchive) SourcePath() string {
	return z.sourcePath
}

func (z *zipArchive) Exists(name string) bool {
	_, ok := z.entries[normalizeEntryName(name)]
	return ok
}

func (z *zipArchive) ReadFile(name string) ([]byte, error) {
	entry, ok := z.entries[normalizeEntryName(name)]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("entry %s not found in %s", name, z.name))
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open entry %s in %s", name, z.name)).
			WithCause(err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read entry %s in %s", name, z.name)).
			WithCause(err)
	}
	return data, nil
}

func (z *zipArchive) Close() error {
	if z.closer == nil {
		return nil
	}
	err := z.closer.Close()
	z.closer = nil
	z.entries = nil
	return err
}

var _ ports.ArchivePort = ZipArchiveAdapter{}
