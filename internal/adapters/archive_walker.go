package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/ports"
)

const archiveExtension = ".jar"

type ArchiveWalkerAdapter struct{}

func NewArchiveWalkerAdapter() ArchiveWalkerAdapter {
	return ArchiveWalkerAdapter{}
}

func (a ArchiveWalkerAdapter) FindArchives(root string, recursive bool) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mods directory is empty")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("mods directory not found: " + root).
			WithCause(err)
	}
	if !info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mods path is not a directory: " + root)
	}

	var paths []string
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to list mods directory").
				WithCause(err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && isArchiveName(entry.Name()) {
				paths = append(paths, filepath.Join(root, entry.Name()))
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipArchiveDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && isArchiveName(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan mods directory").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func isArchiveName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), archiveExtension)
}

func shouldSkipArchiveDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

var _ ports.ArchiveDiscoveryPort = ArchiveWalkerAdapter{}
