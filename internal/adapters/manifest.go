package adapters

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/ports"
	"depextract/internal/types"
)

// ManifestAdapter reads the main section of a JAR manifest. Continuation
// lines start with a single space; the main section ends at the first blank
// line.
type ManifestAdapter struct{}

func NewManifestAdapter() ManifestAdapter {
	return ManifestAdapter{}
}

func (a ManifestAdapter) ParseManifest(data []byte) (types.Manifest, error) {
	manifest := types.Manifest{Main: map[string]string{}}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lastKey := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		if strings.HasPrefix(line, " ") {
			if lastKey == "" {
				return types.Manifest{}, manifestError(lineNo, "continuation without header")
			}
			manifest.Main[lastKey] += line[1:]
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return types.Manifest{}, manifestError(lineNo, "invalid header")
		}
		lastKey = strings.TrimSpace(key)
		manifest.Main[lastKey] = strings.TrimPrefix(value, " ")
	}
	if err := scanner.Err(); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	for key, value := range manifest.Main {
		manifest.Main[key] = strings.TrimSpace(value)
	}
	return manifest, nil
}

func manifestError(line int, reason string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid manifest line %d: %s", line, reason))
}

var _ ports.ManifestPort = ManifestAdapter{}
