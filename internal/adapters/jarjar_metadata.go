package adapters

import (
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/ports"
	"depextract/internal/types"
)

type jarJarDocument struct {
	Jars []jarJarEntry `json:"jars"`
}

type jarJarEntry struct {
	Identifier struct {
		Group    string `json:"group"`
		Artifact string `json:"artifact"`
	} `json:"identifier"`
	Version struct {
		Range           string `json:"range"`
		ArtifactVersion string `json:"artifactVersion"`
	} `json:"version"`
	Path         string `json:"path"`
	IsObfuscated bool   `json:"isObfuscated"`
}

type JarJarMetadataAdapter struct{}

func NewJarJarMetadataAdapter() JarJarMetadataAdapter {
	return JarJarMetadataAdapter{}
}

func (a JarJarMetadataAdapter) ParseEmbeddedMetadata(data []byte) ([]types.EmbeddingMetadata, error) {
	var doc jarJarDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse jarjar metadata").
			WithCause(err)
	}
	out := make([]types.EmbeddingMetadata, 0, len(doc.Jars))
	for _, entry := range doc.Jars {
		out = append(out, types.EmbeddingMetadata{
			Group:      entry.Identifier.Group,
			Artifact:   entry.Identifier.Artifact,
			RangeSpec:  entry.Version.Range,
			Version:    entry.Version.ArtifactVersion,
			Obfuscated: entry.IsObfuscated,
			Path:       strings.TrimPrefix(entry.Path, "/"),
		})
	}
	return out, nil
}

var _ ports.EmbeddedMetadataPort = JarJarMetadataAdapter{}
