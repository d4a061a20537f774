package types

import "depextract/internal/version"

// EmbeddingMetadata describes how a parent archive declared a nested archive
// in its jarjar metadata.
type EmbeddingMetadata struct {
	Group      string
	Artifact   string
	RangeSpec  string
	Range      *version.Range
	Version    string
	Obfuscated bool
	Path       string
}

// Dependency is one declared relationship of a mod. A nil Range means the
// declared range was malformed and can never be satisfied; a range that
// accepts everything is version.Unbounded().
type Dependency struct {
	TargetID  string
	RangeSpec string
	Range     *version.Range
	Severity  Severity
	Ordering  string
	Side      string
}

// ModIdentity is the resolved identity of one mod, language provider or
// library found in an archive.
type ModIdentity struct {
	FileName     string
	ID           string
	DisplayName  string
	Version      version.Version
	Dependencies []Dependency
	Kind         ModKind
	Embedded     bool
	SourcePath   string
}

// PlatformVersions carries the versions of the two synthetic platform
// identities.
type PlatformVersions struct {
	Minecraft string
	NeoForge  string
}
