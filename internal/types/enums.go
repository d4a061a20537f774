package types

// Severity is the strictness class of a declared dependency.
type Severity string

const (
	SeverityRequired     Severity = "REQUIRED"
	SeverityOptional     Severity = "OPTIONAL"
	SeverityDiscouraged  Severity = "DISCOURAGED"
	SeverityIncompatible Severity = "INCOMPATIBLE"
)

// ModKind is the archive kind reported for an identity. Manifest module
// types other than the ones below are carried through verbatim.
type ModKind string

const (
	ModKindMod              ModKind = "MOD"
	ModKindGameLibrary      ModKind = "GAMELIBRARY"
	ModKindLibrary          ModKind = "LIBRARY"
	ModKindLanguageProvider ModKind = "LANGPROVIDER"
)

const (
	PlatformMinecraftID = "minecraft"
	PlatformNeoForgeID  = "neoforge"
)
