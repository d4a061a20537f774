package types

// SatisfactionResult is the outcome of checking one dependency. Placeholder
// rows stand in for mods without dependencies and always count as satisfied.
type SatisfactionResult struct {
	Dependency       *Dependency
	InstalledVersion string
	Installed        bool
	InRange          bool
	Satisfied        bool
	Placeholder      bool
}

type IdentityResults struct {
	Identity ModIdentity
	Results  []SatisfactionResult
}

type DuplicateGroup struct {
	ID      string
	Members []ModIdentity
}

type ResultFilter struct {
	OnlySatisfied   bool
	OnlyUnsatisfied bool
}

func (f ResultFilter) Active() bool {
	return f.OnlySatisfied || f.OnlyUnsatisfied
}

// DependencyGraph is the validated view handed to report writers.
type DependencyGraph struct {
	Platform     PlatformVersions
	Identities   []IdentityResults
	Duplicates   []DuplicateGroup
	Filter       ResultFilter
	AllSatisfied bool
	ModCount     int
	ArchiveCount int
}
