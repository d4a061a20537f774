package types

// ModsDescriptor is the raw content of a mods.toml descriptor, before
// placeholder substitution, range parsing and severity mapping.
type ModsDescriptor struct {
	Mods         []DescriptorMod
	Dependencies map[string][]DescriptorDependency
	// DependenciesKind names the TOML kind of a "dependencies" key that is
	// not a table ("array", "string", ...); empty when absent or valid.
	DependenciesKind string
}

type DescriptorMod struct {
	ModID       string
	DisplayName string
	Version     string
	HasVersion  bool
}

type DescriptorDependency struct {
	ModID        string
	VersionRange string
	Type         string
	HasType      bool
	Mandatory    *bool
	Ordering     string
	Side         string
}
