package types

// DependencyReport is the persisted form of a DependencyGraph.
type DependencyReport struct {
	Platform   ReportPlatform    `yaml:"platform"`
	Summary    ReportSummary     `yaml:"summary"`
	Duplicates []ReportDuplicate `yaml:"duplicates,omitempty"`
	Mods       []ReportMod       `yaml:"mods"`
}

type ReportPlatform struct {
	Minecraft string `yaml:"minecraft"`
	NeoForge  string `yaml:"neoforge"`
}

type ReportSummary struct {
	ModCount     int    `yaml:"mod_count"`
	ArchiveCount int    `yaml:"archive_count"`
	ShownMods    int    `yaml:"shown_mods"`
	AllSatisfied bool   `yaml:"all_satisfied"`
	Filter       string `yaml:"filter,omitempty"`
}

type ReportDuplicate struct {
	ID      string                 `yaml:"id"`
	Entries []ReportDuplicateEntry `yaml:"entries"`
}

type ReportDuplicateEntry struct {
	FileName string `yaml:"file_name"`
	Source   string `yaml:"source"`
	Version  string `yaml:"version"`
}

type ReportMod struct {
	ID           string             `yaml:"id"`
	Name         string             `yaml:"name"`
	Kind         ModKind            `yaml:"kind"`
	Version      string             `yaml:"version"`
	Source       string             `yaml:"source"`
	Embedded     bool               `yaml:"embedded,omitempty"`
	Dependencies []ReportDependency `yaml:"dependencies,omitempty"`
}

type ReportDependency struct {
	ID               string   `yaml:"id"`
	Range            string   `yaml:"range"`
	Type             Severity `yaml:"type"`
	Ordering         string   `yaml:"ordering,omitempty"`
	Side             string   `yaml:"side,omitempty"`
	InstalledVersion string   `yaml:"installed_version"`
	Installed        bool     `yaml:"installed"`
	InRange          bool     `yaml:"in_range"`
	Satisfied        bool     `yaml:"satisfied"`
}
