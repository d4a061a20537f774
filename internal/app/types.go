package app

import (
	"depextract/internal/core"
	"depextract/internal/types"
)

type AnalyzeRequest struct {
	// Directory is a game instance root; its mods folder is scanned.
	Directory         string
	ModsDirs          []string
	Minecraft         string
	NeoForge          string
	OnlySatisfied     bool
	OnlyUnsatisfied   bool
	OutputDir         string
	Recursive         bool
	FailOnUnsatisfied bool
	// SBOM also writes an SPDX document of the reported mods.
	SBOM          bool
	SBOMCreatedAt string
}

type AnalyzeResult struct {
	Roots      []string
	ReportPath string
	SBOMPath   string
	Scan       core.ScanSummary
	Report     types.DependencyReport
}

type InspectRequest struct {
	ReportPath string
	OutputDir  string
}

type InspectResult struct {
	ReportPath  string
	Report      types.DependencyReport
	Unsatisfied []UnsatisfiedRow
}

// UnsatisfiedRow is one failed dependency row, flattened for display.
type UnsatisfiedRow struct {
	ModID            string
	DependencyID     string
	Type             types.Severity
	Range            string
	InstalledVersion string
	Ordering         string
	Side             string
}
