package core

import (
	"strings"

	"depextract/internal/types"
)

// BuildDependencyReport flattens a validated graph into its persisted form.
// Placeholder rows are not written; a mod without dependencies has an empty
// list.
func BuildDependencyReport(graph types.DependencyGraph) types.DependencyReport {
	report := types.DependencyReport{
		Platform: types.ReportPlatform{
			Minecraft: graph.Platform.Minecraft,
			NeoForge:  graph.Platform.NeoForge,
		},
		Summary: types.ReportSummary{
			ModCount:     graph.ModCount,
			ArchiveCount: graph.ArchiveCount,
			ShownMods:    len(graph.Identities),
			AllSatisfied: graph.AllSatisfied,
			Filter:       filterLabel(graph.Filter),
		},
		Mods: []types.ReportMod{},
	}

	for _, group := range graph.Duplicates {
		dup := types.ReportDuplicate{ID: group.ID}
		for _, member := range group.Members {
			dup.Entries = append(dup.Entries, types.ReportDuplicateEntry{
				FileName: member.FileName,
				Source:   member.SourcePath,
				Version:  member.Version.String(),
			})
		}
		report.Duplicates = append(report.Duplicates, dup)
	}

	for _, item := range graph.Identities {
		identity := item.Identity
		mod := types.ReportMod{
			ID:       identity.ID,
			Name:     identity.DisplayName,
			Kind:     identity.Kind,
			Version:  identity.Version.String(),
			Source:   identity.SourcePath,
			Embedded: identity.Embedded,
		}
		for _, result := range item.Results {
			if result.Placeholder || result.Dependency == nil {
				continue
			}
			mod.Dependencies = append(mod.Dependencies, types.ReportDependency{
				ID:               result.Dependency.TargetID,
				Range:            result.Dependency.Range.String(),
				Type:             result.Dependency.Severity,
				Ordering:         result.Dependency.Ordering,
				Side:             result.Dependency.Side,
				InstalledVersion: result.InstalledVersion,
				Installed:        result.Installed,
				InRange:          result.InRange,
				Satisfied:        result.Satisfied,
			})
		}
		report.Mods = append(report.Mods, mod)
	}
	return report
}

func filterLabel(filter types.ResultFilter) string {
	var parts []string
	if filter.OnlySatisfied {
		parts = append(parts, "only_satisfied")
	}
	if filter.OnlyUnsatisfied {
		parts = append(parts, "only_unsatisfied")
	}
	return strings.Join(parts, ",")
}
