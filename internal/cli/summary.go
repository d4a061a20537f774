package cli

import (
	"fmt"
	"io"
	"strings"

	"depextract/internal/app"
	"depextract/internal/types"
)

func printReport(w io.Writer, report types.DependencyReport, unsatisfied []app.UnsatisfiedRow) {
	fmt.Fprintf(w, "minecraft: %s\n", report.Platform.Minecraft)
	fmt.Fprintf(w, "neoforge: %s\n", report.Platform.NeoForge)
	fmt.Fprintf(w, "found %d mods in %d archives\n", report.Summary.ModCount, report.Summary.ArchiveCount)
	if report.Summary.Filter != "" {
		fmt.Fprintf(w, "showing %d of %d mods (%s)\n", report.Summary.ShownMods, report.Summary.ModCount, report.Summary.Filter)
	}
	fmt.Fprintf(w, "all dependencies satisfied: %t\n", report.Summary.AllSatisfied)

	if len(report.Duplicates) > 0 {
		fmt.Fprintln(w, "duplicated mods:")
		for _, dup := range report.Duplicates {
			fmt.Fprintf(w, "- %s\n", dup.ID)
			for _, entry := range dup.Entries {
				fmt.Fprintf(w, "  %s %s (%s)\n", entry.FileName, entry.Version, entry.Source)
			}
		}
	}
	if len(unsatisfied) > 0 {
		fmt.Fprintln(w, "unsatisfied dependencies:")
		for _, row := range unsatisfied {
			fmt.Fprintf(w, "- %s -> %s %s %s (installed: %s)%s\n", row.ModID, row.DependencyID, row.Type, row.Range, row.InstalledVersion, placement(row))
		}
	}
}

// placement renders the load ordering and side of a row when declared.
func placement(row app.UnsatisfiedRow) string {
	var parts []string
	if row.Ordering != "" && row.Ordering != "NONE" {
		parts = append(parts, "ordering "+row.Ordering)
	}
	if row.Side != "" && row.Side != "BOTH" {
		parts = append(parts, "side "+row.Side)
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ", ") + "]"
}
