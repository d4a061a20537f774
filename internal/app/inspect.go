package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"depextract/internal/adapters"
	"depextract/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.ReportPath)
	if path == "" {
		outputDir := strings.TrimSpace(req.OutputDir)
		if outputDir == "" {
			return InspectResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("report path or output directory is required")
		}
		path = filepath.Join(outputDir, adapters.ReportFileName)
	}
	report, err := s.ReportReader.ReadDependencyReport(path)
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		ReportPath:  path,
		Report:      report,
		Unsatisfied: UnsatisfiedRows(report),
	}, nil
}

// UnsatisfiedRows lists every failed dependency row in report order.
func UnsatisfiedRows(report types.DependencyReport) []UnsatisfiedRow {
	var rows []UnsatisfiedRow
	for _, mod := range report.Mods {
		for _, dep := range mod.Dependencies {
			if dep.Satisfied {
				continue
			}
			rows = append(rows, UnsatisfiedRow{
				ModID:            mod.ID,
				DependencyID:     dep.ID,
				Type:             dep.Type,
				Range:            dep.Range,
				InstalledVersion: dep.InstalledVersion,
				Ordering:         dep.Ordering,
				Side:             dep.Side,
			})
		}
	}
	return rows
}
