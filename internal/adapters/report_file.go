package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"depextract/internal/ports"
	"depextract/internal/types"
)

// ReportFileName is the dependency report written into the output directory.
const ReportFileName = "dependencies.yaml"

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

func (a ReportFileAdapter) WriteDependencyReport(report types.DependencyReport) error {
	path, err := a.ensurePath(ReportFileName)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode dependency report").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write dependency report").
			WithCause(err)
	}
	return nil
}

// Path returns where WriteDependencyReport puts the report.
func (a ReportFileAdapter) Path() string {
	return filepath.Join(a.Dir, ReportFileName)
}

func (a ReportFileAdapter) ReadDependencyReport(path string) (types.DependencyReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.DependencyReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("dependency report not found").
			WithCause(err)
	}
	var report types.DependencyReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.DependencyReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse dependency report").
			WithCause(err)
	}
	return report, nil
}

func (a ReportFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var (
	_ ports.ReportPort       = ReportFileAdapter{}
	_ ports.ReportReaderPort = ReportFileAdapter{}
)
