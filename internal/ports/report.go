package ports

import "depextract/internal/types"

type ReportPort interface {
	WriteDependencyReport(report types.DependencyReport) error
}

type ReportReaderPort interface {
	ReadDependencyReport(path string) (types.DependencyReport, error)
}
