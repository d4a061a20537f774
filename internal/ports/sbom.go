package ports

import "depextract/internal/types"

type SBOMPort interface {
	WriteSBOM(report types.DependencyReport, createdAt string) error
}
