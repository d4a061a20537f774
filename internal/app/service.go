package app

import (
	"depextract/internal/adapters"
	"depextract/internal/ports"
)

type Service struct {
	Discovery    ports.ArchiveDiscoveryPort
	Archives     ports.ArchivePort
	Descriptor   ports.DescriptorPort
	Manifest     ports.ManifestPort
	Embedded     ports.EmbeddedMetadataPort
	ClassFile    ports.ClassFilePort
	ReportReader ports.ReportReaderPort
	ReportWriter func(outputDir string) ports.ReportPort
	SBOMWriter   func(outputDir string) ports.SBOMPort
	// Extractors run alongside the dependency extractor on every archive.
	Extractors []ports.ExtractorPort
}

func NewService() Service {
	return Service{
		Discovery:    adapters.NewArchiveWalkerAdapter(),
		Archives:     adapters.NewZipArchiveAdapter(),
		Descriptor:   adapters.NewModsTomlAdapter(),
		Manifest:     adapters.NewManifestAdapter(),
		Embedded:     adapters.NewJarJarMetadataAdapter(),
		ClassFile:    adapters.NewClassFileAdapter(),
		ReportReader: adapters.NewReportFileAdapter(""),
		ReportWriter: func(outputDir string) ports.ReportPort {
			return adapters.NewReportFileAdapter(outputDir)
		},
		SBOMWriter: func(outputDir string) ports.SBOMPort {
			return adapters.NewSBOMWriterAdapter(outputDir)
		},
	}
}
