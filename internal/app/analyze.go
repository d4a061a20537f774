package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depextract/internal/adapters"
	"depextract/internal/core"
	"depextract/internal/ports"
	"depextract/internal/types"
)

// ModsFolder is the folder scanned below an instance directory.
const ModsFolder = "mods"

func (s Service) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error) {
	minecraft := strings.TrimSpace(req.Minecraft)
	if minecraft == "" {
		return AnalyzeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("minecraft version is required")
	}
	neoforge := strings.TrimSpace(req.NeoForge)
	if neoforge == "" {
		return AnalyzeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("neoforge version is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return AnalyzeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	roots, err := analyzeRoots(req)
	if err != nil {
		return AnalyzeResult{}, err
	}

	writer := s.ReportWriter(outputDir)
	resolver := core.NewIdentityResolver(s.Descriptor, s.Manifest, s.ClassFile)
	extractor := core.NewDependencyExtractor(resolver, writer, types.PlatformVersions{
		Minecraft: minecraft,
		NeoForge:  neoforge,
	}, types.ResultFilter{
		OnlySatisfied:   req.OnlySatisfied,
		OnlyUnsatisfied: req.OnlyUnsatisfied,
	})
	extractors := append([]ports.ExtractorPort{extractor}, s.Extractors...)
	scanner := core.NewScanner(s.Discovery, s.Archives, s.Embedded, extractor, extractors...)

	log.Ctx(ctx).Info().Strs("roots", roots).Msg("scanning mod archives")
	summary, err := scanner.Run(ctx, roots, req.Recursive)
	if err != nil {
		return AnalyzeResult{}, err
	}

	result := AnalyzeResult{
		Roots:      roots,
		ReportPath: filepath.Join(outputDir, adapters.ReportFileName),
		Scan:       summary,
		Report:     core.BuildDependencyReport(*extractor.Graph()),
	}
	if req.SBOM {
		result.SBOMPath = filepath.Join(outputDir, adapters.SBOMFileName)
		if err := s.SBOMWriter(outputDir).WriteSBOM(result.Report, req.SBOMCreatedAt); err != nil {
			return result, err
		}
		log.Ctx(ctx).Info().Str("path", result.SBOMPath).Msg("wrote mod sbom")
	}
	if req.FailOnUnsatisfied && !result.Report.Summary.AllSatisfied {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("unsatisfied dependencies found")
	}
	return result, nil
}

// analyzeRoots prefers explicit mods directories over the instance
// directory.
func analyzeRoots(req AnalyzeRequest) ([]string, error) {
	var roots []string
	for _, dir := range req.ModsDirs {
		if trimmed := strings.TrimSpace(dir); trimmed != "" {
			roots = append(roots, trimmed)
		}
	}
	if len(roots) > 0 {
		return roots, nil
	}
	directory := strings.TrimSpace(req.Directory)
	if directory == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("instance directory or mods directory is required")
	}
	return []string{filepath.Join(directory, ModsFolder)}, nil
}
