package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"depextract/internal/ports"
	"depextract/internal/types"
)

const DependencyExtractorName = "dependencies"

// DependencyExtractor resolves identities from every archive it is given,
// validates them once scanning is done and hands the result to the report
// port.
type DependencyExtractor struct {
	Resolver IdentityResolver
	Report   ports.ReportPort
	Platform types.PlatformVersions
	Filter   types.ResultFilter

	builder      *GraphBuilder
	namespace    *Namespace
	graph        *types.DependencyGraph
	archiveCount int
}

func NewDependencyExtractor(resolver IdentityResolver, report ports.ReportPort, platform types.PlatformVersions, filter types.ResultFilter) *DependencyExtractor {
	return &DependencyExtractor{
		Resolver: resolver,
		Report:   report,
		Platform: platform,
		Filter:   filter,
		builder:  NewGraphBuilder(),
	}
}

func (e *DependencyExtractor) Name() string {
	return DependencyExtractorName
}

func (e *DependencyExtractor) AcceptArchive(ctx context.Context, archive ports.ArchiveHandle, nested bool, embedding *types.EmbeddingMetadata, sourcePath string) error {
	if e.namespace != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("archive received after dependency validation")
	}
	identities, handled := e.Resolver.Resolve(ctx, archive, nested, embedding, sourcePath)
	if !handled {
		return nil
	}
	e.archiveCount++
	e.builder.Add(identities...)
	return nil
}

func (e *DependencyExtractor) PostProcess(ctx context.Context) error {
	if e.namespace != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("dependencies already validated")
	}
	log.Ctx(ctx).Info().Msg("validating dependency satisfaction")
	e.namespace = e.builder.Freeze(ctx, e.Platform)
	graph := Validate(ctx, e.namespace, e.Filter)
	graph.ArchiveCount = e.archiveCount
	e.graph = &graph
	return nil
}

func (e *DependencyExtractor) EmitResults(ctx context.Context, modCount int) error {
	if e.graph == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("results requested before dependency validation")
	}
	e.graph.ModCount = modCount
	if e.Report == nil {
		return nil
	}
	if err := e.Report.WriteDependencyReport(BuildDependencyReport(*e.graph)); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msg("dependency report written")
	return nil
}

// ModCount is the number of identities found so far, platform excluded.
func (e *DependencyExtractor) ModCount() int {
	if e.namespace != nil {
		return e.namespace.ModCount()
	}
	count := 0
	for id, members := range e.builder.entries {
		if !isPlatformID(id) {
			count += len(members)
		}
	}
	return count
}

// Graph returns the validated graph, or nil before PostProcess.
func (e *DependencyExtractor) Graph() *types.DependencyGraph {
	return e.graph
}

var (
	_ ports.ExtractorPort  = (*DependencyExtractor)(nil)
	_ ports.ModCounterPort = (*DependencyExtractor)(nil)
)
