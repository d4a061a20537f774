package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depextract/internal/adapters"
	"depextract/internal/types"
)

func TestInspectApp(t *testing.T) {
	dir := t.TempDir()
	report := types.DependencyReport{
		Platform: types.ReportPlatform{Minecraft: "1.21.1", NeoForge: "21.1.77"},
		Summary:  types.ReportSummary{ModCount: 2, ArchiveCount: 2, ShownMods: 2},
		Mods: []types.ReportMod{
			{ID: "alpha", Dependencies: []types.ReportDependency{
				{ID: "beta", Range: "[1.0,2.0)", Type: types.SeverityRequired, InstalledVersion: "2.1.0", Installed: true},
				{ID: "minecraft", Range: "<any>", Type: types.SeverityRequired, InstalledVersion: "1.21.1", Installed: true, InRange: true, Satisfied: true},
			}},
			{ID: "beta", Version: "2.1.0"},
		},
	}
	require.NoError(t, adapters.NewReportFileAdapter(dir).WriteDependencyReport(report))

	result, err := NewService().Inspect(InspectRequest{ReportPath: filepath.Join(dir, adapters.ReportFileName)})
	require.NoError(t, err)
	if diff := cmp.Diff(2, len(result.Report.Mods)); diff != "" {
		t.Fatalf("unexpected mod count (-want +got):\n%s", diff)
	}
	want := []UnsatisfiedRow{{ModID: "alpha", DependencyID: "beta", Type: types.SeverityRequired, Range: "[1.0,2.0)", InstalledVersion: "2.1.0"}}
	if diff := cmp.Diff(want, result.Unsatisfied); diff != "" {
		t.Fatalf("unexpected unsatisfied rows (-want +got):\n%s", diff)
	}
}

func TestInspectRequiresLocation(t *testing.T) {
	_, err := NewService().Inspect(InspectRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = NewService().Inspect(InspectRequest{OutputDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
