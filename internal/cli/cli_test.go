package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depextract/internal/app"
	"depextract/internal/types"
	"depextract/tests/testutil"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"analyze", "inspect"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestAnalyzeCommandFlags(t *testing.T) {
	cmd := newAnalyzeCommand()
	flags := []string{
		"directory", "mods-dir", "minecraft", "neoforge",
		"only-satisfied", "only-unsatisfied", "output",
		"recursive", "fail-on-unsatisfied",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("report"))
}

// ---------- Run tests ----------

func TestAnalyzeAndInspectCommands(t *testing.T) {
	instance := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	testutil.WriteJar(t, filepath.Join(instance, "mods"), "alpha.jar", testutil.Jar{
		types.DescriptorPath: []byte(`
[[mods]]
modId = "alpha"
version = "1.0"

[[dependencies.alpha]]
modId = "beta"
type = "required"
versionRange = "[1.0,)"
`),
	})

	var stdout bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stdout)
	root.SetArgs([]string{
		"analyze",
		"--directory", instance,
		"--minecraft", "1.21.1",
		"--neoforge", "21.1.77",
		"--output", out,
		"--fail-on-unsatisfied",
		"--log-level", "error",
	})
	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, 3, exitCodeForError(err))
	assert.Contains(t, stdout.String(), "found 1 mods in 1 archives")
	assert.Contains(t, stdout.String(), "- alpha -> beta REQUIRED [1.0,) (installed: -)")

	stdout.Reset()
	root = newRootCommand()
	root.SetOut(&stdout)
	root.SetArgs([]string{"inspect", "--report", filepath.Join(out, "dependencies.yaml"), "--log-level", "error"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "all dependencies satisfied: false")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	report := types.DependencyReport{
		Platform: types.ReportPlatform{Minecraft: "1.21.1", NeoForge: "21.1.77"},
		Summary:  types.ReportSummary{ModCount: 3, ArchiveCount: 2, ShownMods: 1, Filter: "only_unsatisfied"},
		Duplicates: []types.ReportDuplicate{{
			ID: "alpha",
			Entries: []types.ReportDuplicateEntry{
				{FileName: "alpha.jar", Source: "/mods/alpha.jar", Version: "1.0"},
				{FileName: "alpha-2.jar", Source: "/mods/alpha-2.jar", Version: "2.0"},
			},
		}},
	}
	printReport(&buf, report, []app.UnsatisfiedRow{
		{ModID: "alpha", DependencyID: "beta", Type: types.SeverityRequired, Range: "<any>", InstalledVersion: "-"},
		{ModID: "alpha", DependencyID: "gamma", Type: types.SeverityRequired, Range: "[2,)", InstalledVersion: "1.0", Ordering: "AFTER", Side: "CLIENT"},
		{ModID: "alpha", DependencyID: "delta", Type: types.SeverityRequired, Range: "[2,)", InstalledVersion: "-", Ordering: "NONE", Side: "BOTH"},
	})

	out := buf.String()
	assert.Contains(t, out, "showing 1 of 3 mods (only_unsatisfied)")
	assert.Contains(t, out, "duplicated mods:\n- alpha\n  alpha.jar 1.0 (/mods/alpha.jar)\n")
	assert.Contains(t, out, "- alpha -> beta REQUIRED <any> (installed: -)\n")
	assert.Contains(t, out, "- alpha -> gamma REQUIRED [2,) (installed: 1.0) [ordering AFTER, side CLIENT]\n")
	assert.Contains(t, out, "- alpha -> delta REQUIRED [2,) (installed: -)\n")
}

// ---------- Config loading tests ----------

func TestInitConfigWithoutConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	require.NoError(t, initConfig(""))
}

func TestInitConfigRejectsMalformedConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "depextract.yaml"), []byte("mods: [unterminated\n"), 0o644))
	t.Chdir(dir)

	err := initConfig("")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestInitConfigReadsConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "depextract.yaml"), []byte("output: reports\n"), 0o644))
	t.Chdir(dir)

	require.NoError(t, initConfig(""))
	assert.Equal(t, "reports", viper.GetString("output"))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveStrings(t *testing.T) {
	got := resolveStrings(nil, []string{"a", "b"}, "test_key", "test-flag")
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Empty(t, resolveStrings(nil, nil, "test_key", "test-flag"))
}

func TestResolveBool(t *testing.T) {
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")

	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("minecraft version is required"),
			expected: 2,
		},
		{
			name: "unsatisfied dependencies",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("unsatisfied dependencies found"),
			expected: 3,
		},
		{
			name: "generic failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("dependencies already validated"),
			expected: 4,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("mods directory not found"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("something broke")
	assert.Equal(t, "something broke", errorMessage(err))
	assert.Equal(t, assert.AnError.Error(), errorMessage(assert.AnError))
}
