package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depextract/internal/app"
)

type analyzeOptions struct {
	Directory         string
	ModsDirs          []string
	Minecraft         string
	NeoForge          string
	OnlySatisfied     bool
	OnlyUnsatisfied   bool
	OutputDir         string
	Recursive         bool
	FailOnUnsatisfied bool
	SBOM              bool
	SBOMCreatedAt     string
}

func newAnalyzeCommand() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Validate declared dependencies of every mod archive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Directory, "directory", ".", "Game instance directory containing a mods folder")
	cmd.Flags().StringSliceVar(&opts.ModsDirs, "mods-dir", nil, "Mods directories to scan instead of <directory>/mods")
	cmd.Flags().StringVar(&opts.Minecraft, "minecraft", "", "Minecraft version in use")
	cmd.Flags().StringVar(&opts.NeoForge, "neoforge", "", "NeoForge version in use")
	cmd.Flags().BoolVar(&opts.OnlySatisfied, "only-satisfied", false, "Only report mods whose dependencies are all satisfied")
	cmd.Flags().BoolVar(&opts.OnlyUnsatisfied, "only-unsatisfied", false, "Only report mods with at least one unsatisfied dependency")
	cmd.Flags().StringVar(&opts.OutputDir, "output", ".", "Output directory")
	cmd.Flags().BoolVar(&opts.Recursive, "recursive", false, "Also scan subdirectories of the mods directories")
	cmd.Flags().BoolVar(&opts.FailOnUnsatisfied, "fail-on-unsatisfied", false, "Exit non-zero when a dependency is unsatisfied")
	cmd.Flags().BoolVar(&opts.SBOM, "sbom", false, "Also write an SPDX SBOM of the reported mods")
	cmd.Flags().StringVar(&opts.SBOMCreatedAt, "sbom-created", "", "SBOM creation time (RFC3339, date or epoch seconds; default now)")

	_ = viper.BindPFlag("directory", cmd.Flags().Lookup("directory"))
	_ = viper.BindPFlag("mods_dir", cmd.Flags().Lookup("mods-dir"))
	_ = viper.BindPFlag("minecraft", cmd.Flags().Lookup("minecraft"))
	_ = viper.BindPFlag("neoforge", cmd.Flags().Lookup("neoforge"))
	_ = viper.BindPFlag("only_satisfied", cmd.Flags().Lookup("only-satisfied"))
	_ = viper.BindPFlag("only_unsatisfied", cmd.Flags().Lookup("only-unsatisfied"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("recursive", cmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("fail_on_unsatisfied", cmd.Flags().Lookup("fail-on-unsatisfied"))
	_ = viper.BindPFlag("sbom", cmd.Flags().Lookup("sbom"))
	_ = viper.BindPFlag("sbom_created", cmd.Flags().Lookup("sbom-created"))

	return cmd
}

func runAnalyze(ctx context.Context, cmd *cobra.Command, opts analyzeOptions) error {
	service := newAppService()
	result, err := service.Analyze(ctx, app.AnalyzeRequest{
		Directory:         resolveString(cmd, opts.Directory, "directory", "directory"),
		ModsDirs:          resolveStrings(cmd, opts.ModsDirs, "mods_dir", "mods-dir"),
		Minecraft:         resolveString(cmd, opts.Minecraft, "minecraft", "minecraft"),
		NeoForge:          resolveString(cmd, opts.NeoForge, "neoforge", "neoforge"),
		OnlySatisfied:     resolveBool(cmd, opts.OnlySatisfied, "only_satisfied", "only-satisfied"),
		OnlyUnsatisfied:   resolveBool(cmd, opts.OnlyUnsatisfied, "only_unsatisfied", "only-unsatisfied"),
		OutputDir:         resolveString(cmd, opts.OutputDir, "output", "output"),
		Recursive:         resolveBool(cmd, opts.Recursive, "recursive", "recursive"),
		FailOnUnsatisfied: resolveBool(cmd, opts.FailOnUnsatisfied, "fail_on_unsatisfied", "fail-on-unsatisfied"),
		SBOM:              resolveBool(cmd, opts.SBOM, "sbom", "sbom"),
		SBOMCreatedAt:     resolveString(cmd, opts.SBOMCreatedAt, "sbom_created", "sbom-created"),
	})
	if result.ReportPath == "" {
		return err
	}
	out := cmd.OutOrStdout()
	printReport(out, result.Report, app.UnsatisfiedRows(result.Report))
	fmt.Fprintf(out, "report: %s\n", result.ReportPath)
	if result.SBOMPath != "" {
		fmt.Fprintf(out, "sbom: %s\n", result.SBOMPath)
	}
	return err
}
