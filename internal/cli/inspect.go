package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"depextract/internal/app"
)

type inspectOptions struct {
	OutputDir string
	Report    string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a previously written dependency report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", ".", "Output directory")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Report file (overrides --output)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
		OutputDir:  resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), result.Report, result.Unsatisfied)
	return nil
}
