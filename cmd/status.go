package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/studio-autostop/internal/adapters/render/report"
	"github.com/bnema/studio-autostop/internal/application"
	"github.com/bnema/studio-autostop/internal/logger"
	"github.com/spf13/cobra"
)

func newStatusCmd(w wiring) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Evaluate idleness and print a report without stopping the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := report.ParseFormat(format)
			if err != nil {
				return &usageError{err: err}
			}

			return runStatus(cmd, w, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Output format: text, json or toml")

	return cmd
}

func runStatus(cmd *cobra.Command, w wiring, format report.Format) error {
	app, err := wireApp(cmd, w)
	if err != nil {
		return err
	}
	defer app.sync()

	check := func(ctx context.Context) (application.Report, error) {
		return app.service.Check(ctx, app.policy)
	}

	var result application.Report
	if format == report.FormatText && logger.IsTerminal(cmd.ErrOrStderr()) {
		result, err = checkWithProgress(cmd.Context(), cmd.ErrOrStderr(), check)
	} else {
		result, err = check(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	rendered, err := report.Render(result, format)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
