package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/studio-autostop/internal/config"
	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/spf13/cobra"
)

const (
	exitOK             = 0
	exitFailure        = 1
	exitMissingTimeArg = 2
)

// usageError marks command line parse failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps an Execute error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrMissingThreshold):
		return exitMissingTimeArg
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(wiring{})
}

func newRootCmdWith(w wiring) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autostop",
		Short: "Stop a SageMaker Studio space once it has been idle long enough",
		Long: "autostop checks the notebook kernels, terminals and recently modified files of a SageMaker Studio " +
			"JupyterLab space and deletes the app through the SageMaker API when nothing was active within --time seconds.\n" +
			"Run it periodically, for example from cron.",
		Example:       "  autostop --time 3600\n  autostop -t 1800 -p 8888 --ignore-connections --region eu-west-1\n  autostop status -t 3600 --format json",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAutostop(cmd, w)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntP("time", "t", 0, "Idle threshold in seconds (required)")
	flags.IntP("port", "p", 8888, "Jupyter server port")
	flags.BoolP("ignore-connections", "c", false, "Treat idle kernels with connected clients as idle")
	flags.String("region", "", "AWS region for the DeleteApp call (default: SDK resolution)")
	flags.String(config.ConfigFlag, "", "Config file (default: autostop.toml in /etc/autostop, the user config dir or .)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrln(cmd.UsageString())
		return &usageError{err: err}
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(w),
	)

	return rootCmd
}

func runAutostop(cmd *cobra.Command, w wiring) error {
	app, err := wireApp(cmd, w)
	if err != nil {
		return err
	}
	defer app.sync()

	if _, err := app.service.Run(cmd.Context(), app.policy, app.cfg.Region); err != nil {
		return fmt.Errorf("autostop: %w", err)
	}

	return nil
}
