package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cpr/internal/cli"
	"cpr/internal/config"
)

var version = "dev"

func main() {
	var flags cli.Flags

	rootCmd := &cobra.Command{
		Use:     "cpr",
		Short:   "Parallel spec-file runner",
		Long:    `Distributes end-to-end spec files across a pool of test-runner worker processes, balancing load by estimated test count so total wall-clock time stays low. Exit code 0 when every worker succeeds, 1 otherwise.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(flags.ToConfigFlags())
			return cli.NewApp(cfg).Execute(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags.Register(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// The run verdict has already been printed; anything else is a
		// real error worth echoing.
		if !errors.Is(err, cli.ErrRunFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
