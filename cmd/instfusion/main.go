package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"instfusion/internal/log"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "instfusion",
		Short:         "RISC-V instruction classification and fusion pair counting",
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.Init(cmd.ErrOrStderr(), lvl)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newAnalyzeCmd(),
		newClassifyCmd(),
		newDisasmCmd(),
		newTableCmd(),
		newRecordCmd(),
	)
	return root
}
