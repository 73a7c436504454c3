package main

import (
	"github.com/Invicton-Labs/go-numeric/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "numcap",
		Short:         "Evaluate powers over int64, uint64, float32, float64 and decimal values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			input, err := cfg.logInput(verbose)
			if err != nil {
				return err
			}
			if err := log.InitDefault(input); err != nil {
				return err
			}
			return log.SweetenDefaultLogger(map[string]any{"command": cmd.Name()})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every evaluation at debug level")

	root.AddCommand(newRaiseCommand(), newIsPowerCommand(), newTableCommand())
	return root
}

// reportErr logs a command failure and hands it back to cobra.
func reportErr(cmd *cobra.Command, err error) error {
	log.FromContext(cmd.Context()).Error(err)
	return err
}
