package main

import (
	"fmt"

	"github.com/Invicton-Labs/go-numeric/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/spf13/cobra"
)

const raiseExample = `  numcap raise --base 2 --exponent -3
  numcap raise --repr int64 --base 3 --exponent 40 --checked`

func newRaiseCommand() *cobra.Command {
	var (
		repr     string
		base     string
		exponent int64
		checked  bool
	)
	cmd := &cobra.Command{
		Use:     "raise",
		Short:   "Raise a base to an integer exponent",
		Example: raiseExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupRepresentation(repr)
			if err != nil {
				return reportErr(cmd, err)
			}
			raise := r.raise
			if checked {
				if r.raiseChecked == nil {
					return reportErr(cmd, stackerr.Errorf("representation %s does not detect overflow", r.name))
				}
				raise = r.raiseChecked
			}
			result, err := raise(base, exponent)
			if err != nil {
				return reportErr(cmd, err)
			}
			log.FromContext(cmd.Context()).Debugw("raised", "repr", r.name, "base", base, "exponent", exponent, "result", result)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&repr, "repr", "r", "float64", "numeric representation")
	cmd.Flags().StringVarP(&base, "base", "b", "", "base value")
	cmd.Flags().Int64VarP(&exponent, "exponent", "e", 1, "integer exponent")
	cmd.Flags().BoolVar(&checked, "checked", false, "fail instead of wrapping when an integer result overflows")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}
