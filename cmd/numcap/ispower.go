package main

import (
	"fmt"
	"strconv"

	"github.com/Invicton-Labs/go-numeric/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/spf13/cobra"
)

func newIsPowerCommand() *cobra.Command {
	var (
		repr      string
		value     string
		base      string
		tolerance float64
	)
	cmd := &cobra.Command{
		Use:   "is-power",
		Short: "Report whether a value is a non-negative integer power of a base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupRepresentation(repr)
			if err != nil {
				return reportErr(cmd, err)
			}
			var isPower bool
			if cmd.Flags().Changed("tolerance") {
				if r.isPowerWithin == nil {
					return reportErr(cmd, stackerr.Errorf("representation %s is exact and takes no tolerance", r.name))
				}
				isPower, err = r.isPowerWithin(value, base, tolerance)
			} else {
				isPower, err = r.isPower(value, base)
			}
			if err != nil {
				return reportErr(cmd, err)
			}
			log.FromContext(cmd.Context()).Debugw("tested power", "repr", r.name, "value", value, "base", base, "result", isPower)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(isPower))
			return nil
		},
	}
	cmd.Flags().StringVarP(&repr, "repr", "r", "int64", "numeric representation")
	cmd.Flags().StringVar(&value, "value", "", "value to test")
	cmd.Flags().StringVarP(&base, "base", "b", "", "base value")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "absolute or relative tolerance, for float representations")
	_ = cmd.MarkFlagRequired("value")
	_ = cmd.MarkFlagRequired("base")
	return cmd
}
