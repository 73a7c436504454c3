package main

import (
	"io"
	"os"

	"github.com/Invicton-Labs/go-numeric/collections"
	"github.com/Invicton-Labs/go-numeric/genjson"
	"github.com/Invicton-Labs/go-numeric/log"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type tableRow struct {
	Base   string       `yaml:"base" json:"base"`
	Powers []tableEntry `yaml:"powers" json:"powers"`
}

type tableEntry struct {
	Exponent int64  `yaml:"exponent" json:"exponent"`
	Value    string `yaml:"value" json:"value"`
}

// maxTableExponents is the widest exponent range a table may span.
const maxTableExponents = 1 << 12

// exponentRange returns the exponents in [from, to), rejecting inverted
// ranges and ranges wider than maxTableExponents.
func exponentRange(from int64, to int64) ([]int64, stackerr.Error) {
	if to < from {
		return nil, stackerr.Errorf("exponent range [%d, %d) is inverted", from, to)
	}
	// to >= from, so the unsigned difference is exact even when to-from
	// overflows int64.
	if span := uint64(to) - uint64(from); span > maxTableExponents {
		return nil, stackerr.Errorf("exponent range [%d, %d) spans %d exponents, at most %d are allowed", from, to, span, maxTableExponents)
	}
	return collections.Range(from, to), nil
}

// readBases decodes a JSON array of base strings from a file.
func readBases(path string) ([]string, stackerr.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stackerr.Wrap(err)
	}
	return genjson.Unmarshal[[]string](data)
}

// buildTable raises every base to every exponent. Bases that fail to parse
// are left out of the table and reported together.
func buildTable(r representation, bases []string, exponents []int64) ([]tableRow, error) {
	rows := make([]tableRow, 0, len(bases))
	var errs error
	for _, base := range bases {
		row := tableRow{Base: base, Powers: make([]tableEntry, 0, len(exponents))}
		var rowErr stackerr.Error
		for _, e := range exponents {
			var v string
			if v, rowErr = r.raise(base, e); rowErr != nil {
				break
			}
			row.Powers = append(row.Powers, tableEntry{Exponent: e, Value: v})
		}
		if rowErr != nil {
			errs = multierr.Append(errs, rowErr)
			continue
		}
		rows = append(rows, row)
	}
	return rows, errs
}

func writeTable(w io.Writer, format string, rows []tableRow) stackerr.Error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return stackerr.Wrap(err)
		}
		if err := enc.Close(); err != nil {
			return stackerr.Wrap(err)
		}
		return nil
	case "json":
		return genjson.Encode(w, rows)
	}
	return stackerr.Errorf("unknown format %q, expected yaml or json", format)
}

func newTableCommand() *cobra.Command {
	var (
		repr      string
		format    string
		bases     []string
		basesFile string
		from      int64
		to        int64
	)
	cmd := &cobra.Command{
		Use:     "table",
		Short:   "Print base**n for a set of bases and a range of exponents",
		Example: "  numcap table --bases 2,-2,0,inf,-inf,nan --from -3 --to 4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := lookupRepresentation(repr)
			if err != nil {
				return reportErr(cmd, err)
			}
			exponents, err := exponentRange(from, to)
			if err != nil {
				return reportErr(cmd, err)
			}
			if basesFile != "" {
				if bases, err = readBases(basesFile); err != nil {
					return reportErr(cmd, err)
				}
			}
			rows, tableErr := buildTable(r, bases, exponents)
			log.FromContext(log.ContextWith(cmd.Context(), "repr", r.name)).Debugw("built table", "rows", len(rows), "from", from, "to", to)
			if err := writeTable(cmd.OutOrStdout(), format, rows); err != nil {
				return reportErr(cmd, err)
			}
			if tableErr != nil {
				return reportErr(cmd, stackerr.Wrap(tableErr))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&repr, "repr", "r", "float64", "numeric representation")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format, yaml or json")
	cmd.Flags().StringSliceVar(&bases, "bases", []string{"2"}, "comma-separated bases")
	cmd.Flags().StringVar(&basesFile, "bases-file", "", "JSON file holding an array of bases, used instead of --bases")
	cmd.Flags().Int64Var(&from, "from", -3, "first exponent")
	cmd.Flags().Int64Var(&to, "to", 4, "exponent after the last one")
	return cmd
}
