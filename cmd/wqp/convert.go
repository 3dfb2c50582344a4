package main

import (
	"log/slog"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nwqmc/wqp/wqx"
)

var (
	convertType string
	convertOut  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.xml>",
	Short: "Convert a local WQX XML file to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var table wqx.TableType
		if err := table.UnmarshalText([]byte(convertType)); err != nil {
			return errors.Wrapf(err, "invalid --type %q", convertType)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening WQX file")
		}
		defer f.Close()
		doc, err := xmlquery.Parse(f)
		if err != nil {
			return errors.Wrap(err, "parsing WQX file")
		}

		reg, err := wqx.NewRegistry()
		if err != nil {
			return err
		}
		tab, err := wqx.NewMapper(reg).Table(table, doc, wqx.RowMajor)
		if err != nil {
			return err
		}
		slog.Info("document mapped", "table", table.String(), "rows", tab.Len())

		out := os.Stdout
		if convertOut != "" {
			of, err := os.Create(convertOut)
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer of.Close()
			out = of
		}
		return tab.WriteCSV(out)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertType, "type", "", `table type: "station" or "result"`)
	convertCmd.Flags().StringVar(&convertOut, "out", "", "CSV output file (default stdout)")
	convertCmd.MarkFlagRequired("type")
}
