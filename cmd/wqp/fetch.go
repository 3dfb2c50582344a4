package main

import (
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nwqmc/wqp/client"
	"github.com/nwqmc/wqp/params"
	"github.com/nwqmc/wqp/wqx"
)

var (
	fetchHost   string
	fetchParams []string
	fetchOut    string
	fetchStash  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <resource>",
	Short: "Fetch a WQP dataset and write it as CSV",
	Long: `Fetch queries a WQP resource ("station" or "result"), converts the
WQX response to its tabular form and writes CSV to stdout or --out.
Query parameters are passed as repeated --param name=value flags and
validated before the request is made.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]
		values := url.Values{}
		for _, p := range fetchParams {
			name, value, ok := strings.Cut(p, "=")
			if !ok {
				return errors.Errorf("malformed --param %q: want name=value", p)
			}
			values.Add(name, value)
		}
		if err := params.Validate(values); err != nil {
			return err
		}

		c, err := client.New(fetchHost)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if fetchStash != "" {
			slog.Info("stashing raw response", "file", fetchStash)
			resp, err := c.Get(ctx, label, values)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			return client.Stash(resp, fetchStash, "xml")
		}

		slog.Info("fetching dataset", "host", fetchHost, "resource", label)
		table, err := c.FetchTable(ctx, label, values, wqx.RowMajor)
		if err != nil {
			return err
		}
		slog.Info("dataset mapped", "table", table.Type.String(), "rows", table.Len())

		out := os.Stdout
		if fetchOut != "" {
			f, err := os.Create(fetchOut)
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer f.Close()
			out = f
		}
		return table.WriteCSV(out)
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchHost, "host", "https://www.waterqualitydata.us", "WQP host URL")
	fetchCmd.Flags().StringArrayVar(&fetchParams, "param", nil, "query parameter as name=value (repeatable)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "CSV output file (default stdout)")
	fetchCmd.Flags().StringVar(&fetchStash, "stash", "", "stash the raw HTTP exchange to this file instead of converting")
}
