package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appreport "github.com/xiebiao/library/internal/application/report"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
)

func newReportCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "借阅排行前10",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, closeDB, err := c.openDB()
			if err != nil {
				return err
			}
			defer closeDB()

			result, err := appreport.NewAdvancedReportUseCase(rdb.NewReportRepository(db)).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), result.Rows, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "以JSON输出")
	return cmd
}

func renderReport(w io.Writer, rows []appreport.Row, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "读者\t书名\t借阅次数\t出版社\t在车数")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", r.UserName, r.BookTitle, r.LoanCount, r.PublisherName, r.CartCount)
	}
	return tw.Flush()
}
