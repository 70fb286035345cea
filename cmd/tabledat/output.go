package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mgutz/tabledat"
	"github.com/olekukonko/tablewriter"
)

func printRecords(w io.Writer, records []*tabledat.Record, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	columns := records[0].Columns()
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, record := range records {
		row := make([]string, len(columns))
		for i, column := range columns {
			row[i] = formatCell(record.Value(column))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func formatCell(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}

func printAffected(w io.Writer, affected bool, asJSON bool) error {
	if asJSON {
		_, err := fmt.Fprintf(w, "{\"affected\": %t}\n", affected)
		return err
	}
	if affected {
		_, err := fmt.Fprintln(w, "OK")
		return err
	}
	_, err := fmt.Fprintln(w, "no rows affected")
	return err
}
