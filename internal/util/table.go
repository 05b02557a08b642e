package util

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Table list format.
const (
	TableFormatCSV     = "csv"
	TableFormatJSON    = "json"
	TableFormatTable   = "table"
	TableFormatYAML    = "yaml"
	TableFormatCompact = "compact"
)

// RenderTable renders tabular data in the given format. Format options
// follow the format after a comma, e.g. "table,noheader" or "csv,header".
// The json and yaml formats render raw instead of the table rows.
func RenderTable(w io.Writer, format string, header []string, data [][]string, raw any) error {
	if w == nil {
		return errors.New("No writer to render the table to")
	}

	fields := strings.SplitN(format, ",", 2)
	format = fields[0]

	var options []string
	if len(fields) == 2 {
		options = strings.Split(fields[1], ",")
		if slices.Contains(options, "header") && slices.Contains(options, "noheader") {
			return errors.New("Invalid format, can't specify both header and noheader")
		}
	}

	switch format {
	case TableFormatTable:
		table := baseTable(w, header, data, !slices.Contains(options, "noheader"))
		return table.Render()

	case TableFormatCompact:
		table := baseTable(w, header, data, !slices.Contains(options, "noheader"),
			tablewriter.WithRendition(tw.Rendition{
				Borders: tw.BorderNone,
				Settings: tw.Settings{
					Separators: tw.Separators{BetweenRows: tw.Off, BetweenColumns: tw.Off},
					Lines:      tw.Lines{ShowHeaderLine: tw.Off},
				},
			}),
		)

		return table.Render()

	case TableFormatCSV:
		csvWriter := csv.NewWriter(w)
		if slices.Contains(options, "header") {
			err := csvWriter.Write(header)
			if err != nil {
				return err
			}
		}

		for _, row := range data {
			if len(row) != len(header) {
				return fmt.Errorf("Row %q has %d columns, expected %d", row, len(row), len(header))
			}
		}

		err := csvWriter.WriteAll(data)
		if err != nil {
			return err
		}

		return csvWriter.Error()

	case TableFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(raw)

	case TableFormatYAML:
		out, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}

		_, err = w.Write(out)
		return err

	default:
		return fmt.Errorf("Invalid format %q", format)
	}
}

func baseTable(w io.Writer, header []string, data [][]string, withHeader bool, opts ...tablewriter.Option) *tablewriter.Table {
	opts = append([]tablewriter.Option{tablewriter.WithHeaderAutoFormat(tw.Off)}, opts...)
	table := tablewriter.NewTable(w, opts...)

	if withHeader {
		cells := make([]any, 0, len(header))
		for _, h := range header {
			cells = append(cells, h)
		}

		table.Header(cells...)
	}

	_ = table.Bulk(data)

	return table
}
