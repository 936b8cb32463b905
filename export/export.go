// Package export writes mixture diagnostic traces to CSV or XLSX files
// for use outside the tool.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/shockphys/goshock/graphics"
)

// Write saves the traces to path, choosing the format by extension:
// .csv for CSV, anything else is written as XLSX.
func Write(path string, traces []graphics.Trace) error {
	if len(traces) == 0 {
		return fmt.Errorf("no traces to export")
	}
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return writeCSV(path, traces)
	}
	return writeXLSX(path, traces)
}

func header(traces []graphics.Trace) []string {
	h := make([]string, 0, 3*len(traces))
	for _, tr := range traces {
		h = append(h,
			tr.Name+" Up (km/s)",
			tr.Name+" P (GPa)",
			tr.Name+" Us (km/s)")
	}
	return h
}

func rows(traces []graphics.Trace) int {
	n := 0
	for _, tr := range traces {
		if len(tr.Up) > n {
			n = len(tr.Up)
		}
	}
	return n
}

func writeCSV(path string, traces []graphics.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// UTF-8 BOM so spreadsheet apps detect the encoding
	if _, err = file.WriteString("\xEF\xBB\xBF"); err != nil {
		return err
	}
	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err = writer.Write(header(traces)); err != nil {
		return err
	}
	n := rows(traces)
	for i := 0; i < n; i++ {
		record := make([]string, 0, 3*len(traces))
		for _, tr := range traces {
			if i >= len(tr.Up) {
				record = append(record, "", "", "")
				continue
			}
			record = append(record,
				fmt.Sprintf("%.8f", tr.Up[i]),
				fmt.Sprintf("%.8f", tr.P[i]),
				fmt.Sprintf("%.8f", tr.Us[i]))
		}
		if err = writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeXLSX(path string, traces []graphics.Trace) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Traces"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	head := header(traces)
	headRow := make([]interface{}, len(head))
	for i, h := range head {
		headRow[i] = h
	}
	if err = sw.SetRow("A1", headRow); err != nil {
		return err
	}
	n := rows(traces)
	for i := 0; i < n; i++ {
		row := make([]interface{}, 0, 3*len(traces))
		for _, tr := range traces {
			if i >= len(tr.Up) {
				row = append(row, nil, nil, nil)
				continue
			}
			row = append(row, tr.Up[i], tr.P[i], tr.Us[i])
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}
