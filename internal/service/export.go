package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/glbatch/buko-service/internal/buko"
)

// exportHeader is the column set of the review screen export: line number,
// classification triple, then the 14 schema fields in wire order.
func exportHeader() []string {
	header := []string{"Line #", "BE_TYPE", "BEC1", "BEC2"}
	for _, spec := range buko.Schema {
		header = append(header, spec.Name)
	}
	return header
}

func exportRow(c buko.Configuration) []string {
	row := []string{
		strconv.Itoa(c.Line),
		c.Classification.BEType,
		c.Classification.BEC1,
		c.Classification.BEC2,
	}
	fields := c.Record.Fields()
	row = append(row, fields[:]...)
	return row
}

// ExportCSV renders a configuration set as CSV with a header row.
func ExportCSV(configs []buko.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader()); err != nil {
		return nil, fmt.Errorf("ExportCSV: %w", err)
	}
	for _, c := range configs {
		if err := w.Write(exportRow(c)); err != nil {
			return nil, fmt.Errorf("ExportCSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("ExportCSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders a configuration set as a single-sheet workbook.
func ExportXLSX(configs []buko.Configuration) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	writeRow := func(rowNum int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cell, &row)
	}

	if err := writeRow(1, exportHeader()); err != nil {
		return nil, fmt.Errorf("ExportXLSX: %w", err)
	}
	for i, c := range configs {
		if err := writeRow(i+2, exportRow(c)); err != nil {
			return nil, fmt.Errorf("ExportXLSX: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ExportXLSX: write: %w", err)
	}
	return buf.Bytes(), nil
}
