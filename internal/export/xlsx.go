package export

import (
	"fmt"
	"unicode/utf8"

	"github.com/inovacc/clientrec/internal/model"
	"github.com/xuri/excelize/v2"
)

const maxColumnWidth = 50

// ClientsXLSX writes clients_<ts>.xlsx and returns its path.
func (e *Exporter) ClientsXLSX(clients []model.Client) (string, error) {
	path, _ := e.path("clients", 0, "xlsx")

	if err := e.writeXLSX("clients xlsx", path, e.clientTable(clients)); err != nil {
		return "", err
	}

	return path, nil
}

// ReportsXLSX writes reports_<ts>.xlsx and returns its path.
func (e *Exporter) ReportsXLSX(reports []model.Report) (string, error) {
	path, _ := e.path("reports", 0, "xlsx")

	if err := e.writeXLSX("reports xlsx", path, e.reportTable(reports)); err != nil {
		return "", err
	}

	return path, nil
}

func (e *Exporter) writeXLSX(op, path string, t table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	fail := func(err error) error {
		return &Error{Op: op, Path: path, Err: err}
	}

	if err := f.SetSheetName(f.GetSheetName(0), t.sheet); err != nil {
		return fail(err)
	}

	header := make([]any, len(t.headers))
	for i, h := range t.headers {
		header[i] = h
	}

	if err := f.SetSheetRow(t.sheet, "A1", &header); err != nil {
		return fail(err)
	}

	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail(err)
		}

		if err := f.SetSheetRow(t.sheet, cell, &row); err != nil {
			return fail(err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fail(err)
	}

	last, err := excelize.CoordinatesToCellName(len(t.headers), 1)
	if err != nil {
		return fail(err)
	}

	if err := f.SetCellStyle(t.sheet, "A1", last, bold); err != nil {
		return fail(err)
	}

	for col, width := range columnWidths(t) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fail(err)
		}

		if err := f.SetColWidth(t.sheet, name, name, width); err != nil {
			return fail(err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fail(err)
	}

	e.log.Info("export written", "format", "xlsx", "path", path, "rows", len(t.rows))

	return nil
}

// columnWidths sizes each column to its longest value plus two, capped at 50.
func columnWidths(t table) []float64 {
	widths := make([]float64, len(t.headers))

	for i, h := range t.headers {
		longest := utf8.RuneCountInString(h)

		for _, row := range t.rows {
			if n := utf8.RuneCountInString(fmt.Sprint(row[i])); n > longest {
				longest = n
			}
		}

		widths[i] = float64(min(longest+2, maxColumnWidth))
	}

	return widths
}
