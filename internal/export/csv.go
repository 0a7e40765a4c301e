package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/inovacc/clientrec/internal/model"
)

// ClientsCSV writes clients_<ts>.csv and returns its path.
func (e *Exporter) ClientsCSV(clients []model.Client) (string, error) {
	path, _ := e.path("clients", 0, "csv")

	if err := e.writeCSV("clients csv", path, e.clientTable(clients)); err != nil {
		return "", err
	}

	return path, nil
}

// ReportsCSV writes reports_<ts>.csv and returns its path.
func (e *Exporter) ReportsCSV(reports []model.Report) (string, error) {
	path, _ := e.path("reports", 0, "csv")

	if err := e.writeCSV("reports csv", path, e.reportTable(reports)); err != nil {
		return "", err
	}

	return path, nil
}

func (e *Exporter) writeCSV(op, path string, t table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: op, Path: path, Err: err}
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Op: op, Path: path, Err: cerr}
		}
	}()

	w := csv.NewWriter(f)

	if err := w.Write(t.headers); err != nil {
		return &Error{Op: op, Path: path, Err: err}
	}

	record := make([]string, len(t.headers))

	for _, row := range t.rows {
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}

		if err := w.Write(record); err != nil {
			return &Error{Op: op, Path: path, Err: err}
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return &Error{Op: op, Path: path, Err: err}
	}

	e.log.Info("export written", "format", "csv", "path", path, "rows", len(t.rows))

	return nil
}
