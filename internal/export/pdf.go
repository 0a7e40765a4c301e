package export

import (
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/inovacc/clientrec/internal/model"
)

const (
	pageWidth   = 190.0 // A4 minus 10mm margins
	rowHeight   = 7.0
	titleHeight = 12.0
)

// document wraps an fpdf page with the table styling used by every export.
type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(pageWidth, titleHeight, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(6)
}

func (d *document) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(pageWidth, 10, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

// table draws a grey header row followed by beige body rows.
func (d *document) table(widths []float64, header []string, rows [][]string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetFillColor(128, 128, 128)
	d.pdf.SetTextColor(245, 245, 245)
	d.pdf.SetDrawColor(0, 0, 0)

	for i, h := range header {
		d.pdf.CellFormat(widths[i], rowHeight+1, d.fit(h, widths[i]), "1", 0, "L", true, 0, "")
	}

	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetFillColor(245, 245, 220)
	d.pdf.SetTextColor(0, 0, 0)

	for _, row := range rows {
		for i, cell := range row {
			d.pdf.CellFormat(widths[i], rowHeight, d.fit(cell, widths[i]), "1", 0, "L", true, 0, "")
		}

		d.pdf.Ln(-1)
	}

	d.pdf.Ln(8)
}

// fit translates s and shortens it with an ellipsis until it fits width.
func (d *document) fit(s string, width float64) string {
	out := d.tr(s)
	limit := width - 2

	if d.pdf.GetStringWidth(out) <= limit {
		return out
	}

	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = d.tr(string(runes)) + "..."

		if d.pdf.GetStringWidth(out) <= limit {
			break
		}
	}

	return out
}

func (d *document) footer(lines ...string) {
	d.pdf.Ln(6)
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(0, 0, 0)

	for _, line := range lines {
		d.pdf.CellFormat(pageWidth, 6, d.tr(line), "", 1, "C", false, 0, "")
	}
}

func (d *document) save(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

func keyValueWidths() []float64 {
	return []float64{60, pageWidth - 60}
}

// ClientPDF writes client_<id>_<ts>.pdf with the client's details and any
// report fields attached to its reports.
func (e *Exporter) ClientPDF(client model.Client, fields []model.ReportField) (string, error) {
	path, now := e.path("client", client.ID, "pdf")

	d := newDocument()
	d.title(e.tr.T("titleClientReport"))

	d.table(keyValueWidths(), []string{e.tr.T("field"), e.tr.T("value")}, [][]string{
		{e.tr.T("colID"), strconv.FormatInt(client.ID, 10)},
		{e.tr.T("colName"), client.Name},
		{e.tr.T("colEmail"), na(client.Email)},
		{e.tr.T("colPhone"), na(client.Phone)},
		{e.tr.T("colCompany"), na(client.Company)},
		{e.tr.T("colAddress"), na(client.Address)},
		{e.tr.T("colCity"), na(client.City)},
		{e.tr.T("colCountry"), na(client.Country)},
		{e.tr.T("colCreatedAt"), e.stamp(client.CreatedAt)},
	})

	if len(fields) > 0 {
		rows := make([][]string, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, []string{f.Name, na(f.Value)})
		}

		d.heading(e.tr.T("titleReportData"))
		d.table(keyValueWidths(), []string{e.tr.T("field"), e.tr.T("value")}, rows)
	}

	d.footer(e.generatedAt(now))

	if err := e.savePDF("client pdf", path, d); err != nil {
		return "", err
	}

	return path, nil
}

// ClientsPDF writes clients_<ts>.pdf listing every client.
func (e *Exporter) ClientsPDF(clients []model.Client) (string, error) {
	path, now := e.path("clients", 0, "pdf")

	d := newDocument()
	d.title(e.tr.T("titleClientList"))

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10), c.Name, na(c.Email), na(c.Phone), na(c.Company), na(c.City),
		})
	}

	d.table(
		[]float64{12, 38, 45, 30, 35, 30},
		[]string{
			e.tr.T("colID"), e.tr.T("colName"), e.tr.T("colEmail"),
			e.tr.T("colPhone"), e.tr.T("colCompany"), e.tr.T("colCity"),
		},
		rows,
	)

	d.footer(
		e.tr.T("footerTotalClients", "Count=="+strconv.Itoa(len(clients))),
		e.generatedAt(now),
	)

	if err := e.savePDF("clients pdf", path, d); err != nil {
		return "", err
	}

	return path, nil
}

// StatisticsPDF writes statistics_<ts>.pdf with client and report counts.
func (e *Exporter) StatisticsPDF(cs model.ClientStats, rs model.ReportStats) (string, error) {
	path, now := e.path("statistics", 0, "pdf")
	header := []string{e.tr.T("metric"), e.tr.T("value")}

	d := newDocument()
	d.title(e.tr.T("titleStatistics"))

	clientRows := [][]string{{e.tr.T("totalClients"), strconv.Itoa(cs.TotalClients)}}
	for _, c := range cs.ByCountry {
		clientRows = append(clientRows, []string{e.tr.T("clientsIn", "Country=="+c.Key), strconv.Itoa(c.Count)})
	}

	d.heading(e.tr.T("titleClientStats"))
	d.table(keyValueWidths(), header, clientRows)

	reportRows := [][]string{{e.tr.T("totalReports"), strconv.Itoa(rs.TotalReports)}}
	for _, s := range model.SortedCounts(rs.ByStatus) {
		reportRows = append(reportRows, []string{e.tr.T("reportsWithStatus", "Status=="+s.Key), strconv.Itoa(s.Count)})
	}

	for _, t := range model.SortedCounts(rs.ByType) {
		reportRows = append(reportRows, []string{e.tr.T("reportsOfType", "Type=="+t.Key), strconv.Itoa(t.Count)})
	}

	d.heading(e.tr.T("titleReportStats"))
	d.table(keyValueWidths(), header, reportRows)

	d.footer(e.generatedAt(now))

	if err := e.savePDF("statistics pdf", path, d); err != nil {
		return "", err
	}

	return path, nil
}

func (e *Exporter) savePDF(op, path string, d *document) error {
	start := time.Now()

	if err := d.save(path); err != nil {
		return &Error{Op: op, Path: path, Err: err}
	}

	e.log.Info("export written", "format", "pdf", "path", path, "elapsed", time.Since(start))

	return nil
}
