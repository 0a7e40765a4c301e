// Package export renders clients, reports and statistics into PDF, xlsx and
// CSV files. It never reads the record store; callers pass the rows in.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/clientrec/internal/locale"
	"github.com/inovacc/clientrec/internal/model"
)

const (
	// NotAvailable is written in place of an empty optional value.
	NotAvailable = "N/A"

	timestampLayout = "20060102_150405"
	dateTimeLayout  = "2006-01-02 15:04:05"
)

// Error reports a failure to produce an export file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Exporter writes documents into one output directory.
type Exporter struct {
	dir  string
	lang string
	now  func() time.Time
	log  *slog.Logger
	tr   *locale.Translator
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock sets the time source for file names and footers.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocale selects the language of headers and labels.
func WithLocale(lang string) Option {
	return func(e *Exporter) {
		if lang != "" {
			e.lang = lang
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Exporter) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates dir if needed and returns an Exporter writing into it.
func New(dir string, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		dir:  dir,
		lang: "en",
		now:  time.Now,
		log:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Op: "init", Path: dir, Err: err}
	}

	tr, err := locale.New(e.lang, e.log)
	if err != nil {
		return nil, &Error{Op: "init", Err: err}
	}

	e.tr = tr

	return e, nil
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

func (e *Exporter) path(kind string, id int64, ext string) (string, time.Time) {
	now := e.now()

	var name string
	if id > 0 {
		name = fmt.Sprintf("%s_%d_%s.%s", kind, id, now.Format(timestampLayout), ext)
	} else {
		name = fmt.Sprintf("%s_%s.%s", kind, now.Format(timestampLayout), ext)
	}

	return filepath.Join(e.dir, name), now
}

func (e *Exporter) generatedAt(t time.Time) string {
	return e.tr.T("footerGenerated", "Date=="+t.Format("02/01/2006"), "Time=="+t.Format("15:04"))
}

// stamp formats t in the zone of the exporter's clock, the same zone the
// footer uses.
func (e *Exporter) stamp(t time.Time) string {
	return t.In(e.now().Location()).Format(dateTimeLayout)
}

func na(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

// table is the column layout shared by the spreadsheet and CSV writers.
type table struct {
	sheet   string
	headers []string
	rows    [][]any
}

func (e *Exporter) clientTable(clients []model.Client) table {
	t := table{
		sheet: e.tr.T("sheetClients"),
		headers: []string{
			e.tr.T("colID"), e.tr.T("colName"), e.tr.T("colEmail"), e.tr.T("colPhone"),
			e.tr.T("colCompany"), e.tr.T("colAddress"), e.tr.T("colCity"), e.tr.T("colCountry"),
			e.tr.T("colCreatedAt"),
		},
		rows: make([][]any, 0, len(clients)),
	}

	for _, c := range clients {
		t.rows = append(t.rows, []any{
			c.ID, c.Name, na(c.Email), na(c.Phone), na(c.Company),
			na(c.Address), na(c.City), na(c.Country), e.stamp(c.CreatedAt),
		})
	}

	return t
}

func (e *Exporter) reportTable(reports []model.Report) table {
	t := table{
		sheet: e.tr.T("sheetReports"),
		headers: []string{
			e.tr.T("colID"), e.tr.T("colClientID"), e.tr.T("colClient"), e.tr.T("colTitle"),
			e.tr.T("colDescription"), e.tr.T("colType"), e.tr.T("colStatus"), e.tr.T("colCreatedAt"),
		},
		rows: make([][]any, 0, len(reports)),
	}

	for _, r := range reports {
		t.rows = append(t.rows, []any{
			r.ID, r.ClientID, na(r.ClientName), r.Title, na(r.Description),
			r.Type, r.Status, e.stamp(r.CreatedAt),
		})
	}

	return t
}
