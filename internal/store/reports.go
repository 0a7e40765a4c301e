package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/inovacc/clientrec/internal/model"
)

const reportSelect = `
	SELECT r.id, r.client_id, c.name, r.title, r.description, r.report_type, r.status, r.created_at, r.updated_at
	FROM reports r
	JOIN clients c ON c.id = r.client_id`

func scanReport(row rowScanner) (model.Report, error) {
	var (
		r    model.Report
		desc sql.NullString
	)

	if err := row.Scan(&r.ID, &r.ClientID, &r.ClientName, &r.Title, &desc, &r.Type, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return model.Report{}, err
	}

	r.Description = derefString(desc)

	return r, nil
}

// CreateReport inserts a pending report for an existing client.
func (s *Store) CreateReport(ctx context.Context, in model.NewReport) (int64, error) {
	if strings.TrimSpace(in.Title) == "" {
		return 0, fmt.Errorf("create report: title: %w", ErrMissingField)
	}

	reportType := in.Type
	if strings.TrimSpace(reportType) == "" {
		reportType = model.DefaultReportType
	}

	now := s.timestamp()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO reports (client_id, title, description, report_type, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ClientID, in.Title, nullString(in.Description), reportType, model.DefaultReportStatus, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("create report: %w", mapError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}

	s.log.Debug("report created", "report_id", id, "client_id", in.ClientID)

	return id, nil
}

// GetReport returns the report with id or ErrNotFound.
func (s *Store) GetReport(ctx context.Context, id int64) (*model.Report, error) {
	r, err := scanReport(s.db.QueryRowContext(ctx, reportSelect+` WHERE r.id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get report %d: %w", id, mapError(err))
	}

	return &r, nil
}

// ListReportsByClient returns the reports of one client, newest first.
func (s *Store) ListReportsByClient(ctx context.Context, clientID int64) ([]model.Report, error) {
	return s.queryReports(ctx, "list client reports",
		reportSelect+` WHERE r.client_id = ? ORDER BY r.created_at DESC, r.id DESC`, clientID)
}

// ListAllReports returns every report, newest first.
func (s *Store) ListAllReports(ctx context.Context) ([]model.Report, error) {
	return s.queryReports(ctx, "list reports",
		reportSelect+` ORDER BY r.created_at DESC, r.id DESC`)
}

func (s *Store) queryReports(ctx context.Context, op, query string, args ...any) ([]model.Report, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer func() { _ = rows.Close() }()

	reports := make([]model.Report, 0)

	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reports, nil
}

// UpdateReportStatus sets the status of a report. It returns false when no
// report has that id.
func (s *Store) UpdateReportStatus(ctx context.Context, id int64, status string) (bool, error) {
	if strings.TrimSpace(status) == "" {
		return false, fmt.Errorf("update report %d: status: %w", id, ErrMissingField)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE reports SET status = ?, updated_at = ? WHERE id = ?`, status, s.timestamp(), id)
	if err != nil {
		return false, fmt.Errorf("update report %d: %w", id, mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update report %d: %w", id, err)
	}

	if n > 0 {
		s.log.Debug("report status changed", "report_id", id, "status", status)
	}

	return n > 0, nil
}

// AddReportField attaches a key/value to a report. Field names are not
// unique; adding the same name twice keeps both.
func (s *Store) AddReportField(ctx context.Context, reportID int64, name, value, fieldType string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("add report field: name: %w", ErrMissingField)
	}

	if strings.TrimSpace(fieldType) == "" {
		fieldType = model.DefaultFieldType
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO report_data (report_id, field_name, field_value, field_type, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		reportID, name, nullString(value), fieldType, s.timestamp(),
	)
	if err != nil {
		return 0, fmt.Errorf("add report field: %w", mapError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add report field: %w", err)
	}

	return id, nil
}

// ListReportFields returns the fields of a report in insertion order.
func (s *Store) ListReportFields(ctx context.Context, reportID int64) ([]model.ReportField, error) {
	return s.queryFields(ctx, "list report fields", `
		SELECT id, report_id, field_name, field_value, field_type, created_at
		FROM report_data WHERE report_id = ? ORDER BY id ASC`, reportID)
}

// ListClientReportFields returns the fields of every report owned by a client.
func (s *Store) ListClientReportFields(ctx context.Context, clientID int64) ([]model.ReportField, error) {
	return s.queryFields(ctx, "list client report fields", `
		SELECT d.id, d.report_id, d.field_name, d.field_value, d.field_type, d.created_at
		FROM report_data d
		JOIN reports r ON r.id = d.report_id
		WHERE r.client_id = ?
		ORDER BY d.report_id ASC, d.id ASC`, clientID)
}

func (s *Store) queryFields(ctx context.Context, op, query string, args ...any) ([]model.ReportField, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	defer func() { _ = rows.Close() }()

	fields := make([]model.ReportField, 0)

	for rows.Next() {
		var (
			f     model.ReportField
			value sql.NullString
		)

		if err := rows.Scan(&f.ID, &f.ReportID, &f.Name, &value, &f.Type, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		f.Value = derefString(value)
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fields, nil
}
