package model

import "time"

const (
	// DefaultReportType is used when a report is created without a type.
	DefaultReportType = "general"

	// DefaultReportStatus is the status of a freshly created report.
	DefaultReportStatus = "pending"

	// DefaultFieldType is used when a report field is created without a type.
	DefaultFieldType = "text"
)

// ReportStatuses are the statuses offered by the menus and commands. The
// store itself accepts any non-empty status.
var ReportStatuses = []string{DefaultReportStatus, "in_progress", "completed", "cancelled"}

// Report is a document attached to a client.
type Report struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"report_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewReport holds the fields accepted when creating a report.
type NewReport struct {
	ClientID    int64
	Title       string
	Description string
	Type        string
}

// ReportField is a free-form key/value attached to a report.
type ReportField struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	Name      string    `json:"field_name"`
	Value     string    `json:"field_value,omitempty"`
	Type      string    `json:"field_type"`
	CreatedAt time.Time `json:"created_at"`
}
