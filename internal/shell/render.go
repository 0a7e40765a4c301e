package shell

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/inovacc/clientrec/internal/model"
)

const (
	dateLayout = "2006-01-02 15:04"
	notSet     = "N/A"
)

func orNA(s string) string {
	if s == "" {
		return notSet
	}

	return s
}

// PrintClients writes clients as an aligned table.
func PrintClients(w io.Writer, clients []model.Client) {
	if len(clients) == 0 {
		_, _ = fmt.Fprintln(w, "No clients found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY\tCITY\tCOUNTRY")
	_, _ = fmt.Fprintln(tw, "--\t----\t-----\t-----\t-------\t----\t-------")

	for _, c := range clients {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Email, orNA(c.Phone), orNA(c.Company), orNA(c.City), orNA(c.Country))
	}

	_ = tw.Flush()
	_, _ = fmt.Fprintf(w, "\n%d client(s)\n", len(clients))
}

// PrintClient writes every field of one client.
func PrintClient(w io.Writer, c model.Client) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := [][2]string{
		{"ID", fmt.Sprint(c.ID)},
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", orNA(c.Phone)},
		{"Company", orNA(c.Company)},
		{"Address", orNA(c.Address)},
		{"City", orNA(c.City)},
		{"Country", orNA(c.Country)},
		{"Created", c.CreatedAt.Local().Format(dateLayout)},
		{"Updated", c.UpdatedAt.Local().Format(dateLayout)},
	}

	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}

	_ = tw.Flush()
}

// PrintReports writes reports as an aligned table.
func PrintReports(w io.Writer, reports []model.Report) {
	if len(reports) == 0 {
		_, _ = fmt.Fprintln(w, "No reports found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "ID\tCLIENT\tTITLE\tTYPE\tSTATUS\tCREATED")
	_, _ = fmt.Fprintln(tw, "--\t------\t-----\t----\t------\t-------")

	for _, r := range reports {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ClientName, r.Title, r.Type, r.Status, r.CreatedAt.Local().Format(dateLayout))
	}

	_ = tw.Flush()
	_, _ = fmt.Fprintf(w, "\n%d report(s)\n", len(reports))
}

// PrintFields writes report fields.
func PrintFields(w io.Writer, fields []model.ReportField) {
	if len(fields) == 0 {
		_, _ = fmt.Fprintln(w, "No fields.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "REPORT\tFIELD\tVALUE\tTYPE")

	for _, f := range fields {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ReportID, f.Name, orNA(f.Value), f.Type)
	}

	_ = tw.Flush()
}

// PrintStats writes client and report aggregates.
func PrintStats(w io.Writer, cs model.ClientStats, rs model.ReportStats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "Total clients:\t%d\n", cs.TotalClients)

	for _, e := range cs.ByCountry {
		_, _ = fmt.Fprintf(tw, "  country %s\t%d\n", e.Key, e.Count)
	}

	for _, e := range cs.ByCity {
		_, _ = fmt.Fprintf(tw, "  city %s\t%d\n", e.Key, e.Count)
	}

	_, _ = fmt.Fprintf(tw, "Total reports:\t%d\n", rs.TotalReports)

	for _, e := range model.SortedCounts(rs.ByStatus) {
		_, _ = fmt.Fprintf(tw, "  status %s\t%d\n", e.Key, e.Count)
	}

	for _, e := range model.SortedCounts(rs.ByType) {
		_, _ = fmt.Fprintf(tw, "  type %s\t%d\n", e.Key, e.Count)
	}

	_ = tw.Flush()
}
