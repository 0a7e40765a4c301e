package store

import (
	"context"
	"fmt"

	"github.com/inovacc/clientrec/internal/model"
)

const topCities = 10

// ClientStats counts clients overall, per country and per city. Clients
// without a country or city are left out of the respective grouping.
func (s *Store) ClientStats(ctx context.Context) (model.ClientStats, error) {
	var st model.ClientStats

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&st.TotalClients); err != nil {
		return model.ClientStats{}, fmt.Errorf("client stats: %w", mapError(err))
	}

	var err error

	st.ByCountry, err = s.groupCounts(ctx, `
		SELECT country, count(*) FROM clients
		WHERE country IS NOT NULL AND country <> ''
		GROUP BY country
		ORDER BY count(*) DESC, country ASC`)
	if err != nil {
		return model.ClientStats{}, fmt.Errorf("client stats by country: %w", err)
	}

	st.ByCity, err = s.groupCounts(ctx, `
		SELECT city, count(*) FROM clients
		WHERE city IS NOT NULL AND city <> ''
		GROUP BY city
		ORDER BY count(*) DESC, city ASC
		LIMIT ?`, topCities)
	if err != nil {
		return model.ClientStats{}, fmt.Errorf("client stats by city: %w", err)
	}

	return st, nil
}

// ReportStats counts reports overall, per status and per type.
func (s *Store) ReportStats(ctx context.Context) (model.ReportStats, error) {
	st := model.ReportStats{
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM reports`).Scan(&st.TotalReports); err != nil {
		return model.ReportStats{}, fmt.Errorf("report stats: %w", mapError(err))
	}

	byStatus, err := s.groupCounts(ctx, `SELECT status, count(*) FROM reports GROUP BY status`)
	if err != nil {
		return model.ReportStats{}, fmt.Errorf("report stats by status: %w", err)
	}

	for _, e := range byStatus {
		st.ByStatus[e.Key] = e.Count
	}

	byType, err := s.groupCounts(ctx, `SELECT report_type, count(*) FROM reports GROUP BY report_type`)
	if err != nil {
		return model.ReportStats{}, fmt.Errorf("report stats by type: %w", err)
	}

	for _, e := range byType {
		st.ByType[e.Key] = e.Count
	}

	return st, nil
}

func (s *Store) groupCounts(ctx context.Context, query string, args ...any) ([]model.CountEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.CountEntry, 0)

	for rows.Next() {
		var e model.CountEntry
		if err := rows.Scan(&e.Key, &e.Count); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
