package model

import "sort"

// CountEntry is one row of a grouped count.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ClientStats aggregates the clients table. ByCountry and ByCity are ordered
// by descending count; ByCity holds at most ten entries.
type ClientStats struct {
	TotalClients int          `json:"total_clients"`
	ByCountry    []CountEntry `json:"clients_by_country"`
	ByCity       []CountEntry `json:"clients_by_city"`
}

// ReportStats aggregates the reports table.
type ReportStats struct {
	TotalReports int            `json:"total_reports"`
	ByStatus     map[string]int `json:"reports_by_status"`
	ByType       map[string]int `json:"reports_by_type"`
}

// SortedCounts returns m as entries ordered by key, for stable rendering.
func SortedCounts(m map[string]int) []CountEntry {
	out := make([]CountEntry, 0, len(m))
	for k, v := range m {
		out = append(out, CountEntry{Key: k, Count: v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}
