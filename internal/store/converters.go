package store

import "database/sql"

// nullString stores "" as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// derefString reads NULL back as "".
func derefString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}

	return ns.String
}
