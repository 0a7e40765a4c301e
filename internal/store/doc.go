// Package store is the record store for clientrec.
//
// It keeps users, clients, reports and report fields in a single SQLite file
// opened with the pure Go modernc.org/sqlite driver. The schema is embedded
// and applied with goose when the store is opened.
//
// # Opening
//
//	st, err := store.Open(ctx, "/home/me/.config/clientrec/clientrec.db")
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//
// # Errors
//
// Lookups that find nothing return [ErrNotFound]. Unique and foreign key
// failures are reported as [ErrConstraintViolation]; foreign key failures
// also match [ErrForeignKey]. Deleting a client that still owns reports is
// refused with [ErrClientHasReports].
//
// # Optional columns
//
// Optional text columns hold NULL when the Go value is the empty string and
// read back as "".
package store
