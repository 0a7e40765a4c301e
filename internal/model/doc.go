// Package model defines the data structures used throughout clientrec.
//
// These are the records exchanged between the store, the credential manager,
// the export engine and the shell. Optional text fields are plain strings:
// the store writes an empty string as SQL NULL and reads NULL back as "".
//
// # Client
//
//	type Client struct {
//	    ID        int64
//	    Name      string    // required
//	    Email     string    // required, unique
//	    Phone     string    // optional
//	    Company   string    // optional
//	    Address   string    // optional
//	    City      string    // optional
//	    Country   string    // optional
//	    CreatedAt time.Time
//	    UpdatedAt time.Time // refreshed on every mutation
//	}
//
// [ClientUpdate] carries a sparse change set: a nil field is left untouched.
//
// # Report and ReportField
//
// A [Report] belongs to a client; a [ReportField] is a free-form key/value
// attached to a report.
//
// # User
//
// [User] is the stored row including the password hash. [UserSummary] is the
// only shape that leaves the auth package.
package model
