// Package rfamdb reads family regions from the Rfam relational database.
//
// Production databases are MySQL (github.com/go-sql-driver/mysql); local
// copies and tests use SQLite (modernc.org/sqlite). Only the full_region
// and rfamseq tables are read, and only rows flagged significant.
package rfamdb
