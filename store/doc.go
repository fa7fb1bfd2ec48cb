// Package store persists serialized scanner.State snapshots so a host can
// resume an incremental parse of a document without rescanning it from
// byte zero. It mirrors the database abstraction sqlcode's dbintf.go/
// dbops.go use: a minimal DB interface satisfied by *sql.DB, with driver
// detection branching between PostgreSQL and SQL Server dialects.
package store
