// Package services holds the server use cases. Each service owns a
// *sql.DB and a repository manager and binds repositories to either the
// connection or a transaction as the operation requires.
package services
