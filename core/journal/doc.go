// Package journal keeps an audit trail of mutating storage operations.
//
// Entries are written to the journal_entries table through GORM when the
// database is enabled. Nop is used otherwise. Writing an entry never decides
// the outcome of the storage operation itself; callers log failures and move on.
package journal
