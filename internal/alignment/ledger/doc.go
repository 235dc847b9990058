// Package ledger maintains the per-character transaction log that the
// alignment balance derives from.
//
// The log is append-mostly: entries are only ever removed by rollback,
// which deletes the record outright rather than appending a compensating
// entry. Timestamps double as transaction identifiers and are assigned
// on append, strictly increasing per character.
package ledger
