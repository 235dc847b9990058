// Package domain defines the core types of the force alignment ledger:
// transactions, effects, and per-character ledger state.
//
// A character's alignment balance is the sum of the signed deltas in its
// transaction log. Domain functions here are pure; persistence and
// mutation ordering live in the ledger and service packages.
package domain
