// Package service exposes the balance controller, the only entry point
// allowed to mutate a character's alignment balance, and the
// session-scoped registry that hands out one controller per character.
//
// Every mutating operation on a controller runs under that character's
// mutex, so the append-transaction-then-set-balance sequence is totally
// ordered per character. Operations on different characters do not
// block each other.
package service
