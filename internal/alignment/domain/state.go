package domain

// LedgerState holds the persisted alignment fields for one character.
// Balance and AcknowledgedBalance are independent: the latter tracks the
// last value the player confirmed having seen.
//
// Benevolences and Corruptions are free-form labels maintained by the
// host application; the ledger passes them through untouched.
type LedgerState struct {
	Balance             int
	AcknowledgedBalance int
	Transactions        []Transaction
	PreviouslyCast      []string
	Benevolences        []string
	Corruptions         []string
}

// DefaultLedgerState returns the state a character starts with the first
// time it is observed by the controller.
func DefaultLedgerState() LedgerState {
	return LedgerState{
		Transactions:   []Transaction{},
		PreviouslyCast: []string{},
		Benevolences:   []string{},
		Corruptions:    []string{},
	}
}

// HasCast reports whether the named effect was applied before.
func HasCast(previouslyCast []string, name string) bool {
	for _, cast := range previouslyCast {
		if cast == name {
			return true
		}
	}
	return false
}

// MarkCast returns the cast set with name added. Idempotent.
func MarkCast(previouslyCast []string, name string) []string {
	for _, cast := range previouslyCast {
		if cast == name {
			return previouslyCast
		}
	}
	return append(previouslyCast, name)
}

// UnmarkCast returns the cast set with name removed, and whether it was
// present. Callers treat an absent name as an inconsistency to warn
// about, not a failure.
func UnmarkCast(previouslyCast []string, name string) ([]string, bool) {
	for i, cast := range previouslyCast {
		if cast == name {
			return append(previouslyCast[:i:i], previouslyCast[i+1:]...), true
		}
	}
	return previouslyCast, false
}
