package types

// Preservation controls whether a debit may take an account below its minimum balance.
type Preservation uint8

const (
	// Expendable allows the account to be emptied; a dust remainder is burned.
	Expendable Preservation = iota
	// Preserve requires the account to keep at least the minimum balance.
	Preserve
)

func (p Preservation) String() string {
	if p == Preserve {
		return "preserve"
	}
	return "expendable"
}

// Precision controls what a burn does when the balance is short.
type Precision uint8

const (
	// Exact fails unless the full amount can be burned.
	Exact Precision = iota
	// BestEffort burns as much as is available.
	BestEffort
)

// Fortitude controls whether a burn may reap an account below its minimum balance.
type Fortitude uint8

const (
	// Polite refuses to leave a non-zero remainder below the minimum balance.
	Polite Fortitude = iota
	// Force burns the dust remainder along with the requested amount.
	Force
)
