package blackjack

import "errors"

// ErrNoOutcome is returned when no outcome matches the final totals.
// The outcome table is exhaustive, so this indicates a bug.
var ErrNoOutcome = errors.New("no outcome matches the final totals")
