package simerrors

import "errors"

// Ledger-level errors
var (
	ErrRunNotFound    = errors.New("run not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrNoTransactions = errors.New("no transactions found for item")
	ErrNoActivity     = errors.New("no activity recorded for run")
	ErrTxNotFound     = errors.New("transaction not found")
)

// Simulation-level errors
var (
	ErrInvalidRequest = errors.New("invalid simulation request")
)
