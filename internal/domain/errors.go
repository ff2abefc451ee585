package domain

import "errors"

// Rejection reasons reported for a skipped transaction. Every rejection
// is local to the transaction that caused it; none stops the run.
var ErrDuplicateID = errors.New("duplicate transaction id")
var ErrInvalidAmount = errors.New("invalid amount")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrFrozenAccount = errors.New("account is frozen")
var ErrNotFound = errors.New("transaction not found")
var ErrClientMismatch = errors.New("client mismatch")
var ErrInvalidState = errors.New("invalid deposit state")
var ErrOverflow = errors.New("amount out of range")
