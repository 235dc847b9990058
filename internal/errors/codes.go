// Package errors provides structured error handling for the alignment ledger.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Ledger errors
	CodeTransactionNotFound  Code = "ALIGNMENT_TRANSACTION_NOT_FOUND"
	CodeEmptyCharacterID     Code = "ALIGNMENT_EMPTY_CHARACTER_ID"
	CodeInvalidAmount        Code = "ALIGNMENT_INVALID_AMOUNT"
	CodeInvalidEffect        Code = "ALIGNMENT_INVALID_EFFECT"
	CodeEmptyReason          Code = "ALIGNMENT_EMPTY_REASON"
	CodeInconsistentCastSet  Code = "ALIGNMENT_INCONSISTENT_CAST_SET"
	CodeBalanceMismatch      Code = "ALIGNMENT_BALANCE_MISMATCH"
	CodeChronologyOutOfOrder Code = "ALIGNMENT_CHRONOLOGY_OUT_OF_ORDER"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeEmptyCharacterID,
		CodeInvalidAmount,
		CodeInvalidEffect,
		CodeEmptyReason:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeInconsistentCastSet,
		CodeBalanceMismatch,
		CodeChronologyOutOfOrder:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeTransactionNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
