package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	base := New(CodeTransactionNotFound, "transaction not found")
	wrapped := fmt.Errorf("rollback: %w", base)

	if !errors.Is(wrapped, New(CodeTransactionNotFound, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(wrapped, New(CodeInvalidAmount, "transaction not found")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeNotFound, "load flags", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be traversable")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "domain error", err: New(CodeInvalidEffect, "bad effect"), want: CodeInvalidEffect},
		{name: "wrapped domain error", err: fmt.Errorf("outer: %w", New(CodeEmptyReason, "no reason")), want: CodeEmptyReason},
		{name: "plain error", err: errors.New("plain"), want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Fatalf("expected code %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{code: CodeInvalidAmount, want: codes.InvalidArgument},
		{code: CodeEmptyCharacterID, want: codes.InvalidArgument},
		{code: CodeTransactionNotFound, want: codes.NotFound},
		{code: CodeNotFound, want: codes.NotFound},
		{code: CodeInconsistentCastSet, want: codes.FailedPrecondition},
		{code: CodeUnknown, want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHandleErrorAttachesDetails(t *testing.T) {
	err := HandleError(WithMetadata(CodeTransactionNotFound, "no such transaction", map[string]string{
		"character_id": "char-1",
	}))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", st.Code())
	}
	if len(st.Details()) == 0 {
		t.Fatal("expected error details to be attached")
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
