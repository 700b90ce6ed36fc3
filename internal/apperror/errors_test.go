package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFromDB(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind RemoteKind
	}{
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindConstraintViolation},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), KindConstraintViolation},
		{"bad password", &pgconn.PgError{Code: "28P01"}, KindAuth},
		{"other pg error", &pgconn.PgError{Code: "42P01"}, KindUnknown},
		{"connection refused", errors.New("dial tcp: connection refused"), KindNetwork},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := FromDB("products.insert", tc.err)
			var re *RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("Expected RemoteError, got %T", err)
			}
			if re.Kind != tc.kind {
				t.Errorf("Expected kind %s, got %s", tc.kind, re.Kind)
			}
			if re.Op != "products.insert" {
				t.Errorf("Expected op products.insert, got %s", re.Op)
			}
		})
	}

	if FromDB("noop", nil) != nil {
		t.Error("Expected nil error to stay nil")
	}
}

func TestFromDB_KeepsRemoteError(t *testing.T) {
	original := NotFound("products.delete")
	if got := FromDB("other", original); got != error(original) {
		t.Errorf("Expected the original RemoteError to pass through, got %v", got)
	}
}

func TestGRPCStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", Validation("transfer.same_location", "to_location", "same"), codes.InvalidArgument},
		{"not found", NotFound("products.delete"), codes.NotFound},
		{"constraint", Remote("products.insert", KindConstraintViolation, nil), codes.AlreadyExists},
		{"network", Remote("products.list", KindNetwork, errors.New("timeout")), codes.Unavailable},
		{"plain", errors.New("boom"), codes.Internal},
		{"already status", status.Error(codes.Unauthenticated, "no"), codes.Unauthenticated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st, _ := status.FromError(GRPCStatus(tc.err))
			if st.Code() != tc.code {
				t.Errorf("Expected code %v, got %v", tc.code, st.Code())
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(fmt.Errorf("wrap: %w", NotFound("x"))) {
		t.Error("Expected wrapped not found to be detected")
	}
	if IsNotFound(Remote("x", KindNetwork, nil)) {
		t.Error("Expected network error not to be not found")
	}
	if !IsConstraint(Remote("x", KindConstraintViolation, nil)) {
		t.Error("Expected constraint violation to be detected")
	}
	if !IsValidation(Validation("c", "f", "m")) {
		t.Error("Expected validation error to be detected")
	}

	pe := &PartialFetchError{ProductID: "1", Err: sql.ErrConnDone}
	if !errors.Is(pe, sql.ErrConnDone) {
		t.Error("Expected PartialFetchError to unwrap its cause")
	}
}
