package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain"
	"lotmarket/pkg/errcodes"
)

func TestAwardLineCoercion(t *testing.T) {
	rq := require.New(t)

	text := func(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

	testCases := []struct {
		name      string
		schema    awardLineSchema
		wantPrice *decimal.Decimal
		wantQty   *int
		wantExt   decimal.Decimal
	}{
		{
			name:      "Well formed",
			schema:    awardLineSchema{UnitPrice: text("12.50"), Qty: text("10"), ExtendedAmount: text("125.00")},
			wantPrice: ptr(decimal.RequireFromString("12.5")),
			wantQty:   ptr(10),
			wantExt:   decimal.NewFromInt(125),
		},
		{
			name:    "Garbage numbers",
			schema:  awardLineSchema{UnitPrice: text("NaN"), Qty: text("n/a"), ExtendedAmount: text("")},
			wantExt: decimal.Zero,
		},
		{
			name:    "Nulls",
			schema:  awardLineSchema{ExtendedAmount: text("40")},
			wantExt: decimal.NewFromInt(40),
		},
		{
			name:    "Fractional quantity rounds",
			schema:  awardLineSchema{Qty: text("2.5"), ExtendedAmount: text("5")},
			wantQty: ptr(3),
			wantExt: decimal.NewFromInt(5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := tc.schema.toDomain()

			if tc.wantPrice == nil {
				rq.Nil(got.UnitPrice)
			} else {
				rq.NotNil(got.UnitPrice)
				rq.True(tc.wantPrice.Equal(*got.UnitPrice))
			}

			rq.Equal(tc.wantQty, got.Qty)
			rq.True(tc.wantExt.Equal(got.ExtendedAmount), got.ExtendedAmount.String())
		})
	}
}

func TestWriteError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "Check violation", err: &pgconn.PgError{Code: "23514", ConstraintName: "offers_status_check"}, wantCode: string(errcodes.ConstraintViolation)},
		{name: "Unique violation", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), wantCode: string(errcodes.UniqueViolation)},
		{name: "Other", err: errors.New("connection reset"), wantCode: string(errcodes.InternalServerError)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			code, ok := domain.GetCode(writeError(tc.err, "insert"))
			rq.True(ok)
			rq.Equal(tc.wantCode, string(code))
		})
	}
}

func TestNullUUIDRoundTrip(t *testing.T) {
	rq := require.New(t)

	id := uuid.New()

	rq.Nil(uuidPtr(nullUUID(nil)))
	rq.Equal(&id, uuidPtr(nullUUID(&id)))
}

func ptr[T any](v T) *T { return &v }
