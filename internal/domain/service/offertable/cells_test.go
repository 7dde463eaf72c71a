package offertable_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/service/offertable"
	"lotmarket/internal/domain/value"
)

func TestParseQty(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "Plain", input: "2", want: intPtr(2)},
		{name: "Garbage around number", input: "~5 units", want: intPtr(5)},
		{name: "Rounds up", input: "2.5", want: intPtr(3)},
		{name: "Rounds down", input: "7.4 pcs", want: intPtr(7)},
		{name: "Thousands separator", input: "1,200", want: intPtr(1200)},
		{name: "Empty", input: "", want: nil},
		{name: "Only words", input: "all", want: nil},
		{name: "Two dots", input: "1.2.3", want: nil},
		{name: "Lone dash", input: "-", want: nil},
		{name: "Int4 upper bound", input: "2147483647", want: intPtr(2147483647)},
		{name: "Above int4", input: "3000000000", want: nil},
		{name: "Rounds past int4", input: "2147483647.5", want: nil},
		{name: "Below int4", input: "-3000000000", want: nil},
		{name: "Beyond int64", input: "99999999999999999999", want: nil},
		{name: "Wraps uint64", input: "18446744073709551617", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.want, offertable.ParseQty(tc.input))
		})
	}
}

func TestParseOfferValue(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		input      string
		wantAmount *decimal.Decimal
		wantMode   value.PricingMode
	}{
		{name: "Total with currency", input: "Total: $1,250.00", wantAmount: decPtr("1250"), wantMode: value.PricingTotalLine},
		{name: "Per unit", input: "350", wantAmount: decPtr("350"), wantMode: value.PricingPerUnit},
		{name: "Empty", input: "", wantMode: value.PricingPerUnit},
		{name: "Nbsp placeholder", input: "&nbsp;", wantMode: value.PricingPerUnit},
		{name: "Whitespace only", input: "  \t ", wantMode: value.PricingPerUnit},
		{name: "Total prefix with space", input: "TOTAL   900", wantAmount: decPtr("900"), wantMode: value.PricingTotalLine},
		{name: "Total without number keeps mode", input: "total: tbd", wantMode: value.PricingTotalLine},
		{name: "Currency suffix", input: "12.50 USD each", wantAmount: decPtr("12.5"), wantMode: value.PricingPerUnit},
		{name: "No number", input: "call me", wantMode: value.PricingPerUnit},
		{name: "Totally is not a prefix", input: "totally 5", wantAmount: decPtr("5"), wantMode: value.PricingPerUnit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := offertable.ParseOfferValue(tc.input)

			rq.Equal(tc.wantMode, got.Mode)

			if tc.wantAmount == nil {
				rq.Nil(got.Amount)
				return
			}

			rq.NotNil(got.Amount)
			rq.True(tc.wantAmount.Equal(*got.Amount), "want %s, got %s", tc.wantAmount, got.Amount)
		})
	}
}

func intPtr(v int) *int {
	return &v
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
