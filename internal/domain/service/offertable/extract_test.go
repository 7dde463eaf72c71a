package offertable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/service/offertable"
)

func TestExtract(t *testing.T) {
	rq := require.New(t)

	const offerGrid = `<table><tr><th>Line Ref</th><th>Qty</th><th>Offer</th></tr>` +
		`<tr><td>LN-001</td><td>2</td><td>150</td></tr>` +
		`<tr><td><b>LN-002</b></td><td>&nbsp;</td><td>Total: $1,250.00</td></tr></table>`

	testCases := []struct {
		name  string
		input string
		want  []offertable.RawRow
	}{
		{
			name:  "Single offer table",
			input: offerGrid,
			want: []offertable.RawRow{
				{LineRefRaw: "LN-001", Qty: "2", Offer: "150"},
				{LineRefRaw: "LN-002", Qty: "", Offer: "Total: $1,250.00"},
			},
		},
		{
			name: "Layout tables around the grid",
			input: `<table><tr><td>Hi, please see below</td></tr></table>` + offerGrid +
				`<table><tr><td>Line Ref</td><td>Offer</td></tr><tr><td>X</td><td>1</td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "LN-001", Qty: "2", Offer: "150"},
				{LineRefRaw: "LN-002", Qty: "", Offer: "Total: $1,250.00"},
			},
		},
		{
			name: "Header without data rows is skipped",
			input: `<table><tr><th>Line Ref</th><th>Offer</th></tr></table>` +
				`<table><tr><td>LINE REF #</td><td>Your offer (USD)</td></tr><tr><td>A1</td><td>10</td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "A1", Qty: "", Offer: "10"},
			},
		},
		{
			name:  "Offer column before line ref, qty missing",
			input: `<table><tr><td>Offer</td><td>Line Ref</td></tr><tr><td>99</td><td>ln 7</td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "ln 7", Qty: "", Offer: "99"},
			},
		},
		{
			name:  "Short data row",
			input: `<table><tr><th>Line Ref</th><th>Qty</th><th>Offer</th></tr><tr><td>LN-9</td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "LN-9", Qty: "", Offer: ""},
			},
		},
		{
			name:  "Combined line ref and offer header",
			input: `<table><tr><th>Line Ref / Offer</th><th>Qty</th></tr><tr><td>LN-4 200</td><td>1</td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "LN-4 200", Qty: "1", Offer: "LN-4 200"},
			},
		},
		{
			name: "Unclosed cells and rows",
			input: `<table><tr><th>Line Ref<th>Qty<th>Offer` +
				`<tr><td>LN-001<td>3<td>40`,
			want: []offertable.RawRow{
				{LineRefRaw: "LN-001", Qty: "3", Offer: "40"},
			},
		},
		{
			name: "Nested layout table",
			input: `<table><tr><td><table><tr><th>Line Ref</th><th>Offer</th></tr>` +
				`<tr><td>N-1</td><td>5</td></tr></table></td></tr></table>`,
			want: []offertable.RawRow{
				{LineRefRaw: "N-1", Qty: "", Offer: "5"},
			},
		},
		{
			name:  "No qualifying table",
			input: `<p>Thanks, we will pass on this lot.</p><table><tr><td>Regards</td></tr></table>`,
			want:  nil,
		},
		{
			name:  "Plain text",
			input: "Line Ref LN-001 Offer 150",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.want, offertable.Extract(tc.input))
		})
	}
}
