package lineref_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/service/lineref"
)

func TestIndexResolve(t *testing.T) {
	rq := require.New(t)

	first := uuid.MustParse("0f7c2d4e-8a11-4c3b-9a55-1d2e3f405161")
	second := uuid.MustParse("5a6b7c8d-9e0f-4a1b-8c2d-3e4f50617283")
	shadowed := uuid.MustParse("9d8c7b6a-5f4e-4d3c-8b2a-190817263544")

	idx := lineref.NewIndex([]lineref.Line{
		{ID: first, LineRef: "LN-001"},
		{ID: second, LineRef: "ln 002"},
		{ID: shadowed, LineRef: "LN001"},
		{ID: uuid.New(), LineRef: "--"},
	})

	rq.Equal(2, idx.Len())

	testCases := []struct {
		name     string
		raw      string
		wantNorm string
		wantID   *uuid.UUID
	}{
		{name: "Exact", raw: "LN-001", wantNorm: "LN001", wantID: &first},
		{name: "Different punctuation", raw: " ln.001 ", wantNorm: "LN001", wantID: &first},
		{name: "Second line", raw: "LN002", wantNorm: "LN002", wantID: &second},
		{name: "Unknown", raw: "LN-999", wantNorm: "LN999", wantID: nil},
		{name: "Blank", raw: "  ", wantNorm: "", wantID: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			norm, id := idx.Resolve(tc.raw)

			rq.Equal(tc.wantNorm, norm)
			rq.Equal(tc.wantID, id)
		})
	}
}
