package ingest

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/lineref"
	"lotmarket/internal/domain/service/offertable"
	"lotmarket/internal/domain/value"
)

const (
	NoteMissingLineRef  = "Missing Line Ref"
	NoteUnknownLineRef  = "Line Ref not recognised"
	NoteOfferNotParsed  = "Offer not parsed"
	defaultQtyForTotals = 1
)

// ParsedRow строка таблицы с разобранными ячейками, line ref ещё не сопоставлен.
type ParsedRow struct {
	LineRefRaw string
	Qty        *int
	Offer      offertable.OfferValue
}

// ResolvedRow строка, сверенная с позициями лота или сделки.
// Notes причины, по которым строку должен посмотреть человек.
type ResolvedRow struct {
	ParsedRow
	LineRefNorm string
	LineItemID  *uuid.UUID
	Notes       []string
}

func parseRows(raw []offertable.RawRow) []ParsedRow {
	rows := make([]ParsedRow, 0, len(raw))

	for _, r := range raw {
		rows = append(rows, ParsedRow{
			LineRefRaw: strings.TrimSpace(r.LineRefRaw),
			Qty:        offertable.ParseQty(r.Qty),
			Offer:      offertable.ParseOfferValue(r.Offer),
		})
	}

	return rows
}

func resolveRows(rows []ParsedRow, idx lineref.Index) []ResolvedRow {
	resolved := make([]ResolvedRow, 0, len(rows))

	for _, r := range rows {
		row := ResolvedRow{ParsedRow: r}

		if r.LineRefRaw == "" {
			row.Notes = append(row.Notes, NoteMissingLineRef)
		} else {
			row.LineRefNorm, row.LineItemID = idx.Resolve(r.LineRefRaw)
			if row.LineItemID == nil {
				row.Notes = append(row.Notes, NoteUnknownLineRef)
			}
		}

		if r.Offer.Amount == nil {
			row.Notes = append(row.Notes, NoteOfferNotParsed)
		}

		resolved = append(resolved, row)
	}

	return resolved
}

// classify отправляет письмо на проверку, если у любой строки есть заметка
// или ни одна строка не дала сумму.
func classify(rows []ResolvedRow) value.EmailOfferStatus {
	priced := false

	for _, r := range rows {
		if len(r.Notes) > 0 {
			return value.EmailOfferNeedsReview
		}

		if r.Offer.Amount != nil {
			priced = true
		}
	}

	if !priced {
		return value.EmailOfferNeedsReview
	}

	return value.EmailOfferParsed
}

// extended цена строки: сама сумма для total_line, иначе сумма × qty,
// пустое qty считается за единицу.
func (r ResolvedRow) extended() decimal.Decimal {
	if r.Offer.Amount == nil {
		return decimal.Zero
	}

	if r.Offer.Mode == value.PricingTotalLine {
		return *r.Offer.Amount
	}

	qty := defaultQtyForTotals
	if r.Qty != nil {
		qty = *r.Qty
	}

	return r.Offer.Amount.Mul(decimal.NewFromInt(int64(qty)))
}

func (r ResolvedRow) toEmailOfferLine() entity.EmailOfferLine {
	return entity.EmailOfferLine{
		ID:          uuid.New(),
		LineRefRaw:  r.LineRefRaw,
		LineRefNorm: r.LineRefNorm,
		LineItemID:  r.LineItemID,
		Qty:         r.Qty,
		Amount:      r.Offer.Amount,
		PricingMode: r.Offer.Mode,
		Notes:       r.Notes,
	}
}

// aggregateLines оставляет строки, пригодные для распределения: с найденной
// позицией и положительной ценой строки.
func aggregateLines(rows []ResolvedRow) ([]entity.OfferLine, decimal.Decimal) {
	var (
		lines []entity.OfferLine
		total = decimal.Zero
	)

	for _, r := range rows {
		if r.LineItemID == nil {
			continue
		}

		ext := r.extended()
		if !ext.IsPositive() {
			continue
		}

		qty := defaultQtyForTotals
		if r.Qty != nil && *r.Qty > 0 {
			qty = *r.Qty
		}

		unit := *r.Offer.Amount
		if r.Offer.Mode == value.PricingTotalLine {
			unit = ext.Div(decimal.NewFromInt(int64(qty))).Round(4)
		}

		lines = append(lines, entity.OfferLine{
			ID:             uuid.New(),
			LineItemID:     *r.LineItemID,
			LineRef:        r.LineRefRaw,
			UnitPrice:      unit,
			Qty:            qty,
			ExtendedAmount: ext,
		})

		total = total.Add(ext)
	}

	return lines, total
}
