package offertable

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"lotmarket/internal/domain/value"
)

// OfferValue разобранная ячейка предложения. Amount nil, если число не
// прочиталось; Mode определяется и без суммы.
type OfferValue struct {
	Amount *decimal.Decimal
	Mode   value.PricingMode
}

var (
	maxQty = decimal.NewFromInt(math.MaxInt32)
	minQty = decimal.NewFromInt(-math.MaxInt32)
)

// ParseQty читает количество как получится: "~5 units" это 5. Пустая или
// нечисловая строка даёт nil, дроби округляются до целого.
// Значения за пределами int4 колонок qty тоже nil.
func ParseQty(s string) *int {
	d, ok := parseNumber(s)
	if !ok {
		return nil
	}

	d = d.Round(0)
	if d.GreaterThan(maxQty) || d.LessThan(minQty) {
		return nil
	}

	qty := int(d.IntPart())

	return &qty
}

// ParseOfferValue читает ячейку предложения. Префикс "Total:" или "Total "
// означает цену за всю строку, а не за единицу.
func ParseOfferValue(s string) OfferValue {
	text := strings.Join(strings.Fields(s), " ")

	result := OfferValue{Mode: value.PricingPerUnit}

	if text == "" || text == "&nbsp;" {
		return result
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "total:") || strings.HasPrefix(lower, "total ") {
		result.Mode = value.PricingTotalLine
		text = text[len("total:"):]
	}

	if d, ok := parseNumber(text); ok {
		result.Amount = &d
	}

	return result
}

func parseNumber(s string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	if cleaned == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}
