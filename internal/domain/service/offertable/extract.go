// Package offertable достаёт таблицу предложения из ответного письма и
// превращает её свободный текст в типизированные значения.
package offertable

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RawRow строка данных таблицы, ячейки в том виде, как их ввёл покупатель.
type RawRow struct {
	LineRefRaw string
	Qty        string
	Offer      string
}

const nbsp = "\u00a0"

// Extract возвращает строки первой таблицы, в шапке которой есть колонки
// "line ref" и "offer". Нет такой таблицы, значит nil.
func Extract(rawHTML string) []RawRow {
	for _, t := range collectTables(rawHTML) {
		if rows, ok := t.offerRows(); ok {
			return rows
		}
	}

	return nil
}

type table struct {
	rows   [][]string
	row    []string
	inRow  bool
	cell   *strings.Builder
	closed bool
}

func (t *table) startRow() {
	t.endRow()
	t.row = nil
	t.inRow = true
}

func (t *table) endRow() {
	t.endCell()

	if t.inRow {
		t.rows = append(t.rows, t.row)
	}

	t.row = nil
	t.inRow = false
}

func (t *table) startCell() {
	t.endCell()

	if !t.inRow {
		t.startRow()
	}

	t.cell = &strings.Builder{}
}

func (t *table) endCell() {
	if t.cell == nil {
		return
	}

	t.row = append(t.row, cleanCell(t.cell.String()))
	t.cell = nil
}

func (t *table) finish() {
	if t.closed {
		return
	}

	t.endRow()
	t.closed = true
}

// collectTables токенизирует документ и отдаёт таблицы в порядке открывающих
// тегов. Ячейка всегда принадлежит самой вложенной открытой таблице.
func collectTables(rawHTML string) []*table {
	var (
		all   []*table
		stack []*table
	)

	top := func() *table {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	z := html.NewTokenizer(strings.NewReader(rawHTML))

	for {
		switch z.Next() {
		case html.ErrorToken:
			for _, t := range stack {
				t.finish()
			}
			return all

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()

			switch atom.Lookup(name) {
			case atom.Table:
				t := &table{}
				all = append(all, t)
				stack = append(stack, t)
			case atom.Tr:
				if t := top(); t != nil {
					t.startRow()
				}
			case atom.Td, atom.Th:
				if t := top(); t != nil {
					t.startCell()
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()

			t := top()
			if t == nil {
				continue
			}

			switch atom.Lookup(name) {
			case atom.Table:
				t.finish()
				stack = stack[:len(stack)-1]
			case atom.Tr:
				t.endRow()
			case atom.Td, atom.Th:
				t.endCell()
			}

		case html.TextToken:
			if t := top(); t != nil && t.cell != nil {
				t.cell.Write(z.Text())
			}
		}
	}
}

func (t *table) offerRows() ([]RawRow, bool) {
	if len(t.rows) < 2 {
		return nil, false
	}

	lineRefCol, offerCol, qtyCol := -1, -1, -1

	for i, h := range t.rows[0] {
		h = strings.ToLower(h)

		// одна ячейка может нести несколько ролей: "Line Ref / Offer"
		if lineRefCol < 0 && strings.Contains(h, "line ref") {
			lineRefCol = i
		}
		if offerCol < 0 && strings.Contains(h, "offer") {
			offerCol = i
		}
		if qtyCol < 0 && strings.Contains(h, "qty") {
			qtyCol = i
		}
	}

	if lineRefCol < 0 || offerCol < 0 {
		return nil, false
	}

	rows := make([]RawRow, 0, len(t.rows)-1)

	for _, cells := range t.rows[1:] {
		rows = append(rows, RawRow{
			LineRefRaw: cellAt(cells, lineRefCol),
			Qty:        cellAt(cells, qtyCol),
			Offer:      cellAt(cells, offerCol),
		})
	}

	return rows, true
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func cleanCell(s string) string {
	s = strings.ReplaceAll(s, nbsp, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")

	return strings.TrimSpace(s)
}
