package lineref

import (
	"github.com/google/uuid"

	"lotmarket/internal/domain/value"
)

// Line всё, у чего есть line ref: позиции лота и строки сделки.
type Line struct {
	ID      uuid.UUID
	LineRef string
}

// Index сопоставляет введённые покупателем line ref в пределах лота или сделки.
type Index struct {
	byRef map[string]uuid.UUID
}

// NewIndex строит индекс один раз на контекст. Если две строки нормализуются
// в одинаковый ref, побеждает первая.
func NewIndex(lines []Line) Index {
	byRef := make(map[string]uuid.UUID, len(lines))

	for _, l := range lines {
		norm := value.NormalizeLineRef(l.LineRef)
		if norm == "" {
			continue
		}

		if _, dup := byRef[norm]; !dup {
			byRef[norm] = l.ID
		}
	}

	return Index{byRef: byRef}
}

// Resolve возвращает нормализованный ref и id строки, nil если не найден.
func (i Index) Resolve(raw string) (string, *uuid.UUID) {
	norm := value.NormalizeLineRef(raw)
	if norm == "" {
		return norm, nil
	}

	id, ok := i.byRef[norm]
	if !ok {
		return norm, nil
	}

	return norm, &id
}

func (i Index) Len() int {
	return len(i.byRef)
}
