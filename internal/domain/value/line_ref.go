package value

import "strings"

// NormalizeLineRef переводит ref в верхний регистр и выкидывает всё кроме [A-Z0-9].
// Два ref означают одну строку, только если их нормальные формы равны.
func NormalizeLineRef(ref string) string {
	var b strings.Builder

	b.Grow(len(ref))

	for _, r := range strings.ToUpper(ref) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
