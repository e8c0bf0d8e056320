package conky

import (
	"regexp"
	"strings"
)

// fontColorRe spots color and font changes, braced or bare, so Line can
// tell a change apart from a reset.
var fontColorRe = regexp.MustCompile(`[$]([{]?)(color|font)([^{]*[}]|\b)`)

// Line joins fields into one output line. When a field changed the color
// or font without restoring it, the matching reset macro is appended, so
// changes never leak past the end of a line.
func Line(fields ...string) string {
	changedColor := false
	changedFont := false
	for _, field := range fields {
		for _, m := range fontColorRe.FindAllStringSubmatch(field, -1) {
			changed := m[3] != "" && m[3] != "}"
			switch m[2] {
			case "color":
				changedColor = changed
			case "font":
				changedFont = changed
			}
		}
	}

	var b strings.Builder
	for _, field := range fields {
		b.WriteString(field)
	}
	if changedColor {
		b.WriteString(ColorClear())
	}
	if changedFont {
		b.WriteString(FontClear())
	}
	return b.String()
}
