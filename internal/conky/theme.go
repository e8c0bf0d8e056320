package conky

import (
	"fmt"
	"strings"
)

// Theme slot names the layout helpers style through.
const (
	SlotHeading = "heading"
	SlotLabel   = "label"
	SlotData    = "data"
	SlotTime    = "time"
	SlotDate    = "date"
)

// Theme maps names to color and font specs so designs can say "heading"
// instead of repeating hex values. Lookup is one level: a name resolves to
// its spec, anything unknown passes through as a raw spec.
type Theme struct {
	colors map[string]string
	fonts  map[string]string
}

// NewTheme creates an empty theme.
func NewTheme() *Theme {
	return &Theme{
		colors: make(map[string]string),
		fonts:  make(map[string]string),
	}
}

// SetColors merges named colors into the theme.
func (t *Theme) SetColors(colors map[string]string) *Theme {
	for name, spec := range colors {
		t.colors[name] = spec
	}
	return t
}

// SetFonts merges named fonts into the theme.
func (t *Theme) SetFonts(fonts map[string]string) *Theme {
	for name, spec := range fonts {
		t.fonts[name] = spec
	}
	return t
}

// ColorSpec resolves a theme color name to its raw spec. Unknown names
// pass through unchanged, so raw hex values work anywhere a name does.
func (t *Theme) ColorSpec(spec string) string {
	if resolved, ok := t.colors[spec]; ok {
		return resolved
	}
	return spec
}

// FontSpec resolves a theme font name to its raw spec.
func (t *Theme) FontSpec(spec string) string {
	if resolved, ok := t.fonts[spec]; ok {
		return resolved
	}
	return spec
}

// Color injects a color change (${color #XXXXXX}) for a theme name or raw
// hex spec. An empty spec emits nothing.
func (t *Theme) Color(spec string) string {
	spec = t.ColorSpec(spec)
	if spec == "" {
		return ""
	}
	return fmt.Sprintf("${color #%s}", spec)
}

// Font injects a font change (${font ...}) for a theme name or raw spec.
// An empty spec emits nothing.
func (t *Theme) Font(spec string) string {
	spec = t.FontSpec(spec)
	if spec == "" {
		return ""
	}
	return fmt.Sprintf("${font %s}", spec)
}

// slotColor injects a color change for a layout slot. Unset slots emit
// nothing instead of passing the slot name through as a spec.
func (t *Theme) slotColor(slot string) string {
	if spec, ok := t.colors[slot]; ok && spec != "" {
		return fmt.Sprintf("${color #%s}", spec)
	}
	return ""
}

// slotFont injects a font change for a layout slot.
func (t *Theme) slotFont(slot string) string {
	if spec, ok := t.fonts[slot]; ok && spec != "" {
		return fmt.Sprintf("${font %s}", spec)
	}
	return ""
}

// HeadingLine renders a section heading: the heading style, the text, and
// a rule filling the rest of the line.
func (t *Theme) HeadingLine(text string) string {
	return Line(t.slotFont(SlotHeading), t.slotColor(SlotHeading), text, " ", HorizontalRule())
}

// NameValueLine renders a label on the left and a right-aligned value,
// each in its own style.
func (t *Theme) NameValueLine(name, value string) string {
	return Line(
		t.slotFont(SlotLabel), t.slotColor(SlotLabel), name,
		Right(),
		t.slotFont(SlotData), t.slotColor(SlotData), value,
	)
}

// CenteredLine renders content centered on the line.
func (t *Theme) CenteredLine(content string) string {
	return Line(Center(), content)
}

// TripletLine renders slash-separated values centered in the data style.
func (t *Theme) TripletLine(values ...string) string {
	return Line(
		Center(),
		t.slotFont(SlotData), t.slotColor(SlotData),
		strings.Join(values, " / "),
	)
}

// TimeLine renders the large centered clock in the time style.
func (t *Theme) TimeLine(format string) string {
	return Line(t.slotFont(SlotTime), t.slotColor(SlotTime), Center(), TimeDate(format))
}

// DateLine renders the centered date in the date style.
func (t *Theme) DateLine(format string) string {
	return Line(t.slotFont(SlotDate), t.slotColor(SlotDate), Center(), TimeDate(format))
}
