package conky

import (
	"fmt"

	"github.com/conkygen/conkygen/internal/model"
)

// configEntry is one conky.config option. Order matters: the generated
// table must be byte-stable across runs.
type configEntry struct {
	key   string
	value any
}

// baseConfiguration holds the widget options every generated file sets,
// independent of geometry and theme.
var baseConfiguration = []configEntry{
	{"background", true},
	{"use_xft", true},
	{"xftalpha", 1},
	{"total_run_times", 0},
	{"own_window", true},
	{"own_window_type", "normal"},
	{"own_window_hints", "undecorated,below,sticky,skip_taskbar,skip_pager"},
	{"own_window_argb_visual", true},
	{"own_window_argb_value", 127},
	{"own_window_transparent", false},
	{"double_buffer", true},
	{"draw_shades", false},
	{"draw_outline", false},
	{"draw_borders", false},
	{"draw_graph_borders", true},
	{"no_buffers", true},
	{"uppercase", false},
	{"cpu_avg_samples", 2},
	{"override_utf8_locale", false},
	{"short_units", true},
	{"default_shade_color", "black"},
}

// DocumentOpts carries the design-level defaults woven into conky.config.
// Empty fields take the stock values.
type DocumentOpts struct {
	// Color is the default text color, hex without a leading '#'.
	Color string
	// ColorOutline is the default outline color.
	ColorOutline string
	// Font is the default font spec.
	Font string
}

// Document wraps a design's text lines in the complete generated file: the
// conky.config Lua table built from the base options, the Environment's
// geometry and the design defaults, a separating blank line, and the
// conky.text block. The returned slice is ready to print line by line.
func Document(geometry model.Geometry, opts DocumentOpts, textLines []string) []string {
	color := opts.Color
	if color == "" {
		color = DefaultColor
	}
	outline := opts.ColorOutline
	if outline == "" {
		outline = DefaultColorOutline
	}
	font := opts.Font
	if font == "" {
		font = DefaultFont
	}

	entries := make([]configEntry, 0, len(baseConfiguration)+10)
	entries = append(entries, baseConfiguration...)
	entries = append(entries,
		configEntry{"alignment", geometry.Placement},
		configEntry{"border_outer_margin", geometry.OuterMargin},
		configEntry{"default_color", color},
		configEntry{"default_outline_color", outline},
		configEntry{"font", font},
		configEntry{"gap_x", geometry.Gap},
		configEntry{"gap_y", geometry.Gap},
		configEntry{"update_interval", geometry.RefreshInterval},
		configEntry{"minimum_width", geometry.WidthMin},
		configEntry{"minimum_height", geometry.HeightMin},
	)

	lines := make([]string, 0, len(entries)+len(textLines)+5)
	lines = append(lines, "conky.config = {")
	for i, entry := range entries {
		suffix := ","
		if i == len(entries)-1 {
			suffix = ""
		}
		lines = append(lines, fmt.Sprintf("    %s = %s%s", entry.key, luaValue(entry.value), suffix))
	}
	lines = append(lines, "}", "")
	lines = append(lines, "conky.text = [[")
	lines = append(lines, textLines...)
	lines = append(lines, "]]")
	return lines
}

// luaValue renders one config value in Lua syntax: strings quoted,
// booleans lowercased, numbers verbatim.
func luaValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("'%s'", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}
