// Package conky emits the widget's command syntax. It is the vocabulary
// design units build their lines from: object macros (${cpu}, ${fs_bar},
// ${time} and friends), meters and bars with the stock dimensions, themed
// color and font changes, and the surrounding conky.config / conky.text
// document.
//
// # Lines
//
// Line joins fields into one output line and restores the default color
// and font at the end when a field changed them without clearing, so a
// design never leaks a color change into the next line.
//
// # Themes
//
// A Theme maps names like "heading" or "data" to color and font specs.
// The layout helpers (HeadingLine, NameValueLine, TimeLine and friends)
// style their output through well-known theme slots; an unset slot simply
// emits no change.
//
// # Documents
//
// Document wraps a design's lines in the full generated file: the
// conky.config Lua table assembled from the base options plus the
// Environment's geometry, then the conky.text block. Config keys keep a
// stable order so regenerating a file produces identical text.
package conky
