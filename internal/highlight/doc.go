// Package highlight maps configuration color names to terminal styles and
// repaints configured phrases inside log lines.
//
// # Color Names
//
// The configuration refers to colors by name (GREEN, RED, LIGHTYELLOW_EX,
// ...). The names cover the standard 16-color terminal palette: the eight
// base colors plus their bright variants under the LIGHT*_EX suffix. Two
// pseudo names, NONE and RESET, leave the phrase unstyled so a phrase can be
// listed without changing its appearance.
//
// Styles are built with lipgloss, which degrades to plain text when stdout
// is not a terminal, so reports stay clean when piped to a file.
//
// # Phrase Repainting
//
// Colorize replaces every occurrence of each phrase with its styled form.
// One guard applies: a line that already contains an ANSI escape introducer
// is returned unchanged. CI steps frequently emit their own coloring, and
// splicing new sequences into a pre-colored line garbles both.
//
// # Error Handling
//
// Style and NewPhrase return an error naming the offending color when the
// name is not in the table. Callers treat that as fatal since it means the
// configuration file needs fixing.
package highlight
