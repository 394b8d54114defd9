// Package ui pages a rendered report in the terminal.
//
// The pager is a Bubble Tea model wrapping a viewport over the report text.
// It exists for long CI logs: instead of scrolling thousands of lines past,
// the report renders once and the user moves through it.
//
// Key bindings:
//
//   - arrows / pgup / pgdn: scroll (viewport defaults)
//   - g / G: top / bottom
//   - ] / [: next / previous member header
//   - /: incremental search, enter to jump, n / N for next / previous match
//   - q, esc or ctrl+c: quit
//
// Search matches case-insensitively against lines with their color codes
// stripped, so a styled FAILED is still found by "failed".
package ui
