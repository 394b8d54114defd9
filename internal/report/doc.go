// Package report renders the full terminal report for one archive.
//
// The report walks the archive members in natural order. Members selected
// by do_not_scan are skipped outright; members selected by do_not_show are
// scanned so their errors reach the summary but their ordinary lines are
// not printed. Each shown member gets a rule and a "name:" header.
//
// After the members comes the error summary: every finding with its line
// number and member name, the configured errors substrings repainted red,
// or a "No errors or warnings found." line. Members selected by
// show_at_end are then replayed in full regardless of do_not_show, and the
// report closes with the archive path and its embedded timestamp.
//
// The renderer writes to an io.Writer so the same report can stream to
// stdout or build a string for the interactive pager.
package report
