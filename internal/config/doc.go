// Package config loads and parses logview configuration files.
//
// # Overview
//
// Configuration lives in a TOML file under the [tool.logview] table, so the
// same content can sit inside a project's pyproject-style tool table or in a
// standalone file. A complete default configuration is compiled in; runs
// without a config file use it unchanged.
//
// # Keys
//
//   - log_file_directory: directory searched by auto-locate and watch modes
//   - archives: filename glob for candidate archives in that directory
//   - contains_member: a member pattern an archive must contain to qualify
//   - do_not_scan: member patterns skipped entirely
//   - do_not_show: member patterns scanned for the summary but not printed
//   - show_at_end: member patterns replayed in full after the summary
//   - keep_timetags: keep the fixed-width timestamp prefix on printed lines
//   - excludes: substrings that drop a log line outright
//   - errors: case-insensitive substrings that mark a line for the summary
//   - error_exemptions: case-sensitive substrings that veto an errors match
//   - [tool.logview.phrases]: phrase -> color name highlighting table
//
// # Error Handling
//
// A missing config file is an error; the caller decides whether to fall
// back to the default. Unknown keys produce a warning diagnostic and the
// file is then decoded leniently, so a typo cannot silently change
// behavior but also cannot abort a run. An unknown color name in the
// phrases table is an error because the highlighting the user asked for
// cannot be produced.
//
// # Phrase Order
//
// TOML tables decode into an unordered map, so resolved phrases are sorted
// longest first with a lexical tie-break. Highlighting applies phrase by
// phrase, and a shorter phrase must not split a longer one it overlaps.
package config
