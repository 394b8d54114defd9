// Package app wires configuration, location, rendering, and presentation
// into the logview invocation modes.
//
// # Modes
//
//   - default: positional files in order; a .toml file replaces the active
//     configuration for the files after it, every other file renders as an
//     archive behind a "+=" separator rule
//   - auto-locate: the first positional file, if any, is the config; the
//     archive comes from the locate package's newest-archive search, and a
//     miss prints the criteria instead of failing
//   - watch: same config convention, then the watch package renders
//     archives as they land in the log file directory
//
// The interactive flag swaps the destination: instead of streaming to
// stdout, the report renders to a buffer and the ui pager takes over.
//
// # Error Handling
//
// A missing positional file, an unreadable config, and an unknown color
// name are fatal. A locate miss and watch-mode render failures are not.
package app
