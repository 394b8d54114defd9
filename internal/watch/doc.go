// Package watch follows a directory and renders log archives as they land.
//
// The watcher reacts to create and write events for files whose base name
// matches the configured archives glob. Browsers and CI download tools
// write large zips in many chunks, so each file gets a settle timer that
// restarts on every event; the archive is rendered only after it has been
// quiet for half a second. Render failures are diagnosed and watching
// continues, since a partially written zip may simply arrive again.
package watch
