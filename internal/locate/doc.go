// Package locate finds the newest qualifying log archive in a directory.
//
// Candidates come from globbing the configured log_file_directory with the
// archives pattern. Each candidate is opened and kept only when it contains
// a member matching contains_member, which weeds out zips from unrelated
// workflows. The newest candidate is the one whose embedded timetag sorts
// greatest; the timetag is ISO 8601 so string order is time order. Finding
// nothing is a normal outcome, not an error.
package locate
