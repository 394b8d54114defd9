// Package scan applies the configured line rules to archive member text.
//
// For each line, in order: lines containing an excludes substring are
// dropped; the fixed-width timetag is stripped unless keep_timetags is set;
// lines matching an errors pattern (case-insensitive) without an exemption
// (case-sensitive) become findings, render whole-line magenta, and print
// even for members the report hides; remaining lines print only for shown
// members, with the phrase highlighting applied.
package scan
