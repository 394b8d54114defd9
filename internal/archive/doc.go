// Package archive reads zip log archives and answers ordering and selection
// questions about their members.
//
// # Ordering
//
// GitHub Actions names job and step logs with numeric prefixes ("2_Set up
// job.txt", "11_Complete job.txt"), and plain byte ordering puts 11 before
// 2. Members are therefore ordered by a key that pads every digit run to a
// fixed width, which yields the numeric order a person expects anywhere a
// number appears in the name. Ties fall back to the original byte order.
//
// # Selection
//
// Select matches members against fnmatch-style patterns part by part.
// Slashes are significant: a pattern and a member must split into the same
// number of parts, and each part must match. "*" therefore selects only
// top-level members, and "dir/*" the files directly inside dir.
//
// # Timetag
//
// Every line of every member starts with a fixed-width timestamp (the
// timetag, 28 bytes). The timetag of the first line of the first ordered
// member is exposed as the archive timestamp, which is what the locator
// compares to find the newest archive in a directory.
package archive
