package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strings"
)

// TimetagSize is the width of the timestamp prefix on every log line,
// e.g. "2021-11-14T02:31:28.6752380Z ".
const TimetagSize = 28

// Archive is an open zip log archive with its members in natural order.
type Archive struct {
	path      string
	reader    *zip.ReadCloser
	members   []string
	timestamp string
}

// Open reads the member list of the zip at path, orders it naturally, and
// captures the timetag from the first line of the first member.
func Open(zipPath string) (*Archive, error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var members []string
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		members = append(members, file.Name)
	}
	if len(members) == 0 {
		reader.Close()
		return nil, fmt.Errorf("archive %s has no file members", zipPath)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return sortKey(members[i]) < sortKey(members[j])
	})

	a := &Archive{path: zipPath, reader: reader, members: members}

	// Every line in every member starts with a timetag; the one on the
	// first line of the first ordered member stands for the whole archive.
	first, err := a.ReadMember(members[0])
	if err != nil {
		reader.Close()
		return nil, err
	}
	if len(first) < TimetagSize {
		a.timestamp = first
	} else {
		a.timestamp = first[:TimetagSize]
	}
	return a, nil
}

// Close releases the underlying zip reader.
func (a *Archive) Close() error {
	return a.reader.Close()
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Members returns the member names in natural order.
func (a *Archive) Members() []string {
	return a.members
}

// Timestamp returns the timetag captured from the first ordered member.
func (a *Archive) Timestamp() string {
	return a.timestamp
}

// ReadMember returns the text of one member.
func (a *Archive) ReadMember(name string) (string, error) {
	file, err := a.reader.Open(name)
	if err != nil {
		return "", fmt.Errorf("open member %s: %w", name, err)
	}
	defer file.Close()

	text, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read member %s: %w", name, err)
	}
	return string(text), nil
}

// Select returns the members matching any of the patterns. A member matches
// only when it has the same number of slash-separated parts as the pattern
// and every part matches fnmatch-style, so "*.txt" never reaches into a
// directory. The result is ordered pattern by pattern, members in natural
// order within each.
func (a *Archive) Select(patterns []string) []string {
	var matches []string
	for _, pattern := range patterns {
		patternParts := strings.Split(pattern, "/")
		for _, member := range a.members {
			if matchParts(strings.Split(member, "/"), patternParts) {
				matches = append(matches, member)
			}
		}
	}
	return matches
}

func matchParts(memberParts, patternParts []string) bool {
	if len(memberParts) != len(patternParts) {
		return false
	}
	for i, part := range memberParts {
		ok, err := path.Match(patternParts[i], part)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// sortKey normalizes every digit run to a fixed width so member names
// order numerically: "file2.txt" sorts before "file11.txt".
func sortKey(name string) string {
	return digitRun.ReplaceAllStringFunc(name, func(digits string) string {
		if len(digits) >= 12 {
			return digits
		}
		return strings.Repeat("0", 12-len(digits)) + digits
	})
}
