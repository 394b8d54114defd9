package scan

import (
	"fmt"
	"io"
	"strings"

	"logview/internal/archive"
	"logview/internal/config"
	"logview/internal/highlight"
)

// Finding is one summary-worthy line discovered during a scan.
type Finding struct {
	Line   int    // 1-based line number within the member
	Member string // archive member the line came from
	Text   string // rendered line, timetag already stripped
}

// Summary formats the finding the way the error summary prints it.
func (f Finding) Summary() string {
	return fmt.Sprintf("%3d %s %s", f.Line, f.Member, f.Text)
}

// Scanner applies the configured line rules to member text.
type Scanner struct {
	cfg           *config.Config
	loweredErrors []string
}

// New builds a scanner from the configuration. The errors patterns are
// lowered once here because matching is case-insensitive.
func New(cfg *config.Config) *Scanner {
	lowered := make([]string, len(cfg.Errors))
	for i, pattern := range cfg.Errors {
		lowered[i] = strings.ToLower(pattern)
	}
	return &Scanner{cfg: cfg, loweredErrors: lowered}
}

// File scans one member's text line by line, writing rendered lines to out,
// and returns the findings. Excluded lines vanish. Summary-worthy lines are
// written whether or not the member is shown; ordinary lines only when it
// is. Each written line carries its 1-based line number.
func (s *Scanner) File(member, text string, show bool, out io.Writer) []Finding {
	var findings []Finding
	for num, line := range splitLines(text) {
		// Excludes match against the raw line, timetag included.
		if containsAny(line, s.cfg.Excludes) {
			continue
		}
		if !s.cfg.KeepTimetags && len(line) >= archive.TimetagSize {
			line = line[archive.TimetagSize:]
		}
		if s.flagsError(line) {
			rendered := highlight.Colorize(line,
				[]highlight.Phrase{highlight.StyledPhrase(line, highlight.Magenta)})
			findings = append(findings, Finding{Line: num + 1, Member: member, Text: rendered})
			fmt.Fprintf(out, "%3d %s\n", num+1, rendered)
			continue
		}
		if show {
			fmt.Fprintf(out, "%3d %s\n", num+1, highlight.Colorize(line, s.cfg.Phrases))
		}
	}
	return findings
}

// flagsError reports whether the line belongs in the summary: it contains
// an errors pattern case-insensitively and no exemption case-sensitively.
func (s *Scanner) flagsError(line string) bool {
	lowered := strings.ToLower(line)
	for _, pattern := range s.loweredErrors {
		if !strings.Contains(lowered, pattern) {
			continue
		}
		if !containsAny(line, s.cfg.ErrorExemptions) {
			return true
		}
	}
	return false
}

func containsAny(line string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(line, pattern) {
			return true
		}
	}
	return false
}

// splitLines splits like a text file reader: a trailing newline does not
// produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
