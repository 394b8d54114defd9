package report

import (
	"fmt"
	"io"
	"strings"

	"logview/internal/archive"
	"logview/internal/config"
	"logview/internal/highlight"
	"logview/internal/scan"
)

const memberRule = 80

// Renderer writes archive reports to a single destination.
type Renderer struct {
	cfg *config.Config
	out io.Writer
}

// New builds a renderer for the configuration and destination.
func New(cfg *config.Config, out io.Writer) *Renderer {
	return &Renderer{cfg: cfg, out: out}
}

// Archive renders the full report for one archive: the selected members,
// the error summary, and the show-at-end replay.
func (r *Renderer) Archive(path string) error {
	a, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Fprintln(r.out, path)
	fmt.Fprintln(r.out)

	scanner := scan.New(r.cfg)
	notScanned := toSet(a.Select(r.cfg.DoNotScan))
	notPrinted := toSet(a.Select(r.cfg.DoNotShow))

	var findings []scan.Finding
	for _, member := range a.Members() {
		if notScanned[member] {
			continue
		}
		show := !notPrinted[member]
		if show {
			r.memberHeader(member)
		}
		// Hidden members still feed the summary.
		text, err := a.ReadMember(member)
		if err != nil {
			return err
		}
		findings = append(findings, scanner.File(member, text, show, r.out)...)
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)
	r.summary(findings)

	if err := r.showAtEnd(a, scanner); err != nil {
		return err
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, path, a.Timestamp())
	return nil
}

func (r *Renderer) memberHeader(member string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", memberRule))
	fmt.Fprintln(r.out, "name:", member)
	fmt.Fprintln(r.out)
}

func (r *Renderer) summary(findings []scan.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(r.out, "No errors or warnings found.")
		return
	}
	fmt.Fprintln(r.out, "------------------- errors -------------------")
	phrases := make([]highlight.Phrase, len(r.cfg.Errors))
	for i, pattern := range r.cfg.Errors {
		phrases[i] = highlight.StyledPhrase(pattern, highlight.Red)
	}
	for _, finding := range findings {
		fmt.Fprintln(r.out, highlight.Colorize(finding.Summary(), phrases))
	}
}

// showAtEnd replays the configured members in full after the summary,
// ignoring do_not_show.
func (r *Renderer) showAtEnd(a *archive.Archive, scanner *scan.Scanner) error {
	members := a.Select(r.cfg.ShowAtEnd)
	if len(members) == 0 {
		return nil
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Displaying archive members selected by 'show_at_end':")
	fmt.Fprintln(r.out)
	for _, member := range members {
		fmt.Fprintln(r.out, strings.Repeat("=", memberRule))
		fmt.Fprintln(r.out, "name:", member)
		text, err := a.ReadMember(member)
		if err != nil {
			return err
		}
		_ = scanner.File(member, text, true, r.out)
		fmt.Fprintln(r.out)
	}
	return nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
