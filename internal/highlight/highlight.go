package highlight

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ansiIntroducer starts a terminal escape sequence. Lines that already
// carry one are left alone so upstream coloring survives untouched.
const ansiIntroducer = "\x1b["

// Styles reused by the scanner and the summary renderer.
var (
	Magenta = fg("5")
	Red     = fg("1")
)

// colorNames maps the configuration color vocabulary to terminal styles.
// The names follow the standard 16-color palette, with LIGHT*_EX selecting
// the bright variants. NONE and RESET render the phrase unstyled.
var colorNames = map[string]lipgloss.Style{
	"NONE":            lipgloss.NewStyle(),
	"RESET":           lipgloss.NewStyle(),
	"BLACK":           fg("0"),
	"RED":             fg("1"),
	"GREEN":           fg("2"),
	"YELLOW":          fg("3"),
	"BLUE":            fg("4"),
	"MAGENTA":         fg("5"),
	"CYAN":            fg("6"),
	"WHITE":           fg("7"),
	"LIGHTBLACK_EX":   fg("8"),
	"LIGHTRED_EX":     fg("9"),
	"LIGHTGREEN_EX":   fg("10"),
	"LIGHTYELLOW_EX":  fg("11"),
	"LIGHTBLUE_EX":    fg("12"),
	"LIGHTMAGENTA_EX": fg("13"),
	"LIGHTCYAN_EX":    fg("14"),
	"LIGHTWHITE_EX":   fg("15"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// Style resolves a configuration color name to a terminal style.
func Style(name string) (lipgloss.Style, error) {
	style, ok := colorNames[name]
	if !ok {
		return lipgloss.Style{}, fmt.Errorf("unknown color name %q", name)
	}
	return style, nil
}

// Phrase pairs a literal string with the style used to repaint it.
type Phrase struct {
	Text  string
	style lipgloss.Style
}

// NewPhrase builds a phrase from a configuration color name.
func NewPhrase(text, colorName string) (Phrase, error) {
	style, err := Style(colorName)
	if err != nil {
		return Phrase{}, err
	}
	return Phrase{Text: text, style: style}, nil
}

// StyledPhrase builds a phrase with an explicit style.
func StyledPhrase(text string, style lipgloss.Style) Phrase {
	return Phrase{Text: text, style: style}
}

// Render returns the phrase text wrapped in its style.
func (p Phrase) Render() string {
	return p.style.Render(p.Text)
}

// Colorize repaints every occurrence of each phrase in the line. A line
// that already contains an escape sequence is returned unchanged.
func Colorize(line string, phrases []Phrase) string {
	if strings.Contains(line, ansiIntroducer) {
		return line
	}
	for _, phrase := range phrases {
		line = strings.ReplaceAll(line, phrase.Text, phrase.Render())
	}
	return line
}
