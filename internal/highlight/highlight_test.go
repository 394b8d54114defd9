package highlight

import (
	"strings"
	"testing"
)

func TestStyle_KnownNames(t *testing.T) {
	for name := range colorNames {
		if _, err := Style(name); err != nil {
			t.Fatalf("Style(%q) returned error: %v", name, err)
		}
	}
}

func TestStyle_UnknownNameErrors(t *testing.T) {
	_, err := Style("CHARTREUSE")
	if err == nil {
		t.Fatalf("Style returned nil error, want unknown color error")
	}
	if !strings.Contains(err.Error(), "CHARTREUSE") {
		t.Fatalf("Style error = %q, want it to name the color", err.Error())
	}
}

func TestNewPhrase_UnknownColorErrors(t *testing.T) {
	if _, err := NewPhrase("PASSED", "NOT_A_COLOR"); err == nil {
		t.Fatalf("NewPhrase returned nil error, want unknown color error")
	}
}

func TestColorize_KeepsPhraseTextVisible(t *testing.T) {
	phrase, err := NewPhrase("PASSED", "GREEN")
	if err != nil {
		t.Fatalf("NewPhrase returned error: %v", err)
	}
	got := Colorize("test_a PASSED in 0.1s PASSED", []Phrase{phrase})
	if strings.Count(got, "PASSED") != 2 {
		t.Fatalf("Colorize = %q, want both PASSED occurrences kept", got)
	}
}

func TestColorize_SkipsPreColoredLines(t *testing.T) {
	line := "step \x1b[32mok\x1b[0m done"
	phrase, err := NewPhrase("done", "RED")
	if err != nil {
		t.Fatalf("NewPhrase returned error: %v", err)
	}
	if got := Colorize(line, []Phrase{phrase}); got != line {
		t.Fatalf("Colorize = %q, want pre-colored line unchanged %q", got, line)
	}
}

func TestColorize_NonePhraseIsNoOp(t *testing.T) {
	phrase, err := NewPhrase("hint:", "NONE")
	if err != nil {
		t.Fatalf("NewPhrase returned error: %v", err)
	}
	got := Colorize("hint: use --force", []Phrase{phrase})
	if got != "hint: use --force" {
		t.Fatalf("Colorize = %q, want line unchanged", got)
	}
}
