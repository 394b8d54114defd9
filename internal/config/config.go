package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"logview/internal/highlight"
)

// DefaultTOML is the built-in configuration used when no file is supplied.
const DefaultTOML = `
[tool.logview]
log_file_directory = ""
archives = "logs*.zip"
contains_member = "*.txt"
do_not_scan = ["*",]
do_not_show = []
show_at_end = []
keep_timetags = false

# Exclude log lines containing any of these patterns.
excludes = [
    " remote: Counting objects: ",
    " remote: Compressing objects: ",
    " Receiving objects: ",
    " Resolving deltas: ",
]

# Entire line containing the string treated as error. Any case matches.
errors = [
    "warning",
     "error",
     "Process completed with exit code 1",
]

# Line containing the exact string is exempt from errors checking above.
error_exemptions = [
    "Evaluating continue on error",
    "hint: of your new repositories, which will suppress this warning, call:",
    "fail_ci_if_error: false",
]

# Colorize these phrases in a log line.
[tool.logview.phrases]
    " OK" = "GREEN"
    "PASSED" = "GREEN"
    "FAILED" = "RED"
    "SKIPPED" = "LIGHTYELLOW_EX"
    "hint:" =  "GREEN"
`

// Config holds the [tool.logview] table of a configuration file.
type Config struct {
	LogFileDirectory string            `toml:"log_file_directory"`
	Archives         string            `toml:"archives"`
	ContainsMember   string            `toml:"contains_member"`
	DoNotScan        []string          `toml:"do_not_scan"`
	DoNotShow        []string          `toml:"do_not_show"`
	ShowAtEnd        []string          `toml:"show_at_end"`
	KeepTimetags     bool              `toml:"keep_timetags"`
	Excludes         []string          `toml:"excludes"`
	Errors           []string          `toml:"errors"`
	ErrorExemptions  []string          `toml:"error_exemptions"`
	PhraseColors     map[string]string `toml:"phrases"`

	// Phrases is PhraseColors resolved to styles, longest phrase first.
	Phrases []highlight.Phrase `toml:"-"`
	// Source is the file the config came from, empty for the built-in.
	Source string `toml:"-"`
}

type document struct {
	Tool struct {
		Logview Config `toml:"logview"`
	} `toml:"tool"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg, err := parse([]byte(DefaultTOML), "")
	if err != nil {
		return nil, fmt.Errorf("built-in config: %w", err)
	}
	return cfg, nil
}

// Load parses the configuration file at path. A missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte, source string) (*Config, error) {
	var doc document
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return nil, fmt.Errorf("parse: %w", err)
		}
		// Unknown keys are worth a diagnostic (usually a spelling slip)
		// but should not abort the run.
		log.Warn().Str("config", sourceName(source)).
			Msgf("unknown keys in [tool.logview]:\n%s", strict.String())
		doc = document{}
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
	}

	cfg := doc.Tool.Logview
	cfg.Source = source
	if err := cfg.resolvePhrases(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePhrases() error {
	texts := make([]string, 0, len(c.PhraseColors))
	for text := range c.PhraseColors {
		texts = append(texts, text)
	}
	// Longest phrase first so an overlapping shorter phrase cannot break
	// a longer one apart, then lexical for a stable order.
	sort.Slice(texts, func(i, j int) bool {
		if len(texts[i]) != len(texts[j]) {
			return len(texts[i]) > len(texts[j])
		}
		return texts[i] < texts[j]
	})

	c.Phrases = c.Phrases[:0]
	for _, text := range texts {
		phrase, err := highlight.NewPhrase(text, c.PhraseColors[text])
		if err != nil {
			return fmt.Errorf("[tool.logview.phrases] %q: %w", text, err)
		}
		c.Phrases = append(c.Phrases, phrase)
	}
	return nil
}

func sourceName(source string) string {
	if source == "" {
		return "built-in default"
	}
	return source
}
