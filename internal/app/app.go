package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"logview/internal/config"
	"logview/internal/locate"
	"logview/internal/report"
	"logview/internal/ui"
	"logview/internal/watch"
)

// Options configure a logview invocation.
type Options struct {
	Files       []string // zip archives and/or .toml config files, in order
	AutoLocate  bool     // find the newest archive via the config criteria
	Interactive bool     // page each report instead of streaming it
	Watch       bool     // follow the log directory for new archives
}

// Run executes the invocation described by opts, writing reports to stdout.
func Run(ctx context.Context, opts Options) error {
	return run(ctx, opts, os.Stdout)
}

func run(ctx context.Context, opts Options, out io.Writer) error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}

	switch {
	case opts.Watch:
		cfg, err = configFromLeadingFile(cfg, opts.Files, out)
		if err != nil {
			return err
		}
		return watch.Run(ctx, cfg, func(path string) error {
			return display(cfg, path, opts.Interactive, out)
		})

	case opts.AutoLocate:
		cfg, err = configFromLeadingFile(cfg, opts.Files, out)
		if err != nil {
			return err
		}
		logFile, err := locate.Newest(cfg)
		if err != nil {
			return err
		}
		if logFile == "" {
			fmt.Fprintln(out, "Could not find a logfile meeting criteria:")
			fmt.Fprintln(out, "  log file directory=", cfg.LogFileDirectory)
			fmt.Fprintln(out, "  archives=", cfg.Archives)
			fmt.Fprintln(out, "  contains_member=", cfg.ContainsMember)
			return nil
		}
		fmt.Fprintln(out, "log file directory=", cfg.LogFileDirectory)
		return display(cfg, logFile, opts.Interactive, out)

	default:
		if len(opts.Files) == 0 {
			return errors.New("no files given")
		}
		for _, file := range opts.Files {
			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("file %s: %w", file, err)
			}
			// A .toml argument switches the config for the files after it.
			if strings.HasSuffix(file, ".toml") {
				cfg, err = config.Load(file)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "read config from", file)
				continue
			}
			fmt.Fprintln(out, strings.Repeat("+=", 50))
			if err := display(cfg, file, opts.Interactive, out); err != nil {
				return err
			}
		}
		return nil
	}
}

// configFromLeadingFile loads the first positional file as the config when
// one is given; any further files are ignored in locate and watch modes.
func configFromLeadingFile(cfg *config.Config, files []string, out io.Writer) (*config.Config, error) {
	if len(files) == 0 {
		return cfg, nil
	}
	loaded, err := config.Load(files[0])
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "read config from", files[0])
	return loaded, nil
}

// display renders one archive, either streaming to out or through the
// interactive pager.
func display(cfg *config.Config, path string, interactive bool, out io.Writer) error {
	if !interactive {
		return report.New(cfg, out).Archive(path)
	}
	var buf strings.Builder
	if err := report.New(cfg, &buf).Archive(path); err != nil {
		return err
	}
	return ui.Run(path, buf.String())
}
