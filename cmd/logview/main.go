package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"logview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	autoLocate := flag.Bool("auto-locate", false, "locate the newest log archive using criteria from the config file")
	interactive := flag.Bool("interactive", false, "page each report in the terminal instead of streaming it")
	watchMode := flag.Bool("watch", false, "watch the configured log directory and render archives as they arrive")
	verbose := flag.Bool("verbose", false, "enable debug diagnostics on stderr")
	flag.Usage = usage
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Files:       flag.Args(),
		AutoLocate:  *autoLocate,
		Interactive: *interactive,
		Watch:       *watchMode,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "logview: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: logview [flags] FILE...\n\n"+
			"FILE arguments are zip log archives and/or a .toml config file;\n"+
			"a config file applies to the archives listed after it.\n\n"+
			"flags:\n")
	flag.PrintDefaults()
}
