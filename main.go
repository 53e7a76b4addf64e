// main.go
//
// Entry point for wordle-helper.
// Responsibilities:
//   - Load configuration (.env, optional TOML file, environment, flags).
//   - Configure zerolog.
//   - Dispatch to a subcommand (see usage).

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/config"
)

const usageText = `Helps you solve the daily five-letter word puzzle.
Good starting words: irate adieu steak tread table audio.

Usage:
  wordle-helper [flags] <command> [args]

Commands:
  solve                          interactive solver
  best                           best guesses from the word list
  filter <guess> <colors>...     apply rounds non-interactively (colors like gybbg)
  insert <word>...               add words to the word list file
  trim [file]                    keep only five-letter words in a list file
  compile <out.bin>              write the word list in compiled form
  simulate [secret...]           play the solver against known secrets
  stats                          history summary

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wordle-helper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file (default $CONFIG_FILE)")
	wordsFile := fs.String("words", "", "word list file, .txt or .bin (default $WORDS_FILE or the built-in list)")
	rules := fs.String("rules", "", "duplicate letter rules: general or pairwise")
	maxRounds := fs.Int("max-rounds", 0, "rounds per session")
	historyDB := fs.String("db", "", "history database path")
	noHistory := fs.Bool("no-history", false, "keep session history in memory only")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// provisional until the config is resolved; Load itself logs
	setupLogging(stderr, firstNonEmpty(*logLevel, os.Getenv("LOG_LEVEL")))
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	if *wordsFile != "" {
		cfg.Words.File = *wordsFile
	}
	if *rules != "" {
		cfg.Session.Rules = *rules
	}
	if *maxRounds > 0 {
		cfg.Session.MaxRounds = *maxRounds
	}
	if *historyDB != "" {
		cfg.History.DB = *historyDB
	}
	if *noHistory {
		cfg.History.Enabled = false
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	setupLogging(stderr, cfg.Log.Level)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	a := &app{cfg: cfg, in: stdin, out: stdout}
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	if err := a.dispatch(cmd, rest); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		return 1
	}
	return 0
}

// setupLogging sends human-readable logs to w at the given level.
func setupLogging(w io.Writer, level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
