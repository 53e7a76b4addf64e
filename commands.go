package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-helper/internal/cli"
	"github.com/robalobadob/wordle-helper/internal/config"
	"github.com/robalobadob/wordle-helper/internal/daily"
	"github.com/robalobadob/wordle-helper/internal/game"
	"github.com/robalobadob/wordle-helper/internal/session"
	"github.com/robalobadob/wordle-helper/internal/simulate"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/store"
	"github.com/robalobadob/wordle-helper/internal/words"
)

// errUsage makes run print usage and exit 2.
var errUsage = errors.New("usage")

type app struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer
}

func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "solve":
		return a.solve(args)
	case "best":
		return a.best(args)
	case "filter":
		return a.filter(args)
	case "insert":
		return a.insert(args)
	case "trim":
		return a.trim(args)
	case "compile":
		return a.compile(args)
	case "simulate":
		return a.simulate(args)
	case "stats":
		return a.stats(args)
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func (a *app) engine() *solver.Engine { return solver.NewEngine(a.cfg.Rules()) }

func (a *app) loadList() ([]solver.Word, error) {
	return words.Load(a.cfg.Words.File)
}

// openHistory returns the SQLite store, or an in-memory one when history is
// disabled.
func (a *app) openHistory(ctx context.Context) (store.Store, error) {
	if !a.cfg.History.Enabled {
		return store.NewMemoryStore(), nil
	}
	return store.OpenSQLite(ctx, a.cfg.History.DB)
}

func (a *app) record(ctx context.Context, recs ...store.Record) {
	st, err := a.openHistory(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable; not recorded")
		return
	}
	defer st.Close()
	for _, r := range recs {
		if err := st.Save(ctx, r); err != nil {
			log.Warn().Err(err).Str("id", r.ID).Msg("save history")
			return
		}
	}
	log.Debug().Int("records", len(recs)).Msg("history saved")
}

func (a *app) solve(args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	list, err := a.loadList()
	if err != nil {
		return err
	}
	s := session.New(list,
		session.WithMaxRounds(a.cfg.Session.MaxRounds),
		session.WithEngine(a.engine()))
	dict := words.NewDictionary(list)
	log.Debug().Int("words", dict.Len()).Str("rules", a.cfg.Session.Rules).Msg("solve session started")
	started := time.Now().UTC()

	err = cli.Solve(cli.NewPrompter(a.in, a.out), s, cli.SolveOptions{
		Alternatives: a.cfg.Session.Alternatives,
		Dictionary:   dict,
	})
	if errors.Is(err, cli.ErrAborted) {
		log.Info().Int("rounds", len(s.Rounds())).Msg("input closed; session not recorded")
		return nil
	}
	if err != nil {
		return err
	}

	rec := store.Record{
		ID:         game.NewID(),
		Mode:       "solve",
		Guesses:    wordStrings(s.Guesses()),
		State:      string(s.State()),
		Rules:      a.cfg.Session.Rules,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if s.State() == session.StateSolved {
		g := s.Guesses()
		rec.Secret = string(g[len(g)-1])
	}
	a.record(context.Background(), rec)
	return nil
}

func (a *app) best(args []string) error {
	fs := flag.NewFlagSet("best", flag.ContinueOnError)
	n := fs.Int("n", 1, "number of words to show")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	list, err := a.loadList()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return solver.ErrEmptyCandidateSet
	}
	for _, r := range solver.Rank(list, *n) {
		fmt.Fprintf(a.out, "%s\t%.2f\n", r.Word, r.Score)
	}
	return nil
}

// filter applies guess/pattern pairs in order and prints what is left.
func (a *app) filter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "maximum remaining words to print (0 for all)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	args = fs.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		return errUsage
	}
	list, err := a.loadList()
	if err != nil {
		return err
	}
	// every pair is applied even past the interactive round limit
	s := session.New(list,
		session.WithMaxRounds(len(args)/2),
		session.WithEngine(a.engine()))
	for i := 0; i < len(args); i += 2 {
		guess, err := solver.ParseWord(args[i])
		if err != nil {
			return err
		}
		p, err := solver.ParsePattern(args[i+1])
		if err != nil {
			return err
		}
		if _, err := s.Apply(guess, p); err != nil {
			return err
		}
		if s.State() == session.StateSolved || s.State() == session.StateExhausted {
			break
		}
	}

	switch s.State() {
	case session.StateSolved:
		fmt.Fprintln(a.out, "solved")
		return nil
	case session.StateExhausted:
		fmt.Fprintln(a.out, "no words left")
		return nil
	}
	remaining := s.Candidates()
	fmt.Fprintf(a.out, "%d potential words\n", len(remaining))
	shown := remaining
	if *limit > 0 && len(shown) > *limit {
		shown = shown[:*limit]
	}
	fmt.Fprintln(a.out, strings.Join(wordStrings(shown), " "))
	best, err := solver.Best(remaining)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "best: %s\n", best)
	return nil
}

// listFile is the word list file maintenance commands write to.
func (a *app) listFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.cfg.Words.File == "" {
		return "", errors.New("no word list file configured (set -words or WORDS_FILE)")
	}
	return a.cfg.Words.File, nil
}

func (a *app) insert(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	path, err := a.listFile(nil)
	if err != nil {
		return err
	}
	if words.FormatOf(path) == words.FormatUnknown {
		return fmt.Errorf("word list %s: %w", path, words.ErrUnknownFormat)
	}
	var (
		res   words.InsertResult
		write func() error
	)
	if words.FormatOf(path) == words.FormatBinary {
		list, err := words.Load(path)
		if err != nil {
			return err
		}
		var out []solver.Word
		out, res = words.Insert(list, args...)
		write = func() error { return words.Save(path, out) }
	} else {
		// text lists keep their comments and any other lines untouched
		lines, err := words.ReadAllLines(path)
		if err != nil {
			return err
		}
		var out []string
		out, res = words.InsertLines(lines, args...)
		write = func() error { return words.WriteText(path, out) }
	}

	if len(res.Rejected) > 0 {
		fmt.Fprintf(a.out, "Failed to insert: %s\n", strings.Join(res.Rejected, ", "))
	}
	if len(res.Inserted) == 0 {
		return nil
	}
	if err := write(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Successfully inserted: %s\n", strings.Join(res.Inserted, ", "))
	return nil
}

func (a *app) trim(args []string) error {
	if len(args) > 1 {
		return errUsage
	}
	path, err := a.listFile(args)
	if err != nil {
		return err
	}
	lines, err := words.ReadLines(path)
	if err != nil {
		return err
	}
	kept := words.Trim(lines, solver.WordLen)
	if err := words.WriteText(path, kept); err != nil {
		return err
	}
	log.Info().Str("file", path).Int("kept", len(kept)).Int("dropped", len(lines)-len(kept)).Msg("trimmed word list")
	return nil
}

func (a *app) compile(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	list, err := a.loadList()
	if err != nil {
		return err
	}
	if err := words.WriteBinary(args[0], list); err != nil {
		return err
	}
	log.Info().Str("out", args[0]).Int("words", len(list)).Msg("compiled word list")
	return nil
}

func (a *app) simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	all := fs.Bool("all", false, "play every word in the list")
	today := fs.Bool("daily", false, "play today's daily word")
	opener := fs.String("opener", a.cfg.Session.Opener, "fixed first guess")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	list, err := a.loadList()
	if err != nil {
		return err
	}

	var secrets []solver.Word
	switch {
	case *all:
		secrets = list
	case *today:
		w, ok := daily.Secret(time.Now(), a.cfg.Daily.Salt, list)
		if !ok {
			return solver.ErrEmptyCandidateSet
		}
		secrets = []solver.Word{w}
	default:
		if secrets, err = solver.ParseWords(fs.Args()...); err != nil {
			return err
		}
	}
	if len(secrets) == 0 {
		return errUsage
	}

	opts := simulate.Options{MaxRounds: a.cfg.Session.MaxRounds, Engine: a.engine()}
	if *opener != "" {
		if opts.Opener, err = solver.ParseWord(*opener); err != nil {
			return fmt.Errorf("opener: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, sum, err := simulate.Run(ctx, list, secrets, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	recs := make([]store.Record, 0, len(results))
	for _, r := range results {
		recs = append(recs, store.Record{
			ID:         r.GameID,
			Mode:       "simulate",
			Secret:     string(r.Secret),
			Guesses:    wordStrings(r.Guesses),
			State:      string(r.State),
			Rules:      a.cfg.Session.Rules,
			StartedAt:  r.StartedAt,
			FinishedAt: r.FinishedAt,
		})
	}
	if len(secrets) == 1 && len(results) == 1 {
		fmt.Fprintf(a.out, "%s: %s (%s)\n", results[0].Secret, strings.Join(recs[0].Guesses, " "), results[0].State)
	}
	printSummary(a.out, sum)
	a.record(context.Background(), recs...)
	if err != nil {
		log.Warn().Int("played", len(results)).Msg("simulation interrupted")
	}
	return nil
}

func printSummary(w io.Writer, sum simulate.Summary) {
	fmt.Fprintf(w, "played %d, solved %d", sum.Played, sum.Solved)
	if sum.Solved > 0 {
		fmt.Fprintf(w, ", mean %.2f rounds", sum.MeanRounds)
	}
	fmt.Fprintln(w)
	printDistribution(w, sum.Histogram)
	if len(sum.Unsolved) > 0 {
		fmt.Fprintf(w, "unsolved: %s\n", strings.Join(wordStrings(sum.Unsolved), " "))
	}
}

func printDistribution(w io.Writer, dist map[int]int) {
	rounds := make([]int, 0, len(dist))
	for r := range dist {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	for _, r := range rounds {
		fmt.Fprintf(w, "  %d: %d\n", r, dist[r])
	}
}

func (a *app) stats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	recent := fs.Int("recent", 5, "number of recent sessions to list")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if !a.cfg.History.Enabled {
		return errors.New("history is disabled")
	}
	ctx := context.Background()
	st, err := a.openHistory(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := st.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "played %d, solved %d, streak %d (max %d)\n",
		sum.Played, sum.Solved, sum.CurrentStreak, sum.MaxStreak)
	printDistribution(a.out, sum.Distribution)

	if *recent <= 0 {
		return nil
	}
	recs, err := st.Recent(ctx, *recent)
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Fprintf(a.out, "%s  %-8s %-9s %s\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04"), r.Mode, r.State, strings.Join(r.Guesses, " "))
	}
	return nil
}

func wordStrings(ws []solver.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}
