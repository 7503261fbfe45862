package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/mkaeder/wordlemax/game"
	"github.com/mkaeder/wordlemax/solver"
	"github.com/mkaeder/wordlemax/words"
)

type config struct {
	list     []solver.Word
	first    string
	workers  int
	progress bool
	log      zerolog.Logger
}

func loadConfig(cmd *cli.Command) (config, error) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if cmd.Bool("verbose") {
		log = log.Level(zerolog.DebugLevel)
	}

	var list []solver.Word
	var err error
	if path := cmd.String("words"); path != "" {
		list, err = words.LoadFile(path)
		if err != nil {
			return config{}, err
		}
		log.Debug().Str("path", path).Int("words", len(list)).Msg("loaded word list")
	} else {
		list = words.Default()
		log.Debug().Int("words", len(list)).Msg("using embedded word list")
	}
	if count := int(cmd.Int("count")); count > 0 && count < len(list) {
		list = list[:count]
	}
	if len(list) == 0 {
		return config{}, fmt.Errorf("word list is empty")
	}

	first := strings.ToLower(cmd.String("first"))
	if first != "" && !words.Contains(list, solver.Word(first)) {
		return config{}, fmt.Errorf("first word %q not in word list", first)
	}

	workers := int(cmd.Int("workers"))
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return config{
		list:     list,
		first:    first,
		workers:  workers,
		progress: cmd.Bool("progress"),
		log:      log,
	}, nil
}

// progressHook renders the selector's progress hook as a terminal bar.
// The returned finish func clears the bar before regular output resumes.
func progressHook(cfg config, total int) (solver.Progress, func()) {
	if !cfg.progress {
		return nil, func() {}
	}
	bar := progressbar.Default(int64(total), "scoring guesses")
	hook := func(scored, _ int) {
		_ = bar.Set(scored)
	}
	return hook, func() { _ = bar.Finish() }
}

func recommend(cfg config, s *game.Session) (solver.Word, int, error) {
	hook, finish := progressHook(cfg, len(cfg.list))
	defer finish()
	start := time.Now()
	guess, score, err := s.Recommend(hook)
	if err != nil {
		return "", 0, err
	}
	cfg.log.Debug().
		Dur("took", time.Since(start)).
		Int("candidates", s.Remaining()).
		Int("worst_case", score).
		Msg("selected guess")
	return guess, score, nil
}

func prompt(scanner *bufio.Scanner, label string) (string, error) {
	fmt.Print(label)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed")
	}
	return scanner.Text(), nil
}

func play(cfg config) error {
	s := game.NewSession(cfg.list, cfg.list)
	s.SetWorkers(cfg.workers)
	scanner := bufio.NewScanner(os.Stdin)

	for round := 1; ; round++ {
		if round == 1 && cfg.first != "" {
			fmt.Printf("Round %d: try %s (preset opening)\n", round, strings.ToUpper(cfg.first))
		} else {
			guess, score, err := recommend(cfg, s)
			if err != nil {
				return err
			}
			fmt.Printf("Round %d: try %s, leaving at worst %d of %d candidates\n",
				round, strings.ToUpper(string(guess)), score, s.Remaining())
		}

		green, err := prompt(scanner, "Green letters, _ for blanks:  ")
		if err != nil {
			return err
		}
		yellow, err := prompt(scanner, "Yellow letters, _ for blanks: ")
		if err != nil {
			return err
		}
		gray, err := prompt(scanner, "Gray letters, _ for blanks:   ")
		if err != nil {
			return err
		}

		fb, err := game.ParseMarks(green, yellow, gray, s.WordLen())
		if err != nil {
			fmt.Println("Bad marks:", err)
			round--
			continue
		}
		remaining, err := s.ApplyFeedback(fb)
		if err != nil {
			return err
		}
		if answer, ok := s.Solved(); ok {
			fmt.Println("The word is:", strings.ToUpper(string(answer)))
			return nil
		}
		if s.Impossible() {
			fmt.Println("The puzzle is impossible! Perhaps a mark was entered incorrectly?")
			return cli.Exit("no candidates remain", 1)
		}
		fmt.Printf("%d candidates remain\n", remaining)
	}
}

func next(cfg config, args []string) error {
	s := game.NewSession(cfg.list, cfg.list)
	s.SetWorkers(cfg.workers)
	for i := 0; i < len(args); i += 3 {
		fb, err := game.ParseMarks(args[i], args[i+1], args[i+2], s.WordLen())
		if err != nil {
			return fmt.Errorf("round %d: %w", i/3+1, err)
		}
		if _, err := s.ApplyFeedback(fb); err != nil {
			return err
		}
	}
	if s.Impossible() {
		return cli.Exit("the puzzle is impossible: no candidates remain", 1)
	}
	if answer, ok := s.Solved(); ok {
		fmt.Println("solved:", answer)
		return nil
	}
	guess, score, err := recommend(cfg, s)
	if err != nil {
		return err
	}
	fmt.Printf("%s (worst case %d): %s\n",
		guess, score, strings.Join(solver.WordsToStrings(s.Candidates()), " "))
	return nil
}

func simulate(cfg config, rounds int, solutionArgs []string) error {
	solutions := cfg.list
	if len(solutionArgs) > 0 {
		solutions = solutions[:0:0]
		for _, arg := range solutionArgs {
			w := solver.Word(strings.ToLower(arg))
			if !words.Contains(cfg.list, w) {
				return fmt.Errorf("solution %q not in word list", arg)
			}
			solutions = append(solutions, w)
		}
	}

	byRounds := make(map[int][]solver.Word)
	losses := 0
	for i, solution := range solutions {
		guesses, solved, err := game.Simulate(cfg.list, cfg.list, solution, solver.Word(cfg.first), rounds, cfg.workers)
		if err != nil {
			return err
		}
		fmt.Printf("%d/%d %s: %s\n", i+1, len(solutions), solution,
			strings.Join(solver.WordsToStrings(guesses), " "))
		if solved {
			byRounds[len(guesses)] = append(byRounds[len(guesses)], solution)
		} else {
			losses++
			cfg.log.Warn().Str("solution", string(solution)).Msg("not solved within round limit")
		}
	}

	fmt.Println("---------------------")
	keys := make([]int, 0, len(byRounds))
	for k := range byRounds {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, numGuesses := range keys {
		fmt.Printf("%d guesses: %d games\n", numGuesses, len(byRounds[numGuesses]))
	}
	if losses > 0 {
		fmt.Printf("unsolved: %d games\n", losses)
	}
	return nil
}

func rankFirst(cfg config, top int) error {
	type wordScore struct {
		word  solver.Word
		score int
	}
	hook, finish := progressHook(cfg, len(cfg.list))
	scores := make([]wordScore, 0, len(cfg.list))
	for i, guess := range cfg.list {
		score, err := solver.ScoreGuess(cfg.list, guess, solver.NoBound())
		if err != nil {
			return err
		}
		scores = append(scores, wordScore{guess, score})
		if hook != nil {
			hook(i+1, len(cfg.list))
		}
	}
	finish()
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score < scores[j].score
	})
	if top > len(scores) {
		top = len(scores)
	}
	for _, ws := range scores[:top] {
		fmt.Println(ws.word, ws.score)
	}
	return nil
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func withProfile(cmd *cli.Command, action func() error) error {
	if cmd.Bool("profile") {
		stop, err := cpuProfile()
		if err != nil {
			return err
		}
		defer stop()
	}
	return action()
}

func main() {
	// defaults may live in a .env file next to the binary
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "wordlemax",
		Usage: "recommend Wordle guesses that minimize the worst-case candidate count",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "word list file, one word per line (default: embedded list)",
				Sources: cli.EnvVars("WORDLEMAX_WORDS"),
			},
			&cli.StringFlag{
				Name:    "first",
				Aliases: []string{"f"},
				Usage:   "opening word to play without searching",
				Sources: cli.EnvVars("WORDLEMAX_FIRST"),
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "limit the word list to the first N words, 0 is all",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines for the guess search, 0 is one per CPU",
			},
			&cli.BoolFlag{
				Name:    "progress",
				Aliases: []string{"p"},
				Usage:   "show a progress bar while scoring guesses",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log timings and candidate counts",
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "write cpu.prof for analysis",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "interactive rounds: get a suggestion, enter the green/yellow/gray marks",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return withProfile(cmd, func() error { return play(cfg) })
				},
			},
			{
				Name:      "next",
				Usage:     "one-shot recommendation from mark triples: [green yellow gray]...",
				ArgsUsage: "[green yellow gray]...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%3 != 0 {
						return cli.Exit("arguments must be triples of green yellow gray mark strings", 1)
					}
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return withProfile(cmd, func() error { return next(cfg, cmd.Args().Slice()) })
				},
			},
			{
				Name:      "sim",
				Usage:     "self-play against the given solutions, or every word when none are given",
				ArgsUsage: "[solution]...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "rounds",
						Value: 6,
						Usage: "maximum rounds per game",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return withProfile(cmd, func() error {
						return simulate(cfg, int(cmd.Int("rounds")), cmd.Args().Slice())
					})
				},
			},
			{
				Name:  "first",
				Usage: "rank opening guesses by worst-case candidates remaining",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Value: 20,
						Usage: "how many openings to print",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return withProfile(cmd, func() error {
						return rankFirst(cfg, int(cmd.Int("top")))
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "wordlemax:", err)
		os.Exit(1)
	}
}
