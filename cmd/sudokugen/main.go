package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "sudokugen",
		Short:         "Generate, solve, and analyze 9x9 Sudoku grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace|debug|info|warn|error")
	root.AddCommand(newGenerateCmd(), newSolveCmd(), newCountCmd(), newHintCmd())
	return root
}

// counterFor picks the uniqueness oracle / solver implementation.
func counterFor(kind string) (ports.Counter, ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		d := solver.NewDLX()
		return d, d, nil
	case "backtrack", "backtracking":
		b := solver.NewBacktracking()
		return b, b, nil
	}
	return nil, nil, fmt.Errorf("unknown counter %q (want dlx or backtrack)", kind)
}

func newGenerateCmd() *cobra.Command {
	var (
		seed         string
		givens       int
		difficulty   string
		counterKind  string
		showSolution bool
		maxAttempts  int
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := givens
			if target == 0 {
				d, err := domain.ParseDifficulty(difficulty)
				if err != nil {
					return err
				}
				target = d.TargetGivens()
			}
			counter, slv, err := counterFor(counterKind)
			if err != nil {
				return err
			}
			eng := generator.NewEngine(counter)
			eng.Masker.MaxAttempts = maxAttempts
			eng.Masker.Log = log
			svc := usecase.NewService(eng, slv, counter, validator.New(), hint.NewSingles())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			p, st, err := svc.Generate(ctx, seed, target)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"id":     p.ID,
				"seed":   p.Seed,
				"givens": p.GivenCount,
				"nodes":  st.Nodes,
				"dur":    st.Duration.Round(time.Millisecond),
			}).Info("generated puzzle")

			fmt.Fprintln(cmd.OutOrStdout(), formatGrid(p.Givens))
			if showSolution {
				fmt.Fprintln(cmd.OutOrStdout(), formatGrid(p.Solution))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "seed string; identical seeds reproduce identical puzzles")
	cmd.Flags().IntVar(&givens, "givens", 0, "target given count (>= 17); 0 uses --difficulty")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().StringVar(&counterKind, "counter", "backtrack", "uniqueness oracle: backtrack|dlx")
	cmd.Flags().BoolVar(&showSolution, "show-solution", false, "also print the solved grid")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "proposals tried per masking phase (0 = default)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall generation deadline")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var counterKind string
	cmd := &cobra.Command{
		Use:   "solve GRID",
		Short: "Solve an 81-character grid (0 or . = empty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			if ok, conf, _ := validator.New().Validate(cmd.Context(), g); !ok {
				return fmt.Errorf("grid has conflicting givens at %v", conf)
			}
			_, slv, err := counterFor(counterKind)
			if err != nil {
				return err
			}
			out, st, err := slv.Solve(cmd.Context(), g)
			if err != nil {
				return err
			}
			if ok, conf, _ := validator.New().Validate(cmd.Context(), out); !ok {
				return fmt.Errorf("solver produced conflicts at %v", conf)
			}
			log.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("solved")
			fmt.Fprintln(cmd.OutOrStdout(), formatGrid(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&counterKind, "counter", "backtrack", "solver: backtrack|dlx")
	return cmd
}

func newCountCmd() *cobra.Command {
	var counterKind string
	cmd := &cobra.Command{
		Use:   "count GRID",
		Short: "Count the exact number of completions of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			if ok, conf, _ := validator.New().Validate(cmd.Context(), g); !ok {
				return fmt.Errorf("grid has conflicting givens at %v", conf)
			}
			counter, _, err := counterFor(counterKind)
			if err != nil {
				return err
			}
			n, st, err := counter.Count(cmd.Context(), g)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Debug("counted")
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&counterKind, "counter", "backtrack", "counter: backtrack|dlx")
	return cmd
}

func newHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint GRID",
		Short: "Suggest the next naked single, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args[0])
			if err != nil {
				return err
			}
			h, ok, err := hint.NewSingles().Hint(cmd.Context(), g)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no naked single found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "r%dc%d: %s\n", h.Cell.Row+1, h.Cell.Col+1, h.Message)
			return nil
		},
	}
}
