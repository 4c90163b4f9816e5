// Command puzzlefeed generates puzzles and drives the daily post from the
// shell, sharing the engine and config with the server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/puzzlefeed/internal/adapters/social"
	"svw.info/puzzlefeed/internal/config"
	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/generator"
	"svw.info/puzzlefeed/internal/hint"
	"svw.info/puzzlefeed/internal/infrastructure/storage"
	"svw.info/puzzlefeed/internal/ports"
	"svw.info/puzzlefeed/internal/scheduler"
	"svw.info/puzzlefeed/internal/solver"
	"svw.info/puzzlefeed/internal/usecase"
	"svw.info/puzzlefeed/internal/validator"
)

func newService(dataDir string) *usecase.Service {
	s := solver.NewBacktrackingSolver()
	return usecase.NewService(
		s,
		generator.NewUniqueGenerator(s),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(dataDir),
	)
}

func main() {
	var (
		difficulty   string
		seed         int64
		count        int
		showSolution bool
		dataDir      string
		configPath   string
	)

	root := &cobra.Command{
		Use:           "puzzlefeed",
		Short:         "Generate and publish daily Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate puzzles and print them as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(dataDir)
			for i := 0; i < count; i++ {
				s := seed
				if s != 0 {
					s += int64(i)
				}
				p, st, err := svc.NewPuzzle(cmd.Context(), difficulty, s)
				if err != nil {
					return err
				}
				fmt.Printf("%s puzzle (seed %d, %d blanks, %d nodes)\n\n",
					p.Difficulty, p.Seed, p.Puzzle.EmptyCount(), st.Nodes)
				fmt.Println(social.RenderText(&p.Puzzle))
				if showSolution {
					fmt.Println("Solution:")
					fmt.Println(social.RenderText(&p.Solution))
				}
			}
			return nil
		},
	}
	generate.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard")
	generate.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible output (0 = random)")
	generate.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles")
	generate.Flags().BoolVar(&showSolution, "solution", false, "also print the solution")

	daily := &cobra.Command{
		Use:   "daily",
		Short: "Print (generating if needed) the puzzle of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(dataDir)
			if d, err := domain.ParseDifficulty(difficulty); err == nil {
				svc.DailyDifficulty = d
			}
			p, err := svc.DailyPuzzle(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Println(social.Caption("en", p))
			return nil
		},
	}
	daily.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "tier for first generation")

	post := &cobra.Command{
		Use:   "post",
		Short: "Post the puzzle of the day to the configured endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			svc := newService(cfg.DataDir)
			if d, err := domain.ParseDifficulty(cfg.DailyDifficulty); err == nil {
				svc.DailyDifficulty = d
			}
			var posters []ports.Poster
			for _, sc := range cfg.Social {
				if sc.Enabled {
					posters = append(posters, social.NewBotPoster(sc))
				}
			}
			if len(posters) == 0 {
				return fmt.Errorf("no enabled social endpoints in %s", configPath)
			}
			lang := "en"
			var times []string
			if cfg.Schedule != nil {
				times = cfg.Schedule.PostTimes
				if cfg.Schedule.Language != "" {
					lang = cfg.Schedule.Language
				}
			}
			return scheduler.New(svc, posters, times, lang).PostNow(cmd.Context())
		},
	}
	post.Flags().StringVarP(&configPath, "config", "c", "puzzlefeed.hcl", "HCL config file")

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "storage directory")
	root.AddCommand(generate, daily, post)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
