package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vglist/backend/internal/database"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	var start, end int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Ingest the game catalog once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := cfg.ValidateSeed(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("start") {
				start = cfg.Seed.StartPage
			}
			if !cmd.Flags().Changed("end") {
				end = cfg.Seed.EndPage
			}
			if start < 0 || end < start {
				return fmt.Errorf("invalid page range [%d, %d)", start, end)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := database.Connect(cfg.DatabaseURL, a.log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := a.newSeeder(db).RunPages(ctx, start, end)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ingested %d games from %d pages in %s\n", res.Games, res.Pages, res.Duration)
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first page (defaults to SEED_START_PAGE)")
	cmd.Flags().IntVar(&end, "end", 0, "page bound, exclusive (defaults to SEED_END_PAGE)")
	return cmd
}
