package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"nhl-stats-crawler/internal/timeutil"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_CRAWLER_RUN") == "1" {
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:           "crawler",
		Short:         "Crawls NHL skater stats for a date range into object storage.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = args
			return run(cmd.Context(), startDate, endDate)
		},
	}

	today := timeutil.FormatDate(time.Now().UTC())
	cmd.Flags().StringVar(&startDate, "start-date", today, "start of the crawl range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", today, "end of the crawl range (YYYY-MM-DD)")

	return cmd
}
