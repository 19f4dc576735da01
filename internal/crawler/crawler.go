// Package crawler drives one crawl run: schedule fetch, per-game box-score
// fetch, extraction, and keyed storage writes. A run is fail-fast: the first
// game-level error aborts the whole run, and the caller decides whether to
// retry the run as a unit.
package crawler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/extract"
	"nhl-stats-crawler/internal/logging"
	"nhl-stats-crawler/internal/metrics"
	"nhl-stats-crawler/internal/providers"
	"nhl-stats-crawler/internal/storage"
	"nhl-stats-crawler/internal/timeutil"
)

// DefaultTable is the storage partition game records are written under.
const DefaultTable = "player_game_stats"

const defaultConcurrency = 4

// Status is the terminal state of a crawl run.
type Status string

const (
	StatusDone   Status = "done"
	StatusFailed Status = "failed"
)

// Result reports how a run ended. Err is nil exactly when Status is Done.
type Result struct {
	Status Status
	Err    error
}

// GameWriter persists one game's record set under a storage key.
type GameWriter interface {
	StoreGame(ctx context.Context, key storage.Key, records []domain.PlayerRecord) error
}

// Config tunes a Crawler. Zero values fall back to defaults.
type Config struct {
	Table string
	// Concurrency bounds how many games are processed at once. Box-score
	// fetches for different games are independent; their storage keys are
	// disjoint, so write ordering across games does not matter.
	Concurrency int
}

// Crawler runs the schedule → boxscore → extract → store pipeline.
type Crawler struct {
	provider    providers.StatsProvider
	writer      GameWriter
	logger      *slog.Logger
	metrics     *metrics.Recorder
	table       string
	concurrency int
}

// New constructs a Crawler with sane defaults.
func New(provider providers.StatsProvider, writer GameWriter, logger *slog.Logger, recorder *metrics.Recorder, cfg Config) *Crawler {
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Crawler{
		provider:    provider,
		writer:      writer,
		logger:      logger,
		metrics:     recorder,
		table:       cfg.Table,
		concurrency: cfg.Concurrency,
	}
}

// Crawl processes every game scheduled in the inclusive date range. A range
// with no scheduled games writes a single sentinel row keyed by the range end
// so the run leaves an auditable trace. Any provider or storage failure
// aborts the run; cancellation of ctx does the same.
func (c *Crawler) Crawl(ctx context.Context, dates timeutil.DateRange) Result {
	start := time.Now()
	err := c.run(ctx, dates)
	if c.metrics != nil {
		c.metrics.RecordCrawlRun(time.Since(start), err)
	}
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	return Result{Status: StatusDone}
}

func (c *Crawler) run(ctx context.Context, dates timeutil.DateRange) error {
	if dates.Start.After(dates.End) {
		return &ValidationError{Reason: "start date " + dates.StartDate() + " is after end date " + dates.EndDate()}
	}

	logger := c.runLogger(dates)

	days, err := c.provider.GetSchedule(ctx, dates)
	if err != nil {
		return err
	}

	total := countGames(days)
	if total == 0 {
		return c.writeSentinel(ctx, logger, dates)
	}

	logging.Info(logger, "processing scheduled games", slog.Int(logging.FieldCount, total))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for _, day := range days {
		for _, game := range day.Games {
			gameDate, gameID := day.Date, game.GameID
			g.Go(func() error {
				return c.processGame(gctx, gameDate, gameID)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logging.Info(logger, "crawl complete", slog.Int(logging.FieldCount, total))
	return nil
}

func (c *Crawler) processGame(ctx context.Context, gameDate, gameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	box, err := c.provider.GetBoxscore(ctx, gameID)
	if err != nil {
		return err
	}

	records := extract.Boxscore(box)
	key := storage.NewKey(c.table, gameID, gameDate)
	return c.writer.StoreGame(ctx, key, records)
}

func (c *Crawler) writeSentinel(ctx context.Context, logger *slog.Logger, dates timeutil.DateRange) error {
	logging.Info(logger, "no games scheduled for range",
		slog.String(logging.FieldEndDate, dates.EndDate()),
	)

	record := domain.NewSentinelRecord(dates.EndDate())
	key := storage.NewKey(c.table, domain.SentinelGameID, dates.EndDate())
	return c.writer.StoreGame(ctx, key, []domain.PlayerRecord{record})
}

func (c *Crawler) runLogger(dates timeutil.DateRange) *slog.Logger {
	if c.logger == nil {
		return nil
	}
	return c.logger.With(
		slog.String(logging.FieldRunID, uuid.NewString()),
		slog.String(logging.FieldStartDate, dates.StartDate()),
		slog.String(logging.FieldEndDate, dates.EndDate()),
	)
}

func countGames(days []domain.ScheduleDay) int {
	total := 0
	for _, day := range days {
		total += len(day.Games)
	}
	return total
}
