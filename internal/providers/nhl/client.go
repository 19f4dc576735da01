package nhl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nhl-stats-crawler/internal/domain"
	"nhl-stats-crawler/internal/logging"
	"nhl-stats-crawler/internal/metrics"
	"nhl-stats-crawler/internal/providers"
	"nhl-stats-crawler/internal/timeutil"
)

// Config controls how the NHL statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches schedule and box-score documents from the NHL statsapi and
// maps them to domain models. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs an NHL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// GetSchedule retrieves the scheduled games for an inclusive date range.
// Dates with no games may be missing from the response entirely.
func (c *Client) GetSchedule(ctx context.Context, dates timeutil.DateRange) ([]domain.ScheduleDay, error) {
	logging.Info(c.logger, "fetching schedule",
		slog.String(logging.FieldStartDate, dates.StartDate()),
		slog.String(logging.FieldEndDate, dates.EndDate()),
	)

	query := url.Values{}
	query.Set("startDate", dates.StartDate())
	query.Set("endDate", dates.EndDate())

	var payload scheduleResponse
	if err := c.get(ctx, OpSchedule, "/schedule", query, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

// GetBoxscore retrieves the box score for a single game.
func (c *Client) GetBoxscore(ctx context.Context, gameID string) (domain.Boxscore, error) {
	logging.Info(c.logger, "fetching boxscore",
		slog.String(logging.FieldGameID, gameID),
	)

	var payload boxscoreResponse
	if err := c.get(ctx, OpBoxscore, "/game/"+url.PathEscape(gameID)+"/boxscore", nil, &payload); err != nil {
		return domain.Boxscore{}, err
	}
	return mapBoxscore(payload), nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, payload any) error {
	start := time.Now()
	err := c.doGet(ctx, op, path, query, payload)
	if c.metrics != nil {
		c.metrics.RecordProviderCall(op, time.Since(start), err)
	}
	return err
}

func (c *Client) doGet(ctx context.Context, op, path string, query url.Values, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &providers.ProviderError{Op: op, Err: err}
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.ProviderError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &providers.ProviderError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(payload); decodeErr != nil {
		return &providers.ProviderError{Op: op, Err: decodeErr}
	}
	return nil
}
