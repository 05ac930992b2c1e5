package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"employee-attendance/models"
	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/metrics"
)

// HolidayAPIData is one entry of the holiday feed.
type HolidayAPIData struct {
	Date              string `json:"holiday_date"`
	Name              string `json:"holiday_name"`
	IsNationalHoliday bool   `json:"is_national_holiday"`
}

// HolidayFeed fetches public holidays from an external JSON feed. Calls go
// through a circuit breaker so a dead feed is not hammered by the job loop.
type HolidayFeed struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]models.Holiday]
}

func NewHolidayFeed(baseURL string, client *http.Client) *HolidayFeed {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	cb := gobreaker.NewCircuitBreaker[[]models.Holiday](gobreaker.Settings{
		Name:        "holiday-feed",
		MaxRequests: 1,
		Interval:    time.Hour,
		Timeout:     30 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
	return &HolidayFeed{baseURL: baseURL, client: client, breaker: cb}
}

// Fetch returns the holidays of year. National holidays are typed public,
// the rest optional.
func (f *HolidayFeed) Fetch(ctx context.Context, year int) ([]models.Holiday, error) {
	holidays, err := f.breaker.Execute(func() ([]models.Holiday, error) {
		return f.fetch(ctx, year)
	})
	if err != nil {
		metrics.RecordHolidayFetch("error")
		return nil, err
	}
	metrics.RecordHolidayFetch("success")
	return holidays, nil
}

func (f *HolidayFeed) fetch(ctx context.Context, year int) ([]models.Holiday, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid holiday feed url: %w", err)
	}
	q := u.Query()
	q.Set("year", strconv.Itoa(year))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch holidays: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read holidays: %w", err)
	}

	var raw []HolidayAPIData
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	holidays := make([]models.Holiday, 0, len(raw))
	for _, h := range raw {
		// The feed does not always zero-pad months and days.
		d, err := time.Parse("2006-1-2", h.Date)
		if err != nil {
			logging.Ctx(ctx).Debug().Str("date", h.Date).Msg("skipping holiday with unparseable date")
			continue
		}
		typ := models.HolidayOptional
		if h.IsNationalHoliday {
			typ = models.HolidayPublic
		}
		holidays = append(holidays, models.Holiday{
			Date:     d.Format(models.DateLayout),
			Occasion: h.Name,
			Type:     typ,
		})
	}
	return holidays, nil
}
