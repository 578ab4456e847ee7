package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	weeklyCacheKey = "report:weekly"

	businessDays = 5
	dayKeyFormat = "01/02"
)

// DateRange bounds a report query. A nil end is open. From is
// inclusive, To exclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// DailyOutboundTotals returns per-day, per-item outbound totals
	// within the range, most recent day first.
	DailyOutboundTotals(ctx context.Context, rng DateRange) ([]DailyOutbound, error)

	// OutboundSince returns raw outbound movements on or after the given
	// instant.
	OutboundSince(ctx context.Context, since time.Time) ([]OutboundMovement, error)
}

// OutboundMovement is the slice of a ledger row the weekly report needs.
type OutboundMovement struct {
	ItemID    uuid.UUID
	ItemName  string
	Unit      string
	Quantity  int64
	CreatedAt time.Time
}

// Cache sits in front of the weekly summary. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any) error
}

type Service struct {
	repo  Repository
	cache Cache
	now   func() time.Time
}

func NewService(repo Repository, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		now:   func() time.Time { return time.Now() },
	}
}

func (s *Service) Daily(ctx context.Context, rng DateRange) ([]DailyOutbound, error) {
	return s.repo.DailyOutboundTotals(ctx, rng)
}

// Weekly reports outbound totals over the five most recent business
// days, weekends excluded. Every item that moved gets a zero-filled
// entry for each day in the window.
func (s *Service) Weekly(ctx context.Context) (*WeeklySummary, error) {
	if s.cache != nil {
		var cached WeeklySummary

		hit, err := s.cache.Get(ctx, weeklyCacheKey, &cached)
		if err != nil {
			slog.Warn("weekly summary cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	days := recentBusinessDays(s.now(), businessDays)

	movements, err := s.repo.OutboundSince(ctx, days[0])
	if err != nil {
		return nil, fmt.Errorf("loading outbound movements: %w", err)
	}

	summary := buildWeekly(days, movements)

	if s.cache != nil {
		if err := s.cache.Set(ctx, weeklyCacheKey, summary); err != nil {
			slog.Warn("weekly summary cache write failed", "error", err)
		}
	}

	return summary, nil
}

// recentBusinessDays returns the n most recent weekdays ending at ref's
// day, oldest first, each truncated to local midnight.
func recentBusinessDays(ref time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)

	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	for len(days) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, day)
		}

		day = day.AddDate(0, 0, -1)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	return days
}

func buildWeekly(days []time.Time, movements []OutboundMovement) *WeeklySummary {
	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = d.Format(dayKeyFormat)
	}

	inWindow := make(map[string]bool, len(keys))
	for _, k := range keys {
		inWindow[k] = true
	}

	byItem := make(map[uuid.UUID]*WeeklyOutbound)

	for _, m := range movements {
		key := m.CreatedAt.Format(dayKeyFormat)
		if !inWindow[key] {
			// Weekend movement inside the time range.
			continue
		}

		row, ok := byItem[m.ItemID]
		if !ok {
			row = &WeeklyOutbound{
				ItemID:      m.ItemID,
				ItemName:    m.ItemName,
				Unit:        m.Unit,
				DailyTotals: make(map[string]int64, len(keys)),
			}
			for _, k := range keys {
				row.DailyTotals[k] = 0
			}

			byItem[m.ItemID] = row
		}

		row.Total += m.Quantity
		row.DailyTotals[key] += m.Quantity
	}

	items := make([]WeeklyOutbound, 0, len(byItem))
	for _, row := range byItem {
		items = append(items, *row)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Total != items[j].Total {
			return items[i].Total > items[j].Total
		}

		return items[i].ItemName < items[j].ItemName
	})

	return &WeeklySummary{Days: keys, Items: items}
}
