package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

// Month names for the history report, matching the bot's Russian copy.
var monthNames = [13]string{
	"", "Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

var shortMonthNames = [13]string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// MonthHistory is one month's worth of watched movies.
type MonthHistory struct {
	MonthName string // e.g. "Январь 2024"
	Movies    []*domain.HistoryItem
}

// HistoryReport is the aggregated watch history.
type HistoryReport struct {
	Months        []MonthHistory
	TotalCount    int
	AverageRating float64
	IsEmpty       bool
}

// HistoryUsecase aggregates the shared watch history.
type HistoryUsecase struct {
	historyRepo repo.HistoryRepo
}

// NewHistoryUsecase creates a new history usecase.
func NewHistoryUsecase(historyRepo repo.HistoryRepo) *HistoryUsecase {
	return &HistoryUsecase{historyRepo: historyRepo}
}

// Report groups the history by month, newest month first, and computes
// the total count and average rating rounded to one decimal.
func (uc *HistoryUsecase) Report(ctx context.Context) (*HistoryReport, error) {
	items, err := uc.historyRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if len(items) == 0 {
		return &HistoryReport{IsEmpty: true}, nil
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	byMonth := make(map[monthKey][]*domain.HistoryItem)
	for _, item := range items {
		key := monthKey{item.WatchedAt.Year(), item.WatchedAt.Month()}
		byMonth[key] = append(byMonth[key], item)
	}

	keys := make([]monthKey, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})

	months := make([]MonthHistory, 0, len(keys))
	for _, key := range keys {
		months = append(months, MonthHistory{
			MonthName: fmt.Sprintf("%s %d", monthNames[key.month], key.year),
			Movies:    byMonth[key],
		})
	}

	sum := 0
	for _, item := range items {
		sum += item.Rating
	}
	avg := math.Round(float64(sum)/float64(len(items))*10) / 10

	return &HistoryReport{
		Months:        months,
		TotalCount:    len(items),
		AverageRating: avg,
	}, nil
}

// FormatDate renders a watch date as "12 янв".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), shortMonthNames[t.Month()])
}
