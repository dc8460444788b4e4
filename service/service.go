package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/model"
)

const (
	trendWindow  = 30 * 24 * time.Hour
	growthMonths = 6
)

// Service assembles the data of the admin pages from the row store.
type Service struct {
	Store  *database.Store
	Logger *slog.Logger
	Now    func() time.Time
}

func NewService(store *database.Store, logger *slog.Logger) *Service {
	return &Service{
		Store:  store,
		Logger: logger,
		Now:    time.Now,
	}
}

// UnreadMessages counts contact messages with status unread.
func (s *Service) UnreadMessages(ctx context.Context) (int, error) {
	return s.Store.ContactMessages.CountContactMessages(ctx, model.Eq("status", model.MessageUnread))
}

// countFunc is the shape shared by every CountX method of the row store.
type countFunc func(ctx context.Context, filters ...model.Filter) (int, error)

// trend counts all rows and compares the rows created in the last 30 days
// with the 30 days before.
func (s *Service) trend(ctx context.Context, count countFunc, column string) (model.Trend, error) {
	now := s.Now()

	total, err := count(ctx)
	if err != nil {
		return model.Trend{}, err
	}
	current, err := count(ctx, model.Gte(column, now.Add(-trendWindow)))
	if err != nil {
		return model.Trend{}, err
	}
	previous, err := count(ctx, model.Gte(column, now.Add(-2*trendWindow)), model.Lt(column, now.Add(-trendWindow)))
	if err != nil {
		return model.Trend{}, err
	}

	return model.Trend{Total: total, Change: FormatChange(current, previous)}, nil
}

// FormatChange renders the relative change from previous to current,
// "+0%" when there is nothing to compare against.
func FormatChange(current int, previous int) string {
	if previous == 0 {
		return "+0%"
	}
	change := float64(current-previous) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}

// monthStart returns midnight of the first day of t's month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// topSlices orders the counts by value descending, then by name, and keeps
// at most limit entries. A limit of zero keeps everything.
func topSlices(counts map[string]int, limit int) []model.Slice {
	result := make([]model.Slice, 0, len(counts))
	for name, value := range counts {
		result = append(result, model.Slice{Name: name, Value: value})
	}
	sortSlices(result)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

func sortSlices(s []model.Slice) {
	slices.SortFunc(s, func(a, b model.Slice) int {
		if a.Value != b.Value {
			return b.Value - a.Value
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// industries counts companies per industry, IndustryOther for blanks.
func (s *Service) industries(ctx context.Context, limit int) ([]model.Slice, error) {
	companies, err := s.Store.Companies.SelectAllCompanies(ctx, model.Query{})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, company := range companies {
		counts[company.IndustryOrOther()]++
	}
	return topSlices(counts, limit), nil
}
