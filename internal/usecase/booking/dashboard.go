package booking

import (
	"context"
	"sort"

	domain "github.com/macicado/barberagenda/internal/domain/schedule"
)

// ======================================================
// OUTPUT
// ======================================================

type DayCount struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type MonthlySummaryOutput struct {
	Month     string `json:"month"`
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Finalized int    `json:"finalized"`
	Cancelled int    `json:"cancelled"`

	PerDay  []DayCount `json:"per_day"`
	TopDays []DayCount `json:"top_days"`
}

// ======================================================
// USE CASE
// ======================================================

type MonthlySummary struct {
	repo domain.Repository
}

func NewMonthlySummary(repo domain.Repository) *MonthlySummary {
	return &MonthlySummary{repo: repo}
}

func (uc *MonthlySummary) Execute(
	ctx context.Context,
	month string, // YYYY-MM
) (*MonthlySummaryOutput, error) {

	bookings, err := uc.repo.ListBookingsForMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	out := &MonthlySummaryOutput{
		Month:   month,
		Total:   len(bookings),
		PerDay:  []DayCount{},
		TopDays: []DayCount{},
	}

	perDay := make(map[string]int)
	for _, b := range bookings {
		switch domain.Status(b.Status) {
		case domain.StatusFinalized:
			out.Finalized++
		case domain.StatusCancelled:
			out.Cancelled++
		default:
			out.Active++
		}
		perDay[b.Date]++
	}

	for date, total := range perDay {
		out.PerDay = append(out.PerDay, DayCount{Date: date, Total: total})
	}

	sort.Slice(out.PerDay, func(i, j int) bool {
		return out.PerDay[i].Date < out.PerDay[j].Date
	})

	// top 5 dias mais cheios
	top := make([]DayCount, len(out.PerDay))
	copy(top, out.PerDay)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Total > top[j].Total
	})
	if len(top) > 5 {
		top = top[:5]
	}
	out.TopDays = top

	return out, nil
}
