package stats

import (
	"GymAttendanceTracker/internal/models"
	"errors"
	"math"
	"time"
)

const MonthLayout = "2006-01"

var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

type MonthSummary struct {
	Month               string `json:"month" example:"2024-03"`
	TotalClasses        int    `json:"totalClasses" example:"12"`
	SinglePersonClasses int    `json:"singlePersonClasses" example:"4"`
	MultiPersonClasses  int    `json:"multiPersonClasses" example:"8"`
}

type Summary struct {
	TotalClasses      int          `json:"totalClasses" example:"40"`
	AverageAttendance int          `json:"averageAttendance" example:"3"`
	ThisWeek          int          `json:"thisWeek" example:"2"`
	Month             MonthSummary `json:"month"`
}

// ParseMonth parses YYYY-MM; an empty string selects the month containing now.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	m, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return m, nil
}

// Summarize computes overall, weekly and monthly figures. Weeks start on
// Sunday; month is the first day of the month to break down.
func Summarize(classes []models.GymClass, month time.Time, now time.Time) Summary {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	summary := Summary{
		TotalClasses: len(classes),
		Month:        MonthSummary{Month: monthStart.Format(MonthLayout)},
	}

	total := 0
	for _, g := range classes {
		total += g.Attendance

		date, err := time.Parse(models.DateLayout, g.Date)
		if err != nil {
			continue
		}
		if !date.Before(weekStart) {
			summary.ThisWeek++
		}
		if date.Before(monthStart) || !date.Before(monthEnd) {
			continue
		}
		summary.Month.TotalClasses++
		switch {
		case g.Attendance == 1:
			summary.Month.SinglePersonClasses++
		case g.Attendance > 1:
			summary.Month.MultiPersonClasses++
		}
	}
	if len(classes) > 0 {
		summary.AverageAttendance = int(math.Round(float64(total) / float64(len(classes))))
	}
	return summary
}
