package dashboard

import (
	"time"

	"github.com/josepha8674-lab/Best-restaurant/internal/pos"
)

// Summary is a reduction of part of the sales log.
type Summary struct {
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
	Count   int     `json:"count"`
}

// TrendPoint is one day of the 7-day series.
type TrendPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// Summarize reduces the whole list. Every aggregate here recomputes from
// scratch on each call; the log is bounded by one restaurant's volume.
func Summarize(sales []pos.Sale) Summary {
	var s Summary
	for _, sale := range sales {
		s.Revenue += sale.TotalAmount
		s.Cost += sale.TotalCost
		s.Count++
	}
	s.Profit = s.Revenue - s.Cost
	return s
}

// DailySummary covers sales since local midnight of now's calendar day.
func DailySummary(sales []pos.Sale, now time.Time) Summary {
	start := startOfDay(now).UnixMilli()

	var day []pos.Sale
	for _, sale := range sales {
		if sale.Timestamp >= start {
			day = append(day, sale)
		}
	}
	return Summarize(day)
}

// MonthlySummary covers sales whose calendar month and year match now.
func MonthlySummary(sales []pos.Sale, now time.Time) Summary {
	var month []pos.Sale
	for _, sale := range sales {
		t := time.UnixMilli(sale.Timestamp).In(now.Location())
		if t.Month() == now.Month() && t.Year() == now.Year() {
			month = append(month, sale)
		}
	}
	return Summarize(month)
}

// WeeklyTrend produces exactly 7 points for the 7 calendar days ending at
// now inclusive, oldest first. Days without sales carry zero revenue and
// profit. Each day's window is [00:00, 24:00) local time.
func WeeklyTrend(sales []pos.Sale, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		dayStart := startOfDay(now.AddDate(0, 0, -i))
		dayEnd := dayStart.AddDate(0, 0, 1)

		from := dayStart.UnixMilli()
		to := dayEnd.UnixMilli()

		point := TrendPoint{Label: dayStart.Format("Mon 2")}
		for _, sale := range sales {
			if sale.Timestamp >= from && sale.Timestamp < to {
				point.Revenue += sale.TotalAmount
				point.Profit += sale.TotalAmount - sale.TotalCost
			}
		}

		points = append(points, point)
	}

	return points
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
