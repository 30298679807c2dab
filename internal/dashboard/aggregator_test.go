package dashboard

import (
	"testing"
	"time"

	"github.com/josepha8674-lab/Best-restaurant/internal/pos"
)

func saleAt(ts time.Time, amount, cost float64) pos.Sale {
	return pos.Sale{
		ID:          "sale-" + ts.Format("20060102150405"),
		Timestamp:   ts.UnixMilli(),
		TotalAmount: amount,
		TotalCost:   cost,
	}
}

func TestDailyAndMonthlyBuckets(t *testing.T) {
	// mid-month reference point keeps both sales inside the same month
	now := time.Date(2026, time.August, 15, 14, 30, 0, 0, time.Local)

	today := saleAt(now.Add(-time.Hour), 300, 100)
	twoDaysAgo := saleAt(now.AddDate(0, 0, -2), 200, 80)
	sales := []pos.Sale{today, twoDaysAgo}

	daily := DailySummary(sales, now)
	if daily.Count != 1 || daily.Revenue != 300 {
		t.Fatalf("daily bucket wrong: %+v", daily)
	}

	monthly := MonthlySummary(sales, now)
	if monthly.Count != 2 || monthly.Revenue != 500 {
		t.Fatalf("monthly bucket wrong: %+v", monthly)
	}
	if monthly.Profit != 500-180 {
		t.Fatalf("expected profit %v, got %v", 500-180, monthly.Profit)
	}
}

func TestDailySummary_MidnightBoundary(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 30, 0, 0, time.Local)
	midnight := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.Local)

	atMidnight := saleAt(midnight, 100, 40)
	justBefore := saleAt(midnight.Add(-time.Minute), 100, 40)

	daily := DailySummary([]pos.Sale{atMidnight, justBefore}, now)
	if daily.Count != 1 {
		t.Fatalf("expected only the midnight sale in the daily bucket, got %d", daily.Count)
	}
}

func TestSummarize_Lifetime(t *testing.T) {
	now := time.Now()
	sales := []pos.Sale{
		saleAt(now, 100, 30),
		saleAt(now.AddDate(0, -2, 0), 50, 10),
		saleAt(now.AddDate(-1, 0, 0), 25, 5),
	}

	total := Summarize(sales)
	if total.Count != 3 || total.Revenue != 175 || total.Cost != 45 {
		t.Fatalf("lifetime summary wrong: %+v", total)
	}
}

func TestWeeklyTrend_AlwaysSevenPoints(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.Local)

	for _, sales := range [][]pos.Sale{nil, {saleAt(now, 100, 40)}} {
		points := WeeklyTrend(sales, now)
		if len(points) != 7 {
			t.Fatalf("expected 7 points, got %d", len(points))
		}
	}
}

func TestWeeklyTrend_BucketsAndOrder(t *testing.T) {
	now := time.Date(2026, time.August, 15, 18, 0, 0, 0, time.Local)

	sales := []pos.Sale{
		saleAt(now.Add(-time.Hour), 200, 50),     // today, last point
		saleAt(now.AddDate(0, 0, -6), 100, 30),   // oldest day, first point
		saleAt(now.AddDate(0, 0, -7), 9999, 999), // outside the window
	}

	points := WeeklyTrend(sales, now)

	first := points[0]
	if first.Revenue != 100 || first.Profit != 70 {
		t.Fatalf("oldest point wrong: %+v", first)
	}

	last := points[6]
	if last.Revenue != 200 || last.Profit != 150 {
		t.Fatalf("today's point wrong: %+v", last)
	}

	for i, p := range points[1:6] {
		if p.Revenue != 0 || p.Profit != 0 {
			t.Fatalf("expected zero-filled day at %d: %+v", i+1, p)
		}
	}

	if first.Label == "" || last.Label == "" {
		t.Fatal("expected weekday labels on every point")
	}
}
