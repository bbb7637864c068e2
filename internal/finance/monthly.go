package finance

import (
	"sort"
	"time"
)

// MonthlyPerformance is the sales rollup for one calendar month.
type MonthlyPerformance struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	MonthName        string  `json:"month_name"`
	BikesSold        int     `json:"bikes_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalProfit      float64 `json:"total_profit"`
	AverageSalePrice float64 `json:"average_sale_price"`
	ProfitMargin     float64 `json:"profit_margin"`
}

// soldDateLayouts are the formats the dashboard has historically written.
var soldDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// ParseSoldDate parses a stored sale date. ok is false for empty or
// unrecognized values; callers exclude those bikes from date-keyed
// aggregations rather than failing.
func ParseSoldDate(raw string) (time.Time, bool) {
	for _, layout := range soldDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthlyBreakdown groups sold bikes by the calendar month of their sale
// date and computes per-month rollups. Bikes lacking a sale price or a
// parsable sale date contribute to no month. Profit uses the sold-branch
// investment figure, so projected costs never leak into realized profit.
//
// Rows come back sorted descending by year, then by month name
// lexically. The lexical tiebreak reproduces the ordering the dashboard
// has always shown; see DESIGN.md before changing it.
func MonthlyBreakdown(bikes []BikeLedger) []MonthlyPerformance {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key]*MonthlyPerformance)

	for _, bl := range bikes {
		if bl.Bike.ActualSalePrice == nil {
			continue
		}
		soldAt, ok := ParseSoldDate(bl.Bike.DateSold)
		if !ok {
			continue
		}

		k := key{year: soldAt.Year(), month: soldAt.Month()}
		row, exists := buckets[k]
		if !exists {
			row = &MonthlyPerformance{
				Year:      k.year,
				Month:     int(k.month),
				MonthName: k.month.String(),
			}
			buckets[k] = row
		}

		sale := float64(*bl.Bike.ActualSalePrice)
		row.BikesSold++
		row.TotalRevenue += sale
		row.TotalProfit += sale - sunkCost(bl.Bike, bl.Ledger)
	}

	rows := make([]MonthlyPerformance, 0, len(buckets))
	for _, row := range buckets {
		if row.BikesSold > 0 {
			row.AverageSalePrice = row.TotalRevenue / float64(row.BikesSold)
		}
		row.ProfitMargin = Margin(row.TotalProfit, row.TotalRevenue)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year > rows[j].Year
		}
		return rows[i].MonthName > rows[j].MonthName
	})
	return rows
}

// TopMonths returns the n most profitable months from a breakdown,
// preserving relative order on ties. Fewer than n rows come back as-is.
func TopMonths(rows []MonthlyPerformance, n int) []MonthlyPerformance {
	top := make([]MonthlyPerformance, len(rows))
	copy(top, rows)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalProfit > top[j].TotalProfit
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}
