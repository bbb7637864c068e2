package finance

import (
	"testing"

	"github.com/ukydev/moto-inventory/internal/models"
)

func soldBike(salePrice models.Amount, dateSold string, acquisition models.Amount) BikeLedger {
	return BikeLedger{
		Bike: models.Bike{
			AcquisitionPrice: acquisition,
			Stage:            "Sold",
			ActualSalePrice:  amountPtr(salePrice),
			DateSold:         dateSold,
		},
	}
}

func TestMonthlyBreakdown_SingleMonth(t *testing.T) {
	// Two bikes sold in the same month: revenues 6500 and 3500,
	// profits 1150 and 500.
	bikes := []BikeLedger{
		{
			Bike: models.Bike{
				AcquisitionPrice: 5000,
				Stage:            "Sold",
				ActualSalePrice:  amountPtr(6500),
				DateSold:         "2025-03-10",
			},
			Ledger: Ledger{
				Parts:    []models.Part{part(200)},
				Services: []models.Service{service(150)},
			},
		},
		soldBike(3500, "2025-03-28", 3000),
	}

	rows := MonthlyBreakdown(bikes)
	if len(rows) != 1 {
		t.Fatalf("expected 1 month, got %d", len(rows))
	}
	row := rows[0]
	if row.Year != 2025 || row.Month != 3 || row.MonthName != "March" {
		t.Errorf("row key = %d-%d (%s), want 2025-3 (March)", row.Year, row.Month, row.MonthName)
	}
	if row.BikesSold != 2 {
		t.Errorf("BikesSold = %d, want 2", row.BikesSold)
	}
	if row.TotalRevenue != 10000 {
		t.Errorf("TotalRevenue = %v, want 10000", row.TotalRevenue)
	}
	if row.TotalProfit != 1650 {
		t.Errorf("TotalProfit = %v, want 1650", row.TotalProfit)
	}
	if row.AverageSalePrice != 5000 {
		t.Errorf("AverageSalePrice = %v, want 5000", row.AverageSalePrice)
	}
	if row.ProfitMargin != 16.5 {
		t.Errorf("ProfitMargin = %v, want 16.5", row.ProfitMargin)
	}
}

func TestMonthlyBreakdown_ExcludesUnusableBikes(t *testing.T) {
	bikes := []BikeLedger{
		soldBike(1000, "not-a-date", 400),
		{Bike: models.Bike{Stage: "Sold", DateSold: "2025-01-05"}}, // no sale price
		soldBike(2000, "2025-01-05", 1500),
	}

	rows := MonthlyBreakdown(bikes)
	if len(rows) != 1 {
		t.Fatalf("expected 1 month, got %d", len(rows))
	}
	if rows[0].BikesSold != 1 || rows[0].TotalRevenue != 2000 {
		t.Errorf("row = %+v, want exactly the one parsable sale", rows[0])
	}
}

func TestMonthlyBreakdown_OrderIndependent(t *testing.T) {
	bikes := []BikeLedger{
		soldBike(6500, "2025-03-10", 5000),
		soldBike(3500, "2025-03-28", 3000),
		soldBike(9000, "2024-11-02", 7000),
	}
	reversed := []BikeLedger{bikes[2], bikes[1], bikes[0]}

	first := MonthlyBreakdown(bikes)
	second := MonthlyBreakdown(reversed)
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs by input order: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMonthlyBreakdown_Ordering(t *testing.T) {
	bikes := []BikeLedger{
		soldBike(1000, "2024-06-01", 500),  // June 2024
		soldBike(1000, "2025-01-15", 500),  // January 2025
		soldBike(1000, "2025-02-15", 500),  // February 2025
		soldBike(1000, "2025-09-15", 500),  // September 2025
	}

	rows := MonthlyBreakdown(bikes)
	if len(rows) != 4 {
		t.Fatalf("expected 4 months, got %d", len(rows))
	}
	if rows[3].Year != 2024 {
		t.Errorf("oldest year must sort last, got %d", rows[3].Year)
	}
	// Within 2025 the historical tiebreak is lexical on month name,
	// descending: September > January > February.
	wantNames := []string{"September", "January", "February"}
	for i, name := range wantNames {
		if rows[i].MonthName != name {
			t.Errorf("rows[%d].MonthName = %s, want %s", i, rows[i].MonthName, name)
		}
	}
}

func TestTopMonths(t *testing.T) {
	rows := []MonthlyPerformance{
		{MonthName: "May", TotalProfit: 300},
		{MonthName: "April", TotalProfit: 900},
		{MonthName: "March", TotalProfit: 300},
		{MonthName: "February", TotalProfit: 1200},
	}

	top := TopMonths(rows, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	if top[0].MonthName != "February" || top[1].MonthName != "April" {
		t.Errorf("top order = %s, %s; want February, April", top[0].MonthName, top[1].MonthName)
	}
	// Tie between May and March: original relative order wins.
	if top[2].MonthName != "May" {
		t.Errorf("tie must keep original order, got %s", top[2].MonthName)
	}

	// Fewer rows than requested: return what exists, never pad.
	short := TopMonths(rows[:2], 3)
	if len(short) != 2 {
		t.Errorf("expected 2 rows, got %d", len(short))
	}

	// Input must stay untouched.
	if rows[0].MonthName != "May" {
		t.Error("TopMonths mutated its input")
	}
}

func TestParseSoldDate(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"2025-03-10", true},
		{"2025-03-10T14:30:00Z", true},
		{"2025-03-10T14:30:00", true},
		{"03/10/2025", true},
		{"", false},
		{"yesterday", false},
		{"2025-13-40", false},
	}

	for _, tt := range tests {
		if _, ok := ParseSoldDate(tt.raw); ok != tt.ok {
			t.Errorf("ParseSoldDate(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
		}
	}
}
