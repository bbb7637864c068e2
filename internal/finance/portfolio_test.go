package finance

import (
	"testing"

	"github.com/ukydev/moto-inventory/internal/models"
)

func TestSummarizePortfolio(t *testing.T) {
	inventory := []BikeLedger{
		{
			Bike: models.Bike{
				AcquisitionPrice:  7000,
				ProjectedCosts:    500,
				ProjectedHighSale: 10000,
				Stage:             "Listed",
			},
			Ledger: Ledger{Parts: []models.Part{part(500)}},
		},
		{
			Bike: models.Bike{
				AcquisitionPrice:  3500,
				ProjectedHighSale: 5000,
				Stage:             "servicing",
			},
			Ledger: Ledger{Services: []models.Service{service(500)}},
		},
		{
			// Sold bikes never count toward the active portfolio.
			Bike: models.Bike{
				AcquisitionPrice: 9999,
				Stage:            "Sold",
				ActualSalePrice:  amountPtr(12000),
			},
		},
	}

	summary := SummarizePortfolio(inventory, 50000, 25000)
	if summary.TotalBikeCount != 2 {
		t.Errorf("TotalBikeCount = %d, want 2", summary.TotalBikeCount)
	}
	if summary.TotalInventoryValue != 12000 {
		t.Errorf("TotalInventoryValue = %v, want 12000", summary.TotalInventoryValue)
	}
	if summary.TotalAssets != 87000 {
		t.Errorf("TotalAssets = %v, want 87000", summary.TotalAssets)
	}
	if summary.TotalProjectedValue != 15000 {
		t.Errorf("TotalProjectedValue = %v, want 15000", summary.TotalProjectedValue)
	}
	if summary.AggregateProjectedProfit != 3000 {
		t.Errorf("AggregateProjectedProfit = %v, want 3000", summary.AggregateProjectedProfit)
	}
}

func TestSummarizePortfolio_Empty(t *testing.T) {
	summary := SummarizePortfolio(nil, 1000, 200)
	if summary.TotalBikeCount != 0 || summary.TotalInventoryValue != 0 {
		t.Errorf("empty inventory summary = %+v, want zero inventory", summary)
	}
	if summary.TotalAssets != 1200 {
		t.Errorf("TotalAssets = %v, want cash+equipment = 1200", summary.TotalAssets)
	}
}

func TestSummarizePortfolio_OrderIndependent(t *testing.T) {
	a := BikeLedger{Bike: models.Bike{AcquisitionPrice: 100, ProjectedHighSale: 400, Stage: "Listed"}}
	b := BikeLedger{Bike: models.Bike{AcquisitionPrice: 200, ProjectedHighSale: 300, Stage: "Media"}}
	c := BikeLedger{Bike: models.Bike{AcquisitionPrice: 300, ProjectedHighSale: 600, Stage: "Acquisition"}}

	first := SummarizePortfolio([]BikeLedger{a, b, c}, 10, 20)
	second := SummarizePortfolio([]BikeLedger{c, a, b}, 10, 20)
	if first != second {
		t.Errorf("summaries differ by input order: %+v vs %+v", first, second)
	}
}
