// Package finance derives financial figures for bikes and for the
// inventory as a whole. Everything here is pure computation over
// in-memory data: no I/O, no caching, no hidden state. Snapshots are
// recomputed on every read because cost entries mutate independently of
// the bike document.
package finance

import "github.com/ukydev/moto-inventory/internal/models"

// Costed is any ledger entry carrying a cost amount.
type Costed interface {
	EntryCost() float64
}

// SumCosts totals the cost field across a set of ledger entries.
// An empty ledger sums to 0.
func SumCosts[E Costed](entries []E) float64 {
	var total float64
	for _, e := range entries {
		total += e.EntryCost()
	}
	return total
}

// Ledger bundles the three cost collections attached to one bike.
type Ledger struct {
	Parts      []models.Part
	Services   []models.Service
	Transports []models.Transport
}

// BikeLedger pairs a bike with its cost entries for batch computations.
type BikeLedger struct {
	Bike   models.Bike
	Ledger Ledger
}

// Snapshot is the derived financial view of one bike at a point in time.
// It is never persisted. ActualProfit is nil until a sale price exists.
type Snapshot struct {
	SunkCost            float64  `json:"sunk_cost"`
	TotalInvestment     float64  `json:"total_investment"`
	ProjectedValue      float64  `json:"projected_value"`
	ProjectedHighProfit float64  `json:"projected_high_profit"`
	ProjectedLowProfit  float64  `json:"projected_low_profit"`
	ProjectedHighMargin float64  `json:"projected_high_margin"`
	ProjectedLowMargin  float64  `json:"projected_low_margin"`
	ActualProfit        *float64 `json:"actual_profit,omitempty"`
	ActualMargin        float64  `json:"actual_margin"`
	Sold                bool     `json:"sold"`
}

// Margin returns profit over revenue as a percentage, preserving sign.
// A zero revenue yields 0, never NaN or Inf; consumers render the value
// directly.
func Margin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return profit / revenue * 100
}

// sunkCost is the acquisition price plus every realized cost entry.
// Missing fields contribute 0.
func sunkCost(bike models.Bike, led Ledger) float64 {
	return float64(bike.AcquisitionPrice) +
		SumCosts(led.Parts) +
		SumCosts(led.Services) +
		SumCosts(led.Transports)
}

// Compute derives the financial snapshot for a bike and its cost ledger.
//
// While the bike is active, projected future costs are folded into the
// investment figure as a planning number and projected profits are
// derived from the high/low estimates, clamped at 0. Once sold, only
// sunk costs count and actual profit takes over. Optional numerics
// default to 0 throughout; incomplete records never fail.
func Compute(bike models.Bike, led Ledger) Snapshot {
	base := float64(bike.AcquisitionPrice)
	snap := Snapshot{
		SunkCost: sunkCost(bike, led),
		Sold:     bike.IsSold(),
	}

	if !snap.Sold {
		snap.TotalInvestment = snap.SunkCost + float64(bike.ProjectedCosts)
		snap.ProjectedValue = float64(bike.ProjectedHighSale)
		snap.ProjectedHighProfit = max(0, float64(bike.ProjectedHighSale)-float64(bike.ProjectedLowCost)-base)
		snap.ProjectedLowProfit = max(0, float64(bike.ProjectedLowSale)-float64(bike.ProjectedHighCost)-base)
		snap.ProjectedHighMargin = Margin(snap.ProjectedHighProfit, float64(bike.ProjectedHighSale))
		snap.ProjectedLowMargin = Margin(snap.ProjectedLowProfit, float64(bike.ProjectedLowSale))
		return snap
	}

	// Sold: projected costs are superseded by actuals.
	snap.TotalInvestment = snap.SunkCost
	if bike.ActualSalePrice != nil {
		sale := float64(*bike.ActualSalePrice)
		profit := sale - snap.TotalInvestment
		snap.ActualProfit = &profit
		snap.ActualMargin = Margin(profit, sale)
	}
	return snap
}
