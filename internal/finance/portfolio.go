package finance

// PortfolioSummary aggregates the active (unsold) inventory plus two
// externally supplied scalars, cash on hand and equipment value.
type PortfolioSummary struct {
	TotalBikeCount           int     `json:"total_bike_count"`
	TotalInventoryValue      float64 `json:"total_inventory_value"`
	TotalAssets              float64 `json:"total_assets"`
	TotalProjectedValue      float64 `json:"total_projected_value"`
	AggregateProjectedProfit float64 `json:"aggregate_projected_profit"`
	Cash                     float64 `json:"cash"`
	Equipment                float64 `json:"equipment"`
}

// SummarizePortfolio folds active bikes into portfolio totals. Sold bikes
// in the input are skipped, so callers may pass a full company inventory
// unfiltered. Each bike contributes exactly once via its own snapshot;
// summation order is irrelevant.
func SummarizePortfolio(bikes []BikeLedger, cash, equipment float64) PortfolioSummary {
	summary := PortfolioSummary{Cash: cash, Equipment: equipment}
	for _, bl := range bikes {
		if bl.Bike.IsSold() {
			continue
		}
		snap := Compute(bl.Bike, bl.Ledger)
		summary.TotalBikeCount++
		summary.TotalInventoryValue += snap.TotalInvestment
		summary.TotalProjectedValue += snap.ProjectedValue
	}
	summary.TotalAssets = summary.TotalInventoryValue + cash + equipment
	summary.AggregateProjectedProfit = summary.TotalProjectedValue - summary.TotalInventoryValue
	return summary
}
