package handlers

import (
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ukydev/moto-inventory/internal/db"
	"github.com/ukydev/moto-inventory/internal/finance"
	"github.com/ukydev/moto-inventory/internal/models"
)

// ReportHandler serves the derived portfolio and sales reports. Figures
// are recomputed from storage on every request; nothing here is cached.
type ReportHandler struct {
	bikes   db.BikeCollection
	ledgers *ledgerLoader
}

// NewReportHandler creates a new report handler.
func NewReportHandler(bikes db.BikeCollection, parts db.PartCollection, services db.ServiceCollection, transports db.TransportCollection) *ReportHandler {
	return &ReportHandler{
		bikes:   bikes,
		ledgers: &ledgerLoader{parts: parts, services: services, transports: transports},
	}
}

// queryAmount reads a numeric query parameter, 0 when absent or malformed.
func queryAmount(r *http.Request, key string) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// loadInventory reads every bike in the company with its cost ledger.
func (h *ReportHandler) loadInventory(r *http.Request) ([]finance.BikeLedger, error) {
	company := r.PathValue("company")
	cursor, err := h.bikes.FindBikes(r.Context(), bson.M{"company_id": company})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(r.Context())

	var bikes []models.Bike
	if err := cursor.All(r.Context(), &bikes); err != nil {
		return nil, err
	}

	inventory := make([]finance.BikeLedger, 0, len(bikes))
	for _, bike := range bikes {
		led, err := h.ledgers.load(r.Context(), bike.ID.Hex())
		if err != nil {
			return nil, err
		}
		inventory = append(inventory, finance.BikeLedger{Bike: bike, Ledger: led})
	}
	return inventory, nil
}

// Portfolio returns the active-inventory rollup. Cash on hand and
// equipment value are supplied by the caller as query parameters; they
// live outside this system.
func (h *ReportHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.loadInventory(r)
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	cash := queryAmount(r, "cash")
	equipment := queryAmount(r, "equipment")
	respondJSON(w, http.StatusOK, finance.SummarizePortfolio(inventory, cash, equipment))
}

// monthlyReport is the monthly sales breakdown plus its top performers.
type monthlyReport struct {
	Months    []finance.MonthlyPerformance `json:"months"`
	TopMonths []finance.MonthlyPerformance `json:"top_months"`
}

// Monthly returns sales performance bucketed by calendar month of sale.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.loadInventory(r)
	if err != nil {
		http.Error(w, "Failed to load inventory", http.StatusInternalServerError)
		return
	}

	sold := make([]finance.BikeLedger, 0, len(inventory))
	for _, bl := range inventory {
		if bl.Bike.IsSold() {
			sold = append(sold, bl)
		}
	}

	months := finance.MonthlyBreakdown(sold)
	respondJSON(w, http.StatusOK, monthlyReport{
		Months:    months,
		TopMonths: finance.TopMonths(months, 3),
	})
}
