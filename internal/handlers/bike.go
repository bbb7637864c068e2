package handlers

import (
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/moto-inventory/internal/db"
	"github.com/ukydev/moto-inventory/internal/finance"
	"github.com/ukydev/moto-inventory/internal/models"
)

// BikeHandler handles inventory CRUD for one company partition.
type BikeHandler struct {
	bikes   db.BikeCollection
	ledgers *ledgerLoader
}

// NewBikeHandler creates a new bike handler.
func NewBikeHandler(bikes db.BikeCollection, parts db.PartCollection, services db.ServiceCollection, transports db.TransportCollection) *BikeHandler {
	return &BikeHandler{
		bikes:   bikes,
		ledgers: &ledgerLoader{parts: parts, services: services, transports: transports},
	}
}

// bikeDetail is a bike plus its derived figures, recomputed on every read.
type bikeDetail struct {
	models.Bike
	Snapshot finance.Snapshot     `json:"snapshot"`
	Progress models.StageProgress `json:"progress"`
}

// findCompanyBike resolves a bike id within a company partition.
func (h *BikeHandler) findCompanyBike(r *http.Request) (*models.Bike, error) {
	bike, err := h.bikes.FindBikeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	if bike.CompanyID != r.PathValue("company") {
		return nil, db.ErrNotFound
	}
	return bike, nil
}

// List returns the company's bikes, optionally filtered by stage.
func (h *BikeHandler) List(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")

	cursor, err := h.bikes.FindBikes(r.Context(), bson.M{"company_id": company})
	if err != nil {
		http.Error(w, "Failed to list bikes", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var bikes []models.Bike
	if err := cursor.All(r.Context(), &bikes); err != nil {
		http.Error(w, "Failed to list bikes", http.StatusInternalServerError)
		return
	}

	// Stage filtering is done after the read so stored casing never
	// splits one pipeline column into several.
	if stageQuery := r.URL.Query().Get("stage"); stageQuery != "" {
		want := models.NormalizeStage(stageQuery)
		filtered := bikes[:0]
		for _, b := range bikes {
			if models.NormalizeStage(b.Stage) == want {
				filtered = append(filtered, b)
			}
		}
		bikes = filtered
	}

	if bikes == nil {
		bikes = []models.Bike{}
	}
	respondJSON(w, http.StatusOK, bikes)
}

// Create adds a bike at intake. New bikes start in Acquisition unless the
// request says otherwise.
func (h *BikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var bike models.Bike
	if err := decodeJSON(r, &bike); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	bike.ID = primitive.NewObjectID()
	bike.CompanyID = r.PathValue("company")
	if models.NormalizeStage(bike.Stage) == models.StageUnknown {
		bike.Stage = string(models.StageAcquisition)
	} else {
		bike.Stage = string(models.NormalizeStage(bike.Stage))
	}
	bike.CreatedAt = time.Now()
	bike.UpdatedAt = time.Now()

	if err := h.bikes.InsertBike(r.Context(), bike); err != nil {
		http.Error(w, "Failed to create bike", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, bike)
}

// Get returns one bike with its financial snapshot and pipeline progress.
func (h *BikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	bike, err := h.findCompanyBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}

	led, err := h.ledgers.load(r.Context(), bike.ID.Hex())
	if err != nil {
		http.Error(w, "Failed to load cost entries", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, bikeDetail{
		Bike:     *bike,
		Snapshot: finance.Compute(*bike, led),
		Progress: models.Progress(bike.Stage),
	})
}

// Update patches a bike's mutable fields. The acquisition price is fixed
// at intake and survives any patch.
func (h *BikeHandler) Update(w http.ResponseWriter, r *http.Request) {
	bike, err := h.findCompanyBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}

	updated := *bike
	if err := decodeJSON(r, &updated); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	updated.ID = bike.ID
	updated.CompanyID = bike.CompanyID
	updated.AcquisitionPrice = bike.AcquisitionPrice
	updated.CreatedAt = bike.CreatedAt
	if models.NormalizeStage(updated.Stage) != models.StageUnknown {
		updated.Stage = string(models.NormalizeStage(updated.Stage))
	}

	if err := h.bikes.UpdateBike(r.Context(), bike.ID.Hex(), updated); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update bike", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// UpdateStage moves a bike to another pipeline stage. Any stage may be
// set from any other; forward-only progression is deliberately not
// enforced.
func (h *BikeHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	bike, err := h.findCompanyBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}

	var stageReq struct {
		Stage string `json:"stage"`
	}
	if err := decodeJSON(r, &stageReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	stage := models.NormalizeStage(stageReq.Stage)
	if stage == models.StageUnknown {
		http.Error(w, "Invalid stage", http.StatusBadRequest)
		return
	}

	bike.Stage = string(stage)
	if err := h.bikes.UpdateBike(r.Context(), bike.ID.Hex(), *bike); err != nil {
		http.Error(w, "Failed to update stage", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stage":    bike.Stage,
		"progress": models.Progress(bike.Stage),
	})
}

// Delete removes a bike and every cost entry it owns.
func (h *BikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bike, err := h.findCompanyBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}

	bikeID := bike.ID.Hex()
	if err := h.bikes.DeleteBike(r.Context(), bikeID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete bike", http.StatusInternalServerError)
		return
	}

	// The bike owns its ledger entries; orphaned entries would leak into
	// nothing but still waste storage, so log failures rather than
	// surfacing them after the bike itself is gone.
	if err := h.ledgers.deleteByBike(r.Context(), bikeID); err != nil {
		log.WithError(err).WithField("bike_id", bikeID).Error("failed to cascade-delete cost entries")
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Bike deleted"})
}

// Snapshot returns just the derived financial figures for one bike.
func (h *BikeHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	bike, err := h.findCompanyBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}

	led, err := h.ledgers.load(r.Context(), bike.ID.Hex())
	if err != nil {
		http.Error(w, "Failed to load cost entries", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, finance.Compute(*bike, led))
}
