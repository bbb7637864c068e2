package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukydev/moto-inventory/internal/db"
	"github.com/ukydev/moto-inventory/internal/finance"
	"github.com/ukydev/moto-inventory/internal/models"
)

// Ledger kinds as they appear in URLs.
const (
	kindParts      = "parts"
	kindServices   = "services"
	kindTransports = "transports"
)

// ledgerLoader fetches the three cost collections for a bike.
type ledgerLoader struct {
	parts      db.PartCollection
	services   db.ServiceCollection
	transports db.TransportCollection
}

// load reads all cost entries for a bike. There is no transaction around
// the three reads; a concurrent ledger write can land between them and
// the resulting snapshot mixes pre- and post-update values. Accepted for
// a low-contention single-dealership workload.
func (l *ledgerLoader) load(ctx context.Context, bikeID string) (finance.Ledger, error) {
	var led finance.Ledger
	filter := bson.M{"bike_id": bikeID}

	partCursor, err := l.parts.FindParts(ctx, filter)
	if err != nil {
		return led, err
	}
	defer partCursor.Close(ctx)
	if err := partCursor.All(ctx, &led.Parts); err != nil {
		return led, err
	}

	serviceCursor, err := l.services.FindServices(ctx, filter)
	if err != nil {
		return led, err
	}
	defer serviceCursor.Close(ctx)
	if err := serviceCursor.All(ctx, &led.Services); err != nil {
		return led, err
	}

	transportCursor, err := l.transports.FindTransports(ctx, filter)
	if err != nil {
		return led, err
	}
	defer transportCursor.Close(ctx)
	if err := transportCursor.All(ctx, &led.Transports); err != nil {
		return led, err
	}

	return led, nil
}

// deleteByBike removes every ledger entry owned by a bike.
func (l *ledgerLoader) deleteByBike(ctx context.Context, bikeID string) error {
	if err := l.parts.DeletePartsByBike(ctx, bikeID); err != nil {
		return err
	}
	if err := l.services.DeleteServicesByBike(ctx, bikeID); err != nil {
		return err
	}
	return l.transports.DeleteTransportsByBike(ctx, bikeID)
}

// LedgerHandler handles cost entry CRUD for the three per-bike ledgers.
// The entry kind comes from the URL; each kind keeps its own collection
// and document shape.
type LedgerHandler struct {
	bikes   db.BikeCollection
	ledgers *ledgerLoader
}

// NewLedgerHandler creates a new cost ledger handler.
func NewLedgerHandler(bikes db.BikeCollection, parts db.PartCollection, services db.ServiceCollection, transports db.TransportCollection) *LedgerHandler {
	return &LedgerHandler{
		bikes:   bikes,
		ledgers: &ledgerLoader{parts: parts, services: services, transports: transports},
	}
}

// ownerBike resolves the owning bike within the company partition.
func (h *LedgerHandler) ownerBike(r *http.Request) (*models.Bike, error) {
	bike, err := h.bikes.FindBikeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	if bike.CompanyID != r.PathValue("company") {
		return nil, db.ErrNotFound
	}
	return bike, nil
}

// List returns one ledger for a bike.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	bike, err := h.ownerBike(r)
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

	switch r.PathValue("kind") {
	case kindParts:
		if led.Parts == nil {
			led.Parts = []models.Part{}
		}
		respondJSON(w, http.StatusOK, led.Parts)
	case kindServices:
		if led.Services == nil {
			led.Services = []models.Service{}
		}
		respondJSON(w, http.StatusOK, led.Services)
	case kindTransports:
		if led.Transports == nil {
			led.Transports = []models.Transport{}
		}
		respondJSON(w, http.StatusOK, led.Transports)
	default:
		http.Error(w, "Unknown ledger kind", http.StatusNotFound)
	}
}

// Create adds a cost entry to one of a bike's ledgers. Malformed cost
// values arrive as 0 via the Amount decoder; the request itself still
// succeeds.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	bike, err := h.ownerBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}
	bikeID := bike.ID.Hex()

	switch r.PathValue("kind") {
	case kindParts:
		var part models.Part
		if err := decodeJSON(r, &part); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		part.ID = primitive.NewObjectID()
		part.BikeID = bikeID
		if err := h.ledgers.parts.InsertPart(r.Context(), part); err != nil {
			http.Error(w, "Failed to create entry", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, part)
	case kindServices:
		var service models.Service
		if err := decodeJSON(r, &service); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		service.ID = primitive.NewObjectID()
		service.BikeID = bikeID
		if err := h.ledgers.services.InsertService(r.Context(), service); err != nil {
			http.Error(w, "Failed to create entry", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, service)
	case kindTransports:
		var transport models.Transport
		if err := decodeJSON(r, &transport); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		transport.ID = primitive.NewObjectID()
		transport.BikeID = bikeID
		if err := h.ledgers.transports.InsertTransport(r.Context(), transport); err != nil {
			http.Error(w, "Failed to create entry", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, transport)
	default:
		http.Error(w, "Unknown ledger kind", http.StatusNotFound)
	}
}

// Update replaces a cost entry's mutable fields.
func (h *LedgerHandler) Update(w http.ResponseWriter, r *http.Request) {
	bike, err := h.ownerBike(r)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}
	entryID := r.PathValue("entry")

	switch r.PathValue("kind") {
	case kindParts:
		existing, err := h.ledgers.parts.FindPartByID(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		updated := *existing
		if err := decodeJSON(r, &updated); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		updated.ID = existing.ID
		updated.BikeID = bike.ID.Hex()
		if err := h.ledgers.parts.UpdatePart(r.Context(), entryID, updated); err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	case kindServices:
		existing, err := h.ledgers.services.FindServiceByID(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		updated := *existing
		if err := decodeJSON(r, &updated); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		updated.ID = existing.ID
		updated.BikeID = bike.ID.Hex()
		if err := h.ledgers.services.UpdateService(r.Context(), entryID, updated); err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	case kindTransports:
		existing, err := h.ledgers.transports.FindTransportByID(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		updated := *existing
		if err := decodeJSON(r, &updated); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		updated.ID = existing.ID
		updated.BikeID = bike.ID.Hex()
		if err := h.ledgers.transports.UpdateTransport(r.Context(), entryID, updated); err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	default:
		http.Error(w, "Unknown ledger kind", http.StatusNotFound)
	}
}

// Delete removes a cost entry and echoes the removed document so the
// dashboard can confirm what was deleted.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ownerBike(r); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Bike not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load bike", http.StatusInternalServerError)
		return
	}
	entryID := r.PathValue("entry")

	switch r.PathValue("kind") {
	case kindParts:
		removed, err := h.ledgers.parts.DeletePart(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, removed)
	case kindServices:
		removed, err := h.ledgers.services.DeleteService(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, removed)
	case kindTransports:
		removed, err := h.ledgers.transports.DeleteTransport(r.Context(), entryID)
		if err != nil {
			h.entryError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, removed)
	default:
		http.Error(w, "Unknown ledger kind", http.StatusNotFound)
	}
}

func (h *LedgerHandler) entryError(w http.ResponseWriter, err error) {
	if errors.Is(err, db.ErrNotFound) {
		http.Error(w, "Cost entry not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Storage error", http.StatusInternalServerError)
}
