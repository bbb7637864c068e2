package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CostFields carries the fields shared by every ledger entry variant.
type CostFields struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BikeID      string             `bson:"bike_id" json:"bike_id"`
	Cost        Amount             `bson:"cost" json:"cost"`
	Date        string             `bson:"date" json:"date"`
	PaymentType string             `bson:"payment_type" json:"payment_type"` // "cash", "card", "check", "financing"
	Notes       string             `bson:"notes" json:"notes"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// EntryCost returns the entry's cost as a plain float for summation.
func (c CostFields) EntryCost() float64 {
	return float64(c.Cost)
}

// Part is a parts purchase recorded against a bike.
type Part struct {
	CostFields `bson:",inline"`
	Category   string `bson:"category" json:"category"`
	Condition  string `bson:"condition" json:"condition"` // "new", "used", "refurbished"
	Supplier   string `bson:"supplier" json:"supplier"`
}

// Service is a service job recorded against a bike. In-house jobs carry
// hours and technician, out-sourced jobs carry the provider.
type Service struct {
	CostFields      `bson:",inline"`
	ServiceLocation string  `bson:"service_location" json:"service_location"` // "In-House" or "Out-Sourced"
	Hours           float64 `bson:"hours,omitempty" json:"hours,omitempty"`
	Technician      string  `bson:"technician,omitempty" json:"technician,omitempty"`
	ServiceProvider string  `bson:"service_provider,omitempty" json:"service_provider,omitempty"`
}

// Transport is a transportation event recorded against a bike.
type Transport struct {
	CostFields `bson:",inline"`
	Type       string `bson:"type" json:"type"` // "delivery", "pickup", "transfer"
	Location   string `bson:"location" json:"location"`
	Company    string `bson:"company" json:"company"`
}
