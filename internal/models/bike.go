package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bike represents one inventory unit tracked through the dealership
// pipeline. Dates are kept as the free-form strings the dashboard stores;
// date-keyed aggregations parse them and skip what does not parse.
type Bike struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID string             `bson:"company_id" json:"company_id"`

	Name         string  `bson:"name" json:"name"`
	Brand        string  `bson:"brand" json:"brand"`
	Model        string  `bson:"model" json:"model"`
	Year         int     `bson:"year" json:"year"`
	VIN          string  `bson:"vin" json:"vin"`
	Mileage      float64 `bson:"mileage" json:"mileage"`
	Color        string  `bson:"color" json:"color"`
	Displacement float64 `bson:"displacement" json:"displacement"` // in cc
	Horsepower   float64 `bson:"horsepower" json:"horsepower"`

	AcquisitionPrice  Amount `bson:"acquisition_price" json:"acquisition_price"`
	ProjectedHighSale Amount `bson:"projected_high_sale" json:"projected_high_sale"`
	ProjectedLowSale  Amount `bson:"projected_low_sale" json:"projected_low_sale"`
	ProjectedHighCost Amount `bson:"projected_high_cost" json:"projected_high_cost"`
	ProjectedLowCost  Amount `bson:"projected_low_cost" json:"projected_low_cost"`
	ProjectedCosts    Amount `bson:"projected_costs" json:"projected_costs"`

	ActualListPrice Amount  `bson:"actual_list_price" json:"actual_list_price"`
	ActualSalePrice *Amount `bson:"actual_sale_price,omitempty" json:"actual_sale_price,omitempty"`
	DateAcquired    string  `bson:"date_acquired" json:"date_acquired"`
	DateSold        string  `bson:"date_sold,omitempty" json:"date_sold,omitempty"`

	Stage string `bson:"stage" json:"stage"` // one of the six Stage values, stored casing not trusted

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsSold reports whether the bike has left the active inventory.
func (b Bike) IsSold() bool {
	return NormalizeStage(b.Stage) == StageSold
}
