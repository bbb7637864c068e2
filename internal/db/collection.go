package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/moto-inventory/internal/models"
)

// ErrNotFound is returned when an operation references an id that does
// not exist. Callers map it to a 404; nothing in this layer retries.
var ErrNotFound = errors.New("not found")

// BikeCollection defines the interface for bike inventory operations.
type BikeCollection interface {
	InsertBike(ctx context.Context, bike models.Bike) error
	FindBikes(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (BikeCursor, error)
	FindBikeByID(ctx context.Context, id string) (*models.Bike, error)
	UpdateBike(ctx context.Context, id string, bike models.Bike) error
	DeleteBike(ctx context.Context, id string) error
}

// BikeCursor defines the interface for bike cursor operations.
type BikeCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// PartCollection defines the interface for the parts ledger.
type PartCollection interface {
	InsertPart(ctx context.Context, part models.Part) error
	FindParts(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (PartCursor, error)
	FindPartByID(ctx context.Context, id string) (*models.Part, error)
	UpdatePart(ctx context.Context, id string, part models.Part) error
	DeletePart(ctx context.Context, id string) (*models.Part, error)
	DeletePartsByBike(ctx context.Context, bikeID string) error
}

// PartCursor defines the interface for part cursor operations.
type PartCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// ServiceCollection defines the interface for the services ledger.
type ServiceCollection interface {
	InsertService(ctx context.Context, service models.Service) error
	FindServices(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (ServiceCursor, error)
	FindServiceByID(ctx context.Context, id string) (*models.Service, error)
	UpdateService(ctx context.Context, id string, service models.Service) error
	DeleteService(ctx context.Context, id string) (*models.Service, error)
	DeleteServicesByBike(ctx context.Context, bikeID string) error
}

// ServiceCursor defines the interface for service cursor operations.
type ServiceCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// TransportCollection defines the interface for the transportation ledger.
type TransportCollection interface {
	InsertTransport(ctx context.Context, transport models.Transport) error
	FindTransports(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (TransportCursor, error)
	FindTransportByID(ctx context.Context, id string) (*models.Transport, error)
	UpdateTransport(ctx context.Context, id string, transport models.Transport) error
	DeleteTransport(ctx context.Context, id string) (*models.Transport, error)
	DeleteTransportsByBike(ctx context.Context, bikeID string) error
}

// TransportCursor defines the interface for transport cursor operations.
type TransportCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
