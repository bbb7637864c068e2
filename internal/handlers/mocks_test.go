package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/moto-inventory/internal/db"
	"github.com/ukydev/moto-inventory/internal/models"
)

// fake cursors hand back preloaded slices without a database.

type fakeBikeCursor struct{ bikes []models.Bike }

func (c *fakeBikeCursor) All(ctx context.Context, out interface{}) error {
	*(out.(*[]models.Bike)) = c.bikes
	return nil
}
func (c *fakeBikeCursor) Close(ctx context.Context) error { return nil }

type fakePartCursor struct{ parts []models.Part }

func (c *fakePartCursor) All(ctx context.Context, out interface{}) error {
	*(out.(*[]models.Part)) = c.parts
	return nil
}
func (c *fakePartCursor) Close(ctx context.Context) error { return nil }

type fakeServiceCursor struct{ services []models.Service }

func (c *fakeServiceCursor) All(ctx context.Context, out interface{}) error {
	*(out.(*[]models.Service)) = c.services
	return nil
}
func (c *fakeServiceCursor) Close(ctx context.Context) error { return nil }

type fakeTransportCursor struct{ transports []models.Transport }

func (c *fakeTransportCursor) All(ctx context.Context, out interface{}) error {
	*(out.(*[]models.Transport)) = c.transports
	return nil
}
func (c *fakeTransportCursor) Close(ctx context.Context) error { return nil }

// MockBikeCollection is a mock implementation of db.BikeCollection
type MockBikeCollection struct {
	mock.Mock
}

func (m *MockBikeCollection) InsertBike(ctx context.Context, bike models.Bike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}

func (m *MockBikeCollection) FindBikes(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.BikeCursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.BikeCursor), args.Error(1)
}

func (m *MockBikeCollection) FindBikeByID(ctx context.Context, id string) (*models.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bike), args.Error(1)
}

func (m *MockBikeCollection) UpdateBike(ctx context.Context, id string, bike models.Bike) error {
	args := m.Called(ctx, id, bike)
	return args.Error(0)
}

func (m *MockBikeCollection) DeleteBike(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPartCollection is a mock implementation of db.PartCollection
type MockPartCollection struct {
	mock.Mock
}

func (m *MockPartCollection) InsertPart(ctx context.Context, part models.Part) error {
	args := m.Called(ctx, part)
	return args.Error(0)
}

func (m *MockPartCollection) FindParts(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.PartCursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.PartCursor), args.Error(1)
}

func (m *MockPartCollection) FindPartByID(ctx context.Context, id string) (*models.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Part), args.Error(1)
}

func (m *MockPartCollection) UpdatePart(ctx context.Context, id string, part models.Part) error {
	args := m.Called(ctx, id, part)
	return args.Error(0)
}

func (m *MockPartCollection) DeletePart(ctx context.Context, id string) (*models.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Part), args.Error(1)
}

func (m *MockPartCollection) DeletePartsByBike(ctx context.Context, bikeID string) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

// MockServiceCollection is a mock implementation of db.ServiceCollection
type MockServiceCollection struct {
	mock.Mock
}

func (m *MockServiceCollection) InsertService(ctx context.Context, service models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceCollection) FindServices(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.ServiceCursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.ServiceCursor), args.Error(1)
}

func (m *MockServiceCollection) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceCollection) UpdateService(ctx context.Context, id string, service models.Service) error {
	args := m.Called(ctx, id, service)
	return args.Error(0)
}

func (m *MockServiceCollection) DeleteService(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceCollection) DeleteServicesByBike(ctx context.Context, bikeID string) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

// MockTransportCollection is a mock implementation of db.TransportCollection
type MockTransportCollection struct {
	mock.Mock
}

func (m *MockTransportCollection) InsertTransport(ctx context.Context, transport models.Transport) error {
	args := m.Called(ctx, transport)
	return args.Error(0)
}

func (m *MockTransportCollection) FindTransports(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.TransportCursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(db.TransportCursor), args.Error(1)
}

func (m *MockTransportCollection) FindTransportByID(ctx context.Context, id string) (*models.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transport), args.Error(1)
}

func (m *MockTransportCollection) UpdateTransport(ctx context.Context, id string, transport models.Transport) error {
	args := m.Called(ctx, id, transport)
	return args.Error(0)
}

func (m *MockTransportCollection) DeleteTransport(ctx context.Context, id string) (*models.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transport), args.Error(1)
}

func (m *MockTransportCollection) DeleteTransportsByBike(ctx context.Context, bikeID string) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// emptyLedgerMocks returns ledger mocks that report no cost entries.
// The Find expectations are optional; entry-level writes touch only one
// collection and never load the full ledger.
func emptyLedgerMocks() (*MockPartCollection, *MockServiceCollection, *MockTransportCollection) {
	parts := new(MockPartCollection)
	parts.On("FindParts", mock.Anything, mock.Anything).Return(&fakePartCursor{}, nil).Maybe()
	services := new(MockServiceCollection)
	services.On("FindServices", mock.Anything, mock.Anything).Return(&fakeServiceCursor{}, nil).Maybe()
	transports := new(MockTransportCollection)
	transports.On("FindTransports", mock.Anything, mock.Anything).Return(&fakeTransportCursor{}, nil).Maybe()
	return parts, services, transports
}
