package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/moto-inventory/internal/models"
)

// InsertPart inserts a parts ledger entry.
func (c *MongoCollection) InsertPart(ctx context.Context, part models.Part) error {
	part.CreatedAt = time.Now()
	part.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, part)
	return err
}

// FindParts queries parts ledger entries.
func (c *MongoCollection) FindParts(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (PartCursor, error) {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoPartCursor{cursor: cursor}, nil
}

// FindPartByID finds a parts entry by its ID.
func (c *MongoCollection) FindPartByID(ctx context.Context, id string) (*models.Part, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var part models.Part
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&part)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &part, nil
}

// UpdatePart updates a parts entry by its ID.
func (c *MongoCollection) UpdatePart(ctx context.Context, id string, part models.Part) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	part.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": part})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePart removes a parts entry and returns the removed document.
// Find-and-delete is a single atomic operation, so a concurrent
// summation never sees a half-deleted entry.
func (c *MongoCollection) DeletePart(ctx context.Context, id string) (*models.Part, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var part models.Part
	err = c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&part)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &part, nil
}

// DeletePartsByBike removes every parts entry owned by a bike.
func (c *MongoCollection) DeletePartsByBike(ctx context.Context, bikeID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"bike_id": bikeID})
	return err
}

// InsertService inserts a services ledger entry.
func (c *MongoCollection) InsertService(ctx context.Context, service models.Service) error {
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, service)
	return err
}

// FindServices queries services ledger entries.
func (c *MongoCollection) FindServices(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (ServiceCursor, error) {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoServiceCursor{cursor: cursor}, nil
}

// FindServiceByID finds a services entry by its ID.
func (c *MongoCollection) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var service models.Service
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// UpdateService updates a services entry by its ID.
func (c *MongoCollection) UpdateService(ctx context.Context, id string, service models.Service) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	service.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": service})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService removes a services entry and returns the removed document.
func (c *MongoCollection) DeleteService(ctx context.Context, id string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var service models.Service
	err = c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// DeleteServicesByBike removes every services entry owned by a bike.
func (c *MongoCollection) DeleteServicesByBike(ctx context.Context, bikeID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"bike_id": bikeID})
	return err
}

// InsertTransport inserts a transportation ledger entry.
func (c *MongoCollection) InsertTransport(ctx context.Context, transport models.Transport) error {
	transport.CreatedAt = time.Now()
	transport.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, transport)
	return err
}

// FindTransports queries transportation ledger entries.
func (c *MongoCollection) FindTransports(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (TransportCursor, error) {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoTransportCursor{cursor: cursor}, nil
}

// FindTransportByID finds a transportation entry by its ID.
func (c *MongoCollection) FindTransportByID(ctx context.Context, id string) (*models.Transport, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var transport models.Transport
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&transport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &transport, nil
}

// UpdateTransport updates a transportation entry by its ID.
func (c *MongoCollection) UpdateTransport(ctx context.Context, id string, transport models.Transport) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	transport.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": transport})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTransport removes a transportation entry and returns the removed
// document.
func (c *MongoCollection) DeleteTransport(ctx context.Context, id string) (*models.Transport, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var transport models.Transport
	err = c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&transport)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &transport, nil
}

// DeleteTransportsByBike removes every transportation entry owned by a bike.
func (c *MongoCollection) DeleteTransportsByBike(ctx context.Context, bikeID string) error {
	_, err := c.Collection.DeleteMany(ctx, bson.M{"bike_id": bikeID})
	return err
}

// Cursor implementations
type mongoPartCursor struct {
	cursor *mongo.Cursor
}

func (c *mongoPartCursor) All(ctx context.Context, out interface{}) error {
	return c.cursor.All(ctx, out)
}

func (c *mongoPartCursor) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}

type mongoServiceCursor struct {
	cursor *mongo.Cursor
}

func (c *mongoServiceCursor) All(ctx context.Context, out interface{}) error {
	return c.cursor.All(ctx, out)
}

func (c *mongoServiceCursor) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}

type mongoTransportCursor struct {
	cursor *mongo.Cursor
}

func (c *mongoTransportCursor) All(ctx context.Context, out interface{}) error {
	return c.cursor.All(ctx, out)
}

func (c *mongoTransportCursor) Close(ctx context.Context) error {
	return c.cursor.Close(ctx)
}
