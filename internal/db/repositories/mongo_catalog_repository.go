package repositories

import (
	"context"

	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

func NewMongoFlightRepository(database *mongo.Database) *MongoFlightRepository {
	return &MongoFlightRepository{collection: database.Collection(db.CollectionFlights)}
}

func (r *MongoFlightRepository) FindByID(ctx context.Context, id string) (*entities.Flight, error) {
	return findOne[entities.Flight](ctx, r.collection, idFilter(id))
}

func (r *MongoFlightRepository) FindAll(ctx context.Context) ([]entities.Flight, error) {
	return findMany[entities.Flight](ctx, r.collection, bson.M{})
}

func (r *MongoFlightRepository) FindByRoute(ctx context.Context, from, to string) ([]entities.Flight, error) {
	return findMany[entities.Flight](ctx, r.collection, bson.M{"from": from, "to": to})
}

func (r *MongoFlightRepository) FindByLocationContaining(ctx context.Context, location string) ([]entities.Flight, error) {
	pattern := containsPattern(location)
	return findMany[entities.Flight](ctx, r.collection, bson.M{"$or": bson.A{
		bson.M{"from": pattern},
		bson.M{"to": pattern},
	}})
}

func (r *MongoFlightRepository) FindByNameContaining(ctx context.Context, name string) ([]entities.Flight, error) {
	return findMany[entities.Flight](ctx, r.collection, bson.M{"flightName": containsPattern(name)})
}

func (r *MongoFlightRepository) Save(ctx context.Context, flight *entities.Flight) error {
	if flight.ID == "" {
		flight.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, flight)
		return err
	}
	return replaceOrInsert(ctx, r.collection, flight.ID, flight)
}

// MongoHotelRepository implements HotelRepository
type MongoHotelRepository struct {
	collection *mongo.Collection
}

func NewMongoHotelRepository(database *mongo.Database) *MongoHotelRepository {
	return &MongoHotelRepository{collection: database.Collection(db.CollectionHotels)}
}

func (r *MongoHotelRepository) FindByID(ctx context.Context, id string) (*entities.Hotel, error) {
	return findOne[entities.Hotel](ctx, r.collection, idFilter(id))
}

func (r *MongoHotelRepository) FindAll(ctx context.Context) ([]entities.Hotel, error) {
	return findMany[entities.Hotel](ctx, r.collection, bson.M{})
}

func (r *MongoHotelRepository) FindByLocationContaining(ctx context.Context, location string) ([]entities.Hotel, error) {
	return findMany[entities.Hotel](ctx, r.collection, bson.M{"location": containsPattern(location)})
}

func (r *MongoHotelRepository) Save(ctx context.Context, hotel *entities.Hotel) error {
	if hotel.ID == "" {
		hotel.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, hotel)
		return err
	}
	return replaceOrInsert(ctx, r.collection, hotel.ID, hotel)
}

var (
	_ FlightRepository = (*MongoFlightRepository)(nil)
	_ HotelRepository  = (*MongoHotelRepository)(nil)
)
