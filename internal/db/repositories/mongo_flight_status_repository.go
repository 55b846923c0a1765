package repositories

import (
	"context"

	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFlightStatusRepository implements FlightStatusRepository
type MongoFlightStatusRepository struct {
	collection *mongo.Collection
}

func NewMongoFlightStatusRepository(database *mongo.Database) *MongoFlightStatusRepository {
	return &MongoFlightStatusRepository{collection: database.Collection(db.CollectionFlightStatus)}
}

func (r *MongoFlightStatusRepository) FindAll(ctx context.Context) ([]entities.FlightStatus, error) {
	return findMany[entities.FlightStatus](ctx, r.collection, bson.M{})
}

func (r *MongoFlightStatusRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entities.FlightStatus, error) {
	return findOne[entities.FlightStatus](ctx, r.collection, bson.M{"flightNumber": flightNumber})
}

func (r *MongoFlightStatusRepository) FindByAirline(ctx context.Context, airline string) ([]entities.FlightStatus, error) {
	return findMany[entities.FlightStatus](ctx, r.collection, bson.M{"airline": airline})
}

func (r *MongoFlightStatusRepository) FindByRoute(ctx context.Context, origin, destination string) ([]entities.FlightStatus, error) {
	return findMany[entities.FlightStatus](ctx, r.collection, bson.M{"origin": origin, "destination": destination})
}

func (r *MongoFlightStatusRepository) FindByFlightNumberContaining(ctx context.Context, query string) ([]entities.FlightStatus, error) {
	return findMany[entities.FlightStatus](ctx, r.collection, bson.M{"flightNumber": containsPattern(query)})
}

func (r *MongoFlightStatusRepository) FindByLocationContaining(ctx context.Context, query string) ([]entities.FlightStatus, error) {
	pattern := containsPattern(query)
	return findMany[entities.FlightStatus](ctx, r.collection, bson.M{"$or": bson.A{
		bson.M{"origin": pattern},
		bson.M{"destination": pattern},
	}})
}

func (r *MongoFlightStatusRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoFlightStatusRepository) Save(ctx context.Context, status *entities.FlightStatus) error {
	if status.ID == "" {
		status.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, status)
		return err
	}
	return replaceOrInsert(ctx, r.collection, status.ID, status)
}

func (r *MongoFlightStatusRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, idFilter(id))
	return err
}

var _ FlightStatusRepository = (*MongoFlightStatusRepository)(nil)
