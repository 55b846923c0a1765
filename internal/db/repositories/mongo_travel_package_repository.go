package repositories

import (
	"context"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTravelPackageRepository implements TravelPackageRepository
type MongoTravelPackageRepository struct {
	collection *mongo.Collection
}

func NewMongoTravelPackageRepository(database *mongo.Database) *MongoTravelPackageRepository {
	return &MongoTravelPackageRepository{collection: database.Collection(db.CollectionPackages)}
}

func (r *MongoTravelPackageRepository) FindByID(ctx context.Context, id string) (*entities.TravelPackage, error) {
	return findOne[entities.TravelPackage](ctx, r.collection, idFilter(id))
}

func (r *MongoTravelPackageRepository) FindActive(ctx context.Context) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{"isActive": true})
}

func (r *MongoTravelPackageRepository) FindByDestinationContaining(ctx context.Context, destination string) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{"destination": containsPattern(destination)})
}

func (r *MongoTravelPackageRepository) FindByType(ctx context.Context, packageType constants.PackageType) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{"packageType": packageType})
}

func (r *MongoTravelPackageRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{
		"discountedPrice": bson.M{"$gte": minPrice, "$lte": maxPrice},
	})
}

func (r *MongoTravelPackageRepository) FindByDurationRange(ctx context.Context, minDuration, maxDuration int) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{
		"duration": bson.M{"$gte": minDuration, "$lte": maxDuration},
	})
}

func (r *MongoTravelPackageRepository) FindByNameContaining(ctx context.Context, name string) ([]entities.TravelPackage, error) {
	return findMany[entities.TravelPackage](ctx, r.collection, bson.M{"packageName": containsPattern(name)})
}

func (r *MongoTravelPackageRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoTravelPackageRepository) Save(ctx context.Context, pkg *entities.TravelPackage) error {
	if pkg.ID == "" {
		pkg.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, pkg)
		return err
	}
	return replaceOrInsert(ctx, r.collection, pkg.ID, pkg)
}

func (r *MongoTravelPackageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, idFilter(id))
	return err
}

var _ TravelPackageRepository = (*MongoTravelPackageRepository)(nil)
