package repositories

import (
	"context"
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/db"
	"travelbook/atlas/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	newestFirst = bson.D{{Key: "searchDateTime", Value: -1}, {Key: "_id", Value: -1}}
	oldestFirst = bson.D{{Key: "searchDateTime", Value: 1}, {Key: "_id", Value: 1}}
)

// MongoSearchHistoryRepository implements SearchHistoryRepository
type MongoSearchHistoryRepository struct {
	collection *mongo.Collection
}

func NewMongoSearchHistoryRepository(database *mongo.Database) *MongoSearchHistoryRepository {
	return &MongoSearchHistoryRepository{collection: database.Collection(db.CollectionSearchHistory)}
}

func (r *MongoSearchHistoryRepository) Save(ctx context.Context, history *entities.SearchHistory) error {
	if history.ID == "" {
		history.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, history)
		return err
	}
	return replaceOrInsert(ctx, r.collection, history.ID, history)
}

func (r *MongoSearchHistoryRepository) FindByUser(ctx context.Context, userID string, limit int) ([]entities.SearchHistory, error) {
	opts := options.Find().SetSort(newestFirst)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findMany[entities.SearchHistory](ctx, r.collection, bson.M{"userId": userID}, opts)
}

func (r *MongoSearchHistoryRepository) FindByUserAndType(ctx context.Context, userID string, searchType constants.SearchType) ([]entities.SearchHistory, error) {
	return findMany[entities.SearchHistory](ctx, r.collection,
		bson.M{"userId": userID, "searchType": searchType},
		options.Find().SetSort(newestFirst),
	)
}

func (r *MongoSearchHistoryRepository) FindSince(ctx context.Context, since time.Time) ([]entities.SearchHistory, error) {
	return findMany[entities.SearchHistory](ctx, r.collection,
		bson.M{"searchDateTime": bson.M{"$gte": since}},
		options.Find().SetSort(oldestFirst),
	)
}

func (r *MongoSearchHistoryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, idsFilter(ids))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoSearchHistoryRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

var _ SearchHistoryRepository = (*MongoSearchHistoryRepository)(nil)
