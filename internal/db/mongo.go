package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared by the Mongo repositories.
const (
	CollectionFlights       = "flights"
	CollectionHotels        = "hotels"
	CollectionFlightStatus  = "flight_status"
	CollectionPackages      = "travel_packages"
	CollectionSearchHistory = "search_history"
)

// NewMongoClient connects to MongoDB and returns the client and database
func NewMongoClient(ctx context.Context, uri, database, username, password string) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(uri)

	if username != "" && password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the secondary indexes the repositories query on.
// flight_status.flightNumber is intentionally not unique.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionFlights: {
			{Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}}},
			{Keys: bson.M{"flightName": 1}},
		},
		CollectionHotels: {
			{Keys: bson.M{"location": 1}},
		},
		CollectionFlightStatus: {
			{Keys: bson.M{"flightNumber": 1}},
			{Keys: bson.M{"airline": 1}},
			{Keys: bson.D{{Key: "origin", Value: 1}, {Key: "destination", Value: 1}}},
		},
		CollectionPackages: {
			{Keys: bson.M{"packageType": 1}},
			{Keys: bson.M{"discountedPrice": 1}},
			{Keys: bson.M{"isActive": 1}},
		},
		CollectionSearchHistory: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "searchDateTime", Value: -1}}},
			{Keys: bson.M{"searchDateTime": -1}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
