package repositories

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// idFilter matches a document by string id. Documents written by older
// clients carry ObjectId keys, so a hex id matches either representation.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}

func idsFilter(ids []string) bson.M {
	values := make(bson.A, 0, len(ids)*2)
	for _, id := range ids {
		values = append(values, id)
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			values = append(values, oid)
		}
	}
	return bson.M{"_id": bson.M{"$in": values}}
}

// containsPattern is a case-insensitive literal substring match.
func containsPattern(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// replaceOrInsert overwrites the document with id, or inserts doc when no
// such document exists. _id is stripped from the replacement because it is
// immutable and may be stored as an ObjectId.
func replaceOrInsert(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return err
	}
	replacement := make(bson.D, 0, len(fields))
	for _, f := range fields {
		if f.Key != "_id" {
			replacement = append(replacement, f)
		}
	}

	result, err := coll.ReplaceOne(ctx, idFilter(id), replacement)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	_, err = coll.InsertOne(ctx, doc)
	return err
}
