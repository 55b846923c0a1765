package repositories

import (
	"context"
	"testing"
	"time"

	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/models/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func rawKeys(t *testing.T, doc bson.Raw) []string {
	t.Helper()
	elems, err := doc.Elements()
	if err != nil {
		t.Fatalf("Failed to read document: %v", err)
	}
	keys := make([]string, 0, len(elems))
	for _, e := range elems {
		keys = append(keys, e.Key())
	}
	return keys
}

func TestMongoSearchHistoryRepository_FindByUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest first with id tie-break", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		at := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
		ns := mt.DB.Name() + ".search_history"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "h2"}, {Key: "userId", Value: "u1"}, {Key: "searchType", Value: "FLIGHT"}, {Key: "destination", Value: "Goa"}, {Key: "searchDateTime", Value: at}},
			bson.D{{Key: "_id", Value: "h1"}, {Key: "userId", Value: "u1"}, {Key: "searchType", Value: "HOTEL"}, {Key: "searchDateTime", Value: at}},
		))

		got, err := repo.FindByUser(context.Background(), "u1", 5)
		if err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}
		if len(got) != 2 || got[0].ID != "h2" || got[1].ID != "h1" {
			mt.Fatalf("Expected server order h2, h1, got %+v", got)
		}
		if got[0].Destination == nil || *got[0].Destination != "Goa" || got[1].Destination != nil {
			mt.Errorf("Expected optional destination decoded, got %v / %v", got[0].Destination, got[1].Destination)
		}
		if !got[0].SearchDateTime.Equal(at) {
			mt.Errorf("Expected %v, got %v", at, got[0].SearchDateTime)
		}

		cmd := mt.GetStartedEvent().Command
		sort := cmd.Lookup("sort").Document()
		if keys := rawKeys(mt.T, sort); len(keys) != 2 || keys[0] != "searchDateTime" || keys[1] != "_id" {
			mt.Errorf("Expected sort on searchDateTime then _id, got %v", keys)
		}
		if sort.Lookup("searchDateTime").AsInt64() != -1 || sort.Lookup("_id").AsInt64() != -1 {
			mt.Errorf("Expected descending sort, got %v", sort)
		}
		if cmd.Lookup("limit").AsInt64() != 5 {
			mt.Errorf("Expected limit 5, got %v", cmd.Lookup("limit"))
		}
		if cmd.Lookup("filter", "userId").StringValue() != "u1" {
			mt.Errorf("Expected userId filter, got %v", cmd.Lookup("filter"))
		}
	})

	mt.Run("unbounded when limit is zero", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".search_history", mtest.FirstBatch))

		got, err := repo.FindByUser(context.Background(), "u1", 0)
		if err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}
		if got == nil || len(got) != 0 {
			mt.Errorf("Expected empty non-nil slice, got %#v", got)
		}
		if _, err := mt.GetStartedEvent().Command.LookupErr("limit"); err == nil {
			mt.Error("Expected no limit on the find command")
		}
	})
}

func TestMongoSearchHistoryRepository_FindSinceAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("oldest first from cutoff", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".search_history", mtest.FirstBatch))

		if _, err := repo.FindSince(context.Background(), since); err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}

		cmd := mt.GetStartedEvent().Command
		if got := cmd.Lookup("filter", "searchDateTime", "$gte").Time(); !got.Equal(since) {
			mt.Errorf("Expected $gte %v, got %v", since, got)
		}
		sort := cmd.Lookup("sort").Document()
		if sort.Lookup("searchDateTime").AsInt64() != 1 || sort.Lookup("_id").AsInt64() != 1 {
			mt.Errorf("Expected ascending sort, got %v", sort)
		}
	})

	mt.Run("delete by ids reports count", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		oid := primitive.NewObjectID()
		deleted, err := repo.DeleteByIDs(context.Background(), []string{"h1", oid.Hex()})
		if err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}
		if deleted != 2 {
			mt.Errorf("Expected 2 deleted, got %d", deleted)
		}

		in, err := mt.GetStartedEvent().Command.Lookup("deletes", "0", "q", "_id", "$in").Array().Values()
		if err != nil {
			mt.Fatalf("Failed to read $in: %v", err)
		}
		if len(in) != 3 {
			mt.Errorf("Expected plain id plus both forms of the hex id, got %d values", len(in))
		}
	})

	mt.Run("no ids skips the round trip", func(mt *mtest.T) {
		repo := NewMongoSearchHistoryRepository(mt.DB)
		deleted, err := repo.DeleteByIDs(context.Background(), nil)
		if err != nil || deleted != 0 {
			mt.Errorf("Expected 0 and no error, got %d (err %v)", deleted, err)
		}
		if evt := mt.GetStartedEvent(); evt != nil {
			mt.Errorf("Expected no command, got %s", evt.CommandName)
		}
	})
}

func TestMongoTravelPackageRepository_SaveUpserts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	pkg := func(id string) *entities.TravelPackage {
		return &entities.TravelPackage{
			ID:          id,
			PackageName: "Goa Beach Paradise",
			Destination: "Goa",
			PackageType: constants.PackagePreBuilt,
			FlightIDs:   []string{},
			HotelIDs:    []string{},
		}
	}

	mt.Run("replaces an existing document", func(mt *mtest.T) {
		repo := NewMongoTravelPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		if err := repo.Save(context.Background(), pkg("pkg-1")); err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}

		evt := mt.GetStartedEvent()
		if evt.CommandName != "update" {
			mt.Fatalf("Expected update, got %s", evt.CommandName)
		}
		update := evt.Command.Lookup("updates", "0")
		if update.Document().Lookup("q", "_id").StringValue() != "pkg-1" {
			mt.Errorf("Expected replace by id, got %v", update)
		}
		if _, err := update.Document().LookupErr("u", "_id"); err == nil {
			mt.Error("Expected _id stripped from the replacement")
		}
		if update.Document().Lookup("u", "packageName").StringValue() != "Goa Beach Paradise" {
			mt.Errorf("Expected replacement fields, got %v", update)
		}
		if next := mt.GetStartedEvent(); next != nil {
			mt.Errorf("Expected no insert after a match, got %s", next.CommandName)
		}
	})

	mt.Run("inserts when nothing matched", func(mt *mtest.T) {
		repo := NewMongoTravelPackageRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateSuccessResponse(),
		)

		if err := repo.Save(context.Background(), pkg("pkg-new")); err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}

		if evt := mt.GetStartedEvent(); evt.CommandName != "update" {
			mt.Fatalf("Expected update first, got %s", evt.CommandName)
		}
		insert := mt.GetStartedEvent()
		if insert == nil || insert.CommandName != "insert" {
			mt.Fatalf("Expected insert after no match, got %v", insert)
		}
		if id := insert.Command.Lookup("documents", "0", "_id").StringValue(); id != "pkg-new" {
			mt.Errorf("Expected inserted id pkg-new, got %q", id)
		}
	})

	mt.Run("new package gets an id", func(mt *mtest.T) {
		repo := NewMongoTravelPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := pkg("")
		if err := repo.Save(context.Background(), p); err != nil {
			mt.Fatalf("Expected no error, got %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(p.ID); err != nil {
			mt.Errorf("Expected hex ObjectId, got %q", p.ID)
		}
		if evt := mt.GetStartedEvent(); evt.CommandName != "insert" {
			mt.Errorf("Expected direct insert, got %s", evt.CommandName)
		}
	})
}

func TestMongoFlightRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ObjectId key decodes as hex", func(mt *mtest.T) {
		repo := NewMongoFlightRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".flights", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "flightName", Value: "Air India"}, {Key: "price", Value: 300.0}},
		))

		flight, err := repo.FindByID(context.Background(), oid.Hex())
		if err != nil || flight == nil {
			mt.Fatalf("Expected flight, got %v (err %v)", flight, err)
		}
		if flight.ID != oid.Hex() || flight.FlightName != "Air India" {
			mt.Errorf("Expected hex id and name, got %+v", flight)
		}

		in, err := mt.GetStartedEvent().Command.Lookup("filter", "_id", "$in").Array().Values()
		if err != nil || len(in) != 2 {
			mt.Fatalf("Expected both id forms in filter, got %v (err %v)", in, err)
		}
		if in[0].StringValue() != oid.Hex() || in[1].ObjectID() != oid {
			mt.Errorf("Expected string then ObjectId, got %v", in)
		}
	})

	mt.Run("string key and not found", func(mt *mtest.T) {
		repo := NewMongoFlightRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".flights", mtest.FirstBatch))

		flight, err := repo.FindByID(context.Background(), "flight-1")
		if err != nil || flight != nil {
			mt.Errorf("Expected nil for missing flight, got %v (err %v)", flight, err)
		}
		if id := mt.GetStartedEvent().Command.Lookup("filter", "_id").StringValue(); id != "flight-1" {
			mt.Errorf("Expected equality filter, got %q", id)
		}
	})
}
