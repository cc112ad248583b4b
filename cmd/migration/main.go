package main

import (
	"context"
	"log"
	"time"

	"optizen-service/internal/app/config"
	"optizen-service/internal/app/drivers/database"
	"optizen-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the service relies on. The unique case_no index is
// what turns a concurrent duplicate create into a clean 409 instead of a
// second row.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(driverConfig.MongoDB.DbName)

	createIndexes(ctx, db.Collection(constvars.MongoCollectionCases), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "case_no", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
	})

	createIndexes(ctx, db.Collection(constvars.MongoCollectionMasterData), []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}},
	})

	log.Println("Successfully created indexes")
}

func createIndexes(ctx context.Context, collection *mongo.Collection, indexes []mongo.IndexModel) {
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Fatalf("Failed to create indexes for %s: %v", collection.Name(), err)
	}
}
