package masterdata

import (
	"context"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MasterDataMongoRepository struct {
	Collection *mongo.Collection
}

func NewMasterDataMongoRepository(db *mongo.Client, dbName string) contracts.MasterDataRepository {
	return &MasterDataMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMasterData),
	}
}

// FindNamesByCategoryAndIDs issues one batched lookup for the whole id set.
// Ids with no matching document are simply absent from the result; only a
// failing cursor is an error.
func (repo *MasterDataMongoRepository) FindNamesByCategoryAndIDs(ctx context.Context, category string, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	filter := bson.M{
		"category": category,
		"_id":      bson.M{"$in": ids},
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var entries []models.MasterDataEntry
	err = cursor.All(ctx, &entries)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	for _, entry := range entries {
		names[entry.ID] = entry.Name
	}
	return names, nil
}

func (repo *MasterDataMongoRepository) FindByCategory(ctx context.Context, category string, page, limit int) ([]models.MasterDataEntry, int64, error) {
	filter := bson.M{"category": category}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"name": 1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var entries []models.MasterDataEntry
	err = cursor.All(ctx, &entries)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, total, nil
}
