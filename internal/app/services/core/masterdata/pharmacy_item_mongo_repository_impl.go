package masterdata

import (
	"context"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PharmacyItemMongoRepository reads the legacy inventory collection. Part of
// the drug vocabulary predates the master-data catalog and only exists here,
// so the medicines chain falls back to this collection.
type PharmacyItemMongoRepository struct {
	Collection *mongo.Collection
}

func NewPharmacyItemMongoRepository(db *mongo.Client, dbName string) contracts.PharmacyItemRepository {
	return &PharmacyItemMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPharmacyItems),
	}
}

func (repo *PharmacyItemMongoRepository) FindNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var items []models.PharmacyItem
	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}
