package cases

import (
	"context"
	"regexp"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"
	"optizen-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sortableColumns is the allow-list for client-supplied sort columns.
// Anything else falls back to created_at.
var sortableColumns = map[string]bool{
	"created_at":     true,
	"case_no":        true,
	"encounter_date": true,
	"status":         true,
}

type CaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCaseMongoRepository(db *mongo.Client, dbName string) contracts.CaseRepository {
	return &CaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCases),
	}
}

func (repo *CaseMongoRepository) FindAll(ctx context.Context, opts contracts.ListCasesOptions) ([]models.Case, int64, error) {
	filter := buildListCasesFilter(opts)

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(buildListCasesSort(opts)).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var caseModels []models.Case
	err = cursor.All(ctx, &caseModels)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return caseModels, total, nil
}

// Insert relies on the unique case_no index for conflict detection instead
// of a check-then-insert, so two concurrent creates with the same number
// cannot both succeed.
func (repo *CaseMongoRepository) Insert(ctx context.Context, caseModel *models.Case) error {
	_, err := repo.Collection.InsertOne(ctx, caseModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrCaseNumberAlreadyExists(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// buildListCasesFilter translates the list options into a Mongo filter. With
// no explicit status filter, cancelled cases are excluded; that is the
// soft-delete convention for encounters. Search is escaped against regex
// metacharacters and applies to the case number only.
func buildListCasesFilter(opts contracts.ListCasesOptions) bson.M {
	filter := bson.M{}

	if len(opts.Statuses) > 0 {
		filter["status"] = bson.M{"$in": opts.Statuses}
	} else {
		filter["status"] = bson.M{"$ne": constvars.CaseStatusCancelled}
	}

	if opts.PatientID != "" {
		filter["patient_id"] = opts.PatientID
	}

	if opts.Search != "" {
		filter["case_no"] = bson.M{
			"$regex":   regexp.QuoteMeta(opts.Search),
			"$options": "i",
		}
	}
	return filter
}

func buildListCasesSort(opts contracts.ListCasesOptions) bson.D {
	column := opts.SortBy
	if !sortableColumns[column] {
		column = constvars.DefaultSortBy
	}
	order := -1
	if opts.SortOrder == constvars.SortOrderAsc {
		order = 1
	}
	return bson.D{{Key: column, Value: order}}
}
