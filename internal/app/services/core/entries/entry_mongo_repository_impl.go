package entries

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EntryMongoRepository struct {
	Collection *mongo.Collection
}

func NewEntryMongoRepository(db *mongo.Database) contracts.EntryRepository {
	return &EntryMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionEntries),
	}
}

func (repo *EntryMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "entryDate", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionEntries)
	}
	return nil
}

func (repo *EntryMongoRepository) UpsertEntry(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	filter := bson.M{
		"userId":    entry.UserID,
		"entryDate": entry.EntryDate,
		"category":  entry.Category,
	}
	update := bson.M{
		"$set": bson.M{
			"content":   entry.Content,
			"updatedAt": entry.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"createdAt": entry.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.Entry
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &saved, nil
}

func (repo *EntryMongoRepository) FindByDate(ctx context.Context, userID, entryDate string) ([]models.Entry, error) {
	return repo.find(ctx, bson.M{"userId": userID, "entryDate": entryDate})
}

func (repo *EntryMongoRepository) FindByRange(ctx context.Context, userID, from, to string) ([]models.Entry, error) {
	filter := bson.M{
		"userId":    userID,
		"entryDate": bson.M{"$gte": from, "$lte": to},
	}
	return repo.find(ctx, filter)
}

func (repo *EntryMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "entryDate", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (repo *EntryMongoRepository) DeleteEntry(ctx context.Context, userID, entryDate, category string) (bool, error) {
	filter := bson.M{
		"userId":    userID,
		"entryDate": entryDate,
		"category":  category,
	}
	result, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

// FindEntryDates returns the distinct dates, up to and including until, on which the
// user recorded anything.
func (repo *EntryMongoRepository) FindEntryDates(ctx context.Context, userID, until string) ([]string, error) {
	filter := bson.M{
		"userId":    userID,
		"entryDate": bson.M{"$lte": until},
	}
	values, err := repo.Collection.Distinct(ctx, "entryDate", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	dates := make([]string, 0, len(values))
	for _, value := range values {
		date, ok := value.(string)
		if !ok {
			return nil, exceptions.ErrMongoDBIterateDocuments(fmt.Errorf("unexpected entryDate type %T", value))
		}
		dates = append(dates, date)
	}
	return dates, nil
}
