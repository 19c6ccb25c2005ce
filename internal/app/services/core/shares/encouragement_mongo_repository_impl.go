package shares

import (
	"context"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EncouragementMongoRepository struct {
	Collection *mongo.Collection
}

func NewEncouragementMongoRepository(db *mongo.Database) contracts.EncouragementRepository {
	return &EncouragementMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionEncouragements),
	}
}

func (repo *EncouragementMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err, constvars.MongoCollectionEncouragements)
	}
	return nil
}

func (repo *EncouragementMongoRepository) CreateEncouragement(ctx context.Context, encouragement *models.Encouragement) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, encouragement)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *EncouragementMongoRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Encouragement, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return repo.find(ctx, bson.M{"userId": userID}, opts)
}

func (repo *EncouragementMongoRepository) FindByUserID(ctx context.Context, userID string, page, pageSize int) ([]models.Encouragement, int, error) {
	filter := bson.M{"userId": userID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	items, err := repo.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (repo *EncouragementMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Encouragement, error) {
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Encouragement, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}
