package docstore

import (
	"context"

	"github.com/KidawR/MainProgect/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	reviews *mongo.Collection
	logs    *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		reviews: db.Collection(ReviewsCollection),
		logs:    db.Collection(LogsCollection),
	}
}

// EnsureIndexes creates the indexes used by the read paths. Creating an
// index that already exists is a no-op in MongoDB.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "branch_id", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = s.logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	return err
}

func (s *MongoStore) InsertReview(ctx context.Context, review *models.Review) error {
	_, err := s.reviews.InsertOne(ctx, review)
	return err
}

func (s *MongoStore) FindReviews(ctx context.Context, branchID *uint) ([]models.Review, error) {
	filter := bson.M{}
	if branchID != nil {
		filter["branch_id"] = *branchID
	}

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := s.reviews.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *MongoStore) InsertLog(ctx context.Context, entry *models.ActionLog) error {
	_, err := s.logs.InsertOne(ctx, entry)
	return err
}

func (s *MongoStore) FindLogs(ctx context.Context, filter models.LogFilter) ([]models.ActionLog, error) {
	query := bson.M{}
	if filter.UserID != nil {
		query["user_id"] = *filter.UserID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := s.logs.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	logs := []models.ActionLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
