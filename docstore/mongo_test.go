package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/KidawR/MainProgect/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a real server only when MONGO_TEST_URI is set.
func setupMongoStore(t *testing.T) (*MongoStore, *mongo.Database) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("cafe_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	store := NewMongoStore(db)
	require.NoError(t, store.EnsureIndexes(ctx))
	return store, db
}

func TestMongoStoreReviews(t *testing.T) {
	store, db := setupMongoStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertReview(ctx, &models.Review{CustomerID: 1, BranchID: 1, Rating: 5, Comment: "Отлично", Sentiment: 5, CreatedAt: time.Now().UTC()}))
	require.NoError(t, store.InsertReview(ctx, &models.Review{CustomerID: 2, BranchID: 2, Rating: 2, Sentiment: 2, CreatedAt: time.Now().UTC()}))

	branch := uint(1)
	reviews, err := store.FindReviews(ctx, &branch)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Отлично", reviews[0].Comment)

	// documents carry an _id in the collection, but reads strip it
	var raw bson.M
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	require.NoError(t, db.Collection(ReviewsCollection).FindOne(ctx, bson.M{"branch_id": 1}, opts).Decode(&raw))
	_, hasID := raw["_id"]
	assert.False(t, hasID)
}

func TestMongoStoreLogs(t *testing.T) {
	store, _ := setupMongoStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, store.InsertLog(ctx, &models.ActionLog{UserID: 0, Action: "add_customer", Details: map[string]any{"name": "Иван"}, Timestamp: base}))
	require.NoError(t, store.InsertLog(ctx, &models.ActionLog{UserID: 3, Action: "create_order", Details: map[string]any{"total": 25.0}, Timestamp: base.Add(time.Second)}))

	logs, err := store.FindLogs(ctx, models.LogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "create_order", logs[0].Action)
	assert.Equal(t, 25.0, logs[0].Details["total"])

	user := uint(0)
	logs, err = store.FindLogs(ctx, models.LogFilter{UserID: &user})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Иван", logs[0].Details["name"])
}
