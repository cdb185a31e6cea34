package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/docstore"
	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewSentimentRange(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()

	for v := -1; v <= 7; v++ {
		err := f.repo.AddReview(ctx, models.NewReview{
			CustomerID: 1,
			BranchID:   1,
			Rating:     5,
			Comment:    "Очень вкусно!",
			Sentiment:  v,
		})
		if v >= MinSentiment && v <= MaxSentiment {
			assert.NoError(t, err, "sentiment %d", v)
		} else {
			assert.ErrorIs(t, err, errs.ErrValidation, "sentiment %d", v)
		}
	}

	reviews, err := f.repo.GetReviews(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, reviews, 5)
	assert.False(t, reviews[0].CreatedAt.IsZero())
}

func TestGetReviewsByBranch(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, f.repo.AddReview(ctx, models.NewReview{CustomerID: 1, BranchID: 1, Rating: 5, Sentiment: 5}))
	require.NoError(t, f.repo.AddReview(ctx, models.NewReview{CustomerID: 2, BranchID: 2, Rating: 4, Sentiment: 3}))

	reviews, err := f.repo.GetReviews(ctx, ptr(uint(2)))
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 3, reviews[0].Sentiment)

	assert.Equal(t, []string{"add_review", "add_review"}, f.actions(t))
}

func TestAddReviewStoreFailure(t *testing.T) {
	f := setupRepository(t)
	f.docs.FailReviews(errors.New("mongo down"))

	err := f.repo.AddReview(context.Background(), models.NewReview{CustomerID: 1, BranchID: 1, Sentiment: 4})
	assert.ErrorIs(t, err, errs.ErrStore)
	assert.Empty(t, f.actions(t))
}

func TestLogActionGoesToDocumentStore(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()

	docs := docstore.NewMemoryStore()
	emitter := audit.NewEmitter(docs)
	defer emitter.Close(ctx)

	repo := New(f.db, docs, emitter)
	repo.LogAction(1, "delete_order", audit.Fields{"order_id": 1})
	require.NoError(t, emitter.Flush(ctx))

	logs, err := repo.GetLogs(ctx, models.LogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(1), logs[0].UserID)
	assert.Equal(t, "delete_order", logs[0].Action)
	assert.Equal(t, map[string]any{"order_id": 1}, logs[0].Details)
	assert.WithinDuration(t, time.Now(), logs[0].Timestamp, time.Minute)
}
