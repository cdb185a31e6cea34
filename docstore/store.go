// Package docstore keeps customer reviews and the audit log in a document
// database.
package docstore

import (
	"context"

	"github.com/KidawR/MainProgect/models"
)

const (
	ReviewsCollection = "reviews"
	LogsCollection    = "logs"
)

type Store interface {
	InsertReview(ctx context.Context, review *models.Review) error
	// FindReviews returns all reviews, or only those of one branch when
	// branchID is set. Order is whatever the store returns.
	FindReviews(ctx context.Context, branchID *uint) ([]models.Review, error)
	InsertLog(ctx context.Context, entry *models.ActionLog) error
	// FindLogs returns log entries newest first.
	FindLogs(ctx context.Context, filter models.LogFilter) ([]models.ActionLog, error)
}
