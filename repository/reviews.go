package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
)

const (
	MinSentiment = 1
	MaxSentiment = 5
)

// AddReview stores a review in the document store. Sentiment outside
// [1,5] is rejected before anything is written. A failed write is
// returned, since the review is the operation itself.
func (r *Repository) AddReview(ctx context.Context, in models.NewReview) error {
	const op = "repository.AddReview"
	if in.Sentiment < MinSentiment || in.Sentiment > MaxSentiment {
		return errs.Validationf(op, "sentiment must be between %d and %d, got %d", MinSentiment, MaxSentiment, in.Sentiment)
	}

	review := models.Review{
		CustomerID: in.CustomerID,
		BranchID:   in.BranchID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Sentiment:  in.Sentiment,
		CreatedAt:  r.now().UTC(),
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.docs.InsertReview(ctx, &review); err != nil {
		r.log.WithField("op", op).WithError(err).Error("review not stored")
		return errs.Wrap(errs.Store, op, err)
	}

	r.record(in.CustomerID, "add_review", audit.Fields{
		"branch_id": in.BranchID,
		"rating":    in.Rating,
		"sentiment": in.Sentiment,
	})
	return nil
}

// GetReviews returns all reviews, or those of one branch.
func (r *Repository) GetReviews(ctx context.Context, branchID *uint) ([]models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	reviews, err := r.docs.FindReviews(ctx, branchID)
	if err != nil {
		return nil, errs.Wrap(errs.Store, "repository.GetReviews", err)
	}
	return reviews, nil
}

// LogAction appends a custom audit record. Delivery is best effort.
func (r *Repository) LogAction(userID uint, action string, details audit.Fields) {
	r.record(userID, action, details)
}

// GetLogs reads back the audit log, newest first.
func (r *Repository) GetLogs(ctx context.Context, filter models.LogFilter) ([]models.ActionLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	logs, err := r.docs.FindLogs(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(errs.Store, "repository.GetLogs", err)
	}
	return logs, nil
}
