package models

import "time"

// Review lives in the document store. It has no relational constraints.
type Review struct {
	CustomerID uint      `bson:"customer_id" json:"customer_id"`
	BranchID   uint      `bson:"branch_id" json:"branch_id"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment" json:"comment"`
	Sentiment  int       `bson:"sentiment" json:"sentiment"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type NewReview struct {
	CustomerID uint   `json:"customer_id"`
	BranchID   uint   `json:"branch_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Sentiment  int    `json:"sentiment"`
}

// ActionLog is an append-only audit record. UserID 0 marks a system action.
type ActionLog struct {
	UserID    uint           `bson:"user_id" json:"user_id"`
	Action    string         `bson:"action" json:"action"`
	Details   map[string]any `bson:"details" json:"details"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
}

// LogFilter narrows an audit log query. Zero values match everything.
type LogFilter struct {
	UserID *uint
	Action string
	Limit  int64
}
