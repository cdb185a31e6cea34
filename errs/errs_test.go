package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		in   error
		kind Kind
	}{
		{"record not found", gorm.ErrRecordNotFound, NotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), NotFound},
		{"duplicate key", gorm.ErrDuplicatedKey, Store},
		{"foreign key", gorm.ErrForeignKeyViolated, Store},
		{"deadline", context.DeadlineExceeded, Store},
		{"driver failure", errors.New("connection refused"), Store},
		{"already classified", Validationf("op", "bad"), Validation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromDB("repository.Test", tt.in)
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}

	assert.NoError(t, FromDB("op", nil))
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFoundf("repository.GetOrder", "order %d not found", 7))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "handler: repository.GetOrder: order 7 not found", err.Error())

	wrapped := Wrap(Store, "docstore.InsertReview", errors.New("timeout"))
	assert.ErrorIs(t, wrapped, ErrStore)
	assert.Equal(t, "docstore.InsertReview: store: timeout", wrapped.Error())
	assert.Equal(t, Other, KindOf(errors.New("plain")))
}
