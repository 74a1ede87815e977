package repository

import (
	"context"
	"fmt"
)

// ReviewRepository wraps sp_add_review.
type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// AddReview calls sp_add_review. The procedure raises SQLSTATE P0001 with
// "Rating must be between 1 and 5" for a rating outside [1,5].
func (r *ReviewRepository) AddReview(ctx context.Context, customerID, productID int64, rating int, comment string) error {
	_, err := r.db.Exec(ctx, `CALL sp_add_review($1, $2, $3, $4)`, customerID, productID, rating, comment)
	if err != nil {
		return fmt.Errorf("sp_add_review: %w", err)
	}
	return nil
}
