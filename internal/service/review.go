package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/errs"
	"github.com/deppfellow/go-retail/internal/model"
)

// InvalidRatingCode is the error code returned for ratings outside 1..5.
const InvalidRatingCode = "INVALID_RATING"

// NewInvalidRatingError is the 400 returned for ratings outside 1..5. The
// message matches the one raised by sp_add_review.
func NewInvalidRatingError() *errs.HTTPError {
	code := InvalidRatingCode
	return errs.NewBadRequestError(
		fmt.Sprintf("Rating must be between %d and %d", model.MinRating, model.MaxRating),
		true,
		&code,
		[]errs.FieldError{{Field: "rating", Error: "must be between 1 and 5"}},
		nil,
	)
}

type AddReviewInput struct {
	CustomerID int64
	ProductID  int64
	Rating     int
	Comment    string
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// AddReview records a review after checking the rating bounds.
func (s *ReviewService) AddReview(ctx context.Context, in AddReviewInput) error {
	if !model.ValidRating(in.Rating) {
		return NewInvalidRatingError()
	}
	return s.repo.AddReview(ctx, in.CustomerID, in.ProductID, in.Rating, in.Comment)
}
