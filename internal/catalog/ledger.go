package catalog

import (
	"slices"
	"time"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
)

const (
	MaxRating        = 5
	maxCommentLength = 500
)

// AddOrReplaceReview keeps at most one review per reviewer: an existing
// review of the reviewer is replaced in place, otherwise one is appended.
func (e *Exercise) AddOrReplaceReview(reviewerID string, rating int, comment string, at time.Time) error {
	if reviewerID == "" {
		return apperr.Invalid("reviewerId", "required")
	}
	if rating < 1 || rating > MaxRating {
		return apperr.Invalidf("rating", "must be between 1 and %d", MaxRating)
	}
	if len(comment) > maxCommentLength {
		return apperr.Invalidf("comment", "must not exceed %d characters", maxCommentLength)
	}

	review := Review{
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  at.UTC(),
	}
	if i := e.reviewIndex(reviewerID); i >= 0 {
		e.Reviews[i] = review
	} else {
		e.Reviews = append(e.Reviews, review)
	}

	e.recomputeRating()
	return nil
}

// RemoveReview drops the reviewer's review, if there is one.
func (e *Exercise) RemoveReview(reviewerID string) {
	if i := e.reviewIndex(reviewerID); i >= 0 {
		e.Reviews = slices.Delete(e.Reviews, i, i+1)
	}
	e.recomputeRating()
}

func (e *Exercise) IncrementUsage() {
	e.UsageCount++
}

func (e *Exercise) reviewIndex(reviewerID string) int {
	return slices.IndexFunc(e.Reviews, func(r Review) bool {
		return r.ReviewerID == reviewerID
	})
}

func (e *Exercise) recomputeRating() {
	if len(e.Reviews) == 0 {
		e.Rating = Rating{}
		return
	}
	sum := 0
	for _, r := range e.Reviews {
		sum += r.Rating
	}
	e.Rating = Rating{
		Average: float64(sum) / float64(len(e.Reviews)),
		Count:   len(e.Reviews),
	}
}
