package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"skillswap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review lookup comes up empty
	ErrReviewNotFound = errors.New("review not found")
	// ErrSelfReview is returned when a user reviews themselves
	ErrSelfReview = errors.New("you cannot review yourself")
	// ErrNotReviewer is returned when a caller mutates someone else's review
	ErrNotReviewer = errors.New("not the author of this review")
)

// ReviewService handles reviews and keeps the reviewee's denormalized
// rating fields current.
type ReviewService struct {
	Dynamo *DynamoService
	Users  *UserService
}

// ReviewPage is a paginated review listing
type ReviewPage struct {
	Items []models.Review `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// CreateReview stores a review and recomputes the reviewee's rating
func (rs *ReviewService) CreateReview(ctx context.Context, reviewerID string, review models.Review) (*models.Review, error) {
	if review.RevieweeID == reviewerID {
		return nil, ErrSelfReview
	}
	review.ReviewID = uuid.NewString()
	review.ReviewerID = reviewerID
	if review.Context == "" {
		review.Context = "general"
	}
	review.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := rs.Dynamo.PutItem(ctx, models.ReviewsTable, review); err != nil {
		return nil, err
	}
	if err := rs.RecomputeUserRating(ctx, review.RevieweeID); err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReview retrieves a review by id
func (rs *ReviewService) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	key := map[string]types.AttributeValue{
		"reviewId": &types.AttributeValueMemberS{Value: reviewID},
	}
	item, err := rs.Dynamo.GetItem(ctx, models.ReviewsTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	var review models.Review
	if err := attributevalue.UnmarshalMap(item, &review); err != nil {
		return nil, fmt.Errorf("failed to unmarshal review: %w", err)
	}
	return &review, nil
}

// listByReviewee fetches all reviews received by a user through the GSI
func (rs *ReviewService) listByReviewee(ctx context.Context, revieweeID string) ([]models.Review, error) {
	keyCondition := "revieweeId = :revieweeId"
	expressionValues := map[string]types.AttributeValue{
		":revieweeId": &types.AttributeValueMemberS{Value: revieweeID},
	}
	items, err := rs.Dynamo.QueryItemsWithIndex(ctx, models.ReviewsTable, models.RevieweeIndex, keyCondition, expressionValues, nil, 200)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	var reviews []models.Review
	if err := attributevalue.UnmarshalListOfMaps(items, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}
	return reviews, nil
}

// ListUserReviews pages through the reviews a user has received, newest first
func (rs *ReviewService) ListUserReviews(ctx context.Context, revieweeID string, page, limit int) (*ReviewPage, error) {
	reviews, err := rs.listByReviewee(ctx, revieweeID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	total := len(reviews)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	items := reviews[start:end]
	if items == nil {
		items = []models.Review{}
	}
	return &ReviewPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// UpdateReview lets the reviewer change rating/comment, then recomputes
func (rs *ReviewService) UpdateReview(ctx context.Context, reviewID, reviewerID string, rating int, comment *string) (*models.Review, error) {
	review, err := rs.GetReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != reviewerID {
		return nil, ErrNotReviewer
	}

	if rating != 0 {
		review.Rating = rating
	}
	if comment != nil {
		review.Comment = *comment
	}
	if err := rs.Dynamo.PutItem(ctx, models.ReviewsTable, *review); err != nil {
		return nil, err
	}
	if err := rs.RecomputeUserRating(ctx, review.RevieweeID); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review authored by reviewerID, then recomputes
func (rs *ReviewService) DeleteReview(ctx context.Context, reviewID, reviewerID string) error {
	review, err := rs.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.ReviewerID != reviewerID {
		return ErrNotReviewer
	}

	key := map[string]types.AttributeValue{
		"reviewId": &types.AttributeValueMemberS{Value: reviewID},
	}
	if err := rs.Dynamo.DeleteItem(ctx, models.ReviewsTable, key); err != nil {
		return err
	}
	return rs.RecomputeUserRating(ctx, review.RevieweeID)
}

// RecomputeUserRating recalculates the average and count of a user's
// received reviews and writes them back to the user record.
func (rs *ReviewService) RecomputeUserRating(ctx context.Context, userID string) error {
	reviews, err := rs.listByReviewee(ctx, userID)
	if err != nil {
		return err
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	average := 0.0
	if len(reviews) > 0 {
		average = float64(sum) / float64(len(reviews))
	}
	return rs.Users.SetRating(ctx, userID, average, len(reviews))
}
