// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/models"
	"github.com/codetrade/backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	ProjectID uint   `json:"projectId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty"`
}

// ErrNotPurchased marks the review business rule violation so handlers can
// map it to 403.
var ErrNotPurchased = errors.New("you must purchase the project to review it")

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview inserts the review and recomputes the project's aggregate
// rating and review count in the same transaction. The rating becomes the
// arithmetic mean of all review ratings rounded to two decimals.
func (s *ReviewService) CreateReview(buyerID uint, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var purchaseCount int64
	if err := s.db.Model(&models.Purchase{}).
		Where("buyer_id = ? AND project_id = ?", buyerID, req.ProjectID).
		Count(&purchaseCount).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if purchaseCount == 0 {
		return nil, ErrNotPurchased
	}

	review := &models.Review{
		ProjectID: req.ProjectID,
		BuyerID:   buyerID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var stats struct {
			Avg   float64
			Count int64
		}
		if err := tx.Model(&models.Review{}).
			Where("project_id = ?", req.ProjectID).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Scan(&stats).Error; err != nil {
			return fmt.Errorf("failed to aggregate ratings: %w", err)
		}

		rating := math.Round(stats.Avg*100) / 100
		if err := tx.Model(&models.Project{}).
			Where("id = ?", req.ProjectID).
			Updates(map[string]interface{}{
				"rating":       rating,
				"review_count": stats.Count,
			}).Error; err != nil {
			return fmt.Errorf("failed to update project rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetProjectReviews lists a project's reviews newest-first with the buyer
// projection.
func (s *ReviewService) GetProjectReviews(projectID uint) ([]models.ReviewWithBuyer, error) {
	var reviews []models.Review
	err := s.db.Preload("Buyer").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	result := make([]models.ReviewWithBuyer, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, models.ReviewWithBuyer{
			Review: r,
			Buyer:  r.Buyer.Ref(),
		})
	}

	return result, nil
}
