// internal/services/project_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/models"
	"github.com/codetrade/backend/internal/utils"
)

type ProjectService struct {
	db           *gorm.DB
	verification VerificationService
}

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=255"`
	Description     string   `json:"description" validate:"required,min=10"`
	Price           float64  `json:"price" validate:"required,min=0.01"`
	Category        string   `json:"category" validate:"required,max=100"`
	Technologies    []string `json:"technologies"`
	CodeFileURL     string   `json:"code_file_url" validate:"required"`
	PreviewImageURL string   `json:"preview_image_url,omitempty"`
}

// ProjectFilters are combined with logical AND when both are present.
type ProjectFilters struct {
	Category string
	SellerID *uint
}

func NewProjectService(db *gorm.DB, verification VerificationService) *ProjectService {
	return &ProjectService{
		db:           db,
		verification: verification,
	}
}

// CreateProject inserts the listing with verified=false and schedules the
// verification side effect. The caller gets the row back immediately,
// without waiting for verification.
func (s *ProjectService) CreateProject(sellerID uint, req *CreateProjectRequest) (*models.Project, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var seller models.User
	if err := s.db.First(&seller, sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("seller not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	project := &models.Project{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Category:        req.Category,
		Technologies:    req.Technologies,
		SellerID:        sellerID,
		PreviewImageURL: req.PreviewImageURL,
		CodeFileURL:     req.CodeFileURL,
		Verified:        false,
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if s.verification != nil {
		s.verification.Enqueue(project.ID)
	}

	return project, nil
}

// GetProjects lists projects newest-first with the seller projection,
// optionally filtered by category and/or seller.
func (s *ProjectService) GetProjects(filters ProjectFilters) ([]models.ProjectWithSeller, error) {
	query := s.db.Model(&models.Project{}).Preload("Seller")

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.SellerID != nil {
		query = query.Where("seller_id = ?", *filters.SellerID)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	result := make([]models.ProjectWithSeller, 0, len(projects))
	for _, p := range projects {
		result = append(result, models.ProjectWithSeller{
			Project: p,
			Seller:  p.Seller.Ref(),
		})
	}

	return result, nil
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("project not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) GetProjectWithSeller(id uint) (*models.ProjectWithSeller, error) {
	var project models.Project
	if err := s.db.Preload("Seller").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("project not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &models.ProjectWithSeller{
		Project: project,
		Seller:  project.Seller.Ref(),
	}, nil
}

// MarkVerified flips the verified flag. The update is idempotent; the flag
// never reverts.
func (s *ProjectService) MarkVerified(id uint) error {
	result := s.db.Model(&models.Project{}).Where("id = ?", id).Update("verified", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark project verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("project not found")
	}
	return nil
}
