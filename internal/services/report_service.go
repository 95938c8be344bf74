// internal/services/report_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/models"
	"github.com/codetrade/backend/internal/utils"
)

type ReportService struct {
	db *gorm.DB
}

type CreateReportRequest struct {
	ProjectID   uint   `json:"projectId" validate:"required"`
	Reason      string `json:"reason" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
}

type UpdateReportStatusRequest struct {
	Status models.ReportStatus `json:"status" validate:"required"`
}

var ErrNotReportOwner = errors.New("you can only update reports against your own projects")

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport files an abuse report. The seller id is denormalized from
// the reported project server-side, never taken from the client.
func (s *ReportService) CreateReport(reporterID uint, req *CreateReportRequest) (*models.Report, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("project not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	report := &models.Report{
		ProjectID:   req.ProjectID,
		ReporterID:  reporterID,
		SellerID:    project.SellerID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}

	if err := s.db.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

// GetSellerReports lists reports filed against the seller's projects,
// newest-first, with project and reporter projections.
func (s *ReportService) GetSellerReports(sellerID uint) ([]models.ReportWithDetails, error) {
	var reports []models.Report
	err := s.db.Preload("Project").Preload("Reporter").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}

	result := make([]models.ReportWithDetails, 0, len(reports))
	for _, r := range reports {
		var projectRef *models.ReportProjectRef
		if r.Project != nil {
			projectRef = &models.ReportProjectRef{ID: r.Project.ID, Title: r.Project.Title}
		}
		result = append(result, models.ReportWithDetails{
			Report:   r,
			Project:  projectRef,
			Reporter: r.Reporter.Ref(),
		})
	}

	return result, nil
}

// UpdateReportStatus lets the owning seller resolve or dismiss a report
// against one of their projects.
func (s *ReportService) UpdateReportStatus(reportID, sellerID uint, req *UpdateReportStatusRequest) (*models.Report, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Status.Valid() || req.Status == models.ReportStatusPending {
		return nil, errors.New("status must be resolved or dismissed")
	}

	var report models.Report
	if err := s.db.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("report not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if report.SellerID != sellerID {
		return nil, ErrNotReportOwner
	}

	if err := s.db.Model(&report).Update("status", req.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return &report, nil
}
