// internal/services/purchase_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/config"
	"github.com/codetrade/backend/internal/models"
	"github.com/codetrade/backend/internal/utils"
)

type PurchaseService struct {
	db            *gorm.DB
	cfg           *config.Config
	gateway       PaymentGateway
	notifications *NotificationService
}

type CreatePaymentIntentRequest struct {
	ProjectID uint `json:"projectId" validate:"required"`
}

type ConfirmPurchaseRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	ProjectID       uint   `json:"projectId" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ConfirmPurchaseResponse struct {
	Purchase    *models.Purchase `json:"purchase"`
	DownloadURL string           `json:"downloadUrl"`
}

func NewPurchaseService(db *gorm.DB, cfg *config.Config, gateway PaymentGateway, notifications *NotificationService) *PurchaseService {
	return &PurchaseService{
		db:            db,
		cfg:           cfg,
		gateway:       gateway,
		notifications: notifications,
	}
}

// MinorUnits converts a decimal price into minor currency units for the
// payment provider: round(price * 100).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *PurchaseService) CreatePaymentIntent(buyerID uint, req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
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

	existing, err := s.GetPurchase(buyerID, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("project already purchased")
	}

	intent, err := s.gateway.CreateIntent(MinorUnits(project.Price), s.cfg.Payment.Currency, map[string]string{
		"project_id": strconv.FormatUint(uint64(project.ID), 10),
		"buyer_id":   strconv.FormatUint(uint64(buyerID), 10),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// ConfirmPurchase re-checks the payment status with the gateway, then
// inserts the purchase row and increments the project's download counter in
// one transaction. The composite unique index on (buyer_id, project_id)
// turns a concurrent duplicate into an error instead of a second row.
func (s *PurchaseService) ConfirmPurchase(buyerID uint, req *ConfirmPurchaseRequest) (*ConfirmPurchaseResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	intent, err := s.gateway.Retrieve(req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	if intent.Status != IntentStatusSucceeded {
		return nil, errors.New("payment not completed")
	}

	var project models.Project
	if err := s.db.First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("project not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	purchase := &models.Purchase{
		BuyerID:               buyerID,
		ProjectID:             project.ID,
		Amount:                project.Price,
		StripePaymentIntentID: req.PaymentIntentID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("project already purchased")
			}
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).
			UpdateColumn("downloads", gorm.Expr("downloads + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to increment downloads: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		go func() {
			if err := s.notifications.SendPurchaseConfirmation(buyerID, &project, purchase); err != nil {
				logrus.WithError(err).Warn("Failed to send purchase confirmation")
			}
		}()
	}

	return &ConfirmPurchaseResponse{
		Purchase:    purchase,
		DownloadURL: project.CodeFileURL,
	}, nil
}

// GetPurchase returns the buyer's purchase of the project, or nil when the
// buyer has not bought it.
func (s *PurchaseService) GetPurchase(buyerID, projectID uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := s.db.Where("buyer_id = ? AND project_id = ?", buyerID, projectID).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &purchase, nil
}

// GetUserPurchases lists the buyer's purchases newest-first with the
// project projection.
func (s *PurchaseService) GetUserPurchases(buyerID uint) ([]models.PurchaseWithProject, error) {
	var purchases []models.Purchase
	err := s.db.Preload("Project").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}

	result := make([]models.PurchaseWithProject, 0, len(purchases))
	for _, p := range purchases {
		var ref *models.PurchaseProjectRef
		if p.Project != nil {
			ref = &models.PurchaseProjectRef{
				ID:              p.Project.ID,
				Title:           p.Project.Title,
				Description:     p.Project.Description,
				PreviewImageURL: p.Project.PreviewImageURL,
				CodeFileURL:     p.Project.CodeFileURL,
			}
		}
		result = append(result, models.PurchaseWithProject{
			Purchase: p,
			Project:  ref,
		})
	}

	return result, nil
}
