// internal/services/message_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/models"
	"github.com/codetrade/backend/internal/utils"
)

type MessageService struct {
	db *gorm.DB
}

type CreateMessageRequest struct {
	ProjectID  uint   `json:"projectId" validate:"required"`
	ReceiverID uint   `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required,max=5000"`
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) CreateMessage(senderID uint, req *CreateMessageRequest) (*models.Message, error) {
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

	message := &models.Message{
		ProjectID:  req.ProjectID,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

// GetProjectMessages lists a project's thread oldest-first with the sender
// projection.
func (s *MessageService) GetProjectMessages(projectID uint) ([]models.MessageWithSender, error) {
	var messages []models.Message
	err := s.db.Preload("Sender").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	result := make([]models.MessageWithSender, 0, len(messages))
	for _, m := range messages {
		result = append(result, models.MessageWithSender{
			Message: m,
			Sender:  m.Sender.Ref(),
		})
	}

	return result, nil
}
