// internal/services/notification_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/config"
	"github.com/codetrade/backend/internal/models"
)

// NotificationService sends transactional emails. With no SMTP host
// configured it degrades to a no-op; notification failures are never
// allowed to fail the triggering request.
type NotificationService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewNotificationService(db *gorm.DB, cfg *config.Config) *NotificationService {
	return &NotificationService{
		db:  db,
		cfg: cfg,
	}
}

const purchaseConfirmationTemplate = `
<h2>Thanks for your purchase, {{.BuyerName}}!</h2>
<p>You now own <strong>{{.ProjectTitle}}</strong> for ${{printf "%.2f" .Amount}}.</p>
<p><a href="{{.DashboardURL}}">Open your dashboard</a> to download the code.</p>
`

func (s *NotificationService) SendPurchaseConfirmation(buyerID uint, project *models.Project, purchase *models.Purchase) error {
	if s.cfg.Email.SMTPHost == "" {
		logrus.Debug("SMTP not configured, skipping purchase confirmation email")
		return nil
	}

	var buyer models.User
	if err := s.db.First(&buyer, buyerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("buyer not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	data := map[string]interface{}{
		"BuyerName":    buyer.FullName,
		"ProjectTitle": project.Title,
		"Amount":       purchase.Amount,
		"DashboardURL": s.cfg.Frontend.BaseURL + "/dashboard",
	}

	subject := "Purchase Confirmation - " + project.Title
	body, err := s.renderTemplate(purchaseConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(buyer.Email, subject, body)
}

func (s *NotificationService) renderTemplate(tmpl string, data map[string]interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	addr := s.cfg.Email.SMTPHost + ":" + s.cfg.Email.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.Email.SMTPUsername, s.cfg.Email.SMTPPassword, s.cfg.Email.SMTPHost)

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.Email.FromName, s.cfg.Email.FromEmail, to, subject, body)

	if err := smtp.SendMail(addr, auth, s.cfg.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
