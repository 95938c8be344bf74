// internal/handlers/report.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codetrade/backend/internal/i18n"
	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// POST /api/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	reporterID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	report, err := h.reportService.CreateReport(reporterID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProjectNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyReportCreated),
		"report":  report,
	})
}

// GET /api/reports
func (h *ReportHandler) GetSellerReports(c *gin.Context) {
	sellerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	reports, err := h.reportService.GetSellerReports(sellerID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reports": reports,
	})
}

// PUT /api/reports/:id/status
func (h *ReportHandler) UpdateReportStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	reportID, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid report ID", nil)
		return
	}

	var req services.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	report, err := h.reportService.UpdateReportStatus(reportID, sellerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotReportOwner) {
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyReportNotOwner))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyReportNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"report": report,
	})
}
