// internal/handlers/purchase.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codetrade/backend/internal/i18n"
	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// POST /api/create-payment-intent
func (h *PurchaseHandler) CreatePaymentIntent(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	response, err := h.purchaseService.CreatePaymentIntent(buyerID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProjectNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, response)
}

// POST /api/confirm-purchase
func (h *PurchaseHandler) ConfirmPurchase(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ConfirmPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	response, err := h.purchaseService.ConfirmPurchase(buyerID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProjectNotFound)
			return
		}
		if strings.Contains(err.Error(), "already purchased") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPurchaseAlreadyOwned))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyPurchaseSuccess),
		"purchase":    response.Purchase,
		"downloadUrl": response.DownloadURL,
	})
}

// GET /api/purchases
func (h *PurchaseHandler) GetPurchases(c *gin.Context) {
	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	purchases, err := h.purchaseService.GetUserPurchases(buyerID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"purchases": purchases,
	})
}

// GET /api/purchases/:projectId
func (h *PurchaseHandler) GetPurchaseStatus(c *gin.Context) {
	buyerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	projectID, err := parseIDParam(c, "projectId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	purchase, err := h.purchaseService.GetPurchase(buyerID, projectID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"purchased": purchase != nil,
		"purchase":  purchase,
	})
}
