// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type DashboardHandler struct {
	projectService  *services.ProjectService
	purchaseService *services.PurchaseService
}

func NewDashboardHandler(projectService *services.ProjectService, purchaseService *services.PurchaseService) *DashboardHandler {
	return &DashboardHandler{
		projectService:  projectService,
		purchaseService: purchaseService,
	}
}

// GET /api/dashboard/seller
func (h *DashboardHandler) GetSellerDashboard(c *gin.Context) {
	sellerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	projects, err := h.projectService.GetProjects(services.ProjectFilters{SellerID: &sellerID})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"projects": projects,
	})
}

// GET /api/dashboard/buyer
func (h *DashboardHandler) GetBuyerDashboard(c *gin.Context) {
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
