// internal/handlers/project.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codetrade/backend/internal/i18n"
	"github.com/codetrade/backend/internal/services"
	"github.com/codetrade/backend/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	storageService *services.StorageService
}

func NewProjectHandler(projectService *services.ProjectService, storageService *services.StorageService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		storageService: storageService,
	}
}

// GET /api/projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filters := services.ProjectFilters{
		Category: c.Query("category"),
	}

	if sellerIDStr := c.Query("sellerId"); sellerIDStr != "" {
		sellerID, err := strconv.ParseUint(sellerIDStr, 10, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid seller ID", nil)
			return
		}
		id := uint(sellerID)
		filters.SellerID = &id
	}

	projects, err := h.projectService.GetProjects(filters)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"projects": projects,
	})
}

// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	project, err := h.projectService.GetProjectWithSeller(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProjectNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"project": project,
	})
}

// POST /api/projects
//
// Multipart form: title, description, price, category, technologies as a
// comma-separated string, a required codeFile and an optional previewImage.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sellerID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "price"), nil)
		return
	}

	req := services.CreateProjectRequest{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Price:        price,
		Category:     c.PostForm("category"),
		Technologies: splitTechnologies(c.PostForm("technologies")),
	}

	codeFileHeader, err := c.FormFile("codeFile")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProjectCodeRequired), nil)
		return
	}

	codeFile, err := codeFileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer codeFile.Close()

	codeResult, err := h.storageService.UploadFile(codeFile, codeFileHeader, h.storageService.GetDefaultUploadOptions("code"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	req.CodeFileURL = codeResult.URL

	if previewHeader, err := c.FormFile("previewImage"); err == nil {
		previewFile, err := previewHeader.Open()
		if err == nil {
			result, err := h.storageService.UploadFile(previewFile, previewHeader, h.storageService.GetDefaultUploadOptions("previews"))
			previewFile.Close()
			if err != nil {
				utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
				return
			}
			req.PreviewImageURL = result.URL
		}
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	project, err := h.projectService.CreateProject(sellerID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProjectCreated),
		"project": project,
	})
}

func splitTechnologies(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	technologies := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			technologies = append(technologies, trimmed)
		}
	}
	return technologies
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
