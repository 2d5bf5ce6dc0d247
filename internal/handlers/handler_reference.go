package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashflow_dashboard/internal/core/ports/services"
	"github.com/SscSPs/cashflow_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves categories, responsibles and tags.
type referenceHandler struct {
	service portssvc.ReferenceDataSvcFacade
}

func registerReferenceRoutes(rg *gin.RouterGroup, service portssvc.ReferenceDataSvcFacade) {
	h := &referenceHandler{service: service}

	rg.GET("/reference", h.getReferenceData)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}

	responsibles := rg.Group("/responsibles")
	{
		responsibles.GET("", h.listResponsibles)
		responsibles.POST("", h.createResponsible)
		responsibles.PUT("/:responsibleID", h.updateResponsible)
		responsibles.DELETE("/:responsibleID", h.deleteResponsible)
	}

	tags := rg.Group("/tags")
	{
		tags.GET("", h.listTags)
		tags.POST("", h.createTag)
		tags.PUT("/:tagID", h.updateTag)
		tags.DELETE("/:tagID", h.deleteTag)
	}
}

// getReferenceData godoc
// @Summary Get all reference data
// @Description Categories, responsibles and tags in one call, for filter dropdowns.
// @Tags reference
// @Produce json
// @Success 200 {object} domain.ReferenceData
// @Security BearerAuth
// @Router /reference [get]
func (h *referenceHandler) getReferenceData(c *gin.Context) {
	data, err := h.service.GetReferenceData(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load reference data")
		return
	}
	c.JSON(http.StatusOK, data)
}

// listCategories godoc
// @Summary List categories
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *referenceHandler) listCategories(c *gin.Context) {
	list, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: list})
}

// createCategory godoc
// @Summary Create a category
// @Tags reference
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *referenceHandler) createCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// updateCategory godoc
// @Summary Replace a category
// @Tags reference
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.CategoryRequest true "Category"
// @Success 200 {object} domain.Category
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID} [put]
func (h *referenceHandler) updateCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	category, err := h.service.UpdateCategory(c.Request.Context(), c.Param("categoryID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Fails with 400 while entries or goals still reference it.
// @Tags reference
// @Param categoryID path string true "Category ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{categoryID} [delete]
func (h *referenceHandler) deleteCategory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("categoryID"), userID); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// listResponsibles godoc
// @Summary List responsibles
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListResponsiblesResponse
// @Security BearerAuth
// @Router /responsibles [get]
func (h *referenceHandler) listResponsibles(c *gin.Context) {
	list, err := h.service.ListResponsibles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list responsibles")
		return
	}
	c.JSON(http.StatusOK, dto.ListResponsiblesResponse{Responsibles: list})
}

// createResponsible godoc
// @Summary Create a responsible
// @Tags reference
// @Accept json
// @Produce json
// @Param responsible body dto.ResponsibleRequest true "Responsible"
// @Success 201 {object} domain.Responsible
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /responsibles [post]
func (h *referenceHandler) createResponsible(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	responsible, err := h.service.CreateResponsible(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create responsible")
		return
	}
	c.JSON(http.StatusCreated, responsible)
}

// updateResponsible godoc
// @Summary Replace a responsible
// @Tags reference
// @Accept json
// @Produce json
// @Param responsibleID path string true "Responsible ID"
// @Param responsible body dto.ResponsibleRequest true "Responsible"
// @Success 200 {object} domain.Responsible
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /responsibles/{responsibleID} [put]
func (h *referenceHandler) updateResponsible(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	responsible, err := h.service.UpdateResponsible(c.Request.Context(), c.Param("responsibleID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update responsible")
		return
	}
	c.JSON(http.StatusOK, responsible)
}

// deleteResponsible godoc
// @Summary Delete a responsible
// @Tags reference
// @Param responsibleID path string true "Responsible ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /responsibles/{responsibleID} [delete]
func (h *referenceHandler) deleteResponsible(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteResponsible(c.Request.Context(), c.Param("responsibleID"), userID); err != nil {
		respondError(c, err, "Failed to delete responsible")
		return
	}
	c.Status(http.StatusNoContent)
}

// listTags godoc
// @Summary List tags
// @Tags reference
// @Produce json
// @Success 200 {object} dto.ListTagsResponse
// @Security BearerAuth
// @Router /tags [get]
func (h *referenceHandler) listTags(c *gin.Context) {
	list, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, dto.ListTagsResponse{Tags: list})
}

// createTag godoc
// @Summary Create a tag
// @Tags reference
// @Accept json
// @Produce json
// @Param tag body dto.TagRequest true "Tag"
// @Success 201 {object} domain.Tag
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags [post]
func (h *referenceHandler) createTag(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tag, err := h.service.CreateTag(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create tag")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// updateTag godoc
// @Summary Replace a tag
// @Tags reference
// @Accept json
// @Produce json
// @Param tagID path string true "Tag ID"
// @Param tag body dto.TagRequest true "Tag"
// @Success 200 {object} domain.Tag
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags/{tagID} [put]
func (h *referenceHandler) updateTag(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	tag, err := h.service.UpdateTag(c.Request.Context(), c.Param("tagID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// deleteTag godoc
// @Summary Delete a tag
// @Tags reference
// @Param tagID path string true "Tag ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags/{tagID} [delete]
func (h *referenceHandler) deleteTag(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTag(c.Request.Context(), c.Param("tagID"), userID); err != nil {
		respondError(c, err, "Failed to delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}
