package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmanet/medsupply-api/internal/audit"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/httpresp"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	ucCategory "github.com/pharmanet/medsupply-api/internal/usecase/category"
)

type CategoryHandler struct {
	createUC  *ucCategory.CreateCategory
	getAllUC  *ucCategory.GetAllCategories
	getByIDUC *ucCategory.GetCategoryByID
	updateUC  *ucCategory.UpdateCategory
	deleteUC  *ucCategory.DeleteCategory

	audit *audit.Dispatcher
}

func NewCategoryHandler(
	createUC *ucCategory.CreateCategory,
	getAllUC *ucCategory.GetAllCategories,
	getByIDUC *ucCategory.GetCategoryByID,
	updateUC *ucCategory.UpdateCategory,
	deleteUC *ucCategory.DeleteCategory,
	auditDispatcher *audit.Dispatcher,
) *CategoryHandler {
	return &CategoryHandler{
		createUC:  createUC,
		getAllUC:  getAllUC,
		getByIDUC: getByIDUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		audit:     auditDispatcher,
	}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parentId"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// --------- Handlers ---------

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cat, err := h.createUC.Execute(c.Request.Context(), ucCategory.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		writeCategoryError(c, err)
		return
	}

	h.dispatchAudit(c, "category_created", cat.ID)

	httpresp.Created(c, cat)
}

func (h *CategoryHandler) List(c *gin.Context) {
	forest, err := h.getAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, forest)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cat, err := h.getByIDUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	cat, err := h.updateUC.Execute(c.Request.Context(), ucCategory.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeCategoryError(c, err)
		return
	}

	h.dispatchAudit(c, "category_updated", cat.ID)

	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeCategoryError(c, err)
		return
	}

	h.dispatchAudit(c, "category_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// --------- Helpers ---------

func (h *CategoryHandler) dispatchAudit(c *gin.Context, action string, categoryID uint) {
	user, _ := middleware.CurrentUser(c)

	ev := audit.Event{
		Action:   action,
		Entity:   "category",
		EntityID: &categoryID,
	}
	if user != nil {
		ev.UserID = &user.ID
	}

	h.audit.Dispatch(ev)
}

func writeCategoryError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "unexpected error")
		return
	}

	switch be.Code {
	case "category_not_found":
		httperr.NotFound(c, be.Code, be.Message)
	default:
		// Conflicts, dependency violations and bad parent references
		// are all client input errors.
		httperr.BadRequest(c, be.Code, be.Message)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return uint(id64), true
}
