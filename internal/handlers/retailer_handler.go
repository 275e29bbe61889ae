package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/audit"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/httpresp"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	"github.com/pharmanet/medsupply-api/internal/models"
	ucAccount "github.com/pharmanet/medsupply-api/internal/usecase/account"
)

type RetailerHandler struct {
	db       *gorm.DB
	createUC *ucAccount.CreateRetailer
	deleteUC *ucAccount.DeleteRetailer
	audit    *audit.Dispatcher
}

func NewRetailerHandler(
	db *gorm.DB,
	createUC *ucAccount.CreateRetailer,
	deleteUC *ucAccount.DeleteRetailer,
	auditDispatcher *audit.Dispatcher,
) *RetailerHandler {
	return &RetailerHandler{
		db:       db,
		createUC: createUC,
		deleteUC: deleteUC,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type CreateRetailerRequest struct {
	ShopName          string `json:"shopName" binding:"required"`
	OwnerName         string `json:"ownerName" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6"`
	Phone             string `json:"phone" binding:"required"`
	Address           string `json:"address" binding:"required"`
	City              string `json:"city" binding:"required"`
	State             string `json:"state" binding:"required"`
	ZipCode           string `json:"zipCode" binding:"required"`
	DrugLicenseNumber string `json:"drugLicenseNumber" binding:"required"`
}

type UpdateRetailerRequest struct {
	ShopName  *string `json:"shopName,omitempty"`
	OwnerName *string `json:"ownerName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// --------- Handlers ---------

// Create onboards a retailer: the login account and the retailer profile
// are written inside one transaction, both or neither.
func (h *RetailerHandler) Create(c *gin.Context) {
	var req CreateRetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	retailer, err := h.createUC.Execute(c.Request.Context(), ucAccount.CreateRetailerInput{
		ShopName:          req.ShopName,
		OwnerName:         req.OwnerName,
		Email:             req.Email,
		Password:          req.Password,
		Phone:             req.Phone,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		ZipCode:           req.ZipCode,
		DrugLicenseNumber: req.DrugLicenseNumber,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "internal_error", "failed to create retailer")
		return
	}

	h.dispatchAudit(c, "retailer_created", retailer.ID)

	httpresp.Created(c, retailer)
}

func (h *RetailerHandler) List(c *gin.Context) {
	var retailers []models.Retailer
	if err := h.db.Order("id ASC").Find(&retailers).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list retailers")
		return
	}

	httpresp.List(c, retailers)
}

func (h *RetailerHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var retailer models.Retailer
	if err := h.db.First(&retailer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "retailer_not_found", "retailer not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to get retailer")
		return
	}

	c.JSON(http.StatusOK, retailer)
}

func (h *RetailerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var retailer models.Retailer
	if err := h.db.First(&retailer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "retailer_not_found", "retailer not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to get retailer")
		return
	}

	var req UpdateRetailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ShopName != nil {
		retailer.ShopName = *req.ShopName
	}
	if req.OwnerName != nil {
		retailer.OwnerName = *req.OwnerName
	}
	if req.Phone != nil {
		retailer.Phone = *req.Phone
	}
	if req.Address != nil {
		retailer.Address = *req.Address
	}
	if req.City != nil {
		retailer.City = *req.City
	}
	if req.State != nil {
		retailer.State = *req.State
	}
	if req.ZipCode != nil {
		retailer.ZipCode = *req.ZipCode
	}
	if req.Status != nil {
		if *req.Status != models.RetailerStatusActive && *req.Status != models.RetailerStatusInactive {
			httperr.BadRequest(c, "invalid_status", "status must be active or inactive")
			return
		}
		retailer.Status = *req.Status
	}

	if err := h.db.Save(&retailer).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update retailer")
		return
	}

	h.dispatchAudit(c, "retailer_updated", retailer.ID)

	c.JSON(http.StatusOK, retailer)
}

// Delete removes the retailer profile and its paired login account as one
// unit.
func (h *RetailerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "retailer_not_found") {
			httperr.NotFound(c, "retailer_not_found", "retailer not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to delete retailer")
		return
	}

	h.dispatchAudit(c, "retailer_deleted", id)

	c.JSON(http.StatusOK, gin.H{"message": "retailer and associated user account removed"})
}

// --------- Helpers ---------

func (h *RetailerHandler) dispatchAudit(c *gin.Context, action string, retailerID uint) {
	user, _ := middleware.CurrentUser(c)

	ev := audit.Event{
		Action:   action,
		Entity:   "retailer",
		EntityID: &retailerID,
	}
	if user != nil {
		ev.UserID = &user.ID
	}

	h.audit.Dispatch(ev)
}
