package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/audit"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/httpresp"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	"github.com/pharmanet/medsupply-api/internal/models"
	"github.com/pharmanet/medsupply-api/internal/storage"
)

type ProductHandler struct {
	db     *gorm.DB
	assets storage.AssetStore
	audit  *audit.Dispatcher
}

func NewProductHandler(db *gorm.DB, assets storage.AssetStore, auditDispatcher *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{db: db, assets: assets, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required"`
	Stock       int     `form:"stock"`
	CategoryID  uint    `form:"categoryId"`
	Salt        string  `form:"salt"`
}

type UpdateProductRequest struct {
	Name        *string  `form:"name"`
	Description *string  `form:"description"`
	Price       *float64 `form:"price"`
	Stock       *int     `form:"stock"`
	CategoryID  *uint    `form:"categoryId"`
	Salt        *string  `form:"salt"`
	Status      *string  `form:"status"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	statusStr := strings.TrimSpace(c.Query("status"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	var categoryID uint64
	if category != "" {
		var err error
		categoryID, err = strconv.ParseUint(category, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "category must be a numeric id")
			return
		}
	}

	if statusStr != "" &&
		statusStr != models.ProductStatusActive &&
		statusStr != models.ProductStatusInactive {
		httperr.BadRequest(c, "invalid_request", "status must be active or inactive")
		return
	}

	q := h.db.Model(&models.Product{})

	if category != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	if statusStr != "" {
		q = q.Where("status = ?", statusStr)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(salt) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.
		Order("id ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "internal_error", "failed to list products")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create stores the image asset first (mirroring the upload-then-validate
// flow of the mobile clients), so every validation failure after that
// point must delete the fresh asset to avoid orphans.
func (h *ProductHandler) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "image_required", "please upload an image")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to read image")
		return
	}
	defer src.Close()

	normalized, err := storage.NormalizeImage(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "image data could not be decoded")
		return
	}

	key := storage.NewProductKey()
	ctx := c.Request.Context()

	url, err := h.assets.Put(ctx, key, "image/webp", bytes.NewReader(normalized))
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to store image")
		return
	}

	if req.CategoryID == 0 {
		h.discardAsset(c, key)
		httperr.BadRequest(c, "category_required", "please provide a categoryId")
		return
	}

	var count int64
	h.db.Model(&models.Product{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		h.discardAsset(c, key)
		httperr.BadRequest(c, "product_name_taken", "a product with this name already exists")
		return
	}

	product := models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Salt:        req.Salt,
		Status:      models.ProductStatusActive,
		ImageURL:    url,
		StorageKey:  key,
	}

	if err := h.db.Create(&product).Error; err != nil {
		h.discardAsset(c, key)
		httperr.Internal(c, "internal_error", "failed to create product")
		return
	}

	h.dispatchAudit(c, "product_created", product.ID)

	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to get product")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Salt != nil {
		product.Salt = *req.Salt
	}
	if req.Status != nil {
		if *req.Status != models.ProductStatusActive && *req.Status != models.ProductStatusInactive {
			httperr.BadRequest(c, "invalid_status", "status must be active or inactive")
			return
		}
		product.Status = *req.Status
	}

	ctx := c.Request.Context()
	oldKey := ""

	// The old asset is deleted only after the replacement is attached
	// and the row saved; a save failure discards the new asset instead.
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			httperr.Internal(c, "internal_error", "failed to read image")
			return
		}
		defer src.Close()

		normalized, err := storage.NormalizeImage(src)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "image data could not be decoded")
			return
		}

		key := storage.NewProductKey()
		url, err := h.assets.Put(ctx, key, "image/webp", bytes.NewReader(normalized))
		if err != nil {
			httperr.Internal(c, "internal_error", "failed to store image")
			return
		}

		oldKey = product.StorageKey
		product.ImageURL = url
		product.StorageKey = key
	}

	if err := h.db.Save(&product).Error; err != nil {
		if oldKey != "" {
			h.discardAsset(c, product.StorageKey)
		}
		httperr.Internal(c, "internal_error", "failed to update product")
		return
	}

	if oldKey != "" {
		h.discardAsset(c, oldKey)
	}

	h.dispatchAudit(c, "product_updated", product.ID)

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "product not found")
			return
		}
		httperr.Internal(c, "internal_error", "failed to get product")
		return
	}

	if product.StorageKey != "" {
		if err := h.assets.Delete(c.Request.Context(), product.StorageKey); err != nil {
			httperr.Internal(c, "internal_error", "failed to delete product image")
			return
		}
	}

	if err := h.db.Delete(&product).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to delete product")
		return
	}

	h.dispatchAudit(c, "product_deleted", product.ID)

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// --------- Helpers ---------

func (h *ProductHandler) discardAsset(c *gin.Context, key string) {
	if err := h.assets.Delete(c.Request.Context(), key); err != nil {
		log.Println("failed to delete orphan asset", key, ":", err)
	}
}

func (h *ProductHandler) dispatchAudit(c *gin.Context, action string, productID uint) {
	user, _ := middleware.CurrentUser(c)

	ev := audit.Event{
		Action:   action,
		Entity:   "product",
		EntityID: &productID,
	}
	if user != nil {
		ev.UserID = &user.ID
	}

	h.audit.Dispatch(ev)
}
