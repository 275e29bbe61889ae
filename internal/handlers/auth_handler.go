package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/auth"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/httpresp"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	"github.com/pharmanet/medsupply-api/internal/models"
	ucAccount "github.com/pharmanet/medsupply-api/internal/usecase/account"
)

type AuthHandler struct {
	db         *gorm.DB
	tokens     *auth.Manager
	blacklist  auth.BlacklistStore
	registerUC *ucAccount.Register
	loginUC    *ucAccount.Login
}

func NewAuthHandler(
	db *gorm.DB,
	tokens *auth.Manager,
	blacklist auth.BlacklistStore,
	registerUC *ucAccount.Register,
	loginUC *ucAccount.Login,
) *AuthHandler {
	return &AuthHandler{
		db:         db,
		tokens:     tokens,
		blacklist:  blacklist,
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "internal_error", "failed to create user")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to generate token")
		return
	}

	httpresp.Created(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.loginUC.Execute(c.Request.Context(), ucAccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Unauthorized(c, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "internal_error", "failed to log in")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to generate token")
		return
	}

	httpresp.OK(c, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}

// Logout blacklists the presented token until its signed expiry. The
// token stays rejected by the auth gate from here on even though it has
// not naturally expired.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenVal, exists := c.Get(middleware.ContextToken)
	raw, ok := tokenVal.(string)
	if !exists || !ok {
		httperr.Unauthorized(c, "invalid_token", "no token on request")
		return
	}

	expiresAt, err := h.tokens.Expiry(raw)
	if err != nil {
		httperr.Unauthorized(c, "invalid_token", "token could not be decoded")
		return
	}

	if err := h.blacklist.Add(c.Request.Context(), raw, expiresAt); err != nil {
		httperr.Internal(c, "internal_error", "failed to revoke token")
		return
	}

	httpresp.OK(c, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "no authenticated user")
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list users")
		return
	}

	httpresp.List(c, users)
}
