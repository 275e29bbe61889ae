package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pharmanet/medsupply-api/internal/audit"
	"github.com/pharmanet/medsupply-api/internal/auth"
	"github.com/pharmanet/medsupply-api/internal/config"
	"github.com/pharmanet/medsupply-api/internal/handlers"
	infraRepo "github.com/pharmanet/medsupply-api/internal/infra/repository"
	"github.com/pharmanet/medsupply-api/internal/middleware"
	"github.com/pharmanet/medsupply-api/internal/models"
	"github.com/pharmanet/medsupply-api/internal/storage"
	ucAccount "github.com/pharmanet/medsupply-api/internal/usecase/account"
	ucCategory "github.com/pharmanet/medsupply-api/internal/usecase/category"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	assets storage.AssetStore,
	blacklist auth.BlacklistStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	users := infraRepo.NewUserGormResolver(db)
	categoryRepo := infraRepo.NewCategoryGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — CATEGORY TREE
	// ======================================================
	createCategoryUC := ucCategory.NewCreateCategory(categoryRepo)
	getAllCategoriesUC := ucCategory.NewGetAllCategories(categoryRepo)
	getCategoryByIDUC := ucCategory.NewGetCategoryByID(categoryRepo)
	updateCategoryUC := ucCategory.NewUpdateCategory(categoryRepo)
	deleteCategoryUC := ucCategory.NewDeleteCategory(categoryRepo)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegister(accountRepo)
	loginUC := ucAccount.NewLogin(accountRepo)
	createRetailerUC := ucAccount.NewCreateRetailer(accountRepo)
	deleteRetailerUC := ucAccount.NewDeleteRetailer(accountRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, blacklist, registerUC, loginUC)

	categoryHandler := handlers.NewCategoryHandler(
		createCategoryUC,
		getAllCategoriesUC,
		getCategoryByIDUC,
		updateCategoryUC,
		deleteCategoryUC,
		auditDispatcher,
	)

	productHandler := handlers.NewProductHandler(db, assets, auditDispatcher)
	retailerHandler := handlers.NewRetailerHandler(db, createRetailerUC, deleteRetailerUC, auditDispatcher)

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	authRequired := middleware.Auth(tokens, blacklist, users)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// USERS / AUTH
		// ------------------------------
		usersAPI := api.Group("/users")
		{
			usersAPI.POST("/register", authHandler.Register)
			usersAPI.POST("/login", authHandler.Login)

			usersAPI.POST("/logout", authRequired, authHandler.Logout)
			usersAPI.GET("/me", authRequired, authHandler.Me)
			usersAPI.GET("", authRequired, adminOnly, authHandler.List)
		}

		// ------------------------------
		// CATEGORIES (public reads, admin writes)
		// ------------------------------
		categoriesAPI := api.Group("/categories")
		{
			categoriesAPI.GET("", categoryHandler.List)
			categoriesAPI.GET("/:id", categoryHandler.GetByID)

			categoriesAPI.POST("", authRequired, adminOnly, categoryHandler.Create)
			categoriesAPI.PUT("/:id", authRequired, adminOnly, categoryHandler.Update)
			categoriesAPI.DELETE("/:id", authRequired, adminOnly, categoryHandler.Delete)
		}

		// ------------------------------
		// PRODUCTS (public reads, admin multipart writes)
		// ------------------------------
		productsAPI := api.Group("/products")
		{
			productsAPI.GET("", productHandler.List)
			productsAPI.GET("/:id", productHandler.GetByID)

			productsAPI.POST("", authRequired, adminOnly, productHandler.Create)
			productsAPI.PUT("/:id", authRequired, adminOnly, productHandler.Update)
			productsAPI.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)
		}

		// ------------------------------
		// RETAILERS (admin only)
		// ------------------------------
		retailersAPI := api.Group("/retailers")
		retailersAPI.Use(authRequired, adminOnly)
		{
			retailersAPI.POST("", retailerHandler.Create)
			retailersAPI.GET("", retailerHandler.List)
			retailersAPI.GET("/:id", retailerHandler.GetByID)
			retailersAPI.PUT("/:id", retailerHandler.Update)
			retailersAPI.DELETE("/:id", retailerHandler.Delete)
		}
	}
}
