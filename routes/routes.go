package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"society-billing-service/config"
	"society-billing-service/controllers"
	_ "society-billing-service/docs"
	"society-billing-service/middleware"
	"society-billing-service/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	middleware.InitAuthMiddleware(cfg)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a session
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 10 requests per second per IP, bursts up to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind operator auth
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateOperator())

	// 30 requests per second per IP, bursts up to 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// House registry
	houseGroup := auth.Group("/houses")
	houseGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleHouseFunc(container, "getHouses"))
	houseGroup.GET("/:id", controllers.HandleHouseFunc(container, "getHouse"))
	houseGroup.POST("", controllers.HandleHouseFunc(container, "createHouse"))
	houseGroup.DELETE("/:id", controllers.HandleHouseFunc(container, "deleteHouse"))
	houseGroup.GET("/:id/bills", controllers.HandleHouseFunc(container, "getHouseBills"))
	houseGroup.GET("/:id/fines", controllers.HandleHouseFunc(container, "getHouseFines"))
	houseGroup.GET("/:id/statement", controllers.HandleStatementFunc(container, "getStatement"))
	houseGroup.GET("/:id/statement/pdf", controllers.HandleStatementFunc(container, "downloadStatement"))

	// Bill lifecycle
	billGroup := auth.Group("/bills")
	billGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleBillFunc(container, "getBills"))
	billGroup.GET("/:id", controllers.HandleBillFunc(container, "getBill"))
	billGroup.POST("", controllers.HandleBillFunc(container, "createBill"))
	billGroup.PATCH("/:id", controllers.HandleBillFunc(container, "updateBill"))
	billGroup.DELETE("/:id", controllers.HandleBillFunc(container, "deleteBill"))

	// Fine ledger
	fineGroup := auth.Group("/fines")
	fineGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleFineFunc(container, "getFines"))
	fineGroup.GET("/:id", controllers.HandleFineFunc(container, "getFine"))
	fineGroup.POST("", controllers.HandleFineFunc(container, "createFine"))
	fineGroup.PATCH("/:id", controllers.HandleFineFunc(container, "updateFineStatus"))
	fineGroup.DELETE("/:id", controllers.HandleFineFunc(container, "deleteFine"))

	// Dashboard
	auth.GET("/dashboard", middleware.Cache(middleware.CacheConfig{Expiration: 15 * time.Second}), controllers.HandleStatementFunc(container, "getDashboard"))

	// Operator accounts
	adminGroup := auth.Group("/admins")
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PATCH("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))
}
