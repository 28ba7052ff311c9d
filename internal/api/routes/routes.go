// server/internal/api/routes/routes.go
package routes

import (
	"agri-traceability-api-server/config"
	"agri-traceability-api-server/internal/api/handlers"
	"agri-traceability-api-server/internal/api/middleware"
	"agri-traceability-api-server/internal/ledger"
	"agri-traceability-api-server/internal/s3"
	"agri-traceability-api-server/internal/socket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRouter nhận vào các thành phần phụ thuộc và thiết lập các route
func SetupRouter(
	l *ledger.Ledger,
	cfg config.Config,
	db *mongo.Database,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default()) // UI trình duyệt gọi trực tiếp vào API

	jwtSecret := []byte(cfg.JWT.Secret)

	// Khởi tạo các handlers
	farmHandler := &handlers.FarmHandler{Ledger: l}
	productHandler := &handlers.ProductHandler{Ledger: l}
	categoryHandler := &handlers.CategoryHandler{Ledger: l}
	processHandler := &handlers.ProcessHandler{Ledger: l}
	traceHandler := &handlers.TraceHandler{Ledger: l}
	accessHandler := &handlers.AccessHandler{Ledger: l}
	userHandler := &handlers.UserHandler{DB: db, Ledger: l, Cfg: cfg}
	uploadHandler := &handlers.UploadHandler{S3Uploader: s3Uploader}
	webSocketHandler := &handlers.WebSocketHandler{Hub: wsHub, JWTSecret: jwtSecret}

	apiV1 := router.Group("/api/v1")
	{
		// Route cho WebSocket (stream sự kiện audit)
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		// === CÁC ROUTE KHÔNG YÊU CẦU XÁC THỰC ===

		// Nhóm API authentication
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", userHandler.Login)
		}

		// Nhóm API công khai (Public)
		public := apiV1.Group("/")
		{
			// API truy xuất nguồn gốc, không cần JWT
			public.GET("/products/:code/trace", traceHandler.GetProductTrace)
			public.GET("/info", traceHandler.GetContractInfo)
			public.GET("/totals", traceHandler.GetTotals)
		}

		// === CÁC ROUTE YÊU CẦU XÁC THỰC (PROTECTED) ===
		// Tất cả các route bên dưới sẽ đi qua middleware Authenticate trước

		// Nhóm API quản trị, yêu cầu vai trò "superadmin"
		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(jwtSecret))
		admin.Use(middleware.Authorize("superadmin"))
		{
			// User management
			admin.POST("/users", userHandler.CreateUser)

			// Access control của registry
			access := admin.Group("/access")
			{
				access.POST("/authorize", accessHandler.AuthorizeUser)
				access.POST("/deauthorize", accessHandler.DeauthorizeUser)
				access.POST("/farm-owner", accessHandler.SetFarmOwner)
				access.POST("/product-verifier", accessHandler.SetProductVerifier)
				access.POST("/admin", accessHandler.UpdateAdmin)
				access.GET("/capabilities/:userID", accessHandler.GetCapabilities)
			}
		}

		// Nhóm các API nghiệp vụ chính, yêu cầu các vai trò cụ thể
		businessRoutes := apiV1.Group("/")
		businessRoutes.Use(middleware.Authenticate(jwtSecret))
		businessRoutes.Use(middleware.Authorize("farmer", "certifier", "distributor", "superadmin"))
		{
			// Upload ảnh (trả về URL dùng làm image reference)
			businessRoutes.POST("/uploads/images", uploadHandler.UploadImage)

			// Farm management
			farms := businessRoutes.Group("/farms")
			{
				farms.POST("/", farmHandler.RegisterFarm)
				farms.GET("/", farmHandler.GetAllFarms)
				farms.GET("/:code", farmHandler.GetFarm)
				farms.PUT("/:code", farmHandler.UpdateFarm)
				farms.POST("/:code/deactivate", farmHandler.DeactivateFarm)
				farms.GET("/:code/images", farmHandler.GetFarmImages)
				farms.POST("/:code/images", farmHandler.AddFarmImage)
				farms.DELETE("/:code/images/:index", farmHandler.RemoveFarmImage)
				farms.GET("/:code/products", farmHandler.GetProductsByFarm)
			}

			// Product management
			products := businessRoutes.Group("/products")
			{
				products.POST("/", productHandler.AddProduct)
				products.GET("/", productHandler.GetAllProducts)
				products.GET("/:code", productHandler.GetProduct)
				products.PUT("/:code", productHandler.UpdateProduct)
				products.POST("/:code/deactivate", productHandler.DeactivateProduct)

				// Process records của sản phẩm
				products.POST("/:code/farming-process", processHandler.AddFarmingProcess)
				products.PUT("/:code/farming-process", processHandler.UpdateFarmingProcess)
				products.GET("/:code/farming-process", processHandler.GetFarmingProcess)

				products.POST("/:code/medicine", processHandler.AddMedicine)
				products.PUT("/:code/medicine", processHandler.UpdateMedicine)
				products.GET("/:code/medicine", processHandler.GetMedicine)

				products.POST("/:code/fertilizer", processHandler.AddFertilizer)
				products.PUT("/:code/fertilizer", processHandler.UpdateFertilizer)
				products.GET("/:code/fertilizer", processHandler.GetFertilizer)

				products.POST("/:code/harvest", processHandler.AddHarvest)
				products.PUT("/:code/harvest", processHandler.UpdateHarvest)
				products.GET("/:code/harvest", processHandler.GetHarvest)

				products.POST("/:code/distribution", processHandler.AddDistribution)
				products.PUT("/:code/distribution", processHandler.UpdateDistribution)
				products.GET("/:code/distribution", processHandler.GetDistribution)
			}

			// Category management
			categories := businessRoutes.Group("/categories")
			{
				categories.POST("/", categoryHandler.AddCategory)
				categories.GET("/", categoryHandler.GetAllCategories)
				categories.GET("/:name/exists", categoryHandler.CheckCategoryExists)
			}

			// Tra cứu theo user
			users := businessRoutes.Group("/users")
			{
				users.GET("/:userID/farms", farmHandler.GetFarmsByUser)
				users.GET("/:userID/categories", categoryHandler.GetCategoriesByUser)
				users.GET("/:userID/exists", farmHandler.CheckUserExists)
			}
		}
	}

	return router
}
