package routes

import (
	"net/http"

	"plantnet/config"
	"plantnet/controllers"
	"plantnet/handler"
	"plantnet/middleware"
	"plantnet/repositories"
	"plantnet/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

type Services struct {
	Auth   *services.AuthService
	Users  *services.UserService
	Plants *services.PlantService
	Orders *services.OrderService
}

// NewServices wires the mongo repositories and the optional redis cache.
func NewServices(cfg *config.Config, db *mongo.Database, cache *redis.Client) *Services {
	plantRepo := repositories.NewPlantRepository(db)
	plantCache := services.NewPlantCache(cache)

	return &Services{
		Auth:   services.NewAuthService(cfg.TokenSecret, cfg.SessionTTL),
		Users:  services.NewUserService(repositories.NewUserRepository(db)),
		Plants: services.NewPlantService(plantRepo, plantCache),
		Orders: services.NewOrderService(repositories.NewOrderRepository(db), plantRepo, plantCache),
	}
}

func NewEngine(cfg *config.Config, svc *Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	SetupRoutes(router, cfg, svc)
	return router
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, svc *Services) {
	authCtrl := controllers.NewAuthController(svc.Auth, cfg.IsProduction())
	userCtrl := controllers.NewUserController(svc.Users)
	plantCtrl := controllers.NewPlantController(svc.Plants)
	orderCtrl := controllers.NewOrderController(svc.Orders)

	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/users/:email", userCtrl.SaveUser)
	router.POST("/jwt", authCtrl.IssueSession)
	router.GET("/logout", authCtrl.Logout)
	router.GET("/plants", plantCtrl.GetPlants)
	router.GET("/plants/:id", plantCtrl.GetPlantByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(svc.Auth))
	{
		auth.POST("/plants", plantCtrl.CreatePlant)
		auth.PATCH("/plants/quantity/:id", plantCtrl.UpdateQuantity)
		auth.POST("/order", orderCtrl.PlaceOrder)
		auth.DELETE("/order/:id", orderCtrl.CancelOrder)
		auth.GET("/customer-order/:email", orderCtrl.GetCustomerOrders)
	}
}
