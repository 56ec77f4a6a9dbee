package routes

import (
	"log"
	"strconv"

	_ "assistencia_os/docs" // This will be auto-generated
	"assistencia_os/internal/adapter/http/handlers"
	repository2 "assistencia_os/internal/adapter/persistence/repository"
	"assistencia_os/internal/infrastructure/storage"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	snapshot := storage.NewSnapshotStore()
	sessions := storage.NewSessionStore()

	store := repository2.NewPortalStore(snapshot)
	orderRepo := repository2.NewOrderMemoryRepository(store)
	clientRepo := repository2.NewClientMemoryRepository(store)
	deviceRepo := repository2.NewDeviceMemoryRepository(store)
	serviceRepo := repository2.NewServiceMemoryRepository(store)
	storeRepo := repository2.NewStoreStaticRepository()

	authUseCase := usecase.NewAuthUseCase(sessions)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo)
	registryUseCase := usecase.NewRegistryUseCase(clientRepo, deviceRepo, storeRepo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, registryUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	registryHandler := handlers.NewRegistryHandler(registryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(handlers.SessionMiddleware(authUseCase))
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addPortalRoutes(v1, orderHandler, catalogHandler, registryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
