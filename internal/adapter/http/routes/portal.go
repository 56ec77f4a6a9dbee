package routes

import (
	"assistencia_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathOrders   = "/orders"
	PathClients  = "/clients"
	PathDevices  = "/devices"
	PathServices = "/services"
	PathStores   = "/stores"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/login-as", authHandler.LoginAs)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)
	}
}

func addPortalRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, catalogHandler *handlers.CatalogHandler, registryHandler *handlers.RegistryHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.List)
		orders.POST("", orderHandler.Create)
		orders.GET("/export", orderHandler.ExportCSV)
		orders.GET("/:id", orderHandler.GetByID)
		orders.GET("/:id/logs", orderHandler.Logs)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PATCH("/:id/laudo", orderHandler.UpdateLaudo)
		orders.PATCH("/:id/payment", orderHandler.UpdatePayment)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", registryHandler.ListClients)
		clients.POST("", registryHandler.CreateClient)
	}

	devices := rg.Group(PathDevices)
	{
		devices.GET("", registryHandler.ListDevices)
		devices.POST("", registryHandler.CreateDevice)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.List)
		services.POST("", catalogHandler.Create)
		services.PUT("/:id", catalogHandler.Update)
		services.DELETE("/:id", catalogHandler.Delete)
	}

	stores := rg.Group(PathStores)
	{
		stores.GET("", registryHandler.ListStores)
	}
}
