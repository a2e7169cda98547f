package routes

import (
	"agri-program-api-server/internal/api/handlers"
	"agri-program-api-server/internal/api/middleware"
	"agri-program-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter receives the store handle and wires up all routes.
func SetupRouter(st store.Store) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	authHandler := &handlers.AuthHandler{Store: st}
	collectionHandler := &handlers.CollectionHandler{Store: st}
	registryHandler := &handlers.RegistryHandler{Store: st}
	reportHandler := &handlers.ReportHandler{Store: st}
	financeHandler := &handlers.FinanceHandler{Store: st}

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health)

		api.POST("/login", authHandler.Login)

		api.GET("/collections", collectionHandler.ListCollections)
		api.GET("/collections/:collectionName", collectionHandler.GetCollectionByName)

		api.GET("/participants", registryHandler.GetParticipants)
		api.GET("/dealers", registryHandler.GetDealers)
		api.GET("/cooperatives", registryHandler.GetCooperatives)

		api.GET("/leverages", reportHandler.GetLeverages)
		api.GET("/market-surveys", reportHandler.GetMarketSurveys)
		api.GET("/productivity", reportHandler.GetProductivity)
		api.GET("/data-structure", reportHandler.GetDataStructure)

		api.GET("/a2f", financeHandler.GetA2F)
		api.GET("/a2m", financeHandler.GetA2M)
	}

	return router
}
