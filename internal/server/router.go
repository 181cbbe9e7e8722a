package server

import (
	auction "market-simulator/internal/auctionService"
	negotiation "market-simulator/internal/negotiationService"
	handler "market-simulator/services/simulation/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionSvc *auction.Service, negotiationSvc *negotiation.Service) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	simHandler := handler.NewSimulationHandler(auctionSvc, negotiationSvc)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", simHandler.GetAuctionsHandler)
		auctions.POST("", simHandler.SimulateAuctionHandler)
		auctions.GET("/bidders", simHandler.GetBiddersHandler)
		auctions.GET("/items", simHandler.GetAuctionItemsHandler)
		auctions.GET("/:run_id/log", simHandler.GetAuctionLogHandler)
	}

	negotiations := router.Group("/negotiations")
	{
		negotiations.GET("", simHandler.GetNegotiationsHandler)
		negotiations.POST("", simHandler.SimulateNegotiationHandler)
		negotiations.GET("/buyers", simHandler.GetBuyersHandler)
		negotiations.GET("/bicycles", simHandler.GetBicyclesHandler)
		negotiations.GET("/:run_id/log", simHandler.GetNegotiationLogHandler)
	}

	return router
}
