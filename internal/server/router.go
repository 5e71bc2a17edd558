package server

import (
	auctionhandler "match-night/services/auction/handler"
	reporthandler "match-night/services/report/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	ledgerSvc auctionhandler.LedgerServiceInterface,
	sessionSvc auctionhandler.SessionServiceInterface,
	pipeline reporthandler.PipelineInterface,
	materializer reporthandler.MaterializerInterface,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(ledgerSvc, sessionSvc)
	reportHandler := reporthandler.NewReportHandler(pipeline, materializer)

	bids := router.Group("/bids")
	{
		bids.POST("", auctionHandler.PlaceBidHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", auctionHandler.ListItemsHandler)
		items.GET("/:item_id", auctionHandler.GetItemHandler)
		items.GET("/:item_id/bids", auctionHandler.GetItemBidsHandler)
	}

	participants := router.Group("/participants")
	{
		participants.POST("", auctionHandler.CreateParticipantHandler)
		participants.GET("/:participant_id", auctionHandler.GetParticipantHandler)
	}

	likes := router.Group("/likes")
	{
		likes.POST("", auctionHandler.AddLikeHandler)
	}

	matches := router.Group("/matches")
	{
		matches.GET("/:user_id", reportHandler.GetMatchesHandler)
	}

	reports := router.Group("/reports")
	{
		reports.GET("/:user_id", reportHandler.GetReportHandler)
	}

	shared := router.Group("/shared")
	{
		shared.GET("/:token", reportHandler.GetSharedReportHandler)
	}

	admin := router.Group("/admin")
	{
		admin.PUT("/items/:item_id/status", auctionHandler.SetItemStatusHandler)
		admin.POST("/sessions/:session_id/pipeline", reportHandler.RunPipelineHandler)
		admin.POST("/sessions/:session_id/snapshots", reportHandler.MaterializeHandler)
		admin.DELETE("/sessions/:session_id", auctionHandler.ResetSessionHandler)
		admin.DELETE("/participants/:participant_id", auctionHandler.DeleteParticipantHandler)
	}

	return router
}
