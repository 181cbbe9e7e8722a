package handler

import (
	"fmt"
	"net/http"

	auction "market-simulator/internal/auctionService"
	negotiation "market-simulator/internal/negotiationService"
	"market-simulator/services/simulation/helpers"
	"market-simulator/utils"

	model "market-simulator/internal/models"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	Simulate(bidderIDs, itemIDs []string) (auction.RunResult, error)
	ActivityLog(runID string) ([][]string, error)
	ListRuns() ([]model.Run, error)
	ListBidders() ([]model.Participant, error)
	ListItems() ([]model.Item, error)
}

type NegotiationServiceInterface interface {
	Simulate(buyerIDs, itemIDs []string) (negotiation.RunResult, error)
	ActivityLog(runID string) ([][]string, error)
	ListRuns() ([]model.Run, error)
	ListBuyers() ([]model.Participant, error)
	ListItems() ([]model.Item, error)
}

type SimulationHandler struct {
	auctions     AuctionServiceInterface
	negotiations NegotiationServiceInterface
}

func NewSimulationHandler(auctions AuctionServiceInterface, negotiations NegotiationServiceInterface) *SimulationHandler {
	return &SimulationHandler{auctions: auctions, negotiations: negotiations}
}

// SimulateAuctionHandler handles POST /auctions
func (h *SimulationHandler) SimulateAuctionHandler(c *gin.Context) {
	var req helpers.SimulateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SimulateAuctionHandler", err)
		return
	}

	result, err := h.auctions.Simulate(req.BidderIDs, req.ItemIDs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SimulateAuctionHandler: simulation failed", map[string]any{
			"handler": "SimulateAuctionHandler",
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.RunResponse{RunID: result.RunID, Outcomes: result.Outcomes}
	utils.JSONResponse(c, http.StatusCreated, resp, "auction run completed")
	helpers.LogSuccess("SimulateAuctionHandler", "auction run completed", map[string]any{
		"run_id": result.RunID,
		"items":  len(result.Outcomes),
	})
}

// GetAuctionsHandler handles GET /auctions
func (h *SimulationHandler) GetAuctionsHandler(c *gin.Context) {
	runs, err := h.auctions.ListRuns()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsHandler: error listing runs", map[string]any{"error": err.Error()})
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	utils.JSONResponse(c, http.StatusOK, runs, "auction runs retrieved successfully")
}

// GetAuctionLogHandler handles GET /auctions/:run_id/log
func (h *SimulationHandler) GetAuctionLogHandler(c *gin.Context) {
	runID := c.Param("run_id")
	log, err := h.auctions.ActivityLog(runID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionLogHandler: error retrieving log", map[string]any{"run_id": runID, "error": err.Error()})
		return
	}

	resp := helpers.ActivityLogResponse{RunID: runID, Log: log}
	utils.JSONResponse(c, http.StatusOK, resp, "activity log retrieved successfully")
	helpers.LogSuccess("GetAuctionLogHandler", "activity log retrieved successfully", map[string]any{
		"run_id": runID,
		"items":  len(log),
	})
}

// GetBiddersHandler handles GET /auctions/bidders
func (h *SimulationHandler) GetBiddersHandler(c *gin.Context) {
	bidders, err := h.auctions.ListBidders()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBiddersHandler: error listing bidders", map[string]any{"error": err.Error()})
		return
	}
	if bidders == nil {
		bidders = []model.Participant{}
	}
	utils.JSONResponse(c, http.StatusOK, bidders, "bidders retrieved successfully")
}

// GetAuctionItemsHandler handles GET /auctions/items
func (h *SimulationHandler) GetAuctionItemsHandler(c *gin.Context) {
	items, err := h.auctions.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionItemsHandler: error listing items", map[string]any{"error": err.Error()})
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// SimulateNegotiationHandler handles POST /negotiations
func (h *SimulationHandler) SimulateNegotiationHandler(c *gin.Context) {
	var req helpers.SimulateNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SimulateNegotiationHandler", err)
		return
	}

	result, err := h.negotiations.Simulate(req.BuyerIDs, req.ItemIDs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SimulateNegotiationHandler: simulation failed", map[string]any{
			"handler": "SimulateNegotiationHandler",
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.RunResponse{RunID: result.RunID, Outcomes: result.Outcomes}
	utils.JSONResponse(c, http.StatusCreated, resp, "negotiation run completed")
	helpers.LogSuccess("SimulateNegotiationHandler", "negotiation run completed", map[string]any{
		"run_id": result.RunID,
		"items":  len(result.Outcomes),
	})
}

// GetNegotiationsHandler handles GET /negotiations
func (h *SimulationHandler) GetNegotiationsHandler(c *gin.Context) {
	runs, err := h.negotiations.ListRuns()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetNegotiationsHandler: error listing runs", map[string]any{"error": err.Error()})
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	utils.JSONResponse(c, http.StatusOK, runs, "negotiation runs retrieved successfully")
}

// GetNegotiationLogHandler handles GET /negotiations/:run_id/log
func (h *SimulationHandler) GetNegotiationLogHandler(c *gin.Context) {
	runID := c.Param("run_id")
	log, err := h.negotiations.ActivityLog(runID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetNegotiationLogHandler: error retrieving log", map[string]any{"run_id": runID, "error": err.Error()})
		return
	}

	resp := helpers.ActivityLogResponse{RunID: runID, Log: log}
	utils.JSONResponse(c, http.StatusOK, resp, "activity log retrieved successfully")
	helpers.LogSuccess("GetNegotiationLogHandler", "activity log retrieved successfully", map[string]any{
		"run_id": runID,
		"items":  len(log),
	})
}

// GetBuyersHandler handles GET /negotiations/buyers
func (h *SimulationHandler) GetBuyersHandler(c *gin.Context) {
	buyers, err := h.negotiations.ListBuyers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBuyersHandler: error listing buyers", map[string]any{"error": err.Error()})
		return
	}
	if buyers == nil {
		buyers = []model.Participant{}
	}
	utils.JSONResponse(c, http.StatusOK, buyers, "buyers retrieved successfully")
}

// GetBicyclesHandler handles GET /negotiations/bicycles
func (h *SimulationHandler) GetBicyclesHandler(c *gin.Context) {
	items, err := h.negotiations.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBicyclesHandler: error listing bicycles", map[string]any{"error": err.Error()})
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	utils.JSONResponse(c, http.StatusOK, items, "bicycles retrieved successfully")
}
