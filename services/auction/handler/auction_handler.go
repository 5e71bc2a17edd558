package handler

import (
	"fmt"
	"net/http"
	"time"

	"match-night/internal/ledger"
	model "match-night/internal/models"
	"match-night/services/helpers"
	"match-night/utils"

	"github.com/gin-gonic/gin"
)

type LedgerServiceInterface interface {
	PlaceBid(itemID, bidderID string, amount int) (ledger.BidReceipt, error)
	SetItemStatus(itemID string, status model.ItemStatus) error
	GetItem(itemID string) (model.Item, error)
	ListItems(sessionID string) ([]model.Item, error)
	GetBidsForItem(itemID string) ([]model.Bid, error)
}

type SessionServiceInterface interface {
	CreateParticipant(name string, gender model.Gender, sessionID string) (model.Participant, error)
	GetParticipant(id string) (model.Participant, error)
	AddLike(fromID, toID string) (bool, error)
	DeleteParticipant(id string) error
	ResetSession(sessionID string) error
}

type AuctionHandler struct {
	ledger  LedgerServiceInterface
	session SessionServiceInterface
}

func NewAuctionHandler(ledgerSvc LedgerServiceInterface, sessionSvc SessionServiceInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledgerSvc, session: sessionSvc}
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	receipt, err := h.ledger.PlaceBid(req.ItemID, req.BidderID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"item_id":   req.ItemID,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	resp := BidReceiptResponse{
		BidID:          receipt.Bid.BidID,
		ItemID:         receipt.Bid.ItemID,
		BidderID:       receipt.Bid.BidderID,
		Amount:         receipt.Bid.Amount,
		PreviousBid:    receipt.PreviousBid,
		AmountDeducted: receipt.AmountDeducted,
		NewBalance:     receipt.NewBalance,
		CreatedAt:      receipt.Bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    receipt.Bid.BidID,
		"item_id":   req.ItemID,
		"bidder_id": req.BidderID,
		"amount":    req.Amount,
	})
}

// SetItemStatusHandler handles PUT /admin/items/:item_id/status
func (h *AuctionHandler) SetItemStatusHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req SetItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetItemStatusHandler", err)
		return
	}

	if err := h.ledger.SetItemStatus(itemID, model.ItemStatus(req.Status)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SetItemStatusHandler: failed to set status", map[string]any{
			"item_id": itemID,
			"status":  req.Status,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID, "status": req.Status}, "item status updated")
	helpers.LogSuccess("SetItemStatusHandler", "item status updated", map[string]any{
		"item_id": itemID,
		"status":  req.Status,
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.ledger.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// ListItemsHandler handles GET /items?session_id=
func (h *AuctionHandler) ListItemsHandler(c *gin.Context) {
	sessionID := c.Query("session_id")

	items, err := h.ledger.ListItems(sessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"session_id": sessionID, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemBidsHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetItemBidsHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	bids, err := h.ledger.GetBidsForItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemBidsHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetItemBidsHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// CreateParticipantHandler handles POST /participants
func (h *AuctionHandler) CreateParticipantHandler(c *gin.Context) {
	var req CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateParticipantHandler", err)
		return
	}

	p, err := h.session.CreateParticipant(req.Name, model.Gender(req.Gender), req.SessionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateParticipantHandler: failed to create participant", map[string]any{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, p, "participant created successfully")
	helpers.LogSuccess("CreateParticipantHandler", "participant created successfully", map[string]any{
		"participant_id": p.ParticipantID,
		"session_id":     p.SessionID,
	})
}

// GetParticipantHandler handles GET /participants/:participant_id
func (h *AuctionHandler) GetParticipantHandler(c *gin.Context) {
	id := c.Param("participant_id")

	p, err := h.session.GetParticipant(id)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetParticipantHandler: error retrieving participant", map[string]any{"participant_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, p, "participant retrieved successfully")
}

// AddLikeHandler handles POST /likes
func (h *AuctionHandler) AddLikeHandler(c *gin.Context) {
	var req AddLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddLikeHandler", err)
		return
	}

	added, err := h.session.AddLike(req.FromID, req.ToID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddLikeHandler: failed to add like", map[string]any{
			"from_id": req.FromID,
			"to_id":   req.ToID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, AddLikeResponse{Added: added}, "like recorded")
	helpers.LogSuccess("AddLikeHandler", "like recorded", map[string]any{
		"from_id": req.FromID,
		"to_id":   req.ToID,
		"added":   added,
	})
}

// DeleteParticipantHandler handles DELETE /admin/participants/:participant_id
func (h *AuctionHandler) DeleteParticipantHandler(c *gin.Context) {
	id := c.Param("participant_id")

	if err := h.session.DeleteParticipant(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteParticipantHandler: failed to delete participant", map[string]any{"participant_id": id, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"participant_id": id}, "participant deleted")
	helpers.LogSuccess("DeleteParticipantHandler", "participant deleted", map[string]any{"participant_id": id})
}

// ResetSessionHandler handles DELETE /admin/sessions/:session_id
func (h *AuctionHandler) ResetSessionHandler(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.session.ResetSession(sessionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ResetSessionHandler: failed to reset session", map[string]any{"session_id": sessionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"session_id": sessionID}, "session reset")
	helpers.LogSuccess("ResetSessionHandler", "session reset", map[string]any{"session_id": sessionID})
}
