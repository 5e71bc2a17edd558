package handler

// Request/Response DTOs
type PlaceBidRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	BidderID string `json:"bidder_id" binding:"required"`
	Amount   int    `json:"amount" binding:"required,gt=0"`
}

type BidReceiptResponse struct {
	BidID          string `json:"bid_id"`
	ItemID         string `json:"item_id"`
	BidderID       string `json:"bidder_id"`
	Amount         int    `json:"amount"`
	PreviousBid    int    `json:"previous_bid"`
	AmountDeducted int    `json:"amount_deducted"`
	NewBalance     int    `json:"new_balance"`
	CreatedAt      string `json:"created_at"`
}

type SetItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateParticipantRequest struct {
	Name      string `json:"name" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

type AddLikeRequest struct {
	FromID string `json:"from_id" binding:"required"`
	ToID   string `json:"to_id" binding:"required"`
}

type AddLikeResponse struct {
	Added bool `json:"added"`
}
