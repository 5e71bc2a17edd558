package scoring

import "match-night/internal/models"

// Scarcity weights by how contested a shared item was: overlap on an item few
// people bid on says more about two participants than overlap on a crowd
// favorite.
const (
	scarceBidders    = 3
	uncommonBidders  = 5
	scarceWeight     = 1.3
	uncommonWeight   = 1.15
	commonWeight     = 1.0
)

// BidHistory is a read-only index over a session's committed bids, built once
// per pipeline run so every pair comparison works off the same snapshot.
type BidHistory struct {
	totals  map[string]map[string]int // participantID -> itemID -> summed bid amount
	bidders map[string]map[string]struct{} // itemID -> distinct bidders
}

// NewBidHistory indexes a slice of committed bids.
func NewBidHistory(bids []models.Bid) *BidHistory {
	h := &BidHistory{
		totals:  make(map[string]map[string]int),
		bidders: make(map[string]map[string]struct{}),
	}
	for _, b := range bids {
		items, ok := h.totals[b.BidderID]
		if !ok {
			items = make(map[string]int)
			h.totals[b.BidderID] = items
		}
		items[b.ItemID] += b.Amount

		set, ok := h.bidders[b.ItemID]
		if !ok {
			set = make(map[string]struct{})
			h.bidders[b.ItemID] = set
		}
		set[b.BidderID] = struct{}{}
	}
	return h
}

// ItemTotals returns a participant's summed bid amounts per item.
func (h *BidHistory) ItemTotals(participantID string) map[string]int {
	return h.totals[participantID]
}

// BidderCount returns the number of distinct bidders on an item.
func (h *BidHistory) BidderCount(itemID string) int {
	return len(h.bidders[itemID])
}

// scarcity returns the weight applied to overlap on one item.
func (h *BidHistory) scarcity(itemID string) float64 {
	switch n := h.BidderCount(itemID); {
	case n <= scarceBidders:
		return scarceWeight
	case n <= uncommonBidders:
		return uncommonWeight
	default:
		return commonWeight
	}
}

// Similarity computes the valuation alignment of two participants in [0,1]:
// for every item both bid on, the ratio of the smaller to the larger summed
// amount, scarcity-weighted, averaged over the shared items. No bids on
// either side, or no shared items, yields 0. Symmetric by construction.
func (h *BidHistory) Similarity(a, b string) float64 {
	aTotals := h.totals[a]
	bTotals := h.totals[b]
	if len(aTotals) == 0 || len(bTotals) == 0 {
		return 0
	}

	sum := 0.0
	shared := 0
	for itemID, aAmt := range aTotals {
		bAmt, ok := bTotals[itemID]
		if !ok || aAmt <= 0 || bAmt <= 0 {
			continue
		}
		ratio := float64(aAmt) / float64(bAmt)
		if aAmt > bAmt {
			ratio = float64(bAmt) / float64(aAmt)
		}
		sum += ratio * h.scarcity(itemID)
		shared++
	}
	if shared == 0 {
		return 0
	}

	sim := sum / float64(shared)
	if sim > 1 {
		sim = 1
	}
	return sim
}
