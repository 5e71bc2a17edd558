package ledger

import (
	"errors"
	"fmt"
	"time"

	"match-night/internal/auctionerrors"
	"match-night/internal/events"
	"match-night/internal/models"
	"match-night/internal/repository"
	"match-night/utils"
)

// BidReceipt is the result of an accepted bid.
type BidReceipt struct {
	Bid            models.Bid
	NewBalance     int
	PreviousBid    int
	AmountDeducted int
}

// Service enforces the auction invariants: monotonic price increase, a single
// highest bidder, and atomic refund-then-charge.
type Service struct {
	repo         repository.EventStore
	publisher    events.Publisher
	minIncrement int
}

// NewService creates a ledger Service.
func NewService(repo repository.EventStore, publisher events.Publisher, minIncrement int) *Service {
	return &Service{
		repo:         repo,
		publisher:    publisher,
		minIncrement: minIncrement,
	}
}

// PlaceBid validates and commits one bid. Preconditions are checked against a
// fresh read of the item; the commit is a compare-and-swap on the item version,
// so a concurrent bid that lands first forces a re-read and re-validation here
// rather than a lost update. Only version conflicts retry — precondition
// failures return immediately with enough detail for the caller to retry.
func (s *Service) PlaceBid(itemID, bidderID string, amount int) (BidReceipt, error) {
	if itemID == "" || bidderID == "" {
		return BidReceipt{}, fmt.Errorf("ledger: %w - missing itemID or bidderID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return BidReceipt{}, fmt.Errorf("ledger: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	for {
		item, err := s.repo.GetItem(itemID)
		if err != nil {
			return BidReceipt{}, fmt.Errorf("ledger: failed to read item %s: %w", itemID, err)
		}
		if item.Status != models.ItemActive {
			return BidReceipt{}, fmt.Errorf("ledger: %w - item %s is %s", auctionerrors.ErrItemNotActive, itemID, item.Status)
		}

		minBid := item.CurrentBid + s.minIncrement
		if amount < minBid {
			return BidReceipt{}, fmt.Errorf("ledger: %w - minimum bid is %d", auctionerrors.ErrBidTooLow, minBid)
		}

		bidder, err := s.repo.GetParticipant(bidderID)
		if err != nil {
			return BidReceipt{}, fmt.Errorf("ledger: failed to read bidder %s: %w", bidderID, err)
		}

		// Raising one's own bid only charges the delta; charging the full
		// amount again would double-charge an incremental raise.
		deduct := amount
		var refund *repository.Refund
		if item.HighestBidderID == bidderID {
			deduct = amount - item.CurrentBid
		} else if item.HighestBidderID != "" {
			refund = &repository.Refund{ParticipantID: item.HighestBidderID, Amount: item.CurrentBid}
		}

		if bidder.Balance < deduct {
			return BidReceipt{}, fmt.Errorf("ledger: %w - balance %d, required %d",
				auctionerrors.ErrInsufficientBalance, bidder.Balance, deduct)
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  bidderID,
			Amount:    amount,
			SessionID: item.SessionID,
			CreatedAt: time.Now().UTC(),
		}

		newBalance, err := s.repo.CommitBid(repository.BidTransition{
			ItemID:          itemID,
			ExpectedVersion: item.Version,
			BidderID:        bidderID,
			Amount:          amount,
			Deduct:          deduct,
			Refund:          refund,
			Bid:             bid,
		})
		if err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return BidReceipt{}, fmt.Errorf("ledger: failed to commit bid on item %s: %w", itemID, err)
		}

		s.publisher.Publish(events.Event{
			Kind:      events.BidAccepted,
			SessionID: item.SessionID,
			At:        bid.CreatedAt,
			Fields: map[string]any{
				"item_id":   itemID,
				"bidder_id": bidderID,
				"amount":    amount,
			},
		})

		return BidReceipt{
			Bid:            bid,
			NewBalance:     newBalance,
			PreviousBid:    item.CurrentBid,
			AmountDeducted: deduct,
		}, nil
	}
}

// SetItemStatus transitions an item. Activating an item demotes any other
// active item in the same session first, so at most one item is live.
func (s *Service) SetItemStatus(itemID string, status models.ItemStatus) error {
	if itemID == "" {
		return fmt.Errorf("ledger: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	if !status.Valid() {
		return fmt.Errorf("ledger: %w - unknown status %q", auctionerrors.ErrInvalidInput, status)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("ledger: failed to read item %s: %w", itemID, err)
	}

	if status == models.ItemActive {
		err = s.repo.SetActiveItem(item.SessionID, itemID)
	} else {
		err = s.repo.UpdateItemStatus(itemID, status)
	}
	if err != nil {
		return fmt.Errorf("ledger: failed to set item %s status: %w", itemID, err)
	}

	s.publisher.Publish(events.Event{
		Kind:      events.ItemStatusChanged,
		SessionID: item.SessionID,
		At:        time.Now().UTC(),
		Fields: map[string]any{
			"item_id": itemID,
			"status":  string(status),
		},
	})

	return nil
}

// GetItem returns one item.
func (s *Service) GetItem(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("ledger: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("ledger: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns all items in a session.
func (s *Service) ListItems(sessionID string) ([]models.Item, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("ledger: %w - empty session ID", auctionerrors.ErrInvalidInput)
	}
	items, err := s.repo.ListItems(sessionID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list items for session %s: %w", sessionID, err)
	}
	return items, nil
}

// GetBidsForItem returns all committed bids for an item.
func (s *Service) GetBidsForItem(itemID string) ([]models.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("ledger: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.repo.ListBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}
