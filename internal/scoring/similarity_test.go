package scoring

import (
	"testing"

	model "match-night/internal/models"

	"github.com/stretchr/testify/require"
)

func bid(bidder, item string, amount int) model.Bid {
	return model.Bid{
		BidID:     bidder + "-" + item,
		ItemID:    item,
		BidderID:  bidder,
		Amount:    amount,
		SessionID: "session1",
	}
}

func TestBidHistory_Similarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bids []model.Bid
		a, b string
		want float64
	}{
		{
			name: "no_bids_either_side",
			bids: nil,
			a:    "alice",
			b:    "bob",
			want: 0,
		},
		{
			name: "one_side_empty",
			bids: []model.Bid{bid("alice", "item1", 100)},
			a:    "alice",
			b:    "bob",
			want: 0,
		},
		{
			name: "no_shared_items",
			bids: []model.Bid{bid("alice", "item1", 100), bid("bob", "item2", 100)},
			a:    "alice",
			b:    "bob",
			want: 0,
		},
		{
			name: "equal_bids_scarce_item_clamped",
			// Two bidders on the item: scarcity weight 1.3 on a perfect ratio,
			// clamped back to 1.
			bids: []model.Bid{bid("alice", "item1", 200), bid("bob", "item1", 200)},
			a:    "alice",
			b:    "bob",
			want: 1,
		},
		{
			name: "half_ratio_scarce_item",
			bids: []model.Bid{bid("alice", "item1", 100), bid("bob", "item1", 200)},
			a:    "alice",
			b:    "bob",
			want: 0.5 * 1.3,
		},
		{
			name: "uncommon_item_weight",
			// Five distinct bidders: weight drops to 1.15.
			bids: []model.Bid{
				bid("alice", "item1", 100), bid("bob", "item1", 200),
				bid("carol", "item1", 50), bid("dave", "item1", 60), bid("eve", "item1", 70),
			},
			a:    "alice",
			b:    "bob",
			want: 0.5 * 1.15,
		},
		{
			name: "common_item_no_weight",
			bids: []model.Bid{
				bid("alice", "item1", 100), bid("bob", "item1", 200),
				bid("carol", "item1", 50), bid("dave", "item1", 60),
				bid("eve", "item1", 70), bid("frank", "item1", 80),
			},
			a:    "alice",
			b:    "bob",
			want: 0.5,
		},
		{
			name: "repeat_bids_sum_per_item",
			// alice bids 100 twice on item1: her vector entry is 200.
			bids: []model.Bid{
				bid("alice", "item1", 100),
				{BidID: "alice-item1-2", ItemID: "item1", BidderID: "alice", Amount: 100, SessionID: "session1"},
				bid("bob", "item1", 200),
			},
			a:    "alice",
			b:    "bob",
			want: 1, // 200/200 ratio, weight clamped
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewBidHistory(tc.bids)
			require.InDelta(t, tc.want, h.Similarity(tc.a, tc.b), 1e-9)
		})
	}
}

func TestBidHistory_Similarity_Symmetric(t *testing.T) {
	t.Parallel()

	h := NewBidHistory([]model.Bid{
		bid("alice", "item1", 100), bid("bob", "item1", 300),
		bid("alice", "item2", 500), bid("bob", "item2", 400),
		bid("carol", "item2", 50),
	})

	require.InDelta(t, h.Similarity("alice", "bob"), h.Similarity("bob", "alice"), 1e-9)
}

func TestBidHistory_Similarity_AveragesOverSharedItems(t *testing.T) {
	t.Parallel()

	h := NewBidHistory([]model.Bid{
		bid("alice", "item1", 100), bid("bob", "item1", 100), // ratio 1, weight 1.3
		bid("alice", "item2", 100), bid("bob", "item2", 400), // ratio 0.25, weight 1.3
	})

	want := (1.0*1.3 + 0.25*1.3) / 2 // weighted ratios averaged, then clamped (no-op here)
	require.InDelta(t, want, h.Similarity("alice", "bob"), 1e-9)
}
