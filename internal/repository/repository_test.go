package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"match-night/internal/auctionerrors"
	model "match-night/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a new Participant
func newParticipant(id string, gender model.Gender, balance int) model.Participant {
	return model.Participant{
		ParticipantID: id,
		Name:          fmt.Sprintf("%s name", id),
		Gender:        gender,
		Balance:       balance,
		SessionID:     "session1",
	}
}

// Helper to create a new Item
func newItem(itemID, title string, status model.ItemStatus) model.Item {
	return model.Item{
		ItemID:    itemID,
		Title:     title,
		Status:    status,
		SessionID: "session1",
	}
}

// Helper to create a new Bid
func newBid(bidID, itemID, bidderID string, amount int, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		ItemID:    itemID,
		BidderID:  bidderID,
		Amount:    amount,
		SessionID: "session1",
		CreatedAt: createdAt,
	}
}

// seededRepo builds a repo with one active item and two funded participants.
func seededRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(newItem("item1", "Adventure", model.ItemActive)))
	require.NoError(t, repo.CreateParticipant(newParticipant("alice", model.GenderFemale, 1000)))
	require.NoError(t, repo.CreateParticipant(newParticipant("bob", model.GenderMale, 1000)))
	return repo
}

// Test CommitBid
func TestMemoryRepo_CommitBid(t *testing.T) {
	t.Parallel()

	t.Run("first_bid_commits", func(t *testing.T) {
		t.Parallel()
		repo := seededRepo(t)

		balance, err := repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 0,
			BidderID:        "alice",
			Amount:          100,
			Deduct:          100,
			Bid:             newBid("bid1", "item1", "alice", 100, time.Now()),
		})
		require.NoError(t, err)
		require.Equal(t, 900, balance)

		item, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, 100, item.CurrentBid)
		require.Equal(t, "alice", item.HighestBidderID)
		require.Equal(t, int64(1), item.Version)
	})

	t.Run("stale_version_rejected", func(t *testing.T) {
		t.Parallel()
		repo := seededRepo(t)

		_, err := repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 0,
			BidderID:        "alice",
			Amount:          100,
			Deduct:          100,
			Bid:             newBid("bid1", "item1", "alice", 100, time.Now()),
		})
		require.NoError(t, err)

		// Same expected version again must conflict, not double-apply.
		_, err = repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 0,
			BidderID:        "bob",
			Amount:          200,
			Deduct:          200,
			Bid:             newBid("bid2", "item1", "bob", 200, time.Now()),
		})
		require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)

		item, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, "alice", item.HighestBidderID)

		bob, err := repo.GetParticipant("bob")
		require.NoError(t, err)
		require.Equal(t, 1000, bob.Balance)
	})

	t.Run("refund_applied_with_deduct", func(t *testing.T) {
		t.Parallel()
		repo := seededRepo(t)

		_, err := repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 0,
			BidderID:        "alice",
			Amount:          100,
			Deduct:          100,
			Bid:             newBid("bid1", "item1", "alice", 100, time.Now()),
		})
		require.NoError(t, err)

		balance, err := repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 1,
			BidderID:        "bob",
			Amount:          250,
			Deduct:          250,
			Refund:          &Refund{ParticipantID: "alice", Amount: 100},
			Bid:             newBid("bid2", "item1", "bob", 250, time.Now()),
		})
		require.NoError(t, err)
		require.Equal(t, 750, balance)

		alice, err := repo.GetParticipant("alice")
		require.NoError(t, err)
		require.Equal(t, 1000, alice.Balance) // refunded in full
	})

	t.Run("insufficient_balance_leaves_no_side_effects", func(t *testing.T) {
		t.Parallel()
		repo := seededRepo(t)

		_, err := repo.CommitBid(BidTransition{
			ItemID:          "item1",
			ExpectedVersion: 0,
			BidderID:        "alice",
			Amount:          2000,
			Deduct:          2000,
			Bid:             newBid("bid1", "item1", "alice", 2000, time.Now()),
		})
		require.ErrorIs(t, err, auctionerrors.ErrInsufficientBalance)

		item, err := repo.GetItem("item1")
		require.NoError(t, err)
		require.Equal(t, 0, item.CurrentBid)
		require.Empty(t, item.HighestBidderID)

		bids, err := repo.ListBidsByItem("item1")
		require.NoError(t, err)
		require.Empty(t, bids)
	})

	t.Run("unknown_item", func(t *testing.T) {
		t.Parallel()
		repo := seededRepo(t)

		_, err := repo.CommitBid(BidTransition{ItemID: "nope", BidderID: "alice"})
		require.ErrorIs(t, err, auctionerrors.ErrItemNotFound)
	})
}

// Test SetActiveItem
func TestMemoryRepo_SetActiveItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(newItem("item1", "Adventure", model.ItemActive)))
	require.NoError(t, repo.CreateItem(newItem("item2", "Family", model.ItemPending)))

	require.NoError(t, repo.SetActiveItem("session1", "item2"))

	item1, err := repo.GetItem("item1")
	require.NoError(t, err)
	require.Equal(t, model.ItemPending, item1.Status)

	item2, err := repo.GetItem("item2")
	require.NoError(t, err)
	require.Equal(t, model.ItemActive, item2.Status)

	require.ErrorIs(t, repo.SetActiveItem("session1", "missing"), auctionerrors.ErrItemNotFound)
}

// Test AddLike
func TestMemoryRepo_AddLike(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	like := func(id, to string) model.LikeSignal {
		return model.LikeSignal{LikeID: id, FromID: "alice", ToID: to, SessionID: "session1", CreatedAt: time.Now()}
	}

	added, err := repo.AddLike(like("l1", "bob"), 2)
	require.NoError(t, err)
	require.True(t, added)

	// Duplicate ordered pair is a no-op, not an error.
	added, err = repo.AddLike(like("l2", "bob"), 2)
	require.NoError(t, err)
	require.False(t, added)

	added, err = repo.AddLike(like("l3", "carol"), 2)
	require.NoError(t, err)
	require.True(t, added)

	_, err = repo.AddLike(like("l4", "dave"), 2)
	require.ErrorIs(t, err, auctionerrors.ErrLikeCapReached)

	likes, err := repo.ListLikesBySession("session1")
	require.NoError(t, err)
	require.Len(t, likes, 2)
}

// Test pipeline run flag
func TestMemoryRepo_PipelineRunFlag(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	require.NoError(t, repo.BeginPipelineRun("session1"))
	require.ErrorIs(t, repo.BeginPipelineRun("session1"), auctionerrors.ErrPipelineRunning)

	// A different session is independent.
	require.NoError(t, repo.BeginPipelineRun("session2"))

	repo.EndPipelineRun("session1")
	require.NoError(t, repo.BeginPipelineRun("session1"))
}

// Test snapshot upsert, token uniqueness and sweep
func TestMemoryRepo_Snapshots(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now().UTC()

	snap := func(user, token string, createdAt time.Time) model.ReportSnapshot {
		return model.ReportSnapshot{
			SnapshotID: "snap-" + user,
			UserID:     user,
			SessionID:  "session1",
			ReportType: model.ReportAggregate,
			Payload:    []byte(`{"ok":true}`),
			ShareToken: token,
			CreatedAt:  createdAt,
		}
	}

	require.NoError(t, repo.UpsertSnapshot(snap("alice", "tok-a", now)))
	require.NoError(t, repo.UpsertSnapshot(snap("bob", "tok-b", now.Add(-25*time.Hour))))

	// Token held by a different key rejects.
	err := repo.UpsertSnapshot(snap("carol", "tok-a", now))
	require.ErrorIs(t, err, auctionerrors.ErrTokenTaken)

	// Upsert on the same key overwrites instead of duplicating.
	require.NoError(t, repo.UpsertSnapshot(snap("alice", "tok-a", now)))

	got, err := repo.GetSnapshotByToken("tok-a")
	require.NoError(t, err)
	require.Equal(t, "alice", got.UserID)

	removed := repo.DeleteSnapshotsBefore(now.Add(-24 * time.Hour))
	require.Equal(t, 1, removed)

	_, err = repo.GetSnapshot("bob", "session1", model.ReportAggregate)
	require.ErrorIs(t, err, auctionerrors.ErrSnapshotNotFound)
	_, err = repo.GetSnapshotByToken("tok-b")
	require.ErrorIs(t, err, auctionerrors.ErrSnapshotNotFound)

	_, err = repo.GetSnapshot("alice", "session1", model.ReportAggregate)
	require.NoError(t, err)
}

// Test DeleteParticipant cascade
func TestMemoryRepo_DeleteParticipant_Cascade(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)

	_, err := repo.CommitBid(BidTransition{
		ItemID: "item1", ExpectedVersion: 0, BidderID: "alice", Amount: 100, Deduct: 100,
		Bid: newBid("bid1", "item1", "alice", 100, time.Now()),
	})
	require.NoError(t, err)
	_, err = repo.CommitBid(BidTransition{
		ItemID: "item1", ExpectedVersion: 1, BidderID: "bob", Amount: 250, Deduct: 250,
		Refund: &Refund{ParticipantID: "alice", Amount: 100},
		Bid:    newBid("bid2", "item1", "bob", 250, time.Now()),
	})
	require.NoError(t, err)

	_, err = repo.AddLike(model.LikeSignal{LikeID: "l1", FromID: "alice", ToID: "bob", SessionID: "session1"}, 5)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceMatchRecords("session1", []model.MatchRecord{
		{MatchID: "m1", SubjectID: "alice", CandidateID: "bob", Score: 50, Rank: 1, SessionID: "session1"},
		{MatchID: "m2", SubjectID: "bob", CandidateID: "alice", Score: 40, Rank: 1, SessionID: "session1"},
	}))

	before, err := repo.GetItem("item1")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteParticipant("bob"))

	// The item the deleted leader held resets to no leader and zero price.
	// Reinstating alice would hand her the lead while her 100 sits refunded
	// in her balance.
	item, err := repo.GetItem("item1")
	require.NoError(t, err)
	require.Empty(t, item.HighestBidderID)
	require.Equal(t, 0, item.CurrentBid)
	require.Greater(t, item.Version, before.Version)

	bids, err := repo.ListBidsByItem("item1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, "alice", bids[0].BidderID)

	likes, err := repo.ListLikesBySession("session1")
	require.NoError(t, err)
	require.Empty(t, likes)

	matches, err := repo.ListMatchesBySubject("session1", "alice")
	require.NoError(t, err)
	require.Empty(t, matches)

	_, err = repo.GetParticipant("bob")
	require.ErrorIs(t, err, auctionerrors.ErrParticipantNotFound)
}

// Test ResetSession
func TestMemoryRepo_ResetSession(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t)

	_, err := repo.CommitBid(BidTransition{
		ItemID: "item1", ExpectedVersion: 0, BidderID: "alice", Amount: 300, Deduct: 300,
		Bid: newBid("bid1", "item1", "alice", 300, time.Now()),
	})
	require.NoError(t, err)
	_, err = repo.AddLike(model.LikeSignal{LikeID: "l1", FromID: "bob", ToID: "alice", SessionID: "session1"}, 5)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertSnapshot(model.ReportSnapshot{
		SnapshotID: "s1", UserID: "alice", SessionID: "session1",
		ReportType: model.ReportPairwise, CreatedAt: time.Now(),
	}))

	require.NoError(t, repo.ResetSession("session1", 1000))

	item, err := repo.GetItem("item1")
	require.NoError(t, err)
	require.Equal(t, model.ItemPending, item.Status)
	require.Equal(t, 0, item.CurrentBid)
	require.Empty(t, item.HighestBidderID)

	alice, err := repo.GetParticipant("alice")
	require.NoError(t, err)
	require.Equal(t, 1000, alice.Balance)

	bids, err := repo.ListBidsBySession("session1")
	require.NoError(t, err)
	require.Empty(t, bids)

	likes, err := repo.ListLikesBySession("session1")
	require.NoError(t, err)
	require.Empty(t, likes)

	_, err = repo.GetSnapshot("alice", "session1", model.ReportPairwise)
	require.ErrorIs(t, err, auctionerrors.ErrSnapshotNotFound)
}

// Concurrent CommitBid calls with the same expected version: exactly one wins.
func TestMemoryRepo_CommitBid_ConcurrentSameVersion(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(newItem("item1", "Adventure", model.ItemActive)))

	const n = 16
	for i := 0; i < n; i++ {
		require.NoError(t, repo.CreateParticipant(newParticipant(fmt.Sprintf("user%d", i), model.GenderMale, 1000)))
	}

	var wg sync.WaitGroup
	conflicts := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bidder := fmt.Sprintf("user%d", i)
			_, err := repo.CommitBid(BidTransition{
				ItemID:          "item1",
				ExpectedVersion: 0,
				BidderID:        bidder,
				Amount:          100,
				Deduct:          100,
				Bid:             newBid(fmt.Sprintf("bid%d", i), "item1", bidder, 100, time.Now()),
			})
			conflicts <- err
		}(i)
	}
	wg.Wait()
	close(conflicts)

	accepted := 0
	for err := range conflicts {
		if err == nil {
			accepted++
		} else {
			require.ErrorIs(t, err, auctionerrors.ErrVersionConflict)
		}
	}
	require.Equal(t, 1, accepted)

	bids, err := repo.ListBidsByItem("item1")
	require.NoError(t, err)
	require.Len(t, bids, 1)
}
