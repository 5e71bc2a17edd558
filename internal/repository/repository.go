package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"match-night/internal/auctionerrors"
	model "match-night/internal/models"
)

// Refund describes the balance restoration owed to a displaced leader as part
// of a bid commit.
type Refund struct {
	ParticipantID string
	Amount        int
}

// BidTransition is one logical ledger transaction: it is applied atomically or
// not at all. ExpectedVersion is the item version the caller validated against;
// a mismatch at commit time means another bid landed first.
type BidTransition struct {
	ItemID          string
	ExpectedVersion int64
	BidderID        string
	Amount          int
	Deduct          int
	Refund          *Refund
	Bid             model.Bid
}

// EventStore defines the row storage interface for the event-night system.
type EventStore interface {
	CreateParticipant(p model.Participant) error
	GetParticipant(id string) (model.Participant, error)
	ListParticipants(sessionID string) ([]model.Participant, error)
	DeleteParticipant(id string) error

	CreateItem(item model.Item) error
	GetItem(itemID string) (model.Item, error)
	ListItems(sessionID string) ([]model.Item, error)
	SetActiveItem(sessionID, itemID string) error
	UpdateItemStatus(itemID string, status model.ItemStatus) error

	CommitBid(t BidTransition) (newBalance int, err error)
	ListBidsByItem(itemID string) ([]model.Bid, error)
	ListBidsBySession(sessionID string) ([]model.Bid, error)

	AddLike(like model.LikeSignal, senderCap int) (added bool, err error)
	ListLikesBySession(sessionID string) ([]model.LikeSignal, error)

	ReplaceMatchRecords(sessionID string, records []model.MatchRecord) error
	ListMatchesBySubject(sessionID, subjectID string) ([]model.MatchRecord, error)
	BeginPipelineRun(sessionID string) error
	EndPipelineRun(sessionID string)

	UpsertSnapshot(s model.ReportSnapshot) error
	GetSnapshot(userID, sessionID, reportType string) (model.ReportSnapshot, error)
	GetSnapshotByToken(token string) (model.ReportSnapshot, error)
	DeleteSnapshotsBefore(cutoff time.Time) int

	ResetSession(sessionID string, endowment int) error
}

// snapshotKey is the unique key of a materialized report row.
type snapshotKey struct {
	userID     string
	sessionID  string
	reportType string
}

// MemoryRepo is a concurrency-safe in-memory implementation of EventStore.
// All multi-row mutations (bid commits, match replacement, cascading deletes)
// run under the single write lock, which is what makes them atomic.
type MemoryRepo struct {
	mu           sync.RWMutex
	participants map[string]model.Participant // key: participantID
	items        map[string]model.Item        // key: itemID
	bids         map[string][]model.Bid       // key: itemID -> committed bids in order
	likes        map[string][]model.LikeSignal // key: fromID -> sent signals
	matches      map[string][]model.MatchRecord // key: sessionID -> full match set
	snapshots    map[snapshotKey]model.ReportSnapshot
	tokens       map[string]snapshotKey // key: shareToken
	pipelineRuns map[string]bool        // key: sessionID -> run in progress
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		participants: make(map[string]model.Participant),
		items:        make(map[string]model.Item),
		bids:         make(map[string][]model.Bid),
		likes:        make(map[string][]model.LikeSignal),
		matches:      make(map[string][]model.MatchRecord),
		snapshots:    make(map[snapshotKey]model.ReportSnapshot),
		tokens:       make(map[string]snapshotKey),
		pipelineRuns: make(map[string]bool),
	}
}

// CreateParticipant stores a new participant row.
func (r *MemoryRepo) CreateParticipant(p model.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.participants[p.ParticipantID] = p
	return nil
}

// GetParticipant returns one participant by ID.
func (r *MemoryRepo) GetParticipant(id string) (model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[id]
	if !ok {
		return model.Participant{}, fmt.Errorf("get participant %s: %w", id, auctionerrors.ErrParticipantNotFound)
	}
	return p, nil
}

// ListParticipants returns all participants in a session, ordered by ID.
func (r *MemoryRepo) ListParticipants(sessionID string) ([]model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Participant, 0)
	for _, p := range r.participants {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })
	return out, nil
}

// DeleteParticipant removes a participant and every row that references them:
// bids, likes in both directions, match records in both roles, snapshots.
// Any item the participant currently leads resets to no leader and zero price.
// Reverting to the previous bidder would reinstate someone whose stake was
// already refunded, so their next outbid would refund them twice.
func (r *MemoryRepo) DeleteParticipant(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return fmt.Errorf("delete participant %s: %w", id, auctionerrors.ErrParticipantNotFound)
	}
	delete(r.participants, id)

	for itemID, bids := range r.bids {
		kept := bids[:0]
		for _, b := range bids {
			if b.BidderID != id {
				kept = append(kept, b)
			}
		}
		r.bids[itemID] = kept
	}

	for itemID, item := range r.items {
		if item.HighestBidderID != id {
			continue
		}
		item.CurrentBid = 0
		item.HighestBidderID = ""
		item.Version++
		r.items[itemID] = item
	}

	delete(r.likes, id)
	for from, sigs := range r.likes {
		kept := sigs[:0]
		for _, s := range sigs {
			if s.ToID != id {
				kept = append(kept, s)
			}
		}
		r.likes[from] = kept
	}

	recs := r.matches[p.SessionID][:0]
	for _, m := range r.matches[p.SessionID] {
		if m.SubjectID != id && m.CandidateID != id {
			recs = append(recs, m)
		}
	}
	r.matches[p.SessionID] = recs

	for key, s := range r.snapshots {
		if key.userID == id {
			delete(r.tokens, s.ShareToken)
			delete(r.snapshots, key)
		}
	}

	return nil
}

// CreateItem stores a new auction item row.
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ItemID] = item
	return nil
}

// GetItem returns one item by ID.
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items in a session, ordered by ID.
func (r *MemoryRepo) ListItems(sessionID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Item, 0)
	for _, item := range r.items {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// SetActiveItem activates one item and demotes any other active item in the
// same session to pending, in a single locked step so the one-active-item
// invariant holds even under concurrent operator calls.
func (r *MemoryRepo) SetActiveItem(sessionID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("activate item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	for id, item := range r.items {
		if id != itemID && item.SessionID == sessionID && item.Status == model.ItemActive {
			item.Status = model.ItemPending
			item.Version++
			r.items[id] = item
		}
	}

	target.Status = model.ItemActive
	target.Version++
	r.items[itemID] = target
	return nil
}

// UpdateItemStatus sets a non-active status on one item.
func (r *MemoryRepo) UpdateItemStatus(itemID string, status model.ItemStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("update item %s status: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	item.Status = status
	item.Version++
	r.items[itemID] = item
	return nil
}

// CommitBid applies one ledger transaction atomically: refund the displaced
// leader, advance the item price and leader, append the bid row, deduct the
// marginal amount. The commit is rejected with ErrVersionConflict if the item
// moved since the caller read it, and with ErrInsufficientBalance if a
// concurrent commit on another item drained the bidder in the meantime.
func (r *MemoryRepo) CommitBid(t BidTransition) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[t.ItemID]
	if !ok {
		return 0, fmt.Errorf("commit bid on item %s: %w", t.ItemID, auctionerrors.ErrItemNotFound)
	}
	if item.Version != t.ExpectedVersion {
		return 0, fmt.Errorf("commit bid on item %s: %w", t.ItemID, auctionerrors.ErrVersionConflict)
	}

	bidder, ok := r.participants[t.BidderID]
	if !ok {
		return 0, fmt.Errorf("commit bid by %s: %w", t.BidderID, auctionerrors.ErrParticipantNotFound)
	}
	if bidder.Balance < t.Deduct {
		return 0, fmt.Errorf("commit bid by %s: balance %d below %d: %w",
			t.BidderID, bidder.Balance, t.Deduct, auctionerrors.ErrInsufficientBalance)
	}

	if t.Refund != nil {
		prev, ok := r.participants[t.Refund.ParticipantID]
		if !ok {
			return 0, fmt.Errorf("refund participant %s: %w", t.Refund.ParticipantID, auctionerrors.ErrParticipantNotFound)
		}
		prev.Balance += t.Refund.Amount
		r.participants[t.Refund.ParticipantID] = prev
	}

	item.CurrentBid = t.Amount
	item.HighestBidderID = t.BidderID
	item.Version++
	r.items[t.ItemID] = item

	r.bids[t.ItemID] = append(r.bids[t.ItemID], t.Bid)

	bidder.Balance -= t.Deduct
	r.participants[t.BidderID] = bidder

	return bidder.Balance, nil
}

// ListBidsByItem returns all committed bids for an item in commit order.
func (r *MemoryRepo) ListBidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return append([]model.Bid(nil), r.bids[itemID]...), nil
}

// ListBidsBySession returns every committed bid in a session.
func (r *MemoryRepo) ListBidsBySession(sessionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Bid, 0)
	for _, bids := range r.bids {
		for _, b := range bids {
			if b.SessionID == sessionID {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// AddLike records a directional signal. A repeat of the same ordered pair is
// a no-op (added=false); exceeding the sender cap fails with ErrLikeCapReached.
func (r *MemoryRepo) AddLike(like model.LikeSignal, senderCap int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sent := r.likes[like.FromID]
	for _, s := range sent {
		if s.ToID == like.ToID {
			return false, nil
		}
	}
	if len(sent) >= senderCap {
		return false, fmt.Errorf("add like from %s: %w", like.FromID, auctionerrors.ErrLikeCapReached)
	}

	r.likes[like.FromID] = append(sent, like)
	return true, nil
}

// ListLikesBySession returns every signal sent within a session.
func (r *MemoryRepo) ListLikesBySession(sessionID string) ([]model.LikeSignal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.LikeSignal, 0)
	for _, sigs := range r.likes {
		for _, s := range sigs {
			if s.SessionID == sessionID {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// ReplaceMatchRecords swaps the full match set for a session in one locked
// step. Callers never observe a partially replaced set.
func (r *MemoryRepo) ReplaceMatchRecords(sessionID string, records []model.MatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[sessionID] = append([]model.MatchRecord(nil), records...)
	return nil
}

// ListMatchesBySubject returns a subject's match rows ordered by rank.
func (r *MemoryRepo) ListMatchesBySubject(sessionID, subjectID string) ([]model.MatchRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.MatchRecord, 0)
	for _, m := range r.matches[sessionID] {
		if m.SubjectID == subjectID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

// BeginPipelineRun claims the single-writer flag for a session's match
// pipeline. A second claim before EndPipelineRun fails with ErrPipelineRunning.
func (r *MemoryRepo) BeginPipelineRun(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pipelineRuns[sessionID] {
		return fmt.Errorf("begin pipeline for session %s: %w", sessionID, auctionerrors.ErrPipelineRunning)
	}
	r.pipelineRuns[sessionID] = true
	return nil
}

// EndPipelineRun releases the session's pipeline flag.
func (r *MemoryRepo) EndPipelineRun(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pipelineRuns, sessionID)
}

// UpsertSnapshot writes a report row keyed by (user, session, type). A token
// already held by a different key fails with ErrTokenTaken so the caller can
// regenerate.
func (r *MemoryRepo) UpsertSnapshot(s model.ReportSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := snapshotKey{userID: s.UserID, sessionID: s.SessionID, reportType: s.ReportType}

	if s.ShareToken != "" {
		if holder, ok := r.tokens[s.ShareToken]; ok && holder != key {
			return fmt.Errorf("upsert snapshot for %s: %w", s.UserID, auctionerrors.ErrTokenTaken)
		}
	}

	if prev, ok := r.snapshots[key]; ok && prev.ShareToken != s.ShareToken {
		delete(r.tokens, prev.ShareToken)
	}
	r.snapshots[key] = s
	if s.ShareToken != "" {
		r.tokens[s.ShareToken] = key
	}
	return nil
}

// GetSnapshot returns one report row by its unique key.
func (r *MemoryRepo) GetSnapshot(userID, sessionID, reportType string) (model.ReportSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.snapshots[snapshotKey{userID: userID, sessionID: sessionID, reportType: reportType}]
	if !ok {
		return model.ReportSnapshot{}, fmt.Errorf("get snapshot for user %s: %w", userID, auctionerrors.ErrSnapshotNotFound)
	}
	return s, nil
}

// GetSnapshotByToken resolves a share token to its report row.
func (r *MemoryRepo) GetSnapshotByToken(token string) (model.ReportSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.tokens[token]
	if !ok {
		return model.ReportSnapshot{}, fmt.Errorf("get snapshot by token: %w", auctionerrors.ErrSnapshotNotFound)
	}
	return r.snapshots[key], nil
}

// DeleteSnapshotsBefore removes every snapshot created before cutoff and
// returns how many were removed.
func (r *MemoryRepo) DeleteSnapshotsBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, s := range r.snapshots {
		if s.CreatedAt.Before(cutoff) {
			delete(r.tokens, s.ShareToken)
			delete(r.snapshots, key)
			removed++
		}
	}
	return removed
}

// ResetSession clears all bid, like, match and snapshot rows for a session,
// returns its items to pending with no price or leader, and restores every
// participant balance to the starting endowment.
func (r *MemoryRepo) ResetSession(sessionID string, endowment int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for itemID, item := range r.items {
		if item.SessionID != sessionID {
			continue
		}
		item.Status = model.ItemPending
		item.CurrentBid = 0
		item.HighestBidderID = ""
		item.Version++
		r.items[itemID] = item
		delete(r.bids, itemID)
	}

	for from, sigs := range r.likes {
		kept := sigs[:0]
		for _, s := range sigs {
			if s.SessionID != sessionID {
				kept = append(kept, s)
			}
		}
		r.likes[from] = kept
	}

	delete(r.matches, sessionID)

	for key, s := range r.snapshots {
		if key.sessionID == sessionID {
			delete(r.tokens, s.ShareToken)
			delete(r.snapshots, key)
		}
	}

	for id, p := range r.participants {
		if p.SessionID == sessionID {
			p.Balance = endowment
			r.participants[id] = p
		}
	}

	return nil
}
