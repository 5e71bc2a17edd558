package models

import "time"

// ItemStatus is the lifecycle state of an auction item.
type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemActive   ItemStatus = "active"
	ItemFinished ItemStatus = "finished"
)

// Valid reports whether s is one of the known item states.
func (s ItemStatus) Valid() bool {
	return s == ItemPending || s == ItemActive || s == ItemFinished
}

// Gender is the cohort tag used to restrict match candidate pools.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Opposite returns the other cohort.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// Valid reports whether g is one of the known cohort tags.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Participant represents one registered attendee of a session.
type Participant struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Gender        Gender `json:"gender"`
	Balance       int    `json:"balance"`
	SessionID     string `json:"session_id"`
}

// Item represents an auction item. CurrentBid only moves up while the item
// is active; Version guards the compare-and-swap commit in the repository.
type Item struct {
	ItemID          string     `json:"item_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CurrentBid      int        `json:"current_bid"`
	HighestBidderID string     `json:"highest_bidder_id,omitempty"`
	Status          ItemStatus `json:"status"`
	SessionID       string     `json:"session_id"`
	Version         int64      `json:"-"`
}

// Bid is one committed ledger transition. Append-only.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int       `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeSignal is a directional expressed-interest event, deduplicated per
// ordered (from, to) pair and capped per sender.
type LikeSignal struct {
	LikeID    string    `json:"like_id"`
	FromID    string    `json:"from_id"`
	ToID      string    `json:"to_id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchRecord is one row of a subject's top-N match set. Not symmetric:
// (subject, candidate) and (candidate, subject) are scored independently.
type MatchRecord struct {
	MatchID     string `json:"match_id"`
	SubjectID   string `json:"subject_id"`
	CandidateID string `json:"candidate_id"`
	Score       int    `json:"score"`
	Rank        int    `json:"rank"`
	IsMutual    bool   `json:"is_mutual"`
	SessionID   string `json:"session_id"`
}

// Report types materialized per participant.
const (
	ReportPairwise  = "pairwise"
	ReportAggregate = "aggregate"
)

// ReportSnapshot is an immutable frozen projection of computed match data,
// keyed by (UserID, SessionID, ReportType) and expired by a lazy sweep.
type ReportSnapshot struct {
	SnapshotID string    `json:"snapshot_id"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	ReportType string    `json:"report_type"`
	Payload    []byte    `json:"payload"`
	ShareToken string    `json:"share_token,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
