package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"match-night/internal/auctionerrors"
	"match-night/internal/events"
	"match-night/internal/models"
	"match-night/internal/repository"
	"match-night/internal/scoring"
	"match-night/utils"
)

// maxTokenAttempts bounds share-token regeneration on uniqueness collisions.
const maxTokenAttempts = 10

// PairwiseMatch is one row of the pairwise report payload.
type PairwiseMatch struct {
	CandidateID    string `json:"candidate_id"`
	CandidateName  string `json:"candidate_name"`
	Score          int    `json:"score"`
	Rank           int    `json:"rank"`
	IsMutual       bool   `json:"is_mutual"`
	SharedInterest string `json:"shared_interest,omitempty"`
	Keyword        string `json:"keyword,omitempty"`
	Prompt         string `json:"prompt,omitempty"`
}

// PairwiseReport is the frozen view of a participant's match set.
type PairwiseReport struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Matches []PairwiseMatch `json:"matches"`
}

// AggregateReport is the frozen self-summary for one participant. This is the
// report type that carries the share token.
type AggregateReport struct {
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	BidsPlaced      int      `json:"bids_placed"`
	PointsCommitted int      `json:"points_committed"`
	ItemsLeading    []string `json:"items_leading"`
	SignalsSent     int      `json:"signals_sent"`
	SignalsReceived int      `json:"signals_received"`
	MatchCount      int      `json:"match_count"`
	TopKeyword      string   `json:"top_keyword,omitempty"`
}

// Materializer flattens computed match data into immutable, expiring,
// per-participant report rows. Rows expire by a lazy sweep: every read or
// write through this type deletes rows older than the TTL first.
type Materializer struct {
	repo      repository.EventStore
	publisher events.Publisher
	ttl       time.Duration
}

// NewMaterializer creates a Materializer.
func NewMaterializer(repo repository.EventStore, publisher events.Publisher, ttl time.Duration) *Materializer {
	return &Materializer{
		repo:      repo,
		publisher: publisher,
		ttl:       ttl,
	}
}

func (m *Materializer) sweep() {
	removed := m.repo.DeleteSnapshotsBefore(time.Now().UTC().Add(-m.ttl))
	if removed > 0 {
		utils.Info("snapshot sweep removed expired rows", map[string]any{"removed": removed})
	}
}

// Materialize writes both report types for every participant in the session,
// upserting on (user, session, type) so repeated runs with unchanged inputs
// produce identical payloads instead of duplicate rows. Existing rows keep
// their creation time and share token. Returns the number of rows written.
func (m *Materializer) Materialize(sessionID string) (int, error) {
	if sessionID == "" {
		return 0, fmt.Errorf("snapshot: %w - empty session ID", auctionerrors.ErrInvalidInput)
	}

	m.sweep()

	participants, err := m.repo.ListParticipants(sessionID)
	if err != nil {
		return 0, fmt.Errorf("snapshot: failed to list participants for session %s: %w", sessionID, err)
	}
	if len(participants) == 0 {
		return 0, fmt.Errorf("snapshot: session %s: %w", sessionID, auctionerrors.ErrNoParticipants)
	}

	items, err := m.repo.ListItems(sessionID)
	if err != nil {
		return 0, fmt.Errorf("snapshot: failed to list items for session %s: %w", sessionID, err)
	}
	bids, err := m.repo.ListBidsBySession(sessionID)
	if err != nil {
		return 0, fmt.Errorf("snapshot: failed to read bid history for session %s: %w", sessionID, err)
	}
	likes, err := m.repo.ListLikesBySession(sessionID)
	if err != nil {
		return 0, fmt.Errorf("snapshot: failed to read like signals for session %s: %w", sessionID, err)
	}

	history := scoring.NewBidHistory(bids)
	titleByID := make(map[string]string, len(items))
	for _, it := range items {
		titleByID[it.ItemID] = it.Title
	}
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ParticipantID] = p.Name
	}

	sent := make(map[string]int)
	received := make(map[string]int)
	for _, l := range likes {
		sent[l.FromID]++
		received[l.ToID]++
	}

	count := 0
	for _, p := range participants {
		matches, err := m.repo.ListMatchesBySubject(sessionID, p.ParticipantID)
		if err != nil {
			return 0, fmt.Errorf("snapshot: failed to read matches for %s: %w", p.ParticipantID, err)
		}

		pairwise := PairwiseReport{UserID: p.ParticipantID, Name: p.Name, Matches: make([]PairwiseMatch, 0, len(matches))}
		for _, rec := range matches {
			row := PairwiseMatch{
				CandidateID:   rec.CandidateID,
				CandidateName: names[rec.CandidateID],
				Score:         rec.Score,
				Rank:          rec.Rank,
				IsMutual:      rec.IsMutual,
			}
			if title := rarestSharedInterest(history, p.ParticipantID, rec.CandidateID, titleByID); title != "" {
				row.SharedInterest = title
				row.Keyword = KeywordFor(title)
				row.Prompt = PromptFor(title)
			}
			pairwise.Matches = append(pairwise.Matches, row)
		}
		if err := m.upsertReport(p.ParticipantID, sessionID, models.ReportPairwise, pairwise, false); err != nil {
			return 0, err
		}
		count++

		aggregate := m.buildAggregate(p, items, bids, sent, received, len(matches), history, titleByID)
		if err := m.upsertReport(p.ParticipantID, sessionID, models.ReportAggregate, aggregate, true); err != nil {
			return 0, err
		}
		count++
	}

	m.publisher.Publish(events.Event{
		Kind:      events.SnapshotsMaterialized,
		SessionID: sessionID,
		At:        time.Now().UTC(),
		Fields:    map[string]any{"count": count},
	})

	return count, nil
}

func (m *Materializer) buildAggregate(
	p models.Participant,
	items []models.Item,
	bids []models.Bid,
	sent, received map[string]int,
	matchCount int,
	history *scoring.BidHistory,
	titleByID map[string]string,
) AggregateReport {
	placed := 0
	for _, b := range bids {
		if b.BidderID == p.ParticipantID {
			placed++
		}
	}

	committed := 0
	leading := make([]string, 0)
	for _, it := range items {
		if it.HighestBidderID == p.ParticipantID {
			committed += it.CurrentBid
			leading = append(leading, it.Title)
		}
	}
	sort.Strings(leading)

	return AggregateReport{
		UserID:          p.ParticipantID,
		Name:            p.Name,
		BidsPlaced:      placed,
		PointsCommitted: committed,
		ItemsLeading:    leading,
		SignalsSent:     sent[p.ParticipantID],
		SignalsReceived: received[p.ParticipantID],
		MatchCount:      matchCount,
		TopKeyword:      topKeyword(history, p.ParticipantID, titleByID),
	}
}

// upsertReport marshals the payload and writes the row, preserving the
// creation time and share token of an existing row so re-materialization is
// idempotent. Tokens are generated only for new rows of token-bearing types,
// regenerating on a uniqueness collision.
func (m *Materializer) upsertReport(userID, sessionID, reportType string, payload any, withToken bool) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("snapshot: failed to marshal %s report for %s: %w", reportType, userID, err)
	}

	row := models.ReportSnapshot{
		SnapshotID: utils.GenerateID(),
		UserID:     userID,
		SessionID:  sessionID,
		ReportType: reportType,
		Payload:    raw,
		CreatedAt:  time.Now().UTC(),
	}

	if existing, err := m.repo.GetSnapshot(userID, sessionID, reportType); err == nil {
		row.SnapshotID = existing.SnapshotID
		row.CreatedAt = existing.CreatedAt
		row.ShareToken = existing.ShareToken
	} else if !errors.Is(err, auctionerrors.ErrSnapshotNotFound) {
		return fmt.Errorf("snapshot: failed to read existing %s report for %s: %w", reportType, userID, err)
	}

	if withToken && row.ShareToken == "" {
		for attempt := 0; ; attempt++ {
			token, err := newShareToken()
			if err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}
			row.ShareToken = token
			err = m.repo.UpsertSnapshot(row)
			if err == nil {
				return nil
			}
			if !errors.Is(err, auctionerrors.ErrTokenTaken) || attempt+1 >= maxTokenAttempts {
				return fmt.Errorf("snapshot: failed to write %s report for %s: %w", reportType, userID, err)
			}
		}
	}

	if err := m.repo.UpsertSnapshot(row); err != nil {
		return fmt.Errorf("snapshot: failed to write %s report for %s: %w", reportType, userID, err)
	}
	return nil
}

// GetSnapshot returns one participant's report row, sweeping expired rows
// first so an expired snapshot reads as absent.
func (m *Materializer) GetSnapshot(userID, sessionID, reportType string) (models.ReportSnapshot, error) {
	if userID == "" || sessionID == "" {
		return models.ReportSnapshot{}, fmt.Errorf("snapshot: %w - missing userID or sessionID", auctionerrors.ErrInvalidInput)
	}
	if reportType != models.ReportPairwise && reportType != models.ReportAggregate {
		return models.ReportSnapshot{}, fmt.Errorf("snapshot: %w - unknown report type %q", auctionerrors.ErrInvalidInput, reportType)
	}

	m.sweep()

	s, err := m.repo.GetSnapshot(userID, sessionID, reportType)
	if err != nil {
		return models.ReportSnapshot{}, fmt.Errorf("snapshot: failed to get %s report for %s: %w", reportType, userID, err)
	}
	return s, nil
}

// GetSnapshotByToken resolves a share token, sweeping expired rows first.
func (m *Materializer) GetSnapshotByToken(token string) (models.ReportSnapshot, error) {
	if token == "" {
		return models.ReportSnapshot{}, fmt.Errorf("snapshot: %w - empty token", auctionerrors.ErrInvalidInput)
	}

	m.sweep()

	s, err := m.repo.GetSnapshotByToken(token)
	if err != nil {
		return models.ReportSnapshot{}, fmt.Errorf("snapshot: failed to resolve share token: %w", err)
	}
	return s, nil
}

// rarestSharedInterest picks the item both participants bid on with the
// fewest distinct bidders, breaking ties by the lexicographically smallest
// item ID. Empty when they share no items.
func rarestSharedInterest(history *scoring.BidHistory, a, b string, titleByID map[string]string) string {
	aTotals := history.ItemTotals(a)
	bTotals := history.ItemTotals(b)

	bestID := ""
	bestCount := 0
	for itemID, amt := range aTotals {
		if amt <= 0 || bTotals[itemID] <= 0 {
			continue
		}
		n := history.BidderCount(itemID)
		if bestID == "" || n < bestCount || (n == bestCount && itemID < bestID) {
			bestID = itemID
			bestCount = n
		}
	}
	if bestID == "" {
		return ""
	}
	return titleByID[bestID]
}

// topKeyword is the keyword of the item the participant committed the most
// points to, ties broken by the smallest item ID.
func topKeyword(history *scoring.BidHistory, participantID string, titleByID map[string]string) string {
	totals := history.ItemTotals(participantID)

	bestID := ""
	bestAmt := 0
	for itemID, amt := range totals {
		if amt > bestAmt || (amt == bestAmt && amt > 0 && itemID < bestID) {
			bestID = itemID
			bestAmt = amt
		}
	}
	if bestID == "" {
		return ""
	}
	return KeywordFor(titleByID[bestID])
}
