package matching

import (
	"fmt"
	"time"

	"match-night/internal/auctionerrors"
	"match-night/internal/events"
	"match-night/internal/models"
	"match-night/internal/repository"
	"match-night/internal/scoring"
	"match-night/utils"
)

// Pipeline runs the full scoring pass for a session: index the committed bid
// and like history, score every ordered pair, select each subject's match set,
// and swap the session's match records in one atomic replace.
type Pipeline struct {
	repo          repository.EventStore
	publisher     events.Publisher
	topN          int
	floor         int
	defaultPolicy Policy
}

// NewPipeline creates a Pipeline.
func NewPipeline(repo repository.EventStore, publisher events.Publisher, topN, floor int, defaultPolicy Policy) *Pipeline {
	return &Pipeline{
		repo:          repo,
		publisher:     publisher,
		topN:          topN,
		floor:         floor,
		defaultPolicy: defaultPolicy,
	}
}

// MatchSet is one subject's computed matches plus the unmatched remainder of
// their candidate pool.
type MatchSet struct {
	Records   []models.MatchRecord
	Remaining []string
}

// Run executes the pipeline once for a session. Concurrent runs for the same
// session are rejected with ErrPipelineRunning; a store failure mid-run aborts
// before the replace, leaving the previous match set untouched. The pass works
// off the history as read at its start, so bids landing during the run show up
// in the next one.
func (p *Pipeline) Run(sessionID string, policy Policy) (int, error) {
	if sessionID == "" {
		return 0, fmt.Errorf("pipeline: %w - empty session ID", auctionerrors.ErrInvalidInput)
	}
	if policy == "" {
		policy = p.defaultPolicy
	}
	if !policy.Valid() {
		return 0, fmt.Errorf("pipeline: %w - unknown policy %q", auctionerrors.ErrInvalidInput, policy)
	}

	if err := p.repo.BeginPipelineRun(sessionID); err != nil {
		return 0, fmt.Errorf("pipeline: %w", err)
	}
	defer p.repo.EndPipelineRun(sessionID)

	participants, err := p.repo.ListParticipants(sessionID)
	if err != nil {
		return 0, fmt.Errorf("pipeline: failed to list participants for session %s: %w", sessionID, err)
	}
	if len(participants) == 0 {
		return 0, fmt.Errorf("pipeline: session %s: %w", sessionID, auctionerrors.ErrNoParticipants)
	}

	bids, err := p.repo.ListBidsBySession(sessionID)
	if err != nil {
		return 0, fmt.Errorf("pipeline: failed to read bid history for session %s: %w", sessionID, err)
	}
	likes, err := p.repo.ListLikesBySession(sessionID)
	if err != nil {
		return 0, fmt.Errorf("pipeline: failed to read like signals for session %s: %w", sessionID, err)
	}

	scorer := scoring.NewScorer(scoring.NewBidHistory(bids), scoring.NewLikeIndex(likes))

	all := make([]models.MatchRecord, 0, len(participants)*p.topN)
	for _, subject := range participants {
		records, _ := SelectMatches(subject, participants, scorer, policy, p.topN, p.floor)
		for _, rec := range records {
			rec.MatchID = utils.GenerateID()
			rec.SessionID = sessionID
			all = append(all, rec)
		}
	}

	if err := p.repo.ReplaceMatchRecords(sessionID, all); err != nil {
		return 0, fmt.Errorf("pipeline: failed to replace match records for session %s: %w", sessionID, err)
	}

	p.publisher.Publish(events.Event{
		Kind:      events.PipelineCompleted,
		SessionID: sessionID,
		At:        time.Now().UTC(),
		Fields: map[string]any{
			"policy":          string(policy),
			"matches_created": len(all),
		},
	})

	return len(all), nil
}

// MatchesForSubject returns a subject's stored match rows in rank order plus
// the remaining pool: opposite-cohort participants not present in the rows.
// The pool carries no scores, only the fact of being unmatched.
func (p *Pipeline) MatchesForSubject(sessionID, subjectID string) (MatchSet, error) {
	if sessionID == "" || subjectID == "" {
		return MatchSet{}, fmt.Errorf("pipeline: %w - missing sessionID or subjectID", auctionerrors.ErrInvalidInput)
	}

	subject, err := p.repo.GetParticipant(subjectID)
	if err != nil {
		return MatchSet{}, fmt.Errorf("pipeline: failed to read subject %s: %w", subjectID, err)
	}

	records, err := p.repo.ListMatchesBySubject(sessionID, subjectID)
	if err != nil {
		return MatchSet{}, fmt.Errorf("pipeline: failed to read matches for %s: %w", subjectID, err)
	}

	matched := make(map[string]struct{}, len(records))
	for _, rec := range records {
		matched[rec.CandidateID] = struct{}{}
	}

	participants, err := p.repo.ListParticipants(sessionID)
	if err != nil {
		return MatchSet{}, fmt.Errorf("pipeline: failed to list participants for session %s: %w", sessionID, err)
	}

	remaining := make([]string, 0)
	for _, c := range participants {
		if c.Gender != subject.Gender.Opposite() {
			continue
		}
		if _, ok := matched[c.ParticipantID]; !ok {
			remaining = append(remaining, c.ParticipantID)
		}
	}

	return MatchSet{Records: records, Remaining: remaining}, nil
}
