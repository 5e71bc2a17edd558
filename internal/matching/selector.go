package matching

import (
	"sort"

	"match-night/internal/models"
	"match-night/internal/scoring"
)

// Policy names a match-selection rule set. The live policy pins mutually
// interested candidates ahead of everyone else and enforces the score floor;
// the final policy is a plain top-N by score. Both exist in the product and
// are selected per pipeline run.
type Policy string

const (
	PolicyLive  Policy = "live"
	PolicyFinal Policy = "final"
)

// Valid reports whether p names a known policy.
func (p Policy) Valid() bool {
	return p == PolicyLive || p == PolicyFinal
}

type scoredCandidate struct {
	id    string
	score scoring.AffinityScore
}

// SelectMatches ranks the subject's opposite-cohort candidates and returns up
// to topN match records plus the IDs of the candidates that were scored but
// not selected (the remaining pool). Ties order by candidate ID so selection
// is deterministic.
func SelectMatches(
	subject models.Participant,
	candidates []models.Participant,
	scorer *scoring.Scorer,
	policy Policy,
	topN, floor int,
) ([]models.MatchRecord, []string) {
	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.ParticipantID == subject.ParticipantID || c.Gender != subject.Gender.Opposite() {
			continue
		}
		scored = append(scored, scoredCandidate{
			id:    c.ParticipantID,
			score: scorer.Score(subject.ParticipantID, c.ParticipantID),
		})
	}

	switch policy {
	case PolicyFinal:
		sortByScore(scored)
	default:
		// Mutual interest overrides any score gap: mutual candidates first,
		// then score order within each partition.
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].score.IsMutual != scored[j].score.IsMutual {
				return scored[i].score.IsMutual
			}
			return lessByScore(scored[i], scored[j])
		})
	}

	records := make([]models.MatchRecord, 0, topN)
	remaining := make([]string, 0, len(scored))
	for _, sc := range scored {
		if len(records) < topN && (policy == PolicyFinal || sc.score.Value >= floor) {
			records = append(records, models.MatchRecord{
				SubjectID:   subject.ParticipantID,
				CandidateID: sc.id,
				Score:       sc.score.Value,
				Rank:        len(records) + 1,
				IsMutual:    sc.score.IsMutual,
			})
			continue
		}
		remaining = append(remaining, sc.id)
	}
	return records, remaining
}

func sortByScore(scored []scoredCandidate) {
	sort.SliceStable(scored, func(i, j int) bool { return lessByScore(scored[i], scored[j]) })
}

func lessByScore(a, b scoredCandidate) bool {
	if a.score.Value != b.score.Value {
		return a.score.Value > b.score.Value
	}
	return a.id < b.id
}
