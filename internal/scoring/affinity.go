package scoring

import (
	"math"

	"match-night/internal/models"
)

// Affinity weighting constants. Valuation overlap carries 70 of the 100
// points; expressed interest carries the remaining 30, normalized against a
// cap of 5 signals and flattened sub-linearly so a single enthusiastic click
// cannot dominate. Reciprocity multiplies the whole score; valuation-only
// pairs with zero expressed interest are damped.
const (
	valuationWeight       = 70.0
	signalWeight          = 30.0
	signalCap             = 5.0
	signalExponent        = 1.2
	mutualMultiplier      = 1.5
	disinterestMultiplier = 0.85
	disinterestThreshold  = 30.0
)

// LikeIndex counts directional signals per ordered pair.
type LikeIndex struct {
	counts map[string]map[string]int // fromID -> toID -> count
}

// NewLikeIndex indexes a slice of like signals.
func NewLikeIndex(likes []models.LikeSignal) *LikeIndex {
	idx := &LikeIndex{counts: make(map[string]map[string]int)}
	for _, l := range likes {
		to, ok := idx.counts[l.FromID]
		if !ok {
			to = make(map[string]int)
			idx.counts[l.FromID] = to
		}
		to[l.ToID]++
	}
	return idx
}

// Count returns the number of signals sent from one participant to another.
func (idx *LikeIndex) Count(fromID, toID string) int {
	return idx.counts[fromID][toID]
}

// AffinityScore is the bounded compatibility of one ordered pair.
type AffinityScore struct {
	Value    int
	IsMutual bool
}

// Scorer combines valuation overlap with signal data for ordered pairs. It
// reads only prebuilt indexes, so scoring a full session does not touch the
// store.
type Scorer struct {
	history *BidHistory
	likes   *LikeIndex
}

// NewScorer creates a Scorer over one session's indexed history.
func NewScorer(history *BidHistory, likes *LikeIndex) *Scorer {
	return &Scorer{history: history, likes: likes}
}

// Score computes the subject's affinity for the candidate on a 0..100 scale.
// Not symmetric: the signal component and the disinterest rule depend on who
// is looking.
func (s *Scorer) Score(subjectID, candidateID string) AffinityScore {
	valuation := valuationWeight * s.history.Similarity(subjectID, candidateID)

	sent := s.likes.Count(subjectID, candidateID)
	hearts := math.Min(float64(sent), signalCap)
	signal := signalWeight * math.Pow(hearts/signalCap, signalExponent)

	score := valuation + signal

	mutual := sent >= 1 && s.likes.Count(candidateID, subjectID) >= 1
	if mutual {
		score *= mutualMultiplier
	} else if sent == 0 && valuation > disinterestThreshold {
		score *= disinterestMultiplier
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return AffinityScore{Value: int(math.Round(score)), IsMutual: mutual}
}
