package session

import (
	"fmt"
	"time"

	"match-night/internal/auctionerrors"
	"match-night/internal/models"
	"match-night/internal/repository"
	"match-night/utils"
)

// Service covers the participant lifecycle and the feed's like surface:
// onboarding, directional like signals, and the administrative cleanup paths.
type Service struct {
	repo      repository.EventStore
	endowment int
	likeCap   int
}

// NewService creates a session Service.
func NewService(repo repository.EventStore, endowment, likeCap int) *Service {
	return &Service{
		repo:      repo,
		endowment: endowment,
		likeCap:   likeCap,
	}
}

// CreateParticipant registers an attendee with the starting endowment.
func (s *Service) CreateParticipant(name string, gender models.Gender, sessionID string) (models.Participant, error) {
	if name == "" || sessionID == "" {
		return models.Participant{}, fmt.Errorf("session: %w - missing name or sessionID", auctionerrors.ErrInvalidInput)
	}
	if !gender.Valid() {
		return models.Participant{}, fmt.Errorf("session: %w - unknown gender %q", auctionerrors.ErrInvalidInput, gender)
	}

	p := models.Participant{
		ParticipantID: utils.GenerateID(),
		Name:          name,
		Gender:        gender,
		Balance:       s.endowment,
		SessionID:     sessionID,
	}
	if err := s.repo.CreateParticipant(p); err != nil {
		return models.Participant{}, fmt.Errorf("session: failed to create participant: %w", err)
	}
	return p, nil
}

// GetParticipant returns one participant.
func (s *Service) GetParticipant(id string) (models.Participant, error) {
	if id == "" {
		return models.Participant{}, fmt.Errorf("session: %w - empty participant ID", auctionerrors.ErrInvalidInput)
	}
	p, err := s.repo.GetParticipant(id)
	if err != nil {
		return models.Participant{}, fmt.Errorf("session: failed to get participant %s: %w", id, err)
	}
	return p, nil
}

// AddLike records a directional signal from one participant to another.
// Repeats of the same ordered pair are accepted but not re-recorded; the
// sender cap is enforced by the store.
func (s *Service) AddLike(fromID, toID string) (added bool, err error) {
	if fromID == "" || toID == "" {
		return false, fmt.Errorf("session: %w - missing fromID or toID", auctionerrors.ErrInvalidInput)
	}
	if fromID == toID {
		return false, fmt.Errorf("session: %w - cannot like yourself", auctionerrors.ErrInvalidInput)
	}

	from, err := s.repo.GetParticipant(fromID)
	if err != nil {
		return false, fmt.Errorf("session: failed to read sender %s: %w", fromID, err)
	}
	if _, err := s.repo.GetParticipant(toID); err != nil {
		return false, fmt.Errorf("session: failed to read recipient %s: %w", toID, err)
	}

	like := models.LikeSignal{
		LikeID:    utils.GenerateID(),
		FromID:    fromID,
		ToID:      toID,
		SessionID: from.SessionID,
		CreatedAt: time.Now().UTC(),
	}
	added, err = s.repo.AddLike(like, s.likeCap)
	if err != nil {
		return false, fmt.Errorf("session: failed to add like: %w", err)
	}
	return added, nil
}

// DeleteParticipant removes an attendee and cascades to every row that
// references them.
func (s *Service) DeleteParticipant(id string) error {
	if id == "" {
		return fmt.Errorf("session: %w - empty participant ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteParticipant(id); err != nil {
		return fmt.Errorf("session: failed to delete participant %s: %w", id, err)
	}
	return nil
}

// ResetSession wipes all bid, like, match and snapshot state for a session
// and restores participant balances to the endowment.
func (s *Service) ResetSession(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session: %w - empty session ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.repo.ResetSession(sessionID, s.endowment); err != nil {
		return fmt.Errorf("session: failed to reset session %s: %w", sessionID, err)
	}
	return nil
}
