package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound        = errors.New("item not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrVersionConflict     = errors.New("item changed concurrently")
	ErrTokenTaken          = errors.New("share token already in use")
)

// business logic errors
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrItemNotActive       = errors.New("item is not active")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrLikeCapReached      = errors.New("like cap reached")
	ErrPipelineRunning     = errors.New("match pipeline already running for session")
	ErrNoParticipants      = errors.New("no participants in session")
)
