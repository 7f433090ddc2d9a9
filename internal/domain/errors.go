package domain

import "errors"

var (
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrCompetitionFull         = errors.New("competition is full")
	ErrUserBanned              = errors.New("user is banned")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidTransactionState = errors.New("invalid transaction state")
	ErrSessionAlreadyTerminal  = errors.New("session already terminal")

	ErrCompetitionClosed       = errors.New("competition is closed")
	ErrCompetitionNotFound     = errors.New("competition not found")
	ErrInvalidCompetition      = errors.New("invalid competition")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidBan              = errors.New("invalid ban")
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionExists           = errors.New("active session already exists")
	ErrSessionPaused           = errors.New("session is paused")
	ErrInvalidTarget           = errors.New("invalid target")
)
