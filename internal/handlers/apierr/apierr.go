// Package apierr maps business errors to HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrUserBanned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidBan),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidCompetition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCompetitionFull),
		errors.Is(err, domain.ErrCompetitionClosed),
		errors.Is(err, domain.ErrInvalidTransactionState),
		errors.Is(err, domain.ErrSessionAlreadyTerminal),
		errors.Is(err, domain.ErrSessionPaused),
		errors.Is(err, domain.ErrSessionExists),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCompetitionNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Unknown errors are logged and
// reported without detail.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
