package sessions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/dto"
	"github.com/GlebRadaev/gamearena/internal/game"
	"github.com/GlebRadaev/gamearena/internal/handlers/apierr"
	"github.com/GlebRadaev/gamearena/pkg/auth"
	"github.com/GlebRadaev/gamearena/pkg/utils"
)

type Engine interface {
	Get(ctx context.Context, id string) (*domain.GameSession, error)
	Hit(ctx context.Context, id string, targetID int32) (*domain.GameSession, error)
	Miss(ctx context.Context, id string) (*domain.GameSession, error)
	Tick(ctx context.Context, id string) (*domain.GameSession, error)
	Forfeit(ctx context.Context, id string) (*domain.GameSession, error)
	Pause(ctx context.Context, id string) (*domain.GameSession, error)
	Resume(ctx context.Context, id string) (*domain.GameSession, error)
}

type SessionHandler struct {
	engine Engine
}

func New(engine Engine) *SessionHandler {
	return &SessionHandler{
		engine: engine,
	}
}

// owned returns the session named in the path if it belongs to the caller.
// Sessions of other users are reported as not found.
func (h *SessionHandler) owned(r *http.Request) (*domain.GameSession, error) {
	s, err := h.engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	if s.UserID != auth.UserID(r.Context()) {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (h *SessionHandler) event(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, id string) (*domain.GameSession, error)) {
	s, err := h.owned(r)
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	s, err = apply(r.Context(), s.ID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSession(s))
}

// Get godoc
//
//	@Summary		Get game session
//	@Description	Snapshot of a live or archived game session owned by the caller.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Session snapshot"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.owned(r)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSession(s))
}

// Result godoc
//
//	@Summary		Get session result
//	@Description	Rank and winnings for the session score.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.ResultResponseDTO	"Result"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/result [get]
func (h *SessionHandler) Result(w http.ResponseWriter, r *http.Request) {
	s, err := h.owned(r)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromResult(s, game.Results(s.Score)))
}

// Hit godoc
//
//	@Summary		Report a found difference
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Session id"
//	@Param			request	body		dto.HitRequestDTO		true	"Target"
//	@Success		200		{object}	dto.SessionResponseDTO	"Updated session"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		404		{object}	utils.Response			"Session not found"
//	@Failure		409		{object}	utils.Response			"Session finished or paused"
//	@Failure		422		{object}	utils.Response			"Unknown target"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/hit [post]
func (h *SessionHandler) Hit(w http.ResponseWriter, r *http.Request) {
	var req dto.HitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.event(w, r, func(ctx context.Context, id string) (*domain.GameSession, error) {
		return h.engine.Hit(ctx, id, req.TargetID)
	})
}

// Miss godoc
//
//	@Summary		Report a wrong click
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Updated session"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session finished or paused"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/miss [post]
func (h *SessionHandler) Miss(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, h.engine.Miss)
}

// Tick godoc
//
//	@Summary		Advance the session clock by one second
//	@Description	For clients that drive the clock themselves when the server ticker is disabled.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Updated session"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session finished or paused"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/tick [post]
func (h *SessionHandler) Tick(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, h.engine.Tick)
}

// Forfeit godoc
//
//	@Summary		Forfeit the session
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Forfeited session"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session already finished"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/forfeit [post]
func (h *SessionHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, h.engine.Forfeit)
}

// Pause godoc
//
//	@Summary		Pause the session clock
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Paused session"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session already finished"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/pause [post]
func (h *SessionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, h.engine.Pause)
}

// Resume godoc
//
//	@Summary		Resume the session clock
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Session id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Resumed session"
//	@Failure		404	{object}	utils.Response			"Session not found"
//	@Failure		409	{object}	utils.Response			"Session already finished"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/sessions/{id}/resume [post]
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, h.engine.Resume)
}
