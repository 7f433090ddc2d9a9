package competitions

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gamearena/internal/domain"
	"github.com/GlebRadaev/gamearena/internal/dto"
	"github.com/GlebRadaev/gamearena/internal/handlers/apierr"
	"github.com/GlebRadaev/gamearena/pkg/auth"
	"github.com/GlebRadaev/gamearena/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Competition, error)
	Get(ctx context.Context, id string) (*domain.Competition, error)
}

type Admission interface {
	Join(ctx context.Context, userID, competitionID string) (*domain.GameSession, error)
}

type CompetitionHandler struct {
	competitionService Service
	admissionService   Admission
}

func New(competitionService Service, admissionService Admission) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService: competitionService,
		admissionService:   admissionService,
	}
}

// List godoc
//
//	@Summary		List competitions
//	@Description	List all competitions ordered by start time.
//	@Tags			Competitions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.CompetitionResponseDTO	"Competitions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/competitions [get]
func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.competitionService.List(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCompetitions(list))
}

// Get godoc
//
//	@Summary		Get competition
//	@Tags			Competitions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Competition id"
//	@Success		200	{object}	dto.CompetitionResponseDTO	"Competition"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Competition not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/competitions/{id} [get]
func (h *CompetitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.competitionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCompetition(c))
}

// Join godoc
//
//	@Summary		Join a competition
//	@Description	Reserve a spot, pay the entry fee and start a game session. Joining again while a session is active returns that session.
//	@Tags			Competitions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Competition id"
//	@Success		200	{object}	dto.SessionResponseDTO	"Active game session"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		402	{object}	utils.Response			"Insufficient funds"
//	@Failure		403	{object}	utils.Response			"User is banned"
//	@Failure		404	{object}	utils.Response			"Competition not found"
//	@Failure		409	{object}	utils.Response			"Competition is full or closed"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/competitions/{id}/join [post]
func (h *CompetitionHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	session, err := h.admissionService.Join(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromSession(session))
}
