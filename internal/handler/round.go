package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// RoundService is the part of game.Service the admin API uses
type RoundService interface {
	GetActiveRound(ctx context.Context, guildID string) (*domain.Session, error)
	ForceEndAll(ctx context.Context, guildID, source string) (int64, error)
}

// RoundResponse describes an active round. The answer is not exposed.
type RoundResponse struct {
	ID         string    `json:"id"`
	GuildID    string    `json:"guild_id"`
	ChannelID  string    `json:"channel_id"`
	StartedBy  string    `json:"started_by"`
	JokeNumber int       `json:"joke_number"`
	Prompt     string    `json:"prompt"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClearRoundsResponse reports how many rounds a force end touched
type ClearRoundsResponse struct {
	Ended int64 `json:"ended"`
}

// RoundHandler serves the round admin endpoints
type RoundHandler struct {
	rounds RoundService
}

// NewRoundHandler creates a RoundHandler
func NewRoundHandler(rounds RoundService) *RoundHandler {
	return &RoundHandler{rounds: rounds}
}

// HandleGetActiveRound returns the guild's active round or 404
// @Summary Get the active round
// @Tags rounds
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {object} RoundResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/guilds/{guildID}/round [get]
func (h *RoundHandler) HandleGetActiveRound(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildIDParam(w, r)
	if !ok {
		return
	}

	session, err := h.rounds.GetActiveRound(r.Context(), guildID)
	if err != nil {
		respondServiceError(w, r, "get active round", err)
		return
	}
	if session == nil {
		respondError(w, http.StatusNotFound, ErrMsgNoActiveRound)
		return
	}

	respondJSON(w, http.StatusOK, RoundResponse{
		ID:         session.ID.String(),
		GuildID:    session.GuildID,
		ChannelID:  session.ChannelID,
		StartedBy:  session.StartedBy,
		JokeNumber: session.JokeNumber,
		Prompt:     session.Prompt,
		State:      string(session.State),
		CreatedAt:  session.CreatedAt,
	})
}

// HandleClearRounds force-ends every active round in the guild.
// Running round goroutines notice at their next guard and stop without announcing.
// @Summary Force end every active round in the guild
// @Tags rounds
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {object} ClearRoundsResponse
// @Security ApiKeyAuth
// @Router /api/v1/guilds/{guildID}/round/clear [post]
func (h *RoundHandler) HandleClearRounds(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.rounds.ForceEndAll(r.Context(), guildID, ForceEndSourceHTTP)
	if err != nil {
		respondServiceError(w, r, "clear rounds", err)
		return
	}

	respondJSON(w, http.StatusOK, ClearRoundsResponse{Ended: n})
}
