package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/joke"
)

// JokeService is the part of joke.Service the admin API uses
type JokeService interface {
	AddJoke(ctx context.Context, input joke.AddJokeInput) (*domain.Joke, error)
	DeleteJoke(ctx context.Context, guildID string, number int) error
	CountJokes(ctx context.Context, guildID string) (int, error)
}

// AddJokeRequest is the body of POST /jokes
type AddJokeRequest struct {
	Setup     string `json:"setup" validate:"required,max=1000"`
	Punchline string `json:"punchline" validate:"required,max=1000"`
	Category  string `json:"category" validate:"omitempty,max=32"`
	AddedBy   string `json:"added_by" validate:"omitempty,max=64"`
}

// JokeCountResponse is returned by GET /jokes
type JokeCountResponse struct {
	GuildID string `json:"guild_id"`
	Count   int    `json:"count"`
}

// JokeHandler serves the joke catalogue admin endpoints
type JokeHandler struct {
	jokes JokeService
}

// NewJokeHandler creates a JokeHandler
func NewJokeHandler(jokes JokeService) *JokeHandler {
	return &JokeHandler{jokes: jokes}
}

// HandleCountJokes reports the size of the guild's catalogue
func (h *JokeHandler) HandleCountJokes(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildIDParam(w, r)
	if !ok {
		return
	}

	n, err := h.jokes.CountJokes(r.Context(), guildID)
	if err != nil {
		respondServiceError(w, r, "count jokes", err)
		return
	}
	respondJSON(w, http.StatusOK, JokeCountResponse{GuildID: guildID, Count: n})
}

// HandleAddJoke stores a new joke and returns it with its assigned number
// @Summary Add a joke
// @Tags jokes
// @Accept json
// @Produce json
// @Param guildID path string true "Guild ID"
// @Param request body AddJokeRequest true "Joke"
// @Success 201 {object} domain.Joke
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/guilds/{guildID}/jokes [post]
func (h *JokeHandler) HandleAddJoke(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildIDParam(w, r)
	if !ok {
		return
	}

	var req AddJokeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add joke"); err != nil {
		return
	}

	added, err := h.jokes.AddJoke(r.Context(), joke.AddJokeInput{
		GuildID:   guildID,
		Setup:     req.Setup,
		Punchline: req.Punchline,
		Category:  req.Category,
		AddedBy:   req.AddedBy,
	})
	if err != nil {
		respondServiceError(w, r, "add joke", err)
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// HandleDeleteJoke removes a joke by its per-guild number
// @Summary Delete a joke by number
// @Tags jokes
// @Param guildID path string true "Guild ID"
// @Param number path int true "Joke number"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/guilds/{guildID}/jokes/{number} [delete]
func (h *JokeHandler) HandleDeleteJoke(w http.ResponseWriter, r *http.Request) {
	guildID, ok := guildIDParam(w, r)
	if !ok {
		return
	}

	number, err := strconv.Atoi(chi.URLParam(r, ParamJokeNumber))
	if err != nil || number < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidJokeNumber)
		return
	}

	if err := h.jokes.DeleteJoke(r.Context(), guildID, number); err != nil {
		respondServiceError(w, r, "delete joke", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
