package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

const testGuild = "123456789012345678"

func TestHandleGetActiveRound(t *testing.T) {
	t.Run("Active Round", func(t *testing.T) {
		rounds := &MockRoundService{}
		id := uuid.New()
		rounds.On("GetActiveRound", mock.Anything, testGuild).Return(&domain.Session{
			ID:         id,
			GuildID:    testGuild,
			ChannelID:  "c1",
			StartedBy:  "u1",
			JokeNumber: 4,
			Prompt:     "Why did the chicken cross the road?",
			Answer:     "To get to the other side",
			State:      domain.SessionStateCollecting,
			CreatedAt:  time.Now(),
		}, nil)

		w := httptest.NewRecorder()
		newRouter(rounds, &MockJokeService{}).ServeHTTP(w, httptest.NewRequest("GET", "/guilds/"+testGuild+"/round", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp RoundResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "collecting", resp.State)
		assert.Equal(t, 4, resp.JokeNumber)
		assert.NotContains(t, w.Body.String(), "other side", "answer must not leak")
		rounds.AssertExpectations(t)
	})

	t.Run("No Active Round", func(t *testing.T) {
		rounds := &MockRoundService{}
		rounds.On("GetActiveRound", mock.Anything, testGuild).Return(nil, nil)

		w := httptest.NewRecorder()
		newRouter(rounds, &MockJokeService{}).ServeHTTP(w, httptest.NewRequest("GET", "/guilds/"+testGuild+"/round", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoActiveRound)
	})

	t.Run("Store Error Is Generic", func(t *testing.T) {
		rounds := &MockRoundService{}
		rounds.On("GetActiveRound", mock.Anything, testGuild).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		newRouter(rounds, &MockJokeService{}).ServeHTTP(w, httptest.NewRequest("GET", "/guilds/"+testGuild+"/round", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("Invalid Guild ID", func(t *testing.T) {
		rounds := &MockRoundService{}

		w := httptest.NewRecorder()
		newRouter(rounds, &MockJokeService{}).ServeHTTP(w, httptest.NewRequest("GET", "/guilds/not-a-guild/round", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidGuildID)
		rounds.AssertNotCalled(t, "GetActiveRound", mock.Anything, mock.Anything)
	})
}

func TestHandleClearRounds(t *testing.T) {
	rounds := &MockRoundService{}
	rounds.On("ForceEndAll", mock.Anything, testGuild, ForceEndSourceHTTP).Return(int64(1), nil)

	w := httptest.NewRecorder()
	newRouter(rounds, &MockJokeService{}).ServeHTTP(w, httptest.NewRequest("POST", "/guilds/"+testGuild+"/round/clear", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ended":1}`, w.Body.String())
	rounds.AssertExpectations(t)
}
