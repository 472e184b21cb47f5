package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	startedBefore := testutil.ToFloat64(RoundsStarted)
	winnerBefore := testutil.ToFloat64(RoundsEnded.WithLabelValues(domain.OutcomeWinner))
	forcedBefore := testutil.ToFloat64(RoundsForceEnded.WithLabelValues("http"))
	addedBefore := testutil.ToFloat64(JokesAdded.WithLabelValues("jokeapi"))

	id := uuid.New()
	require.NoError(t, bus.Publish(ctx, event.NewRoundStartedEvent(id, "g1", "c1", "u1", 1)))
	require.NoError(t, bus.Publish(ctx, event.NewRoundEndedEvent(id, "g1", event.RoundEndedPayloadV1{
		Outcome: domain.OutcomeWinner, DurationSeconds: 12, Candidates: 3,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewRoundsForceEndedEvent("g1", 2, "http")))
	require.NoError(t, bus.Publish(ctx, event.NewJokeAddedEvent("g1", 5, "jokeapi")))

	assert.Equal(t, startedBefore+1, testutil.ToFloat64(RoundsStarted))
	assert.Equal(t, winnerBefore+1, testutil.ToFloat64(RoundsEnded.WithLabelValues(domain.OutcomeWinner)))
	assert.Equal(t, forcedBefore+2, testutil.ToFloat64(RoundsForceEnded.WithLabelValues("http")))
	assert.Equal(t, addedBefore+1, testutil.ToFloat64(JokesAdded.WithLabelValues("jokeapi")))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.RoundEnded)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.RoundEnded, Payload: make(chan int)})
	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.RoundEnded))))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/guilds/{guildID}/round", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/guilds/{guildID}/round", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guilds/12345/round", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
